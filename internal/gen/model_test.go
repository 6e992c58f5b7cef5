package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameSortString(t *testing.T) {
	n := Name{First: "Anna", Surname: "Berg", Suffix: "Jr."}
	assert.Equal(t, "Berg, Anna Jr.", n.SortString())

	n = Name{First: "Anna", Surname: "Berg", Prefix: "van"}
	assert.Equal(t, "van Berg, Anna", n.SortString())

	n = Name{Surname: "Berg"}
	assert.Equal(t, "Berg", n.SortString())
}

func TestNameDisplayString(t *testing.T) {
	n := Name{First: "Anna", Surname: "Berg", Prefix: "van"}
	assert.Equal(t, "Anna van Berg", n.DisplayString())

	assert.Equal(t, "Anna", Name{First: "Anna"}.DisplayString())
}

func TestNameGroupSurname(t *testing.T) {
	assert.Equal(t, "Berg", Name{Surname: "van Berg", GroupAs: "Berg"}.GroupSurname())
	assert.Equal(t, "Berg", Name{Surname: "Berg"}.GroupSurname())
	assert.Equal(t, "", Name{Surname: "   "}.GroupSurname())
	assert.Equal(t, "", Name{}.GroupSurname())
}

func TestIsFamilyEvent(t *testing.T) {
	assert.True(t, Marriage.IsFamilyEvent())
	assert.True(t, Divorce.IsFamilyEvent())
	assert.True(t, Engagement.IsFamilyEvent())
	assert.False(t, Birth.IsFamilyEvent())
	assert.False(t, Occupation.IsFamilyEvent())
}

func TestMediaList(t *testing.T) {
	refs := []Handle{"o1", "o2"}

	var hm HasMedia = &Person{MediaRefs: refs}
	assert.Equal(t, refs, hm.MediaList())

	hm = &Family{MediaRefs: refs}
	assert.Equal(t, refs, hm.MediaList())

	hm = &Event{MediaRefs: refs}
	assert.Equal(t, refs, hm.MediaList())

	hm = &Place{MediaRefs: refs}
	assert.Equal(t, refs, hm.MediaList())
}
