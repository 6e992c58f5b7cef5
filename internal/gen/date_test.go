package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateString(t *testing.T) {
	assert.Equal(t, "4 March 1874", Date{Year: 1874, Month: 3, Day: 4}.String())
	assert.Equal(t, "March 1874", Date{Year: 1874, Month: 3}.String())
	assert.Equal(t, "1874", Date{Year: 1874}.String())
	assert.Equal(t, "", Date{}.String())
}

func TestDateGedcom(t *testing.T) {
	assert.Equal(t, "4 MAR 1874", Date{Year: 1874, Month: 3, Day: 4}.Gedcom())
	assert.Equal(t, "MAR 1874", Date{Year: 1874, Month: 3}.Gedcom())
	assert.Equal(t, "1874", Date{Year: 1874}.Gedcom())
}

func TestDateSortValue(t *testing.T) {
	a := Date{Year: 1874, Month: 3, Day: 4}
	b := Date{Year: 1874, Month: 3, Day: 5}
	c := Date{Year: 1875}

	assert.Less(t, a.SortValue(), b.SortValue())
	assert.Less(t, b.SortValue(), c.SortValue())
	assert.Zero(t, Date{}.SortValue())
}

func TestDateIsEmpty(t *testing.T) {
	assert.True(t, Date{}.IsEmpty())
	assert.False(t, Date{Year: 1900}.IsEmpty())
}
