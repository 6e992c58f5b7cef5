package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/kinsite/internal/config"
	"github.com/davrell/kinsite/internal/gen"
)

func newTestReport(t *testing.T, db *gen.Database, language string) *Report {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Site.Language = language
	r, err := New(db, cfg, t.TempDir(), false)
	require.NoError(t, err)
	return r
}

func TestSortPeopleGroupsBySurname(t *testing.T) {
	db := gen.NewDatabase()
	db.People["p1"] = &gen.Person{Handle: "p1", Name: gen.Name{First: "Jonas", Surname: "Berg"}}
	db.People["p2"] = &gen.Person{Handle: "p2", Name: gen.Name{First: "Anna", Surname: "Berg"}}
	db.People["p3"] = &gen.Person{Handle: "p3", Name: gen.Name{First: "Erik", Surname: "Aaberg"}}

	r := newTestReport(t, db, "en")
	groups := r.sortPeople([]gen.Handle{"p1", "p2", "p3"})

	require.Len(t, groups, 2)
	assert.Equal(t, "Aaberg", groups[0].Surname)
	assert.Equal(t, []gen.Handle{"p3"}, groups[0].People)
	assert.Equal(t, "Berg", groups[1].Surname)
	// Anna sorts before Jonas within the Berg group
	assert.Equal(t, []gen.Handle{"p2", "p1"}, groups[1].People)
}

func TestSortPeopleHonorsNameGrouping(t *testing.T) {
	db := gen.NewDatabase()
	db.People["p1"] = &gen.Person{Handle: "p1", Name: gen.Name{First: "Anna", Surname: "van Berg"}}
	db.People["p2"] = &gen.Person{Handle: "p2", Name: gen.Name{First: "Jonas", Surname: "Berg"}}
	db.SetNameGroup("van Berg", "Berg")

	r := newTestReport(t, db, "en")
	groups := r.sortPeople([]gen.Handle{"p1", "p2"})

	require.Len(t, groups, 1)
	assert.Equal(t, "Berg", groups[0].Surname)
	assert.Len(t, groups[0].People, 2)
}

func TestSortPeopleBlankSurname(t *testing.T) {
	db := gen.NewDatabase()
	db.People["p1"] = &gen.Person{Handle: "p1", Name: gen.Name{First: "Anna"}}
	db.People["p2"] = &gen.Person{Handle: "p2", Name: gen.Name{First: "Jonas", Surname: "Berg"}}

	r := newTestReport(t, db, "en")
	groups := r.sortPeople([]gen.Handle{"p1", "p2"})

	require.Len(t, groups, 2)
	// the blank bucket sorts first
	assert.Equal(t, "", groups[0].Surname)
	assert.Equal(t, "Berg", groups[1].Surname)
}

func TestSortEventTypes(t *testing.T) {
	db := gen.NewDatabase()
	db.Events["e1"] = &gen.Event{Handle: "e1", Type: gen.Marriage, Date: gen.Date{Year: 1900}}
	db.Events["e2"] = &gen.Event{Handle: "e2", Type: gen.Birth, Date: gen.Date{Year: 1880}}
	db.Events["e3"] = &gen.Event{Handle: "e3", Type: gen.Birth, Date: gen.Date{Year: 1874}}
	db.Events["e4"] = &gen.Event{Handle: "e4", Type: gen.Birth}

	r := newTestReport(t, db, "en")
	groups := r.sortEventTypes([]gen.Handle{"e1", "e2", "e3", "e4"})

	require.Len(t, groups, 2)
	assert.Equal(t, "Birth", groups[0].Type)
	assert.Equal(t, "Marriage", groups[1].Type)

	// undated first, then by date
	handles := make([]gen.Handle, 0, 3)
	for _, e := range groups[0].Events {
		handles = append(handles, e.Handle)
	}
	assert.Equal(t, []gen.Handle{"e4", "e3", "e2"}, handles)
}

func TestSortByCollationLocale(t *testing.T) {
	db := gen.NewDatabase()
	r := newTestReport(t, db, "da")

	// Danish files Æ and Å after Z, with Æ before Å
	items := []string{"Åsen", "Æble", "Berg"}
	r.sortByCollation(items)
	assert.Equal(t, []string{"Berg", "Æble", "Åsen"}, items)
}
