package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testDatabase() *Database {
	db := NewDatabase()
	db.People["p1"] = &Person{
		Handle:    "p1",
		ID:        "I0001",
		Name:      Name{First: "Anna", Surname: "Berg"},
		EventRefs: []Handle{"e1"},
		MediaRefs: []Handle{"o1"},
	}
	db.People["p2"] = &Person{
		Handle: "p2",
		ID:     "I0002",
		Name:   Name{First: "Jonas", Surname: "Berg"},
	}
	db.Families["f1"] = &Family{
		Handle:    "f1",
		ID:        "F0001",
		FatherRef: "p2",
		MotherRef: "p1",
		EventRefs: []Handle{"e2"},
	}
	db.Events["e1"] = &Event{Handle: "e1", ID: "E0001", Type: Birth}
	db.Events["e2"] = &Event{Handle: "e2", ID: "E0002", Type: Marriage}
	db.Places["pl1"] = &Place{Handle: "pl1", ID: "P0001", Name: "Aarhus"}
	db.Media["o1"] = &Media{Handle: "o1", ID: "O0001", Path: "anna.jpg"}
	return db
}

func TestDatabaseGetters(t *testing.T) {
	db := testDatabase()

	assert.Equal(t, "I0001", db.Person("p1").ID)
	assert.Equal(t, "F0001", db.Family("f1").ID)
	assert.Equal(t, "E0001", db.Event("e1").ID)
	assert.Equal(t, "O0001", db.MediaObject("o1").ID)

	assert.Nil(t, db.Person("nope"))
	assert.Nil(t, db.Event(""))
}

func TestPlaceName(t *testing.T) {
	db := testDatabase()

	assert.Equal(t, "Aarhus", db.PlaceName("pl1"))
	assert.Equal(t, "", db.PlaceName(""))
	assert.Equal(t, "", db.PlaceName("dangling"))
}

func TestNameGroup(t *testing.T) {
	db := testDatabase()

	assert.Equal(t, "Berg", db.NameGroup("Berg"))
	db.SetNameGroup("van Berg", "Berg")
	assert.Equal(t, "Berg", db.NameGroup("van Berg"))
}

func TestHandleListsAreSorted(t *testing.T) {
	db := testDatabase()

	assert.Equal(t, []Handle{"p1", "p2"}, db.PersonHandles())
	assert.Equal(t, []Handle{"e1", "e2"}, db.EventHandles())
	assert.Equal(t, []Handle{"f1"}, db.FamilyHandles())
	assert.Equal(t, []Handle{"o1"}, db.MediaHandles())
}

func TestFindBacklinks(t *testing.T) {
	db := testDatabase()

	links := db.FindBacklinks("e1", PersonKind)
	assert.Equal(t, []Backlink{{PersonKind, "p1"}}, links)

	// family events are found through the family's event list
	links = db.FindBacklinks("e2", PersonKind, FamilyKind)
	assert.Equal(t, []Backlink{{FamilyKind, "f1"}}, links)

	// media references count as backlinks too
	links = db.FindBacklinks("o1", PersonKind, FamilyKind)
	assert.Equal(t, []Backlink{{PersonKind, "p1"}}, links)

	// kinds not asked for are not reported
	assert.Empty(t, db.FindBacklinks("e2", PersonKind))
	assert.Empty(t, db.FindBacklinks("nothing", PersonKind, FamilyKind))
}
