package gen

import "sort"

// Database is the in-memory genealogical database a report run walks. It is
// populated once by the loader and read-only afterwards, so concurrent report
// runs may share it.
type Database struct {
	People   map[Handle]*Person
	Families map[Handle]*Family
	Events   map[Handle]*Event
	Places   map[Handle]*Place
	Media    map[Handle]*Media
	Notes    map[Handle]*Note

	// surnameGroups maps a raw surname to the name it groups under on the
	// index pages (the "name group mapping").
	surnameGroups map[string]string
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{
		People:        make(map[Handle]*Person),
		Families:      make(map[Handle]*Family),
		Events:        make(map[Handle]*Event),
		Places:        make(map[Handle]*Place),
		Media:         make(map[Handle]*Media),
		Notes:         make(map[Handle]*Note),
		surnameGroups: make(map[string]string),
	}
}

// Person returns the person for a handle, or nil.
func (db *Database) Person(h Handle) *Person { return db.People[h] }

// Family returns the family for a handle, or nil.
func (db *Database) Family(h Handle) *Family { return db.Families[h] }

// Event returns the event for a handle, or nil.
func (db *Database) Event(h Handle) *Event { return db.Events[h] }

// Place returns the place for a handle, or nil.
func (db *Database) Place(h Handle) *Place { return db.Places[h] }

// MediaObject returns the media object for a handle, or nil.
func (db *Database) MediaObject(h Handle) *Media { return db.Media[h] }

// Note returns the note for a handle, or nil.
func (db *Database) Note(h Handle) *Note { return db.Notes[h] }

// PlaceName returns the display name of a place handle, or "" when the
// handle is unset or dangling.
func (db *Database) PlaceName(h Handle) string {
	if p := db.Place(h); p != nil {
		return p.Name
	}
	return ""
}

// SetNameGroup registers a surname grouping override.
func (db *Database) SetNameGroup(surname, group string) {
	db.surnameGroups[surname] = group
}

// NameGroup resolves the grouping name for a surname. Without an override the
// surname groups under itself.
func (db *Database) NameGroup(surname string) string {
	if g, ok := db.surnameGroups[surname]; ok {
		return g
	}
	return surname
}

// PersonHandles returns all person handles in a stable order.
func (db *Database) PersonHandles() []Handle { return sortedHandles(db.People) }

// FamilyHandles returns all family handles in a stable order.
func (db *Database) FamilyHandles() []Handle { return sortedHandles(db.Families) }

// EventHandles returns all event handles in a stable order.
func (db *Database) EventHandles() []Handle { return sortedHandles(db.Events) }

// MediaHandles returns all media handles in a stable order.
func (db *Database) MediaHandles() []Handle { return sortedHandles(db.Media) }

func sortedHandles[T any](m map[Handle]*T) []Handle {
	hs := make([]Handle, 0, len(m))
	for h := range m {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// Backlink is a record referring to some other record.
type Backlink struct {
	Kind   ObjectKind
	Handle Handle
}

// FindBacklinks returns the handles of records of the given kinds that
// reference target. Only person and family backlinks are tracked; that is
// what the event index needs.
func (db *Database) FindBacklinks(target Handle, kinds ...ObjectKind) []Backlink {
	want := make(map[ObjectKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	var links []Backlink
	if want[PersonKind] {
		for _, h := range db.PersonHandles() {
			if refersTo(db.People[h].EventRefs, target) ||
				refersTo(db.People[h].MediaRefs, target) {
				links = append(links, Backlink{PersonKind, h})
			}
		}
	}
	if want[FamilyKind] {
		for _, h := range db.FamilyHandles() {
			if refersTo(db.Families[h].EventRefs, target) ||
				refersTo(db.Families[h].MediaRefs, target) {
				links = append(links, Backlink{FamilyKind, h})
			}
		}
	}
	return links
}

func refersTo(refs []Handle, target Handle) bool {
	for _, r := range refs {
		if r == target {
			return true
		}
	}
	return false
}
