package gen

import "strings"

// Handle is the internal identifier of a database record. It is distinct from
// the user-visible ID (I0001, F0002, ...) shown on the generated pages.
type Handle string

// ObjectKind identifies the record table a handle belongs to.
type ObjectKind int

const (
	PersonKind ObjectKind = iota
	FamilyKind
	EventKind
	PlaceKind
	MediaKind
	NoteKind
)

// String returns the kind name used in page titles and diagnostics.
func (k ObjectKind) String() string {
	switch k {
	case PersonKind:
		return "Person"
	case FamilyKind:
		return "Family"
	case EventKind:
		return "Event"
	case PlaceKind:
		return "Place"
	case MediaKind:
		return "Media"
	case NoteKind:
		return "Note"
	}
	return "Unknown"
}

// Name is a person's primary name.
type Name struct {
	First   string
	Surname string
	Prefix  string
	Suffix  string
	// GroupAs overrides the surname used for grouping on index pages
	// (e.g. grouping "van Berg" under "Berg").
	GroupAs string
}

// SortString returns the sortable form of the name: surname first, then given
// name and suffix. This is the display key used by the alphabetic index.
func (n Name) SortString() string {
	var b strings.Builder
	if n.Prefix != "" {
		b.WriteString(n.Prefix)
		b.WriteString(" ")
	}
	b.WriteString(n.Surname)
	if n.First != "" {
		b.WriteString(", ")
		b.WriteString(n.First)
	}
	if n.Suffix != "" {
		b.WriteString(" ")
		b.WriteString(n.Suffix)
	}
	return b.String()
}

// DisplayString returns the name in reading order.
func (n Name) DisplayString() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{n.First, n.Prefix, n.Surname, n.Suffix} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// GroupSurname returns the surname used for index grouping. People with no
// surname (or a whitespace one) group under the blank bucket.
func (n Name) GroupSurname() string {
	s := n.Surname
	if n.GroupAs != "" {
		s = n.GroupAs
	}
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Person is an individual in the tree.
type Person struct {
	Handle     Handle
	ID         string
	Name       Name
	Gender     string
	EventRefs  []Handle
	FamilyRefs []Handle
	MediaRefs  []Handle
	NoteRefs   []Handle
	Changed    int64
}

// MediaList implements HasMedia.
func (p *Person) MediaList() []Handle { return p.MediaRefs }

// Family links two partners and their children.
type Family struct {
	Handle    Handle
	ID        string
	FatherRef Handle
	MotherRef Handle
	ChildRefs []Handle
	EventRefs []Handle
	MediaRefs []Handle
	NoteRefs  []Handle
	Changed   int64
}

// MediaList implements HasMedia.
func (f *Family) MediaList() []Handle { return f.MediaRefs }

// EventType is the classification of an event ("Birth", "Marriage", ...).
type EventType string

const (
	Birth          EventType = "Birth"
	Baptism        EventType = "Baptism"
	Death          EventType = "Death"
	Burial         EventType = "Burial"
	Census         EventType = "Census"
	Occupation     EventType = "Occupation"
	Residence      EventType = "Residence"
	Marriage       EventType = "Marriage"
	MarriageAlt    EventType = "Alternate Marriage"
	MarrSettlement EventType = "Marriage Settlement"
	MarrLicense    EventType = "Marriage License"
	MarrContract   EventType = "Marriage Contract"
	MarrBanns      EventType = "Marriage Banns"
	Engagement     EventType = "Engagement"
	Divorce        EventType = "Divorce"
	DivorceFiling  EventType = "Divorce Filing"
)

// familyEvents are the event types that normally belong to a couple rather
// than an individual; their index rows list family backlinks as well.
var familyEvents = map[EventType]bool{
	Marriage:       true,
	MarriageAlt:    true,
	MarrSettlement: true,
	MarrLicense:    true,
	MarrContract:   true,
	MarrBanns:      true,
	Engagement:     true,
	Divorce:        true,
	DivorceFiling:  true,
}

// IsFamilyEvent reports whether the type is usually a family event.
func (t EventType) IsFamilyEvent() bool { return familyEvents[t] }

// Attribute is a free-form key/value annotation on an event.
type Attribute struct {
	Type  string
	Value string
}

// Event is a dated occurrence, optionally located at a place.
type Event struct {
	Handle     Handle
	ID         string
	Type       EventType
	Date       Date
	PlaceRef   Handle
	Desc       string
	MediaRefs  []Handle
	NoteRefs   []Handle
	Attributes []Attribute
	Changed    int64
}

// MediaList implements HasMedia.
func (e *Event) MediaList() []Handle { return e.MediaRefs }

// Place is a named location.
type Place struct {
	Handle    Handle
	ID        string
	Name      string
	Latitude  string
	Longitude string
	MediaRefs []Handle
	Changed   int64
}

// MediaList implements HasMedia.
func (p *Place) MediaList() []Handle { return p.MediaRefs }

// Media is an image or other file attached to records.
type Media struct {
	Handle   Handle
	ID       string
	Path     string
	Mime     string
	Desc     string
	Date     Date
	NoteRefs []Handle
	Changed  int64
}

// Note is a block of Markdown text attached to a record.
type Note struct {
	Handle Handle
	ID     string
	Text   string
}

// HasMedia is any record carrying a media reference list. The gallery filter
// rule and the page gallery sections operate on this.
type HasMedia interface {
	MediaList() []Handle
}
