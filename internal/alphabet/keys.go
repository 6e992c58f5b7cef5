package alphabet

// KeyResolver derives display strings from the host database. The indexer
// never touches database records directly; the report layer adapts its
// database to this interface.
type KeyResolver interface {
	// PersonSortName returns the sortable primary-name string for a person
	// handle (surname first).
	PersonSortName(handle string) string
	// PlaceDisplayName returns the display name for a place handle.
	PlaceDisplayName(handle string) string
}

// Key identifies one entity to be indexed. The closed set of
// implementations (PersonKey, PlaceKey, EventTypeKey) mirrors the kinds of
// list pages that carry an alphabet strip.
type Key interface {
	displayKey(r KeyResolver) string
}

// PersonKey indexes a person under their sortable primary name.
type PersonKey struct {
	Handle string
}

func (k PersonKey) displayKey(r KeyResolver) string { return r.PersonSortName(k.Handle) }

// PlaceKey indexes a place under its display name.
type PlaceKey struct {
	Handle string
}

func (k PlaceKey) displayKey(r KeyResolver) string { return r.PlaceDisplayName(k.Handle) }

// EventTypeKey indexes an event type under its (already translated) label.
type EventTypeKey struct {
	Label string
}

func (k EventTypeKey) displayKey(KeyResolver) string { return k.Label }

// PersonKeys builds index keys for a list of person handles.
func PersonKeys(handles []string) []Key {
	keys := make([]Key, len(handles))
	for i, h := range handles {
		keys[i] = PersonKey{Handle: h}
	}
	return keys
}

// EventTypeKeys builds index keys for a list of event type labels.
func EventTypeKeys(labels []string) []Key {
	keys := make([]Key, len(labels))
	for i, l := range labels {
		keys[i] = EventTypeKey{Label: l}
	}
	return keys
}
