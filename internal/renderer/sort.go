package renderer

import (
	"bytes"
	"sort"
	"strings"

	"github.com/davrell/kinsite/internal/gen"
)

// surnameGroup is one index group on the family list: a grouping surname and
// the people filed under it, in collation order.
type surnameGroup struct {
	Surname string
	People  []gen.Handle
}

// sortPeople groups person handles by surname and sorts both the groups and
// the people inside each group by the locale's collation. People whose name
// is empty or whitespace group under the blank surname.
func (r *Report) sortPeople(handles []gen.Handle) []surnameGroup {
	bySurname := make(map[string][]gen.Handle)
	sortNames := make(map[gen.Handle]string)

	for _, h := range handles {
		person := r.db.Person(h)
		if person == nil {
			continue
		}

		surname := person.Name.GroupAs
		if surname == "" {
			surname = r.db.NameGroup(person.Name.Surname)
		}
		if strings.TrimSpace(surname) == "" {
			surname = ""
		}
		sortNames[h] = person.Name.SortString()
		bySurname[surname] = append(bySurname[surname], h)
	}

	surnames := make([]string, 0, len(bySurname))
	for s := range bySurname {
		surnames = append(surnames, s)
	}
	r.sortByCollation(surnames)

	groups := make([]surnameGroup, 0, len(surnames))
	for _, s := range surnames {
		people := bySurname[s]
		sort.SliceStable(people, func(i, j int) bool {
			a, b := sortNames[people[i]], sortNames[people[j]]
			if a == b {
				return people[i] < people[j]
			}
			return bytes.Compare(r.ix.SortKey(a), r.ix.SortKey(b)) < 0
		})
		groups = append(groups, surnameGroup{Surname: s, People: people})
	}
	return groups
}

// eventEntry is one event within a type group, ordered by date then handle.
type eventEntry struct {
	SortValue int
	Handle    gen.Handle
}

// eventGroup is all events sharing one type label.
type eventGroup struct {
	Type   string
	Events []eventEntry
}

// sortEventTypes buckets event handles by their type label and sorts each
// bucket by event date; the groups themselves follow collation order.
func (r *Report) sortEventTypes(handles []gen.Handle) []eventGroup {
	byType := make(map[string][]eventEntry)

	for _, h := range handles {
		event := r.db.Event(h)
		if event == nil {
			continue
		}
		label := r.typeLabel(event.Type)
		byType[label] = append(byType[label], eventEntry{
			SortValue: event.Date.SortValue(),
			Handle:    h,
		})
	}

	labels := make([]string, 0, len(byType))
	for l := range byType {
		labels = append(labels, l)
	}
	r.sortByCollation(labels)

	groups := make([]eventGroup, 0, len(labels))
	for _, l := range labels {
		entries := byType[l]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].SortValue != entries[j].SortValue {
				return entries[i].SortValue < entries[j].SortValue
			}
			return entries[i].Handle < entries[j].Handle
		})
		groups = append(groups, eventGroup{Type: l, Events: entries})
	}
	return groups
}

// typeLabel is the display label for an event type. This is the hook for
// translated type names; the label doubles as the index key on the event
// list page.
func (r *Report) typeLabel(t gen.EventType) string { return string(t) }

// sortByCollation orders strings by the run's locale.
func (r *Report) sortByCollation(items []string) {
	sort.SliceStable(items, func(i, j int) bool {
		return bytes.Compare(r.ix.SortKey(items[i]), r.ix.SortKey(items[j])) < 0
	})
}
