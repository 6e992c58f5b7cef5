// Package loader reads a family tree export file into the in-memory
// database the report generator walks.
package loader

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/davrell/kinsite/internal/gen"
)

// xmlTree mirrors the export file layout. Handles are plain strings in the
// file and converted on the way into the database.
type xmlTree struct {
	XMLName    xml.Name       `xml:"tree"`
	People     []xmlPerson    `xml:"people>person"`
	Families   []xmlFamily    `xml:"families>family"`
	Events     []xmlEvent     `xml:"events>event"`
	Places     []xmlPlace     `xml:"places>place"`
	Objects    []xmlObject    `xml:"objects>object"`
	Notes      []xmlNote      `xml:"notes>note"`
	NameGroups []xmlNameGroup `xml:"namegroups>map"`
}

type xmlRef struct {
	HLink string `xml:"hlink,attr"`
}

type xmlName struct {
	First   string `xml:"first,attr"`
	Surname string `xml:"surname,attr"`
	Prefix  string `xml:"prefix,attr"`
	Suffix  string `xml:"suffix,attr"`
	Group   string `xml:"group,attr"`
}

type xmlPerson struct {
	Handle    string   `xml:"handle,attr"`
	ID        string   `xml:"id,attr"`
	Gender    string   `xml:"gender,attr"`
	Change    int64    `xml:"change,attr"`
	Name      xmlName  `xml:"name"`
	EventRefs []xmlRef `xml:"eventref"`
	FamRefs   []xmlRef `xml:"famref"`
	ObjRefs   []xmlRef `xml:"objref"`
	NoteRefs  []xmlRef `xml:"noteref"`
}

type xmlFamily struct {
	Handle    string   `xml:"handle,attr"`
	ID        string   `xml:"id,attr"`
	Change    int64    `xml:"change,attr"`
	Father    *xmlRef  `xml:"father"`
	Mother    *xmlRef  `xml:"mother"`
	ChildRefs []xmlRef `xml:"childref"`
	EventRefs []xmlRef `xml:"eventref"`
	ObjRefs   []xmlRef `xml:"objref"`
	NoteRefs  []xmlRef `xml:"noteref"`
}

type xmlAttribute struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

type xmlDateVal struct {
	Val string `xml:"val,attr"`
}

type xmlEvent struct {
	Handle     string         `xml:"handle,attr"`
	ID         string         `xml:"id,attr"`
	Change     int64          `xml:"change,attr"`
	Type       string         `xml:"type"`
	Date       *xmlDateVal    `xml:"dateval"`
	Place      *xmlRef        `xml:"place"`
	Desc       string         `xml:"description"`
	Attributes []xmlAttribute `xml:"attribute"`
	ObjRefs    []xmlRef       `xml:"objref"`
	NoteRefs   []xmlRef       `xml:"noteref"`
}

type xmlPlace struct {
	Handle    string   `xml:"handle,attr"`
	ID        string   `xml:"id,attr"`
	Name      string   `xml:"name,attr"`
	Latitude  string   `xml:"lat,attr"`
	Longitude string   `xml:"long,attr"`
	ObjRefs   []xmlRef `xml:"objref"`
	Change    int64    `xml:"change,attr"`
}

type xmlObject struct {
	Handle   string      `xml:"handle,attr"`
	ID       string      `xml:"id,attr"`
	Src      string      `xml:"src,attr"`
	Mime     string      `xml:"mime,attr"`
	Desc     string      `xml:"description,attr"`
	Change   int64       `xml:"change,attr"`
	Date     *xmlDateVal `xml:"dateval"`
	NoteRefs []xmlRef    `xml:"noteref"`
}

type xmlNote struct {
	Handle string `xml:"handle,attr"`
	ID     string `xml:"id,attr"`
	Text   string `xml:",chardata"`
}

type xmlNameGroup struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

// Load reads the export file at path into a database.
func Load(path string) (*gen.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", path, err)
	}
	db, err := LoadFromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to load '%s': %w", path, err)
	}
	return db, nil
}

// LoadFromString parses an export document into a database.
func LoadFromString(content string) (*gen.Database, error) {
	var tree xmlTree
	if err := xml.Unmarshal([]byte(content), &tree); err != nil {
		return nil, fmt.Errorf("failed to parse tree export: %w", err)
	}

	db := gen.NewDatabase()

	for _, p := range tree.People {
		if p.Handle == "" {
			return nil, fmt.Errorf("person %q has no handle", p.ID)
		}
		db.People[gen.Handle(p.Handle)] = &gen.Person{
			Handle: gen.Handle(p.Handle),
			ID:     p.ID,
			Gender: p.Gender,
			Name: gen.Name{
				First:   p.Name.First,
				Surname: p.Name.Surname,
				Prefix:  p.Name.Prefix,
				Suffix:  p.Name.Suffix,
				GroupAs: p.Name.Group,
			},
			EventRefs:  handles(p.EventRefs),
			FamilyRefs: handles(p.FamRefs),
			MediaRefs:  handles(p.ObjRefs),
			NoteRefs:   handles(p.NoteRefs),
			Changed:    p.Change,
		}
	}

	for _, f := range tree.Families {
		fam := &gen.Family{
			Handle:    gen.Handle(f.Handle),
			ID:        f.ID,
			ChildRefs: handles(f.ChildRefs),
			EventRefs: handles(f.EventRefs),
			MediaRefs: handles(f.ObjRefs),
			NoteRefs:  handles(f.NoteRefs),
			Changed:   f.Change,
		}
		if f.Father != nil {
			fam.FatherRef = gen.Handle(f.Father.HLink)
		}
		if f.Mother != nil {
			fam.MotherRef = gen.Handle(f.Mother.HLink)
		}
		db.Families[fam.Handle] = fam
	}

	for _, e := range tree.Events {
		evt := &gen.Event{
			Handle:    gen.Handle(e.Handle),
			ID:        e.ID,
			Type:      gen.EventType(e.Type),
			Desc:      e.Desc,
			MediaRefs: handles(e.ObjRefs),
			NoteRefs:  handles(e.NoteRefs),
			Changed:   e.Change,
		}
		if e.Date != nil {
			d, err := parseDate(e.Date.Val)
			if err != nil {
				return nil, fmt.Errorf("event %q: %w", e.ID, err)
			}
			evt.Date = d
		}
		if e.Place != nil {
			evt.PlaceRef = gen.Handle(e.Place.HLink)
		}
		for _, a := range e.Attributes {
			evt.Attributes = append(evt.Attributes, gen.Attribute{Type: a.Type, Value: a.Value})
		}
		db.Events[evt.Handle] = evt
	}

	for _, p := range tree.Places {
		db.Places[gen.Handle(p.Handle)] = &gen.Place{
			Handle:    gen.Handle(p.Handle),
			ID:        p.ID,
			Name:      p.Name,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			MediaRefs: handles(p.ObjRefs),
			Changed:   p.Change,
		}
	}

	for _, o := range tree.Objects {
		m := &gen.Media{
			Handle:   gen.Handle(o.Handle),
			ID:       o.ID,
			Path:     o.Src,
			Mime:     o.Mime,
			Desc:     o.Desc,
			NoteRefs: handles(o.NoteRefs),
			Changed:  o.Change,
		}
		if o.Date != nil {
			d, err := parseDate(o.Date.Val)
			if err != nil {
				return nil, fmt.Errorf("media %q: %w", o.ID, err)
			}
			m.Date = d
		}
		db.Media[m.Handle] = m
	}

	for _, n := range tree.Notes {
		db.Notes[gen.Handle(n.Handle)] = &gen.Note{
			Handle: gen.Handle(n.Handle),
			ID:     n.ID,
			Text:   strings.TrimSpace(n.Text),
		}
	}

	for _, g := range tree.NameGroups {
		db.SetNameGroup(g.Key, g.Value)
	}

	return db, nil
}

func handles(refs []xmlRef) []gen.Handle {
	if len(refs) == 0 {
		return nil
	}
	hs := make([]gen.Handle, 0, len(refs))
	for _, r := range refs {
		hs = append(hs, gen.Handle(r.HLink))
	}
	return hs
}

// parseDate accepts "YYYY", "YYYY-MM" and "YYYY-MM-DD".
func parseDate(val string) (gen.Date, error) {
	if val == "" {
		return gen.Date{}, nil
	}
	parts := strings.SplitN(val, "-", 3)
	var d gen.Date
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return gen.Date{}, fmt.Errorf("bad date value %q", val)
		}
		switch i {
		case 0:
			d.Year = n
		case 1:
			d.Month = n
		case 2:
			d.Day = n
		}
	}
	if d.Month < 0 || d.Month > 12 || d.Day < 0 || d.Day > 31 {
		return gen.Date{}, fmt.Errorf("bad date value %q", val)
	}
	return d, nil
}
