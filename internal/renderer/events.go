package renderer

import (
	"fmt"
	"strings"

	"github.com/davrell/kinsite/internal/alphabet"
	"github.com/davrell/kinsite/internal/gen"
)

// eventPages writes the event index and one page per event.
func (r *Report) eventPages() error {
	handles := r.db.EventHandles()
	r.progress("Creating event pages (%d)", len(handles))

	for _, h := range handles {
		if err := r.eventPage(h); err != nil {
			return err
		}
	}
	return r.eventListPage(handles)
}

// eventListPage writes the index of all events, grouped by type with letter
// anchors for the alphabet strip.
func (r *Report) eventListPage(handles []gen.Handle) error {
	labels := make([]string, 0, len(handles))
	for _, h := range handles {
		labels = append(labels, r.typeLabel(r.db.Event(h).Type))
	}
	index := r.ix.FirstLetters(resolver{r.db}, alphabet.EventTypeKeys(labels))

	var b strings.Builder
	b.WriteString(`<div class="content" id="EventList">`)
	b.WriteString(`<p id="description">This page contains an index of all the events in the database, sorted by their type and date (if one is present). Clicking on an event&#8217;s ID will open a page for that event.</p>`)
	b.WriteString(r.alphabetNavHTML(index))

	b.WriteString(`<table class="infolist primobjlist alphaevent">`)
	b.WriteString(`<thead><tr>`)
	for _, col := range []struct{ label, class string }{
		{"Letter", "ColumnRowLabel"},
		{"Type", "ColumnType"},
		{"Date", "ColumnDate"},
		{"ID", "ColumnID"},
		{"Person", "ColumnPerson"},
	} {
		b.WriteString(fmt.Sprintf(`<th class="%s">%s</th>`, col.class, col.label))
	}
	b.WriteString(`</tr></thead><tbody>`)

	first := true
	prevLetter := " "
	for _, group := range r.sortEventTypes(handles) {
		firstOfType := true
		displayed := make(map[string]bool)

		for _, entry := range group.Events {
			event := r.db.Event(entry.Handle)
			if displayed[event.ID] {
				firstOfType = false
				continue
			}
			displayed[event.ID] = true

			// family events list their family backlinks as well
			kinds := []gen.ObjectKind{gen.PersonKind}
			if event.Type.IsFamilyEvent() {
				kinds = append(kinds, gen.FamilyKind)
			}
			backlinks := r.db.FindBacklinks(entry.Handle, kinds...)
			if len(backlinks) == 0 {
				firstOfType = false
				continue
			}

			letter := nbsp
			if strings.TrimSpace(group.Type) != "" {
				letter = r.ix.IndexLetter(r.ix.FirstLetter(group.Type), index)
			}

			rowClasses := make([]string, 0, 2)
			letterCell := nbsp
			if letter != nbsp && (first || r.ix.PrimaryDifference(letter, prevLetter)) {
				first = false
				prevLetter = letter
				rowClasses = append(rowClasses, "BeginLetter", "BeginType")
				letterCell = fmt.Sprintf(`<a name="%s" id="%s" title="Event types beginning with letter %s">%s</a>`,
					letter, letter, htmlEscape(letter), htmlEscape(letter))
			} else if firstOfType {
				rowClasses = append(rowClasses, "BeginType")
			}

			typeCell := nbsp
			if firstOfType {
				typeCell = htmlEscape(group.Type)
			}

			dateCell := nbsp
			if !event.Date.IsEmpty() {
				dateCell = htmlEscape(event.Date.String())
			}

			attr := ""
			if len(rowClasses) > 0 {
				attr = fmt.Sprintf(` class="%s"`, strings.Join(rowClasses, " "))
			}
			b.WriteString(fmt.Sprintf(`<tr%s>`, attr))
			b.WriteString(fmt.Sprintf(`<td class="ColumnLetter">%s</td>`, letterCell))
			b.WriteString(fmt.Sprintf(`<td class="ColumnType" title="%s">%s</td>`, htmlEscape(group.Type), typeCell))
			b.WriteString(fmt.Sprintf(`<td class="ColumnDate">%s</td>`, dateCell))
			b.WriteString(fmt.Sprintf(`<td class="ColumnID"><a href="%s" title="%s">%s</a></td>`,
				eventURL(string(entry.Handle)), event.ID, event.ID))
			b.WriteString(fmt.Sprintf(`<td class="ColumnPerson">%s</td>`, r.backlinkCell(backlinks)))
			b.WriteString(`</tr>`)

			firstOfType = false
		}
	}
	b.WriteString(`</tbody></table></div>`)

	return r.writePage("events.html", "Events", "EventList", "Events", b.String())
}

// backlinkCell renders the person/family links referencing an event.
func (r *Report) backlinkCell(links []gen.Backlink) string {
	parts := make([]string, 0, len(links))
	for _, l := range links {
		switch l.Kind {
		case gen.PersonKind:
			if p := r.db.Person(l.Handle); p != nil {
				parts = append(parts, htmlEscape(p.Name.DisplayString()))
			}
		case gen.FamilyKind:
			if f := r.db.Family(l.Handle); f != nil {
				parts = append(parts, link(familyURL(string(l.Handle)), r.familyName(f)))
			}
		}
	}
	if len(parts) == 0 {
		return nbsp
	}
	return strings.Join(parts, "; ")
}

// eventPage writes the detail page of a single event.
func (r *Report) eventPage(h gen.Handle) error {
	event := r.db.Event(h)
	label := r.typeLabel(event.Type)

	var b strings.Builder
	b.WriteString(`<div class="content" id="EventDetail">`)
	b.WriteString(fmt.Sprintf(`<h3>%s</h3>`, htmlEscape(label)))

	b.WriteString(`<table class="infolist eventlist"><tbody>`)
	row := func(attr, class, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf(`<tr><td class="ColumnAttribute">%s</td><td class="Column%s">%s</td></tr>`,
			attr, class, value))
	}
	row("ID", "ID", htmlEscape(event.ID))
	row("Date", "Date", htmlEscape(event.Date.String()))
	if name := r.db.PlaceName(event.PlaceRef); name != "" {
		row("Place", "Place", htmlEscape(name))
	}
	row("Description", "Description", htmlEscape(event.Desc))
	b.WriteString(`</tbody></table>`)

	if notes := r.noteSection(event.NoteRefs); notes != "" {
		b.WriteString(notes)
	}
	if attrs := r.attributeSection(event.Attributes); attrs != "" {
		b.WriteString(attrs)
	}
	if gallery := r.gallerySection(event.MediaRefs, true); gallery != "" {
		b.WriteString(gallery)
	}
	if refs := r.referenceSection(h, event.Type.IsFamilyEvent(), true); refs != "" {
		b.WriteString(refs)
	}
	b.WriteString(`</div>`)

	return r.writePage(eventURL(string(h)), label, "EventDetail", "Events", b.String())
}

// attributeSection renders the event attribute table, or "" when empty.
func (r *Report) attributeSection(attrs []gen.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="subsection" id="attributes"><h4>Attributes</h4>`)
	b.WriteString(`<table class="infolist attrlist"><tbody>`)
	for _, a := range attrs {
		b.WriteString(fmt.Sprintf(`<tr><td class="ColumnType">%s</td><td class="ColumnValue">%s</td></tr>`,
			htmlEscape(a.Type), htmlEscape(a.Value)))
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}

// referenceSection lists the records that carry the event.
func (r *Report) referenceSection(h gen.Handle, includeFamilies, up bool) string {
	kinds := []gen.ObjectKind{gen.PersonKind}
	if includeFamilies {
		kinds = append(kinds, gen.FamilyKind)
	}
	links := r.db.FindBacklinks(h, kinds...)
	if len(links) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="subsection" id="references"><h4>References</h4><ol class="Col1">`)
	for _, l := range links {
		switch l.Kind {
		case gen.PersonKind:
			if p := r.db.Person(l.Handle); p != nil {
				b.WriteString(fmt.Sprintf(`<li>%s</li>`, htmlEscape(p.Name.DisplayString())))
			}
		case gen.FamilyKind:
			if f := r.db.Family(l.Handle); f != nil {
				b.WriteString(fmt.Sprintf(`<li>%s</li>`, link(uplink(familyURL(string(l.Handle)), up), r.familyName(f))))
			}
		}
	}
	b.WriteString(`</ol></div>`)
	return b.String()
}
