package renderer

import (
	"fmt"
	"strings"

	"github.com/davrell/kinsite/internal/alphabet"
	"github.com/davrell/kinsite/internal/gen"
)

// familyPages writes the family index and one page per family.
func (r *Report) familyPages() error {
	handles := r.db.FamilyHandles()
	r.progress("Creating family pages (%d)", len(handles))

	for _, h := range handles {
		if err := r.familyPage(h); err != nil {
			return err
		}
	}
	return r.familyListPage(handles)
}

// familyName renders a family as "Father and Mother", degrading when a
// partner is missing.
func (r *Report) familyName(f *gen.Family) string {
	father := r.db.Person(f.FatherRef)
	mother := r.db.Person(f.MotherRef)
	switch {
	case father != nil && mother != nil:
		return father.Name.DisplayString() + " and " + mother.Name.DisplayString()
	case father != nil:
		return father.Name.DisplayString()
	case mother != nil:
		return mother.Name.DisplayString()
	}
	return "unknown"
}

// familyListPage writes the index of all families, sorted by the surname of
// the people involved, with letter anchors for the alphabet strip.
func (r *Report) familyListPage(handles []gen.Handle) error {
	// map every partner to the families they appear in; people may be in
	// other families that are not part of this report
	partnerFamilies := make(map[gen.Handle][]gen.Handle)
	for _, h := range handles {
		family := r.db.Family(h)
		if family == nil {
			continue
		}
		if family.FatherRef != "" {
			partnerFamilies[family.FatherRef] = append(partnerFamilies[family.FatherRef], h)
		}
		if family.MotherRef != "" {
			partnerFamilies[family.MotherRef] = append(partnerFamilies[family.MotherRef], h)
		}
	}

	partners := make([]gen.Handle, 0, len(partnerFamilies))
	for h := range partnerFamilies {
		partners = append(partners, h)
	}

	partnerStrs := make([]string, len(partners))
	for i, h := range partners {
		partnerStrs[i] = string(h)
	}
	index := r.ix.FirstLetters(resolver{r.db}, alphabet.PersonKeys(partnerStrs))

	var b strings.Builder
	b.WriteString(`<div class="content" id="Relationships">`)
	b.WriteString(`<p id="description">This page contains an index of all the families in the database, sorted by their family name. Clicking on a person&#8217;s name will take you to their family&#8217;s page.</p>`)
	b.WriteString(r.alphabetNavHTML(index))

	b.WriteString(`<table class="infolist relationships">`)
	b.WriteString(`<thead><tr>`)
	for _, col := range []struct{ label, class string }{
		{"Letter", "ColumnRowLabel"},
		{"Person", "ColumnPartner"},
		{"Family", "ColumnPartner"},
		{"Marriage", "ColumnDate"},
		{"Divorce", "ColumnDate"},
	} {
		b.WriteString(fmt.Sprintf(`<th class="%s">%s</th>`, col.class, col.label))
	}
	b.WriteString(`</tr></thead><tbody>`)

	first := true
	prevLetter := " "
	for _, group := range r.sortPeople(partners) {
		letter := nbsp
		if strings.TrimSpace(group.Surname) != "" {
			letter = r.ix.IndexLetter(r.ix.FirstLetter(group.Surname), index)
		}

		for _, personHandle := range group.People {
			person := r.db.Person(personHandle)
			firstFamily := true
			for _, familyHandle := range partnerFamilies[personHandle] {
				family := r.db.Family(familyHandle)

				rowClasses := make([]string, 0, 2)
				letterCell := nbsp
				if letter != nbsp && (first || r.ix.PrimaryDifference(letter, prevLetter)) {
					first = false
					prevLetter = letter
					rowClasses = append(rowClasses, "BeginLetter")
					letterCell = fmt.Sprintf(`<a name="%s" title="Families beginning with letter %s">%s</a>`,
						letter, htmlEscape(letter), htmlEscape(letter))
				}

				personCell := nbsp
				if firstFamily {
					rowClasses = append(rowClasses, "BeginFamily")
					personCell = htmlEscape(person.Name.SortString())
					firstFamily = false
				}

				marriage, divorce := r.familyEventDates(family)

				attr := ""
				if len(rowClasses) > 0 {
					attr = fmt.Sprintf(` class="%s"`, strings.Join(rowClasses, " "))
				}
				b.WriteString(fmt.Sprintf(`<tr%s>`, attr))
				b.WriteString(fmt.Sprintf(`<td class="ColumnRowLabel">%s</td>`, letterCell))
				b.WriteString(fmt.Sprintf(`<td class="ColumnPartner">%s</td>`, personCell))
				b.WriteString(fmt.Sprintf(`<td class="ColumnPartner">%s</td>`,
					link(familyURL(string(familyHandle)), r.familyName(family))))
				b.WriteString(fmt.Sprintf(`<td class="ColumnDate">%s</td>`, orNbsp(marriage)))
				b.WriteString(fmt.Sprintf(`<td class="ColumnDate">%s</td>`, orNbsp(divorce)))
				b.WriteString(`</tr>`)
			}
		}
	}
	b.WriteString(`</tbody></table></div>`)

	return r.writePage("families.html", "Families", "Relationships", "Families", b.String())
}

func orNbsp(s string) string {
	if s == "" {
		return nbsp
	}
	return htmlEscape(s)
}

// familyEventDates extracts the marriage and divorce dates of a family.
func (r *Report) familyEventDates(f *gen.Family) (marriage, divorce string) {
	for _, eh := range f.EventRefs {
		event := r.db.Event(eh)
		if event == nil {
			continue
		}
		switch event.Type {
		case gen.Marriage:
			marriage = event.Date.String()
		case gen.Divorce:
			divorce = event.Date.String()
		}
	}
	return marriage, divorce
}

// familyPage writes the detail page of a single family.
func (r *Report) familyPage(h gen.Handle) error {
	family := r.db.Family(h)
	name := r.familyName(family)

	var b strings.Builder
	b.WriteString(`<div class="content" id="RelationshipDetail">`)
	b.WriteString(fmt.Sprintf(`<h2>%s</h2>`, htmlEscape(name)))

	b.WriteString(`<table class="infolist relationships"><tbody>`)
	partnerRow := func(role string, handle gen.Handle) {
		if p := r.db.Person(handle); p != nil {
			b.WriteString(fmt.Sprintf(`<tr><td class="ColumnAttribute">%s</td><td class="ColumnValue">%s</td></tr>`,
				role, htmlEscape(p.Name.DisplayString())))
		}
	}
	partnerRow("Father", family.FatherRef)
	partnerRow("Mother", family.MotherRef)
	if family.ID != "" {
		b.WriteString(fmt.Sprintf(`<tr><td class="ColumnAttribute">ID</td><td class="ColumnID">%s</td></tr>`,
			htmlEscape(family.ID)))
	}
	b.WriteString(`</tbody></table>`)

	if len(family.ChildRefs) > 0 {
		b.WriteString(`<div class="subsection" id="children"><h4>Children</h4><ol>`)
		for _, ch := range family.ChildRefs {
			if p := r.db.Person(ch); p != nil {
				b.WriteString(fmt.Sprintf(`<li>%s</li>`, htmlEscape(p.Name.DisplayString())))
			}
		}
		b.WriteString(`</ol></div>`)
	}

	if events := r.familyEventSection(family); events != "" {
		b.WriteString(events)
	}
	if notes := r.noteSection(family.NoteRefs); notes != "" {
		b.WriteString(notes)
	}
	if gallery := r.gallerySection(family.MediaRefs, true); gallery != "" {
		b.WriteString(gallery)
	}
	b.WriteString(`</div>`)

	return r.writePage(familyURL(string(h)), name, "RelationshipDetail", "Families", b.String())
}

// familyEventSection renders the family's events with links to their pages.
func (r *Report) familyEventSection(f *gen.Family) string {
	if len(f.EventRefs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="subsection" id="families"><h4>Events</h4><table class="infolist eventlist"><tbody>`)
	for _, eh := range f.EventRefs {
		event := r.db.Event(eh)
		if event == nil {
			continue
		}
		b.WriteString(fmt.Sprintf(`<tr><td class="ColumnType">%s</td><td class="ColumnDate">%s</td><td class="ColumnID">%s</td></tr>`,
			htmlEscape(r.typeLabel(event.Type)),
			orNbsp(event.Date.String()),
			link(uplink(eventURL(string(eh)), true), event.ID)))
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}
