package renderer

import (
	"path/filepath"
	"strings"

	"github.com/davrell/kinsite/internal/gen"
	"github.com/davrell/kinsite/internal/utils"
)

// gendexFile writes the GENDEX index: one pipe-separated line per person so
// genealogy crawlers can index the site. Each entry points at the page where
// the person appears (their family page when they have one, the family index
// otherwise).
func (r *Report) gendexFile() error {
	r.progress("Creating GENDEX file")

	var b strings.Builder
	for _, h := range r.db.PersonHandles() {
		person := r.db.Person(h)

		page := "families.html"
		if len(person.FamilyRefs) > 0 {
			page = familyURL(string(person.FamilyRefs[0]))
		}

		birth := r.findEvent(person.EventRefs, gen.Birth)
		death := r.findEvent(person.EventRefs, gen.Death)

		b.WriteString(gendexField(page))
		b.WriteString(gendexField(person.Name.Surname))
		given := person.Name.First + " /" + person.Name.Surname + "/"
		b.WriteString(gendexField(given))
		b.WriteString(r.gendexEvent(birth))
		b.WriteString(r.gendexEvent(death))
		b.WriteString("\n")
	}

	return utils.WriteFile(filepath.Join(r.destDir, "gendex.txt"), []byte(b.String()))
}

// findEvent returns the first referenced event of the given type, or nil.
func (r *Report) findEvent(refs []gen.Handle, t gen.EventType) *gen.Event {
	for _, h := range refs {
		if e := r.db.Event(h); e != nil && e.Type == t {
			return e
		}
	}
	return nil
}

// gendexField sanitizes one GENDEX field; the format reserves "|" and
// newlines as separators.
func gendexField(s string) string {
	s = strings.ReplaceAll(s, "|", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s + "|"
}

// gendexEvent emits the date and place fields of an event, empty when the
// event is missing.
func (r *Report) gendexEvent(e *gen.Event) string {
	if e == nil {
		return "||"
	}
	date := ""
	if !e.Date.IsEmpty() {
		date = e.Date.Gedcom()
	}
	return gendexField(date) + gendexField(r.db.PlaceName(e.PlaceRef))
}
