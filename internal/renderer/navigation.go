package renderer

import (
	"fmt"
	"strings"

	"github.com/davrell/kinsite/internal/alphabet"
)

// alphabetNavHTML renders the alphabet strip for a list page. Returns ""
// when there are no buckets; callers omit the strip.
func (r *Report) alphabetNavHTML(index []string) string {
	nav := r.ix.Navigation(index)
	if nav == nil {
		return ""
	}
	return renderAlphabetNav(nav)
}

func renderAlphabetNav(nav *alphabet.Nav) string {
	var b strings.Builder
	b.WriteString(`<div id="alphanav">`)
	for _, row := range nav.Rows {
		b.WriteString(`<ul>`)
		for _, cell := range row {
			label := cell.Letter
			if label == " " {
				label = nbsp
			} else {
				label = htmlEscape(label)
			}
			b.WriteString(fmt.Sprintf(`<li><a href="#%s" title="%s">%s</a></li>`,
				cell.Anchor, htmlEscape(cell.Title), label))
		}
		b.WriteString(`</ul>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
