package renderer

import (
	"regexp"
	"strings"
)

var (
	htmlDblQuotes = regexp.MustCompile(`^([^"]*)"([^"]*)"(.*)$`)
	htmlSngQuotes = regexp.MustCompile(`^([^']*)'([^']*)'(.*)$`)
)

// htmlEscape converts text for HTML presentation. Beyond the standard
// entities, paired quotes set off by spaces become typographic quotes and
// possessive apostrophes become right single quotation marks.
func htmlEscape(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")

	// paired double quotes first, then the stragglers
	for {
		m := htmlDblQuotes.FindStringSubmatch(text)
		if m == nil {
			break
		}
		text = m[1] + "&#8220;" + m[2] + "&#8221;" + m[3]
	}
	text = strings.ReplaceAll(text, `"`, "&#34;")

	text = strings.ReplaceAll(text, "'s ", "&#8217;s ")
	for {
		m := htmlSngQuotes.FindStringSubmatch(text)
		if m == nil {
			break
		}
		text = m[1] + "&#8216;" + m[2] + "&#8217;" + m[3]
	}
	text = strings.ReplaceAll(text, "'", "&#39;")

	return text
}
