package renderer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aymerick/raymond"

	"github.com/davrell/kinsite/internal/utils"
)

// nbsp is the placeholder for empty table cells and the blank index bucket.
const nbsp = "&nbsp;"

// tab is one entry of the site-wide navigation menu.
type tab struct {
	Label string
	Href  string
}

var siteTabs = []tab{
	{"Events", "events.html"},
	{"Families", "families.html"},
	{"Media", "media.html"},
	{"Thumbnails", "thumbnails.html"},
}

// writePage wraps a content fragment in the page chrome and writes it under
// destDir. relPath is the site-relative output path ("events.html",
// "evt/x1.html"); active names the highlighted menu tab.
func (r *Report) writePage(relPath, title, bodyID, active, content string) error {
	pathToRoot := pathToRoot(relPath)

	tabs := make([]map[string]interface{}, 0, len(siteTabs))
	for _, t := range siteTabs {
		tabs = append(tabs, map[string]interface{}{
			"label":  t.Label,
			"href":   t.Href,
			"active": t.Label == active,
		})
	}

	data := map[string]interface{}{
		"language":     r.cfg.Site.Language,
		"title":        title,
		"site_title":   r.cfg.Site.Title,
		"description":  r.cfg.Site.Description,
		"footer":       r.cfg.Site.Footer,
		"generated":    fmt.Sprintf("Generated %s", time.Now().Format("2 January 2006")),
		"path_to_root": pathToRoot,
		"body_id":      bodyID,
		"tabs":         tabs,
		"content":      raymond.SafeString(content),
	}

	out, err := r.pageTmpl.Exec(data)
	if err != nil {
		return fmt.Errorf("failed to render page '%s': %w", relPath, err)
	}

	return utils.WriteFile(filepath.Join(r.destDir, relPath), []byte(out))
}

// pathToRoot calculates the relative prefix from a site path back to the
// site root, e.g. "evt/x1.html" -> "../".
func pathToRoot(relPath string) string {
	dir := filepath.Dir(relPath)
	if dir == "." {
		return ""
	}
	depth := strings.Count(dir, "/") + 1
	return strings.Repeat("../", depth)
}

// eventURL is the site-relative page path for an event handle.
func eventURL(handle string) string { return "evt/" + handle + ".html" }

// familyURL is the site-relative page path for a family handle.
func familyURL(handle string) string { return "fam/" + handle + ".html" }

// mediaURL is the site-relative page path for a media handle.
func mediaURL(handle string) string { return "img/" + handle + ".html" }

// link renders an anchor; the label is escaped, the href is not.
func link(href, label string) string {
	return fmt.Sprintf(`<a href="%s" title="%s">%s</a>`, href, htmlEscape(label), htmlEscape(label))
}

// uplink prefixes a site-relative URL for use on a page one directory below
// the site root.
func uplink(rel string, up bool) string {
	if up {
		return "../" + rel
	}
	return rel
}

// indexPage writes the landing page.
func (r *Report) indexPage() error {
	var b strings.Builder
	b.WriteString(`<div class="content" id="Home">`)
	b.WriteString(fmt.Sprintf(`<h2>%s</h2>`, htmlEscape(r.cfg.Site.Title)))
	if r.cfg.Site.Description != "" {
		b.WriteString(fmt.Sprintf(`<p id="description">%s</p>`, htmlEscape(r.cfg.Site.Description)))
	}
	b.WriteString(`<ul>`)
	for _, t := range siteTabs {
		b.WriteString(fmt.Sprintf(`<li>%s</li>`, link(t.Href, t.Label)))
	}
	b.WriteString(`</ul></div>`)

	return r.writePage("index.html", "Home", "Home", "", b.String())
}
