package renderer

import (
	"fmt"
	"strings"

	"github.com/davrell/kinsite/internal/gen"
)

// noteSection renders the notes attached to a record as Markdown, or ""
// when there are none.
func (r *Report) noteSection(refs []gen.Handle) string {
	var rendered []string
	for _, h := range refs {
		note := r.db.Note(h)
		if note == nil || strings.TrimSpace(note.Text) == "" {
			continue
		}
		var out strings.Builder
		if err := r.md.Convert([]byte(note.Text), &out); err != nil {
			r.warn("could not render note %s: %v", note.ID, err)
			continue
		}
		rendered = append(rendered, out.String())
	}
	if len(rendered) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="subsection" id="notes"><h4>Notes</h4>`)
	for _, html := range rendered {
		b.WriteString(`<div class="stylednote">`)
		b.WriteString(html)
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// gallerySection renders the media gallery of a record: one thumbnail per
// media reference, each linking to the media page. up marks pages living one
// directory below the site root.
func (r *Report) gallerySection(refs []gen.Handle, up bool) string {
	var cells []string
	for _, h := range refs {
		media := r.db.MediaObject(h)
		if media == nil {
			continue
		}
		cells = append(cells, r.galleryCell(media, up))
	}
	if len(cells) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="subsection" id="gallery"><h4>Gallery</h4><div class="thumbnails">`)
	for _, c := range cells {
		b.WriteString(c)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

// galleryCell is one linked thumbnail, or a plain document link for media
// without a preview image.
func (r *Report) galleryCell(media *gen.Media, up bool) string {
	label := mediaLabel(media)
	href := uplink(mediaURL(string(media.Handle)), up)
	if thumb, ok := r.thumbs[media.Handle]; ok {
		return fmt.Sprintf(`<div class="thumbnail"><a href="%s" title="%s"><img src="%s" alt="%s"/></a></div>`,
			href, htmlEscape(label), uplink(thumb, up), htmlEscape(label))
	}
	return fmt.Sprintf(`<div class="thumbnail">%s</div>`, link(href, label))
}

// mediaLabel is the display name of a media object: its description when one
// is set, its ID otherwise.
func mediaLabel(m *gen.Media) string {
	if strings.TrimSpace(m.Desc) != "" {
		return m.Desc
	}
	return m.ID
}
