package renderer

import (
	"fmt"
	"strings"

	"github.com/davrell/kinsite/internal/gen"
)

// thumbCols is the width of the thumbnail preview grid.
const thumbCols = 7

// thumbnailPage writes the thumbnail preview: a grid of every image in the
// gallery followed by a table mapping each image to the records that carry it.
func (r *Report) thumbnailPage() error {
	handles := make([]gen.Handle, 0, len(r.thumbs))
	for _, h := range r.sortedMedia() {
		if _, ok := r.thumbs[h]; ok {
			handles = append(handles, h)
		}
	}
	r.progress("Creating thumbnail preview page (%d)", len(handles))

	var b strings.Builder
	b.WriteString(`<div class="content" id="Preview">`)
	b.WriteString(`<p id="description">This page displays an indexed list of all the media objects in this database. It is sorted by media title. There is an index of all the media objects in this database. Clicking on a thumbnail will take you to that image&#8217;s page.</p>`)

	b.WriteString(`<table class="calendar"><tbody>`)
	for start := 0; start < len(handles); start += thumbCols {
		end := start + thumbCols
		if end > len(handles) {
			end = len(handles)
		}
		b.WriteString(`<tr>`)
		for i := start; i < end; i++ {
			h := handles[i]
			media := r.db.MediaObject(h)
			label := mediaLabel(media)
			b.WriteString(fmt.Sprintf(`<td><a href="%s" title="%s"><img src="%s" alt="%s"/></a><p>%d. %s</p></td>`,
				mediaURL(string(h)), htmlEscape(label), r.thumbs[h], htmlEscape(label),
				i+1, link(mediaURL(string(h)), label)))
		}
		for i := end; i < start+thumbCols; i++ {
			b.WriteString(`<td>` + nbsp + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)

	b.WriteString(r.thumbnailReferences(handles))
	b.WriteString(`</div>`)

	return r.writePage("thumbnails.html", "Thumbnails", "Preview", "Thumbnails", b.String())
}

// thumbnailReferences is the table below the grid listing, per image, the
// people and families referencing it.
func (r *Report) thumbnailReferences(handles []gen.Handle) string {
	var b strings.Builder
	b.WriteString(`<div class="subsection" id="references"><h4>References</h4>`)
	b.WriteString(`<table class="infolist references"><tbody>`)
	for i, h := range handles {
		media := r.db.MediaObject(h)
		refs := nbsp
		if cell := r.backlinkCell(r.db.FindBacklinks(h, gen.PersonKind, gen.FamilyKind)); cell != nbsp {
			refs = cell
		}
		b.WriteString(`<tr>`)
		b.WriteString(fmt.Sprintf(`<td class="ColumnRowLabel">%d.</td>`, i+1))
		b.WriteString(fmt.Sprintf(`<td class="ColumnName">%s</td>`, link(mediaURL(string(h)), mediaLabel(media))))
		b.WriteString(fmt.Sprintf(`<td class="ColumnPerson">%s</td>`, refs))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)
	return b.String()
}
