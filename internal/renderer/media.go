package renderer

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/davrell/kinsite/internal/gen"
	"github.com/davrell/kinsite/internal/utils"
)

// mediaFiles prepares the media artifacts of the site before any page is
// written: thumbnails for every image, plus either a display copy of each
// image (scaled down to the configured width) or, with thumbs_only, nothing
// beyond the thumbnail. Non-image files are copied verbatim. Missing or
// unreadable files get a warning and are skipped; their pages degrade to
// text-only.
func (r *Report) mediaFiles() error {
	handles := r.db.MediaHandles()
	r.progress("Preparing media files (%d)", len(handles))

	r.thumbs = make(map[gen.Handle]string)
	r.images = make(map[gen.Handle]string)

	for _, h := range handles {
		media := r.db.MediaObject(h)
		src := media.Path
		if !filepath.IsAbs(src) {
			src = filepath.Join(r.cfg.Site.MediaDir, src)
		}

		if !strings.HasPrefix(media.Mime, "image/") {
			if r.cfg.Report.ThumbsOnly {
				continue
			}
			rel := "files/" + string(h) + filepath.Ext(media.Path)
			if err := utils.CopyFile(src, filepath.Join(r.destDir, rel)); err != nil {
				r.warn("could not copy media file %s (%s): %v", media.ID, media.Path, err)
				continue
			}
			r.images[h] = rel
			continue
		}

		img, err := imaging.Open(src, imaging.AutoOrientation(true))
		if err != nil {
			r.warn("could not open image %s (%s): %v", media.ID, media.Path, err)
			continue
		}

		size := r.cfg.Report.ThumbnailSize
		thumb := imaging.Fit(img, size, size, imaging.Lanczos)
		thumbRel := "thumb/" + string(h) + ".jpg"
		if err := r.saveImage(thumb, thumbRel); err != nil {
			r.warn("could not write thumbnail for %s: %v", media.ID, err)
			continue
		}
		r.thumbs[h] = thumbRel

		if r.cfg.Report.ThumbsOnly {
			continue
		}
		display := img
		if maxW := r.cfg.Report.MaxImageWidth; maxW > 0 && img.Bounds().Dx() > maxW {
			display = imaging.Resize(img, maxW, 0, imaging.Lanczos)
		}
		imgRel := "image/" + string(h) + ".jpg"
		if err := r.saveImage(display, imgRel); err != nil {
			r.warn("could not write image for %s: %v", media.ID, err)
			continue
		}
		r.images[h] = imgRel
	}
	return nil
}

// saveImage writes an image below destDir, creating parent directories.
func (r *Report) saveImage(img image.Image, rel string) error {
	path := filepath.Join(r.destDir, rel)
	if err := utils.CreateDirAll(filepath.Dir(path)); err != nil {
		return err
	}
	return imaging.Save(img, path)
}

// sortedMedia orders media handles by description (collation order), falling
// back to the user-visible ID to keep ties stable.
func (r *Report) sortedMedia() []gen.Handle {
	handles := r.db.MediaHandles()
	type keyed struct {
		handle gen.Handle
		key    []byte
		id     string
	}
	items := make([]keyed, 0, len(handles))
	for _, h := range handles {
		m := r.db.MediaObject(h)
		if !r.cfg.Report.IncludeUnusedMedia &&
			len(r.db.FindBacklinks(h, gen.PersonKind, gen.FamilyKind)) == 0 {
			continue
		}
		items = append(items, keyed{h, r.ix.SortKey(mediaLabel(m)), m.ID})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if c := bytes.Compare(items[i].key, items[j].key); c != 0 {
			return c < 0
		}
		return items[i].id < items[j].id
	})

	out := make([]gen.Handle, len(items))
	for i, it := range items {
		out[i] = it.handle
	}
	return out
}

// mediaPages writes the media index and one page per media object, each
// carrying previous/next navigation through the sorted gallery.
func (r *Report) mediaPages() error {
	handles := r.sortedMedia()
	r.progress("Creating media pages (%d)", len(handles))

	for i := range handles {
		if err := r.mediaPage(handles, i); err != nil {
			return err
		}
	}
	return r.mediaListPage(handles)
}

// mediaListPage writes the index of all media objects.
func (r *Report) mediaListPage(handles []gen.Handle) error {
	var b strings.Builder
	b.WriteString(`<div class="content" id="Gallery">`)
	b.WriteString(`<p id="description">This page contains an index of all the media objects in the database, sorted by their title. Clicking on the title will take you to that media object&#8217;s page. If you see media size dimensions above an image, click on the image to see the full sized version.</p>`)

	b.WriteString(`<table class="infolist primobjlist gallerylist">`)
	b.WriteString(`<thead><tr>`)
	for _, col := range []struct{ label, class string }{
		{nbsp, "ColumnRowLabel"},
		{"Media", "ColumnName"},
		{"Date", "ColumnDate"},
		{"Mime Type", "ColumnMime"},
	} {
		b.WriteString(fmt.Sprintf(`<th class="%s">%s</th>`, col.class, col.label))
	}
	b.WriteString(`</tr></thead><tbody>`)

	for i, h := range handles {
		media := r.db.MediaObject(h)
		date := nbsp
		if !media.Date.IsEmpty() {
			date = htmlEscape(media.Date.String())
		}
		b.WriteString(`<tr>`)
		b.WriteString(fmt.Sprintf(`<td class="ColumnRowLabel">%d</td>`, i+1))
		b.WriteString(fmt.Sprintf(`<td class="ColumnName">%s</td>`, link(mediaURL(string(h)), mediaLabel(media))))
		b.WriteString(fmt.Sprintf(`<td class="ColumnDate">%s</td>`, date))
		b.WriteString(fmt.Sprintf(`<td class="ColumnMime">%s</td>`, orNbsp(media.Mime)))
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table></div>`)

	return r.writePage("media.html", "Media", "Gallery", "Media", b.String())
}

// mediaPage writes the detail page of the i-th media object in gallery order.
func (r *Report) mediaPage(handles []gen.Handle, i int) error {
	h := handles[i]
	media := r.db.MediaObject(h)
	title := mediaLabel(media)

	var b strings.Builder
	b.WriteString(`<div class="content" id="GalleryDetail">`)

	// gallery position with previous/next stepping
	b.WriteString(`<div id="GalleryNav">`)
	if i > 0 {
		b.WriteString(fmt.Sprintf(`<a id="Previous" href="%s">Previous</a> `,
			string(handles[i-1])+".html"))
	}
	b.WriteString(fmt.Sprintf(`<span id="GalleryPages">%d of %d</span>`, i+1, len(handles)))
	if i < len(handles)-1 {
		b.WriteString(fmt.Sprintf(` <a id="Next" href="%s">Next</a>`,
			string(handles[i+1])+".html"))
	}
	b.WriteString(`</div>`)

	b.WriteString(fmt.Sprintf(`<h2>%s</h2>`, htmlEscape(title)))

	switch {
	case r.images[h] != "" && strings.HasPrefix(media.Mime, "image/"):
		b.WriteString(fmt.Sprintf(`<div id="GalleryDisplay"><img src="%s" alt="%s"/></div>`,
			uplink(r.images[h], true), htmlEscape(title)))
	case r.thumbs[h] != "":
		b.WriteString(fmt.Sprintf(`<div id="GalleryDisplay"><img src="%s" alt="%s"/></div>`,
			uplink(r.thumbs[h], true), htmlEscape(title)))
	case r.images[h] != "":
		b.WriteString(fmt.Sprintf(`<div id="GalleryDisplay">%s</div>`,
			link(uplink(r.images[h], true), title)))
	}

	b.WriteString(`<table class="infolist gallery"><tbody>`)
	row := func(attr, class, value string) {
		if value == "" {
			return
		}
		b.WriteString(fmt.Sprintf(`<tr><td class="ColumnAttribute">%s</td><td class="Column%s">%s</td></tr>`,
			attr, class, value))
	}
	row("ID", "ID", htmlEscape(media.ID))
	row("File Type", "Mime", htmlEscape(media.Mime))
	if !media.Date.IsEmpty() {
		row("Date", "Date", htmlEscape(media.Date.String()))
	}
	b.WriteString(`</tbody></table>`)

	if notes := r.noteSection(media.NoteRefs); notes != "" {
		b.WriteString(notes)
	}
	if refs := r.referenceSection(h, true, true); refs != "" {
		b.WriteString(refs)
	}
	b.WriteString(`</div>`)

	return r.writePage(mediaURL(string(h)), title, "GalleryDetail", "Media", b.String())
}
