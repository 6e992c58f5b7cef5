// Package renderer generates the web report: the event, family, media and
// thumbnail pages, cross-linked and carrying the locale-aware alphabetic
// navigation built by the alphabet package.
package renderer

import (
	"embed"
	"fmt"
	"log"
	"path/filepath"

	"github.com/aymerick/raymond"
	"github.com/yuin/goldmark"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"github.com/davrell/kinsite/internal/alphabet"
	"github.com/davrell/kinsite/internal/config"
	"github.com/davrell/kinsite/internal/gen"
	"github.com/davrell/kinsite/internal/utils"
)

//go:embed templates
var templates embed.FS

// Report drives one report run: it walks the database and writes the site
// into destDir. A Report is single-use and not safe for concurrent use (the
// collator buffer is per-run state).
type Report struct {
	db      *gen.Database
	cfg     *config.Config
	ix      *alphabet.Indexer
	destDir string
	verbose bool

	md       goldmark.Markdown
	pageTmpl *raymond.Template

	// site-relative paths of the prepared media artifacts, filled by
	// mediaFiles before any page is written
	thumbs map[gen.Handle]string
	images map[gen.Handle]string
}

// New builds a report run for a loaded database.
func New(db *gen.Database, cfg *config.Config, destDir string, verbose bool) (*Report, error) {
	layout, err := templates.ReadFile("templates/page.html.hbs")
	if err != nil {
		return nil, fmt.Errorf("failed to read page template: %w", err)
	}
	tmpl, err := raymond.Parse(string(layout))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithRendererOptions(
			ghtml.WithHardWraps(),
		),
	)

	return &Report{
		db:       db,
		cfg:      cfg,
		ix:       alphabet.New(cfg.Site.Language),
		destDir:  destDir,
		verbose:  verbose,
		md:       md,
		pageTmpl: tmpl,
	}, nil
}

// Indexer exposes the run's alphabetic indexer.
func (r *Report) Indexer() *alphabet.Indexer { return r.ix }

// Run generates the complete site.
func (r *Report) Run() error {
	if err := utils.CreateDirAll(r.destDir); err != nil {
		return err
	}
	if err := r.copyStylesheet(); err != nil {
		return err
	}
	if err := r.mediaFiles(); err != nil {
		return fmt.Errorf("failed to prepare media files: %w", err)
	}

	if err := r.eventPages(); err != nil {
		return fmt.Errorf("failed to create event pages: %w", err)
	}
	if err := r.familyPages(); err != nil {
		return fmt.Errorf("failed to create family pages: %w", err)
	}
	if err := r.mediaPages(); err != nil {
		return fmt.Errorf("failed to create media pages: %w", err)
	}
	if err := r.thumbnailPage(); err != nil {
		return fmt.Errorf("failed to create thumbnail preview: %w", err)
	}
	if err := r.indexPage(); err != nil {
		return fmt.Errorf("failed to create index page: %w", err)
	}
	if r.cfg.Report.Gendex {
		if err := r.gendexFile(); err != nil {
			return fmt.Errorf("failed to create GENDEX file: %w", err)
		}
	}
	return nil
}

func (r *Report) copyStylesheet() error {
	css, err := templates.ReadFile("templates/narrative.css")
	if err != nil {
		return fmt.Errorf("failed to read stylesheet: %w", err)
	}
	return utils.WriteFile(filepath.Join(r.destDir, "css", "narrative.css"), css)
}

// progress prints a page-set message the way the build command reports
// chapter counts.
func (r *Report) progress(format string, args ...interface{}) {
	if r.verbose {
		fmt.Printf(format+"\n", args...)
	}
}

func (r *Report) warn(format string, args ...interface{}) {
	log.Printf("Warning: "+format, args...)
}

// resolver adapts the database to the indexer's KeyResolver.
type resolver struct {
	db *gen.Database
}

func (r resolver) PersonSortName(handle string) string {
	if p := r.db.Person(gen.Handle(handle)); p != nil {
		return p.Name.SortString()
	}
	return ""
}

func (r resolver) PlaceDisplayName(handle string) string {
	return r.db.PlaceName(gen.Handle(handle))
}
