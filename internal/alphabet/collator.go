// Package alphabet builds the locale-aware alphabetic index used by the
// event, family and media list pages: it groups display strings into
// culturally correct "first letter" buckets (including multi-character
// contractions such as "ch" in Czech or "dzs" in Hungarian) and lays the
// deduplicated buckets out as a navigation strip.
package alphabet

import (
	"bytes"
	"log"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator answers the one question the index cares about: do two strings
// differ at the primary collation level (base letter identity), ignoring
// accents and case? It also produces full sort keys for ordering.
type Collator interface {
	// PrimaryDifference reports whether a and b differ at the primary level.
	PrimaryDifference(a, b string) bool
	// SortKey returns the locale's full (secondary/tertiary included) sort
	// key for s. Keys compare with bytes.Compare.
	SortKey(s string) []byte
	// Locale returns the locale tag the collator was built for.
	Locale() string
}

// NewCollator builds a Collator for the given locale tag ("da", "hu_HU",
// "de-AT", ...). When the collation tables cover the locale, primary
// comparisons use a strength-limited collator; otherwise a heuristic over
// full sort keys is used. Unresolvable locales degrade to the root collation
// order, never fail.
func NewCollator(locale string) Collator {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		log.Printf("Warning: cannot parse locale %q, using generic collation: %v", locale, err)
		return &heuristicCollator{locale: locale, full: collate.New(language.Und)}
	}

	_, _, conf := collationMatcher.Match(tag)
	if conf < language.High {
		log.Printf("Warning: no collation rules for locale %q, using sort key heuristic", locale)
		return &heuristicCollator{locale: locale, full: collate.New(tag)}
	}

	return &localeCollator{
		locale:  locale,
		primary: collate.New(tag, collate.Loose),
		full:    collate.New(tag),
	}
}

var collationMatcher = language.NewMatcher(collate.Supported())

// normalizeLocale accepts POSIX-style tags ("da_DK") as well as BCP 47 ones.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(locale, "_", "-")
}

// localeCollator compares with a dedicated primary-strength collator.
// A collate.Buffer is not safe for concurrent use: one Collator per report
// run, never shared across goroutines.
type localeCollator struct {
	locale  string
	primary *collate.Collator
	full    *collate.Collator
	buf     collate.Buffer
}

func (c *localeCollator) Locale() string { return c.locale }

func (c *localeCollator) PrimaryDifference(a, b string) bool {
	return c.primary.CompareString(a, b) != 0
}

func (c *localeCollator) SortKey(s string) []byte {
	c.buf.Reset()
	key := c.full.KeyFromString(&c.buf, s)
	out := make([]byte, len(key))
	copy(out, key)
	return out
}

// heuristicCollator approximates the primary-difference test with full sort
// keys when no strength-limited collator is available for the locale.
//
// Two strings are primary-equivalent iff interleaving them with the reserved
// marker suffixes keeps each within one tertiary band of the other:
// key(a+"e") < key(b+"f") and key(b+"e") < key(a+"f"). The markers "e" and
// "f" are chosen because they never occur inside any contraction table entry;
// contractions.go carries that invariant and the tests assert it. This is a
// heuristic, not an exact reconstruction of primary strength.
type heuristicCollator struct {
	locale string
	full   *collate.Collator
	buf    collate.Buffer
}

func (c *heuristicCollator) Locale() string { return c.locale }

func (c *heuristicCollator) PrimaryDifference(a, b string) bool {
	return bytes.Compare(c.SortKey(a+"e"), c.SortKey(b+"f")) >= 0 ||
		bytes.Compare(c.SortKey(b+"e"), c.SortKey(a+"f")) >= 0
}

func (c *heuristicCollator) SortKey(s string) []byte {
	c.buf.Reset()
	key := c.full.KeyFromString(&c.buf, s)
	out := make([]byte, len(key))
	copy(out, key)
	return out
}
