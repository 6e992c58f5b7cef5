package alphabet

import (
	"bytes"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Indexer is the per-run indexing context: the collator and contraction
// table for one locale, built once at report start and read-only afterwards.
type Indexer struct {
	coll         Collator
	contractions []contraction
}

// New builds an Indexer for a locale tag.
func New(locale string) *Indexer {
	return &Indexer{
		coll:         NewCollator(locale),
		contractions: contractionsFor(locale),
	}
}

// Collator exposes the underlying collator for callers that sort full
// strings (surname grouping, media titles).
func (ix *Indexer) Collator() Collator { return ix.coll }

// SortKey returns the locale's full sort key for s.
func (ix *Indexer) SortKey(s string) []byte { return ix.coll.SortKey(s) }

// PrimaryDifference reports whether a and b differ at the primary level.
func (ix *Indexer) PrimaryDifference(a, b string) bool {
	return ix.coll.PrimaryDifference(a, b)
}

// FirstLetter returns the index letter for a display string: the canonical
// letter of the first matching contraction, else the first rune upper-cased.
// Empty input yields a single space, the explicit "unknown" bucket.
func (ix *Indexer) FirstLetter(s string) string {
	if s == "" {
		return " "
	}

	s = norm.NFKC.String(s)
	for _, c := range ix.contractions {
		count := utf8.RuneCountInString(c.variants[0])
		prefix := runePrefix(s, count)
		if prefix == "" {
			continue
		}
		for _, v := range c.variants {
			if prefix == v {
				return c.index
			}
		}
	}

	r, _ := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r))
}

// runePrefix returns the first n runes of s, or "" when s is shorter.
func runePrefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	if i == n {
		return s
	}
	return ""
}

// FirstLetters extracts the first letter of every key's display string and
// reduces them to the index buckets: sorted in collation order, then a
// single forward pass keeps only the first of each run with no primary
// difference. For example, under the root collation the names Ånström and
// Apple yield the letters Å and A; these sort as A, Å and only A is kept,
// so the accented name files under the unaccented index entry.
func (ix *Indexer) FirstLetters(res KeyResolver, keys []Key) []string {
	letters := make([]string, 0, len(keys))
	for _, k := range keys {
		letters = append(letters, ix.FirstLetter(k.displayKey(res)))
	}
	ix.sortByCollation(letters)

	var index []string
	for _, l := range letters {
		if len(index) == 0 || ix.coll.PrimaryDifference(index[len(index)-1], l) {
			index = append(index, l)
		}
	}
	return index
}

// IndexLetter maps an arbitrary extracted letter back to the bucket chosen
// by FirstLetters: the first bucket with no primary difference. A miss means
// the bucket list was built from a different item set; the letter is
// returned unchanged so the caller can still render an anchor.
func (ix *Indexer) IndexLetter(letter string, index []string) string {
	for _, b := range index {
		if !ix.coll.PrimaryDifference(letter, b) {
			return b
		}
	}
	log.Printf("Warning: initial letter %q not found in alphabetic navigation list %q", letter, index)
	return letter
}

// sortByCollation sorts strings ascending by their full collation key.
func (ix *Indexer) sortByCollation(items []string) {
	type keyed struct {
		s   string
		key []byte
	}
	ks := make([]keyed, len(items))
	for i, s := range items {
		ks[i] = keyed{s, ix.coll.SortKey(s)}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		return bytes.Compare(ks[i].key, ks[j].key) < 0
	})
	for i, k := range ks {
		items[i] = k.s
	}
}
