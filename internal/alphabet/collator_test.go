package alphabet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestNewCollatorSupportedLocale(t *testing.T) {
	c := NewCollator("da")
	_, ok := c.(*localeCollator)
	require.True(t, ok, "Danish has collation tables, expected the strong collator")

	assert.False(t, c.PrimaryDifference("a", "A"))
	assert.False(t, c.PrimaryDifference("e", "é"))
	assert.True(t, c.PrimaryDifference("a", "b"))
}

func TestNewCollatorUnknownLocaleDegrades(t *testing.T) {
	c := NewCollator("xx")
	_, ok := c.(*heuristicCollator)
	require.True(t, ok, "unknown language must degrade to the heuristic")

	assert.True(t, c.PrimaryDifference("a", "b"))
	assert.False(t, c.PrimaryDifference("a", "a"))
}

func TestNewCollatorUnparsableLocaleDegrades(t *testing.T) {
	c := NewCollator("not a locale !!")
	_, ok := c.(*heuristicCollator)
	require.True(t, ok)
	assert.True(t, c.PrimaryDifference("a", "b"))
}

func TestHeuristicMatchesStrongCollator(t *testing.T) {
	strong := NewCollator("da").(*localeCollator)
	heur := &heuristicCollator{locale: "da", full: collate.New(language.Danish)}

	pairs := []struct{ a, b string }{
		{"a", "a"}, {"a", "A"}, {"a", "á"},
		{"a", "b"}, {"A", "Å"}, {"o", "ø"},
		{"M", "N"}, {"S", "T"},
	}
	for _, p := range pairs {
		assert.Equal(t, strong.PrimaryDifference(p.a, p.b),
			heur.PrimaryDifference(p.a, p.b),
			"heuristic disagrees with strong collator on %q vs %q", p.a, p.b)
	}
}

func TestPrimaryDifferenceSymmetry(t *testing.T) {
	for _, c := range []Collator{NewCollator("da"), NewCollator("xx")} {
		letters := []string{"a", "A", "á", "b", "Å", "ø", " ", "CH"}
		for _, a := range letters {
			for _, b := range letters {
				assert.Equal(t, c.PrimaryDifference(a, b), c.PrimaryDifference(b, a),
					"%s: asymmetric for %q, %q", c.Locale(), a, b)
			}
		}
	}
}

func TestSortKeyOrdersDanishLetters(t *testing.T) {
	c := NewCollator("da")

	// Æ, Ø, Å follow Z in Danish
	assert.Negative(t, bytes.Compare(c.SortKey("Z"), c.SortKey("Æ")))
	assert.Negative(t, bytes.Compare(c.SortKey("Æ"), c.SortKey("Ø")))
	assert.Negative(t, bytes.Compare(c.SortKey("Ø"), c.SortKey("Å")))
}

func TestSortKeyReturnsStableCopy(t *testing.T) {
	c := NewCollator("da")
	k1 := c.SortKey("alpha")
	k1copy := append([]byte(nil), k1...)

	// a second call reuses the internal buffer; the first key must survive
	_ = c.SortKey("beta")
	assert.Equal(t, k1copy, k1)
}

func TestContractionDataAvoidsReservedMarkers(t *testing.T) {
	// the heuristic collator appends "e" and "f" to build its combined
	// sort keys; that only works while no contraction contains them
	for locale, entries := range contractionTable {
		for _, entry := range entries {
			for _, v := range entry.variants {
				assert.False(t, strings.ContainsAny(v, "ef"),
					"%s: contraction variant %q contains a reserved marker", locale, v)
			}
		}
	}
}

func TestContractionOrderLongerBeforePrefix(t *testing.T) {
	// a contraction that is a prefix of another must come after it
	for locale, entries := range contractionTable {
		for i, shorter := range entries {
			for j, longer := range entries {
				if j <= i {
					continue
				}
				assert.False(t, strings.HasPrefix(longer.variants[0], shorter.variants[0]),
					"%s: %q is listed after its prefix %q", locale,
					longer.variants[0], shorter.variants[0])
			}
		}
	}
}
