package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver resolves handles from fixed maps.
type stubResolver struct {
	people map[string]string
	places map[string]string
}

func (r stubResolver) PersonSortName(h string) string   { return r.people[h] }
func (r stubResolver) PlaceDisplayName(h string) string { return r.places[h] }

func TestFirstLetterPlain(t *testing.T) {
	ix := New("de")

	assert.Equal(t, "M", ix.FirstLetter("meier"))
	assert.Equal(t, "Ä", ix.FirstLetter("ärzte"))
	assert.Equal(t, " ", ix.FirstLetter(""))
}

func TestFirstLetterContraction(t *testing.T) {
	ix := New("cs")

	assert.Equal(t, "CH", ix.FirstLetter("chalupa"))
	assert.Equal(t, "CH", ix.FirstLetter("Chalupa"))
	assert.Equal(t, "C", ix.FirstLetter("cibule"))
}

func TestFirstLetterContractionPrecedence(t *testing.T) {
	ix := New("hu")

	// the three-letter contraction must win over "dz" and "d"
	assert.Equal(t, "DZS", ix.FirstLetter("dzsudó"))
	assert.Equal(t, "DZS", ix.FirstLetter("dzsek"))
	assert.Equal(t, "DZ", ix.FirstLetter("dzadza"))
	assert.Equal(t, "SZ", ix.FirstLetter("Szabó"))
	assert.Equal(t, "D", ix.FirstLetter("Dudás"))
}

func TestFirstLetterLocaleFallsBackToBaseLanguage(t *testing.T) {
	// full tag has no table entry of its own, the base language does
	ix := New("hu_HU")
	assert.Equal(t, "GY", ix.FirstLetter("Gyula"))

	ix = New("da-DK")
	assert.Equal(t, "Å", ix.FirstLetter("Aaberg"))
}

func TestFirstLettersDanish(t *testing.T) {
	ix := New("da")
	res := stubResolver{people: map[string]string{
		"p1": "Aaberg",
		"p2": "Apple",
		"p3": "Åsen",
	}}

	keys := PersonKeys([]string{"p1", "p2", "p3"})

	// "Aaberg" and "Åsen" both extract to Å; "Apple" to A. In Danish
	// collation Å is a distinct letter after Z, a primary difference, so
	// both buckets survive the dedup pass in collation order.
	index := ix.FirstLetters(res, keys)
	require.Equal(t, []string{"A", "Å"}, index)

	// every extracted letter maps back onto a bucket of the same index
	for _, h := range []string{"p1", "p2", "p3"} {
		letter := ix.FirstLetter(res.people[h])
		bucket := ix.IndexLetter(letter, index)
		assert.Contains(t, index, bucket)
	}
}

func TestFirstLettersDedupsSecondaryDifferences(t *testing.T) {
	// under a tailoring without a distinct Å letter, Ånström and Apple
	// share a primary class; only the first in collation order survives
	ix := New("de")
	res := stubResolver{people: map[string]string{
		"p1": "Ånström",
		"p2": "Apple",
	}}

	index := ix.FirstLetters(res, PersonKeys([]string{"p1", "p2"}))
	require.Equal(t, []string{"A"}, index)

	// the accented letter still resolves to the retained bucket
	assert.Equal(t, "A", ix.IndexLetter("Å", index))
}

func TestFirstLettersPairwiseDistinct(t *testing.T) {
	ix := New("hu")
	labels := []string{"Birth", "Baptism", "Death", "Divorce", "Census",
		"Marriage", "Marriage Banns", "Occupation", "Residence", "Szüret"}

	index := ix.FirstLetters(stubResolver{}, EventTypeKeys(labels))
	for i := 1; i < len(index); i++ {
		assert.True(t, ix.PrimaryDifference(index[i-1], index[i]),
			"adjacent buckets %q and %q must differ at the primary level",
			index[i-1], index[i])
	}
}

func TestFirstLettersEmpty(t *testing.T) {
	ix := New("en")
	assert.Empty(t, ix.FirstLetters(stubResolver{}, nil))
}

func TestFirstLettersBlankBucket(t *testing.T) {
	ix := New("en")
	res := stubResolver{people: map[string]string{"p1": "", "p2": "Smith"}}

	index := ix.FirstLetters(res, PersonKeys([]string{"p1", "p2"}))
	require.Len(t, index, 2)
	assert.Contains(t, index, " ")
	assert.Contains(t, index, "S")
}

func TestIndexLetterMissReturnsInput(t *testing.T) {
	ix := New("en")
	assert.Equal(t, "Q", ix.IndexLetter("Q", []string{"A", "B"}))
}

func TestPlaceKeysResolve(t *testing.T) {
	ix := New("en")
	res := stubResolver{places: map[string]string{"pl1": "Oslo", "pl2": "Bergen"}}

	index := ix.FirstLetters(res, []Key{PlaceKey{"pl1"}, PlaceKey{"pl2"}})
	assert.Equal(t, []string{"B", "O"}, index)
}
