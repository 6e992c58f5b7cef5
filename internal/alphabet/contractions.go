package alphabet

import "strings"

// contraction maps the case variants of one multi-character grapheme
// sequence to the canonical letter it indexes under. All variants of an
// entry have the same rune length.
type contraction struct {
	variants []string
	index    string
}

// Contraction data taken from CLDR 22.1, default variant only. This is not
// every language with contractions, just the locales the report has
// translations for. DUCET contractions (e.g. L + middle dot) and
// suppresscontractions are ignored.
//
// Entries are ordered: a longer contraction must be listed before a shorter
// one that is a prefix of it (Hungarian "dzs" before "dz"), because the
// first-letter extractor takes the first match.
//
// None of the variants below may contain the letters "e" or "f"; those are
// the reserved marker suffixes of the heuristic collator.
var contractionTable = map[string][]contraction{
	// ca Catalan validSubLocales="ca_AD ca_ES"
	"ca": {
		{[]string{"l·", "L·"}, "L"},
	},
	// cs Czech validSubLocales="cs_CZ"
	"cs": {
		{[]string{"ch", "cH", "Ch", "CH"}, "CH"},
	},
	// da Danish validSubLocales="da_DK"
	"da": {
		{[]string{"aa", "Aa", "AA"}, "Å"},
	},
	// hr Croatian validSubLocales="hr_BA hr_HR"
	"hr": {
		{[]string{"dž", "Dž"}, "dž"},
		{[]string{"lj", "Lj", "LJ"}, "Ǉ"},
		{[]string{"Nj", "NJ", "nj"}, "Ǌ"},
	},
	// hu Hungarian, two and three character contractions
	"hu": {
		{[]string{"cs", "Cs", "CS"}, "CS"},
		{[]string{"dzs", "Dzs", "DZS"}, "DZS"}, // order is important
		{[]string{"dz", "Dz", "DZ"}, "DZ"},
		{[]string{"gy", "Gy", "GY"}, "GY"},
		{[]string{"ly", "Ly", "LY"}, "LY"},
		{[]string{"ny", "Ny", "NY"}, "NY"},
		{[]string{"sz", "Sz", "SZ"}, "SZ"},
		{[]string{"ty", "Ty", "TY"}, "TY"},
		{[]string{"zs", "Zs", "ZS"}, "ZS"},
	},
	// nb Norwegian Bokmål
	"nb": {
		{[]string{"aa", "Aa", "AA"}, "Å"},
	},
	// nn Norwegian Nynorsk validSubLocales="nn_NO"
	"nn": {
		{[]string{"aa", "Aa", "AA"}, "Å"},
	},
	// sk Slovak validSubLocales="sk_SK"; DZ as a contraction for Slovak was
	// rejected in CLDR ticket 2968
	"sk": {
		{[]string{"ch", "cH", "Ch", "CH"}, "Ch"},
	},
}

// contractionsFor resolves the contraction list for a locale: the full tag
// first, then the base language, else none.
func contractionsFor(locale string) []contraction {
	locale = normalizeLocale(locale)
	if c, ok := contractionTable[locale]; ok {
		return c
	}
	base, _, _ := strings.Cut(locale, "-")
	return contractionTable[base]
}
