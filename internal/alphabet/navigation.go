package alphabet

// navColumns is the fixed width of the alphabet strip.
const navColumns = 26

// NavCell is one letter link in the alphabet strip. Anchor is the in-page
// fragment identifier the link targets; Title labels the link for screen
// readers.
type NavCell struct {
	Letter string
	Anchor string
	Title  string
}

// Nav is the alphabet strip laid out as rows of at most navColumns cells.
// It is derived data, never mutated after construction.
type Nav struct {
	Rows [][]NavCell
}

// Navigation lays the bucket letters out as the navigation strip: letters
// are deduplicated, sorted in collation order and chunked into rows of 26.
// Returns nil for an empty bucket list; callers omit the strip entirely.
func (ix *Indexer) Navigation(index []string) *Nav {
	seen := make(map[string]int)
	var letters []string
	for _, l := range index {
		if seen[l] == 0 {
			letters = append(letters, l)
		}
		seen[l]++
	}
	if len(letters) == 0 {
		return nil
	}
	ix.sortByCollation(letters)

	nav := &Nav{}
	for start := 0; start < len(letters); start += navColumns {
		end := start + navColumns
		if end > len(letters) {
			end = len(letters)
		}
		row := make([]NavCell, 0, end-start)
		for _, l := range letters[start:end] {
			row = append(row, NavCell{
				Letter: l,
				Anchor: l,
				Title:  "Alphabet Menu: " + l,
			})
		}
		nav.Rows = append(nav.Rows, row)
	}
	return nav
}
