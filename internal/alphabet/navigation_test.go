package alphabet

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigationEmpty(t *testing.T) {
	ix := New("en")
	assert.Nil(t, ix.Navigation(nil))
	assert.Nil(t, ix.Navigation([]string{}))
}

func TestNavigationSingleRow(t *testing.T) {
	ix := New("en")
	nav := ix.Navigation([]string{"B", "A", "C", "A"})
	require.NotNil(t, nav)
	require.Len(t, nav.Rows, 1)

	var letters []string
	for _, cell := range nav.Rows[0] {
		letters = append(letters, cell.Letter)
	}
	// duplicates collapse, order is collation order
	assert.Equal(t, []string{"A", "B", "C"}, letters)

	cell := nav.Rows[0][0]
	assert.Equal(t, "A", cell.Anchor)
	assert.Equal(t, "Alphabet Menu: A", cell.Title)
}

func TestNavigationWrapsAtTwentySixColumns(t *testing.T) {
	ix := New("en")
	var letters []string
	for i := 0; i < 30; i++ {
		letters = append(letters, fmt.Sprintf("%c%d", 'A'+i%26, i/26))
	}

	nav := ix.Navigation(letters)
	require.NotNil(t, nav)
	require.Len(t, nav.Rows, 2)
	assert.Len(t, nav.Rows[0], 26)
	assert.Len(t, nav.Rows[1], 4)
}

func TestNavigationKeepsBlankBucket(t *testing.T) {
	ix := New("en")
	nav := ix.Navigation([]string{" ", "A"})
	require.NotNil(t, nav)
	require.Len(t, nav.Rows, 1)
	require.Len(t, nav.Rows[0], 2)

	// the blank bucket sorts first and keeps its literal anchor; the
	// renderer substitutes the visible non-breaking space
	assert.Equal(t, " ", nav.Rows[0][0].Letter)
}
