package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeViewStartsCollapsed(t *testing.T) {
	view := NewTreeView(selectorTree())

	rows := view.Rows()
	require.Len(t, rows, 2, "only roots are visible before any expansion")
	assert.Equal(t, "produce", rows[0].Category.ID)
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[0].Expanded)
	assert.Equal(t, "pantry", rows[1].Category.ID)
	assert.False(t, rows[1].HasChildren)
}

func TestTreeViewToggleRevealsAndHidesChildren(t *testing.T) {
	view := NewTreeView(selectorTree())

	view.Toggle("produce")
	rows := view.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "fruit", rows[1].Category.ID)
	assert.Equal(t, 1, rows[1].Depth)
	assert.Equal(t, "veg", rows[2].Category.ID)

	view.Toggle("fruit")
	rows = view.Rows()
	require.Len(t, rows, 5)
	assert.Equal(t, "citrus", rows[2].Category.ID)
	assert.Equal(t, 2, rows[2].Depth)

	// Collapsing the root hides the expanded subtree but keeps its state.
	view.Toggle("produce")
	require.Len(t, view.Rows(), 2)
	assert.True(t, view.Expanded("fruit"))
}

func TestTreeViewExpandedLeafCarriesNoControl(t *testing.T) {
	view := NewTreeView(selectorTree())

	// Marking a leaf expanded must not show an open control.
	view.Toggle("pantry")
	rows := view.Rows()
	assert.False(t, rows[1].Expanded)
	assert.False(t, rows[1].HasChildren)
}

func TestTreeViewAddChildDepthLimit(t *testing.T) {
	view := NewTreeView(selectorTree())
	view.Toggle("produce")
	view.Toggle("fruit")

	byID := make(map[string]Row)
	for _, row := range view.Rows() {
		byID[row.Category.ID] = row
	}

	assert.True(t, byID["produce"].CanAddChild)
	assert.True(t, byID["fruit"].CanAddChild)
	assert.False(t, byID["citrus"].CanAddChild, "a level 2 node cannot take console-created children")
}

func TestTreeViewSetTreeKeepsExpandedState(t *testing.T) {
	view := NewTreeView(selectorTree())
	view.Toggle("produce")

	view.SetTree(selectorTree())
	rows := view.Rows()
	require.Len(t, rows, 4, "a refetch must not collapse the view")
}
