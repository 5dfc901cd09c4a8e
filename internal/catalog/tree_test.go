package catalog

import (
	"fmt"
	"math/rand"
	"testing"

	"wholesale-admin/internal/domain"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cat(id, name, parent string) domain.Category {
	return domain.Category{ID: id, Name: name, Slug: name, Parent: domain.ParentRef(parent)}
}

// randomForest builds a flat category list where each record's parent is
// either empty, an earlier record, an unresolvable id, or itself.
func randomForest(size int, seed int64) []domain.Category {
	rng := rand.New(rand.NewSource(seed))
	flat := make([]domain.Category, 0, size)
	for i := 0; i < size; i++ {
		id := fmt.Sprintf("c%d", i)
		parent := ""
		switch rng.Intn(4) {
		case 0:
			// root
		case 1:
			if i > 0 {
				parent = fmt.Sprintf("c%d", rng.Intn(i))
			}
		case 2:
			parent = fmt.Sprintf("missing-%d", rng.Intn(100))
		case 3:
			parent = id
		}
		flat = append(flat, cat(id, "Category "+id, parent))
	}
	return flat
}

func TestProperty_FlattenBuildTreePreservesEveryRecord(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("every input record appears exactly once after a round trip", prop.ForAll(
		func(size int, seed int64) bool {
			flat := randomForest(size, seed)
			out := Flatten(BuildTree(flat))

			if len(out) != len(flat) {
				t.Logf("FAIL: %d records in, %d out", len(flat), len(out))
				return false
			}

			seen := make(map[string]int)
			for _, c := range out {
				seen[c.ID]++
			}
			for _, c := range flat {
				if seen[c.ID] != 1 {
					t.Logf("FAIL: record %s appears %d times", c.ID, seen[c.ID])
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.Int64(),
	))

	properties.Property("roots are exactly the records without a resolvable parent", prop.ForAll(
		func(size int, seed int64) bool {
			flat := randomForest(size, seed)
			ids := make(map[string]bool, len(flat))
			for _, c := range flat {
				ids[c.ID] = true
			}

			var wantRoots []string
			for _, c := range flat {
				parent := c.Parent.String()
				if parent == "" || !ids[parent] || parent == c.ID {
					wantRoots = append(wantRoots, c.ID)
				}
			}

			tree := BuildTree(flat)
			if len(tree) != len(wantRoots) {
				t.Logf("FAIL: expected %d roots, got %d", len(wantRoots), len(tree))
				return false
			}
			for i, root := range tree {
				if root.ID != wantRoots[i] {
					t.Logf("FAIL: root %d is %s, expected %s", i, root.ID, wantRoots[i])
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 40),
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestBuildTreeNestsChildrenUnderParents(t *testing.T) {
	flat := []domain.Category{
		cat("1", "A", ""),
		cat("2", "B", "1"),
		cat("3", "C", "2"),
		cat("4", "D", ""),
	}

	tree := BuildTree(flat)

	require.Len(t, tree, 2)
	assert.Equal(t, "1", tree[0].ID)
	assert.Equal(t, "4", tree[1].ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "2", tree[0].Children[0].ID)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "3", tree[0].Children[0].Children[0].ID)
}

func TestBuildTreeMixedForest(t *testing.T) {
	// B nests under A; C's parent does not exist, so C is a root.
	flat := []domain.Category{
		cat("1", "A", ""),
		cat("2", "B", "1"),
		cat("3", "C", "99"),
	}

	tree := BuildTree(flat)

	require.Len(t, tree, 2)
	assert.Equal(t, "A", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "B", tree[0].Children[0].Name)
	assert.Equal(t, "C", tree[1].Name)
	assert.Empty(t, tree[1].Children)

	var names []string
	for _, c := range Flatten(tree) {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestBuildTreeUnresolvableParentBecomesRoot(t *testing.T) {
	flat := []domain.Category{
		cat("1", "A", ""),
		cat("2", "B", "99"),
	}

	tree := BuildTree(flat)

	require.Len(t, tree, 2)
	assert.Equal(t, "1", tree[0].ID)
	assert.Equal(t, "2", tree[1].ID)
	assert.Empty(t, tree[1].Children)
}

func TestBuildTreePreservesSiblingOrder(t *testing.T) {
	flat := []domain.Category{
		cat("p", "Parent", ""),
		cat("b", "Second", "p"),
		cat("a", "First", "p"),
		cat("c", "Third", "p"),
	}

	tree := BuildTree(flat)

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 3)
	assert.Equal(t, "b", tree[0].Children[0].ID)
	assert.Equal(t, "a", tree[0].Children[1].ID)
	assert.Equal(t, "c", tree[0].Children[2].ID)
}

func TestBuildTreeDoesNotMutateInput(t *testing.T) {
	child := cat("2", "B", "1")
	flat := []domain.Category{cat("1", "A", ""), child}

	BuildTree(flat)

	assert.Nil(t, flat[0].Children, "input records must stay flat")
	assert.Equal(t, child, flat[1])
}

func TestFlattenIsPreOrder(t *testing.T) {
	tree := BuildTree([]domain.Category{
		cat("1", "A", ""),
		cat("2", "B", "1"),
		cat("3", "C", "1"),
		cat("4", "D", "2"),
		cat("5", "E", ""),
	})

	var ids []string
	for _, c := range Flatten(tree) {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"1", "2", "4", "3", "5"}, ids)
}

func TestFindPath(t *testing.T) {
	tree := BuildTree([]domain.Category{
		cat("1", "A", ""),
		cat("2", "B", "1"),
		cat("3", "C", "2"),
	})

	path := FindPath(tree, "3")
	require.Len(t, path, 3)
	assert.Equal(t, "1", path[0].ID)
	assert.Equal(t, "2", path[1].ID)
	assert.Equal(t, "3", path[2].ID)

	assert.Nil(t, FindPath(tree, "nope"))
}

func TestSummarize(t *testing.T) {
	tree := BuildTree([]domain.Category{
		cat("1", "A", ""),
		cat("2", "B", "1"),
		cat("3", "C", "1"),
		cat("4", "D", ""),
	})

	stats := Summarize(tree)
	assert.Equal(t, Stats{Total: 4, Roots: 2, Subcategories: 2}, stats)
}
