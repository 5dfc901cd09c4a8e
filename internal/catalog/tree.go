// Package catalog holds the pure category-tree logic: building a nested
// tree from flat records, flattening it back, and the two view-state
// consumers (expandable list, cascading level selector). Nothing in here
// talks to the network or renders output.
package catalog

import "wholesale-admin/internal/domain"

// BuildTree converts a flat sequence of categories into a forest of root
// categories with Children populated recursively. A record whose parent
// reference is empty or does not resolve to another record in the input
// becomes a root; this is tolerated, not an error. Sibling order follows
// input order. The builder enforces no depth limit of its own.
//
// Duplicate ids are undefined behavior and must not occur.
func BuildTree(flat []domain.Category) []domain.Category {
	// Arena of nodes indexed by position, each holding its child indices.
	// Assembly then copies bottom-up so the result shares nothing with
	// the input slice.
	arena := make([]domain.Category, len(flat))
	index := make(map[string]int, len(flat))
	for i, c := range flat {
		c.Children = nil
		arena[i] = c
		index[c.ID] = i
	}

	childIdx := make(map[int][]int)
	var roots []int
	for i, c := range flat {
		parent, ok := index[c.Parent.String()]
		if c.Parent == "" || !ok || parent == i {
			roots = append(roots, i)
			continue
		}
		childIdx[parent] = append(childIdx[parent], i)
	}

	var assemble func(i int) domain.Category
	assemble = func(i int) domain.Category {
		node := arena[i]
		for _, j := range childIdx[i] {
			node.Children = append(node.Children, assemble(j))
		}
		return node
	}

	tree := make([]domain.Category, 0, len(roots))
	for _, i := range roots {
		tree = append(tree, assemble(i))
	}
	return tree
}

// Flatten produces the pre-order flat sequence of every node in the
// forest, visiting each exactly once regardless of depth. It is the
// source for parent-selection dropdowns and for counting.
func Flatten(tree []domain.Category) []domain.Category {
	var flat []domain.Category
	var walk func(nodes []domain.Category)
	walk = func(nodes []domain.Category) {
		for _, node := range nodes {
			flat = append(flat, node)
			if len(node.Children) > 0 {
				walk(node.Children)
			}
		}
	}
	walk(tree)
	return flat
}

// Find returns the node with the given id anywhere in the forest.
func Find(tree []domain.Category, id string) (domain.Category, bool) {
	for _, node := range tree {
		if node.ID == id {
			return node, true
		}
		if found, ok := Find(node.Children, id); ok {
			return found, ok
		}
	}
	return domain.Category{}, false
}

// FindPath returns the root-to-node path of the node with the given id,
// or nil when the id is not present in the forest.
func FindPath(tree []domain.Category, id string) []domain.Category {
	for _, node := range tree {
		if node.ID == id {
			return []domain.Category{node}
		}
		if sub := FindPath(node.Children, id); sub != nil {
			return append([]domain.Category{node}, sub...)
		}
	}
	return nil
}

// Stats summarizes a category forest for the list-view header.
type Stats struct {
	Total         int
	Roots         int
	Subcategories int
}

// Summarize counts the nodes of a forest.
func Summarize(tree []domain.Category) Stats {
	total := len(Flatten(tree))
	return Stats{
		Total:         total,
		Roots:         len(tree),
		Subcategories: total - len(tree),
	}
}
