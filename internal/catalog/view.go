package catalog

import "wholesale-admin/internal/domain"

// MaxSubcategoryDepth is the deepest level that still offers an
// "add subcategory" action: roots are level 0, so nodes at levels 0 and 1
// can take children through the console.
const MaxSubcategoryDepth = 2

// TreeView is the expand/collapse state of the hierarchical category list.
// All nodes start collapsed.
type TreeView struct {
	tree     []domain.Category
	expanded map[string]struct{}
}

// NewTreeView creates a fully collapsed view over a category forest.
func NewTreeView(tree []domain.Category) *TreeView {
	return &TreeView{
		tree:     tree,
		expanded: make(map[string]struct{}),
	}
}

// SetTree replaces the underlying forest after a refetch, keeping the
// expanded set so a refresh does not collapse the view.
func (v *TreeView) SetTree(tree []domain.Category) {
	v.tree = tree
}

// Toggle flips the expanded state of a node id.
func (v *TreeView) Toggle(id string) {
	if _, ok := v.expanded[id]; ok {
		delete(v.expanded, id)
	} else {
		v.expanded[id] = struct{}{}
	}
}

// Expanded reports whether a node id is currently expanded.
func (v *TreeView) Expanded(id string) bool {
	_, ok := v.expanded[id]
	return ok
}

// Row is a single visible line of the rendered tree.
type Row struct {
	Category    domain.Category
	Depth       int
	HasChildren bool
	Expanded    bool
	// CanAddChild is true for nodes shallow enough to take a
	// subcategory through the console.
	CanAddChild bool
}

// Rows walks the forest and returns the visible rows in render order.
// Children of a collapsed node are hidden; a leaf never carries an
// expand control.
func (v *TreeView) Rows() []Row {
	var rows []Row
	var walk func(nodes []domain.Category, depth int)
	walk = func(nodes []domain.Category, depth int) {
		for _, node := range nodes {
			hasChildren := len(node.Children) > 0
			expanded := v.Expanded(node.ID)
			rows = append(rows, Row{
				Category:    node,
				Depth:       depth,
				HasChildren: hasChildren,
				Expanded:    hasChildren && expanded,
				CanAddChild: depth < MaxSubcategoryDepth,
			})
			if hasChildren && expanded {
				walk(node.Children, depth+1)
			}
		}
	}
	walk(v.tree, 0)
	return rows
}

// Stats returns the counts for the view header.
func (v *TreeView) Stats() Stats {
	return Summarize(v.tree)
}
