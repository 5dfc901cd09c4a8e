package catalog

import (
	"errors"
	"fmt"

	"wholesale-admin/internal/domain"
)

// MaxSelectorLevels caps the cascading category pick in the product form.
// The tree itself may be deeper; the selector never descends past this.
const MaxSelectorLevels = 3

var ErrLevelOutOfRange = errors.New("selector level out of range")

// Selector is the cascading level-by-level category pick used when
// assigning a product's primary category. At level L the options are the
// children of the node selected at level L-1 (the root list at level 0).
// Lookups re-walk from the root along the stored partial path instead of
// keeping per-level copies of the tree.
type Selector struct {
	tree []domain.Category
	path []string
}

// NewSelector creates an empty selection over a category forest.
func NewSelector(tree []domain.Category) *Selector {
	return &Selector{tree: tree}
}

// OptionsAt returns the selectable categories at the given level under
// the current partial selection. An empty result means a leaf has been
// reached and the level's selector is omitted from the form.
func (s *Selector) OptionsAt(level int) []domain.Category {
	if level < 0 || level >= MaxSelectorLevels {
		return nil
	}
	current := s.tree
	for i := 0; i < level; i++ {
		if i >= len(s.path) {
			return nil
		}
		var found *domain.Category
		for j := range current {
			if current[j].ID == s.path[i] {
				found = &current[j]
				break
			}
		}
		if found == nil {
			return nil
		}
		current = found.Children
	}
	return current
}

// Select records a pick at the given level. Selections at deeper levels
// are invalidated. The id must be one of the options offered at that
// level.
func (s *Selector) Select(level int, id string) error {
	if level < 0 || level >= MaxSelectorLevels {
		return fmt.Errorf("%w: %d", ErrLevelOutOfRange, level)
	}
	options := s.OptionsAt(level)
	valid := false
	for _, opt := range options {
		if opt.ID == id {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("category %q is not selectable at level %d", id, level)
	}
	s.path = append(s.path[:level], id)
	return nil
}

// Clear drops the selection at the given level and everything deeper.
func (s *Selector) Clear(level int) {
	if level < 0 || level > len(s.path) {
		return
	}
	s.path = s.path[:level]
}

// Path returns the selected category ids from root to deepest.
func (s *Selector) Path() []string {
	path := make([]string, len(s.path))
	copy(path, s.path)
	return path
}

// PrimaryCategory returns the deepest selected category id, which becomes
// the product's primary category. Empty when nothing is selected.
func (s *Selector) PrimaryCategory() string {
	if len(s.path) == 0 {
		return ""
	}
	return s.path[len(s.path)-1]
}

// SelectSlugPath resolves a slug path like "produce/fruit/citrus" level
// by level, at most MaxSelectorLevels deep.
func (s *Selector) SelectSlugPath(slugs []string) error {
	if len(slugs) > MaxSelectorLevels {
		return fmt.Errorf("category path exceeds %d levels", MaxSelectorLevels)
	}
	s.path = s.path[:0]
	for level, slug := range slugs {
		id := ""
		for _, opt := range s.OptionsAt(level) {
			if opt.Slug == slug {
				id = opt.ID
				break
			}
		}
		if id == "" {
			return fmt.Errorf("no category with slug %q at level %d", slug, level)
		}
		if err := s.Select(level, id); err != nil {
			return err
		}
	}
	return nil
}
