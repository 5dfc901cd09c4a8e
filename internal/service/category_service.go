package service

import (
	"context"
	"fmt"

	"wholesale-admin/internal/domain"

	"go.uber.org/zap"
)

// CategoryAPI is the slice of the backend client the category service
// uses.
type CategoryAPI interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	CategoryTree(ctx context.Context) ([]domain.Category, error)
	ParentCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryService holds the category state: the flat list, the nested
// tree, and the parent candidates for the add/edit form. Every mutation
// refetches the tree and the parent list only after the mutation
// resolved, so the held tree always reflects at least the just-completed
// change.
type CategoryService struct {
	api      CategoryAPI
	notifier Notifier
	logger   *zap.Logger

	List    []domain.Category
	Tree    []domain.Category
	Parents []domain.Category
	Err     error
}

// NewCategoryService creates an empty category slice.
func NewCategoryService(api CategoryAPI, notifier Notifier, logger *zap.Logger) *CategoryService {
	return &CategoryService{api: api, notifier: notifier, logger: logger}
}

// RefreshList fetches the flat category list.
func (s *CategoryService) RefreshList(ctx context.Context) error {
	list, err := s.api.Categories(ctx)
	if err != nil {
		return s.fail(err, "Failed to load categories")
	}
	s.List = list
	s.Err = nil
	return nil
}

// RefreshTree fetches the nested category forest.
func (s *CategoryService) RefreshTree(ctx context.Context) error {
	tree, err := s.api.CategoryTree(ctx)
	if err != nil {
		return s.fail(err, "Failed to load category tree")
	}
	s.Tree = tree
	s.Err = nil
	return nil
}

// RefreshParents fetches the parent-eligible categories.
func (s *CategoryService) RefreshParents(ctx context.Context) error {
	parents, err := s.api.ParentCategories(ctx)
	if err != nil {
		return s.fail(err, "Failed to load parent categories")
	}
	s.Parents = parents
	s.Err = nil
	return nil
}

// Add creates a category, then refetches tree and parents.
func (s *CategoryService) Add(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	if err := domain.Validate(in); err != nil {
		return domain.Category{}, s.fail(err, "Name and slug are required")
	}

	created, err := s.api.CreateCategory(ctx, in)
	if err != nil {
		return domain.Category{}, s.fail(err, "Failed to add category")
	}

	s.List = append(s.List, created)
	s.notifier.Success("Category created successfully")
	s.refetch(ctx)
	return created, nil
}

// Update edits a category in place by id, then refetches tree and
// parents.
func (s *CategoryService) Update(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error) {
	if err := domain.Validate(in); err != nil {
		return domain.Category{}, s.fail(err, "Name and slug are required")
	}

	updated, err := s.api.UpdateCategory(ctx, id, in)
	if err != nil {
		return domain.Category{}, s.fail(err, "Failed to update category")
	}

	for i := range s.List {
		if s.List[i].ID == id {
			s.List[i] = updated
			break
		}
	}
	s.notifier.Success("Category updated successfully")
	s.refetch(ctx)
	return updated, nil
}

// Delete removes a category by id, then refetches tree and parents. The
// caller is responsible for having confirmed the deletion with the user.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteCategory(ctx, id); err != nil {
		return s.fail(err, "Failed to delete category")
	}

	kept := s.List[:0]
	for _, c := range s.List {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.List = kept
	s.notifier.Success("Category deleted successfully")
	s.refetch(ctx)
	return nil
}

// refetch reloads tree and parents after a resolved mutation. Failures
// here keep the previous slices and surface through the usual notifier
// path.
func (s *CategoryService) refetch(ctx context.Context) {
	if err := s.RefreshTree(ctx); err != nil {
		s.logger.Warn("Tree refetch after mutation failed", zap.Error(err))
	}
	if err := s.RefreshParents(ctx); err != nil {
		s.logger.Warn("Parent refetch after mutation failed", zap.Error(err))
	}
}

func (s *CategoryService) fail(err error, notice string) error {
	s.Err = err
	s.notifier.Error(notice)
	s.logger.Debug("Category operation failed", zap.Error(err))
	return fmt.Errorf("%s: %w", notice, err)
}
