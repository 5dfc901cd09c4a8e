package service

import (
	"context"
	"fmt"

	"wholesale-admin/internal/domain"

	"go.uber.org/zap"
)

// ProductAPI is the slice of the backend client the product service uses.
type ProductAPI interface {
	Products(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ProductService holds the product list and patches it optimistically
// keyed by id when a mutation resolves: create prepends, update replaces,
// delete filters.
type ProductService struct {
	api      ProductAPI
	notifier Notifier
	logger   *zap.Logger

	List []domain.Product
	Err  error
}

// NewProductService creates an empty product slice.
func NewProductService(api ProductAPI, notifier Notifier, logger *zap.Logger) *ProductService {
	return &ProductService{api: api, notifier: notifier, logger: logger}
}

// Refresh fetches the full product list.
func (s *ProductService) Refresh(ctx context.Context) error {
	list, err := s.api.Products(ctx)
	if err != nil {
		s.List = []domain.Product{}
		return s.fail(err, "Failed to load products")
	}
	s.List = list
	s.Err = nil
	return nil
}

// Create validates and submits a new product; the stored record is
// prepended to the list.
func (s *ProductService) Create(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return domain.Product{}, s.fail(err, "Product form is incomplete")
	}

	created, err := s.api.CreateProduct(ctx, in)
	if err != nil {
		return domain.Product{}, s.fail(err, "Failed to create product")
	}

	s.List = append([]domain.Product{created}, s.List...)
	s.Err = nil
	s.notifier.Success("Product created successfully")
	return created, nil
}

// Update validates and submits a full product replacement; the stored
// record replaces the list entry with the same id.
func (s *ProductService) Update(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	in.Normalize()
	if err := domain.Validate(in); err != nil {
		return domain.Product{}, s.fail(err, "Product form is incomplete")
	}

	updated, err := s.api.UpdateProduct(ctx, id, in)
	if err != nil {
		return domain.Product{}, s.fail(err, "Failed to update product")
	}

	for i := range s.List {
		if s.List[i].ID == updated.ID {
			s.List[i] = updated
			break
		}
	}
	s.Err = nil
	s.notifier.Success("Product updated successfully")
	return updated, nil
}

// Delete removes a product by id and filters it from the list.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteProduct(ctx, id); err != nil {
		return s.fail(err, "Failed to delete product")
	}

	kept := s.List[:0]
	for _, p := range s.List {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.List = kept
	s.Err = nil
	s.notifier.Success("Product deleted successfully")
	return nil
}

func (s *ProductService) fail(err error, notice string) error {
	s.Err = err
	s.notifier.Error(notice)
	s.logger.Debug("Product operation failed", zap.Error(err))
	return fmt.Errorf("%s: %w", notice, err)
}
