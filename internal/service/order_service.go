package service

import (
	"context"
	"fmt"

	"wholesale-admin/internal/domain"

	"go.uber.org/zap"
)

// OrderAPI is the slice of the backend client the order service uses.
type OrderAPI interface {
	Orders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status, notes string) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// OrderService holds the order list. Orders are created by the
// storefront; the console only reads, edits status/notes, and deletes.
type OrderService struct {
	api      OrderAPI
	notifier Notifier
	logger   *zap.Logger

	List []domain.Order
	Err  error
}

// NewOrderService creates an empty order slice.
func NewOrderService(api OrderAPI, notifier Notifier, logger *zap.Logger) *OrderService {
	return &OrderService{api: api, notifier: notifier, logger: logger}
}

// Refresh fetches the full order list.
func (s *OrderService) Refresh(ctx context.Context) error {
	list, err := s.api.Orders(ctx)
	if err != nil {
		return s.fail(err, "Failed to load orders")
	}
	s.List = list
	s.Err = nil
	return nil
}

// SetStatus updates an order's status and notes; the stored record
// replaces the list entry with the same id.
func (s *OrderService) SetStatus(ctx context.Context, id, status, notes string) (domain.Order, error) {
	updated, err := s.api.UpdateOrderStatus(ctx, id, status, notes)
	if err != nil {
		return domain.Order{}, s.fail(err, "Failed to update order")
	}

	for i := range s.List {
		if s.List[i].ID == updated.ID {
			s.List[i] = updated
			break
		}
	}
	s.Err = nil
	s.notifier.Success("Order status updated")
	return updated, nil
}

// Delete removes an order by id and filters it from the list.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteOrder(ctx, id); err != nil {
		return s.fail(err, "Failed to delete order")
	}

	kept := s.List[:0]
	for _, o := range s.List {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.List = kept
	s.Err = nil
	s.notifier.Success("Order deleted")
	return nil
}

func (s *OrderService) fail(err error, notice string) error {
	s.Err = err
	s.notifier.Error(notice)
	s.logger.Debug("Order operation failed", zap.Error(err))
	return fmt.Errorf("%s: %w", notice, err)
}
