package service

import (
	"context"
	"errors"
	"testing"

	"wholesale-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type mockOrderAPI struct {
	orders    []domain.Order
	statusErr error
}

func (m *mockOrderAPI) Orders(ctx context.Context) ([]domain.Order, error) {
	return append([]domain.Order(nil), m.orders...), nil
}

func (m *mockOrderAPI) UpdateOrderStatus(ctx context.Context, id, status, notes string) (domain.Order, error) {
	if m.statusErr != nil {
		return domain.Order{}, m.statusErr
	}
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			m.orders[i].Notes = notes
			return m.orders[i], nil
		}
	}
	return domain.Order{}, errors.New("not found")
}

func (m *mockOrderAPI) DeleteOrder(ctx context.Context, id string) error {
	kept := m.orders[:0]
	for _, o := range m.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	m.orders = kept
	return nil
}

func TestOrderSetStatusCarriesNotes(t *testing.T) {
	api := &mockOrderAPI{orders: []domain.Order{
		{ID: "o1", OrderID: "WS-1001", Status: domain.OrderPending},
	}}
	svc := NewOrderService(api, NopNotifier{}, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	updated, err := svc.SetStatus(context.Background(), "o1", domain.OrderShipped, "left dock 4")

	require.NoError(t, err)
	assert.Equal(t, domain.OrderShipped, updated.Status)
	assert.Equal(t, "left dock 4", updated.Notes)
	assert.Equal(t, domain.OrderShipped, svc.List[0].Status)
}

func TestOrderSetStatusFailureKeepsList(t *testing.T) {
	api := &mockOrderAPI{
		orders:    []domain.Order{{ID: "o1", Status: domain.OrderPending}},
		statusErr: errors.New("conflict"),
	}
	notifier := &recordingNotifier{}
	svc := NewOrderService(api, notifier, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	_, err := svc.SetStatus(context.Background(), "o1", domain.OrderShipped, "")

	require.Error(t, err)
	assert.Equal(t, domain.OrderPending, svc.List[0].Status)
	assert.Error(t, svc.Err)
}

func TestOrderDeleteFiltersList(t *testing.T) {
	api := &mockOrderAPI{orders: []domain.Order{{ID: "o1"}, {ID: "o2"}, {ID: "o3"}}}
	svc := NewOrderService(api, NopNotifier{}, zap.NewNop())
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Delete(context.Background(), "o2"))

	require.Len(t, svc.List, 2)
	assert.Equal(t, "o1", svc.List[0].ID)
	assert.Equal(t, "o3", svc.List[1].ID)
}
