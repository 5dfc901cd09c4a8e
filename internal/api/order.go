package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wholesale-admin/internal/domain"
)

type orderStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// Orders lists every order.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/order", nil, &raw); err != nil {
		return nil, err
	}

	var orders []domain.Order
	if err := json.Unmarshal(unwrapData(raw), &orders); err != nil {
		return nil, fmt.Errorf("unexpected order list response shape: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sets an order's status and optional admin notes.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, status, notes string) (domain.Order, error) {
	var raw json.RawMessage
	err := c.request(ctx, http.MethodPut, "/order/"+id+"/status", orderStatusRequest{Status: status, Notes: notes}, &raw)
	if err != nil {
		return domain.Order{}, err
	}

	var order domain.Order
	if err := json.Unmarshal(unwrapData(raw), &order); err != nil {
		return domain.Order{}, fmt.Errorf("unexpected order response shape: %w", err)
	}
	return order, nil
}

// DeleteOrder removes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/order/"+id, nil, nil)
}
