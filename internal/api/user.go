package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wholesale-admin/internal/domain"
)

type userStatusRequest struct {
	Status string `json:"status"`
}

// Users lists every store account.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/users", nil, &raw); err != nil {
		return nil, err
	}

	var users []domain.User
	if err := json.Unmarshal(unwrapData(raw), &users); err != nil {
		return nil, fmt.Errorf("unexpected user list response shape: %w", err)
	}
	return users, nil
}

// UpdateUserStatus sets an account's status, e.g. active or suspended.
func (c *Client) UpdateUserStatus(ctx context.Context, id, status string) (domain.User, error) {
	var raw json.RawMessage
	err := c.request(ctx, http.MethodPut, "/users/"+id+"/status", userStatusRequest{Status: status}, &raw)
	if err != nil {
		return domain.User{}, err
	}

	var user domain.User
	if err := json.Unmarshal(unwrapData(raw), &user); err != nil {
		return domain.User{}, fmt.Errorf("unexpected user response shape: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account by id.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/users/"+id, nil, nil)
}
