package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wholesale-admin/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type principalResponse struct {
	User domain.User `json:"user"`
}

// Login authenticates against the admin login endpoint. The session
// cookie lands in the client's jar; the returned user is the principal.
func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	var raw json.RawMessage
	err := c.request(ctx, http.MethodPost, "/admin-auth/login", loginRequest{Email: email, Password: password}, &raw)
	if err != nil {
		return domain.User{}, err
	}
	return decodePrincipal(raw)
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.request(ctx, http.MethodPost, "/admin-auth/logout", nil, nil)
}

// Me returns the principal behind the current session cookie.
func (c *Client) Me(ctx context.Context) (domain.User, error) {
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/admin-auth/me", nil, &raw); err != nil {
		return domain.User{}, err
	}
	return decodePrincipal(raw)
}

func decodePrincipal(raw json.RawMessage) (domain.User, error) {
	var resp principalResponse
	if err := json.Unmarshal(unwrapData(raw), &resp); err != nil || resp.User.ID == "" {
		return domain.User{}, fmt.Errorf("auth response carries no user")
	}
	return resp.User, nil
}
