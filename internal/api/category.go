package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wholesale-admin/internal/domain"
)

// Categories lists every category flat.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	return c.categoryList(ctx, "/category")
}

// CategoryTree returns the server-built nested category forest.
func (c *Client) CategoryTree(ctx context.Context) ([]domain.Category, error) {
	return c.categoryList(ctx, "/category/tree")
}

// ParentCategories lists the categories eligible as parents in the
// add/edit form.
func (c *Client) ParentCategories(ctx context.Context) ([]domain.Category, error) {
	return c.categoryList(ctx, "/category/parent-categories")
}

func (c *Client) categoryList(ctx context.Context, endpoint string) ([]domain.Category, error) {
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, endpoint, nil, &raw); err != nil {
		return nil, err
	}
	return normalizeCategoryList(raw, c.logger), nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, in domain.CategoryInput) (domain.Category, error) {
	return c.categoryMutation(ctx, http.MethodPost, "/category", in)
}

// UpdateCategory updates name/slug/description/parent in place by id.
func (c *Client) UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (domain.Category, error) {
	return c.categoryMutation(ctx, http.MethodPut, "/category/"+id, in)
}

func (c *Client) categoryMutation(ctx context.Context, method, endpoint string, in domain.CategoryInput) (domain.Category, error) {
	var raw json.RawMessage
	if err := c.request(ctx, method, endpoint, in, &raw); err != nil {
		return domain.Category{}, err
	}

	var category domain.Category
	if err := json.Unmarshal(unwrapData(raw), &category); err != nil {
		return domain.Category{}, fmt.Errorf("unexpected category response shape: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category by id. Deleting a node that still has
// children is the backend's call to refuse; the console only confirms
// with the user first.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/category/"+id, nil, nil)
}
