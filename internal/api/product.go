package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wholesale-admin/internal/domain"
)

// Products lists every product.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	var raw json.RawMessage
	if err := c.request(ctx, http.MethodGet, "/products", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeProductList(raw, c.logger), nil
}

// CreateProduct adds a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	return c.productMutation(ctx, http.MethodPost, "/products", in)
}

// UpdateProduct replaces a product by id and returns the stored record.
func (c *Client) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (domain.Product, error) {
	return c.productMutation(ctx, http.MethodPut, "/products/"+id, in)
}

func (c *Client) productMutation(ctx context.Context, method, endpoint string, in domain.ProductInput) (domain.Product, error) {
	var raw json.RawMessage
	if err := c.request(ctx, method, endpoint, in, &raw); err != nil {
		return domain.Product{}, err
	}

	product, ok := normalizeProduct(raw, c.logger)
	if !ok {
		return domain.Product{}, fmt.Errorf("product response carries no product")
	}
	return product, nil
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}
