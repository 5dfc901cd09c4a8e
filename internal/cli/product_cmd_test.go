package cli

import (
	"testing"

	"wholesale-admin/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackOption(t *testing.T) {
	pack, err := parsePackOption("bag:25:18.99")
	require.NoError(t, err)
	assert.Equal(t, domain.PackOption{
		Unit:     "bag",
		Quantity: 25,
		Price:    decimal.RequireFromString("18.99"),
	}, pack)

	for _, spec := range []string{
		"bag:25",          // missing price
		"bag:25:1:extra",  // too many parts
		"bag:zero:1.00",   // non-numeric quantity
		"bag:0:1.00",      // quantity must be positive
		"bag:25:-3.00",    // negative price
		"bag:25:one euro", // non-numeric price
	} {
		_, err := parsePackOption(spec)
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestInputFromProductRoundTrip(t *testing.T) {
	product := domain.Product{
		ID:              "p1",
		SKU:             "RICE-25",
		Slug:            "basmati-rice",
		Name:            "Basmati Rice",
		BasePrice:       decimal.RequireFromString("42.50"),
		PrimaryCategory: "c9",
		PackOptions:     []domain.PackOption{{Unit: "bag", Quantity: 25}},
		Images:          []string{"https://cdn/rice.jpg"},
		Stock:           domain.Stock{Level: 7, Status: domain.StockLowStock},
		IsActive:        true,
	}

	in := inputFromProduct(product)

	assert.Equal(t, product.SKU, in.SKU)
	assert.Equal(t, product.PrimaryCategory, in.PrimaryCategory)
	assert.Equal(t, product.PackOptions, in.PackOptions)
	assert.Equal(t, product.Stock, in.Stock)
	assert.True(t, product.BasePrice.Equal(in.BasePrice))
}
