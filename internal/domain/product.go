package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// StockStatus is the availability state shown in the product list.
type StockStatus string

const (
	StockInStock    StockStatus = "in_stock"
	StockLowStock   StockStatus = "low_stock"
	StockOutOfStock StockStatus = "out_of_stock"
)

// PackOption is a purchasable unit/quantity/price combination,
// e.g. "5 kg box" at a given price.
type PackOption struct {
	Unit     string          `json:"unit" validate:"required"`
	Quantity int             `json:"quantity" validate:"gt=0"`
	Price    decimal.Decimal `json:"price"`
}

// Stock tracks the inventory level and derived status of a product.
type Stock struct {
	Level  int         `json:"level" validate:"gte=0"`
	Status StockStatus `json:"status"`
}

// Product represents a catalog product in the wholesale store.
type Product struct {
	ID               string          `json:"_id"`
	SKU              string          `json:"sku"`
	Slug             string          `json:"slug"`
	Name             string          `json:"name"`
	Brand            string          `json:"brand,omitempty"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	PrimaryCategory  string          `json:"primaryCategory,omitempty"`
	PackOptions      []PackOption    `json:"packOptions"`
	Images           []string        `json:"images,omitempty"`
	Stock            Stock           `json:"stock"`
	IsFeatured       bool            `json:"isFeatured"`
	IsActive         bool            `json:"isActive"`
	MetaTitle        string          `json:"metaTitle,omitempty"`
	MetaDescription  string          `json:"metaDescription,omitempty"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	SKU              string          `json:"sku" validate:"required"`
	Slug             string          `json:"slug" validate:"required"`
	Name             string          `json:"name" validate:"required"`
	Brand            string          `json:"brand,omitempty"`
	Description      string          `json:"description,omitempty"`
	ShortDescription string          `json:"shortDescription,omitempty"`
	BasePrice        decimal.Decimal `json:"basePrice"`
	PrimaryCategory  string          `json:"primaryCategory,omitempty"`
	PackOptions      []PackOption    `json:"packOptions" validate:"min=1,dive"`
	Images           []string        `json:"images"`
	Stock            Stock           `json:"stock"`
	IsFeatured       bool            `json:"isFeatured"`
	IsActive         bool            `json:"isActive"`
	MetaTitle        string          `json:"metaTitle,omitempty"`
	MetaDescription  string          `json:"metaDescription,omitempty"`
}

// NewProductInput returns a product input with the form defaults:
// one empty pack option, zero stock marked in stock, active.
func NewProductInput() ProductInput {
	return ProductInput{
		PackOptions: []PackOption{{Quantity: 1}},
		Stock:       Stock{Level: 0, Status: StockInStock},
		IsActive:    true,
	}
}

// Normalize drops blank image URLs before submission.
func (in *ProductInput) Normalize() {
	images := in.Images[:0]
	for _, url := range in.Images {
		if strings.TrimSpace(url) != "" {
			images = append(images, url)
		}
	}
	in.Images = images
}

var (
	slugInvalid  = regexp.MustCompile(`[^a-z0-9 -]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugRepeated = regexp.MustCompile(`-+`)
)

// Slugify derives a URL slug from a display name: lowercase, strip
// punctuation, spaces to dashes, collapse repeated dashes.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = slugInvalid.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugRepeated.ReplaceAllString(slug, "-")
	return slug
}
