package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Basmati Rice 25kg":   "basmati-rice-25kg",
		"Extra  Virgin   Oil": "extra-virgin-oil",
		"Señor's Coffee!":     "seors-coffee",
		"already-sluggy":      "already-sluggy",
		"Dash -- Heavy":       "dash-heavy",
	}
	for name, want := range cases {
		assert.Equal(t, want, Slugify(name), "Slugify(%q)", name)
	}
}

func TestProperty_SlugifyProducesValidSlugs(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("slugs contain only lowercase letters, digits and single dashes", prop.ForAll(
		func(name string) bool {
			slug := Slugify(name)
			for i, r := range slug {
				switch {
				case r >= 'a' && r <= 'z':
				case r >= '0' && r <= '9':
				case r == '-':
					if i > 0 && slug[i-1] == '-' {
						t.Logf("FAIL: repeated dash in %q from %q", slug, name)
						return false
					}
				default:
					t.Logf("FAIL: invalid rune %q in %q from %q", r, slug, name)
					return false
				}
			}
			return true
		},
		gen.RegexMatch(`[A-Za-z0-9 !@#'&-]{0,30}`),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestProductInputDefaults(t *testing.T) {
	in := NewProductInput()

	require.Len(t, in.PackOptions, 1)
	assert.Equal(t, 1, in.PackOptions[0].Quantity)
	assert.Equal(t, StockInStock, in.Stock.Status)
	assert.True(t, in.IsActive)
	assert.False(t, in.IsFeatured)
}

func TestProductInputNormalizeDropsBlankImages(t *testing.T) {
	in := NewProductInput()
	in.Images = []string{"", "https://cdn/a.jpg", "   ", "https://cdn/b.jpg"}

	in.Normalize()

	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, in.Images)
}

func TestProductInputValidation(t *testing.T) {
	valid := NewProductInput()
	valid.SKU = "SKU-1"
	valid.Name = "Rice"
	valid.Slug = "rice"
	valid.PackOptions = []PackOption{{Unit: "bag", Quantity: 5}}
	assert.NoError(t, Validate(valid))

	t.Run("pack options must not be empty", func(t *testing.T) {
		in := valid
		in.PackOptions = nil
		assert.Error(t, Validate(in))
	})

	t.Run("pack quantity must be positive", func(t *testing.T) {
		in := valid
		in.PackOptions = []PackOption{{Unit: "bag", Quantity: 0}}
		assert.Error(t, Validate(in))
	})

	t.Run("sku is required", func(t *testing.T) {
		in := valid
		in.SKU = ""
		assert.Error(t, Validate(in))
	})
}
