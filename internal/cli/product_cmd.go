package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"wholesale-admin/internal/catalog"
	"wholesale-admin/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

func (a *App) runProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin product list|add|update|delete")
	}

	switch args[0] {
	case "list":
		if err := a.products.Refresh(ctx); err != nil {
			return err
		}
		renderProducts(a.out, a.products.List)
		return nil
	case "add":
		return a.runProductAdd(ctx, args[1:])
	case "update":
		return a.runProductUpdate(ctx, args[1:])
	case "delete":
		return a.runProductDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown product command %q", args[0])
	}
}

// productFlags declares the product form fields. Prices parse as
// decimals; pack options use "unit:quantity:price".
func productFlags(name string, in *domain.ProductInput) (*pflag.FlagSet, *productFormState) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	form := &productFormState{in: in}

	flags.StringVar(&in.Name, "name", in.Name, "product name")
	flags.StringVar(&in.SKU, "sku", in.SKU, "stock keeping unit (unique)")
	flags.StringVar(&in.Slug, "slug", in.Slug, "url slug (defaults to a slug of the name)")
	flags.StringVar(&in.Brand, "brand", in.Brand, "brand")
	flags.StringVar(&in.Description, "description", in.Description, "long description")
	flags.StringVar(&in.ShortDescription, "short-description", in.ShortDescription, "short description")
	flags.StringVar(&form.basePrice, "base-price", "", "base price, e.g. 12.50")
	flags.StringVar(&form.categoryPath, "category", "", "category slug path, e.g. produce/fruit/citrus")
	flags.StringSliceVar(&form.packs, "pack", nil, "pack option unit:quantity:price (repeatable)")
	flags.StringSliceVar(&in.Images, "image", in.Images, "image url (repeatable, blanks dropped)")
	flags.IntVar(&in.Stock.Level, "stock-level", in.Stock.Level, "stock level")
	flags.StringVar(&form.stockStatus, "stock-status", string(in.Stock.Status), "in_stock|low_stock|out_of_stock")
	flags.BoolVar(&in.IsFeatured, "featured", in.IsFeatured, "feature on the storefront")
	flags.BoolVar(&in.IsActive, "active", in.IsActive, "visible on the storefront")
	flags.StringVar(&in.MetaTitle, "meta-title", in.MetaTitle, "seo title")
	flags.StringVar(&in.MetaDescription, "meta-description", in.MetaDescription, "seo description")

	return flags, form
}

type productFormState struct {
	in           *domain.ProductInput
	basePrice    string
	categoryPath string
	packs        []string
	stockStatus  string
}

// apply resolves the string-typed form fields onto the input. The
// category path runs through the cascading selector so the deepest
// selected node becomes the primary category.
func (f *productFormState) apply(ctx context.Context, a *App, flags *pflag.FlagSet) error {
	in := f.in

	if in.Slug == "" && in.Name != "" {
		in.Slug = domain.Slugify(in.Name)
	}

	if f.basePrice != "" {
		price, err := decimal.NewFromString(f.basePrice)
		if err != nil || price.IsNegative() {
			return fmt.Errorf("invalid base price %q", f.basePrice)
		}
		in.BasePrice = price
	}

	in.Stock.Status = domain.StockStatus(f.stockStatus)
	switch in.Stock.Status {
	case domain.StockInStock, domain.StockLowStock, domain.StockOutOfStock:
	default:
		return fmt.Errorf("invalid stock status %q", f.stockStatus)
	}

	if flags.Changed("pack") {
		in.PackOptions = in.PackOptions[:0]
		for _, spec := range f.packs {
			pack, err := parsePackOption(spec)
			if err != nil {
				return err
			}
			in.PackOptions = append(in.PackOptions, pack)
		}
	}

	if f.categoryPath != "" {
		if err := a.categories.RefreshTree(ctx); err != nil {
			return err
		}
		selector := catalog.NewSelector(a.categories.Tree)
		if err := selector.SelectSlugPath(strings.Split(f.categoryPath, "/")); err != nil {
			return err
		}
		in.PrimaryCategory = selector.PrimaryCategory()
	}

	return nil
}

func parsePackOption(spec string) (domain.PackOption, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return domain.PackOption{}, fmt.Errorf("pack %q must be unit:quantity:price", spec)
	}

	quantity, err := strconv.Atoi(parts[1])
	if err != nil || quantity <= 0 {
		return domain.PackOption{}, fmt.Errorf("pack %q has an invalid quantity", spec)
	}
	price, err := decimal.NewFromString(parts[2])
	if err != nil || price.IsNegative() {
		return domain.PackOption{}, fmt.Errorf("pack %q has an invalid price", spec)
	}

	return domain.PackOption{Unit: parts[0], Quantity: quantity, Price: price}, nil
}

func (a *App) runProductAdd(ctx context.Context, args []string) error {
	in := domain.NewProductInput()
	flags, form := productFlags("product add", &in)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := form.apply(ctx, a, flags); err != nil {
		return err
	}

	created, err := a.products.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created product %s (%s)\n", created.Name, created.ID)
	return nil
}

func (a *App) runProductUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin product update <id> [flags]")
	}
	id := args[0]

	// Start from the stored record so unset flags keep their values.
	if err := a.products.Refresh(ctx); err != nil {
		return err
	}
	var in domain.ProductInput
	found := false
	for _, p := range a.products.List {
		if p.ID == id {
			in = inputFromProduct(p)
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("product %q not found", id)
	}

	flags, form := productFlags("product update", &in)
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if err := form.apply(ctx, a, flags); err != nil {
		return err
	}

	updated, err := a.products.Update(ctx, id, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated product %s (%s)\n", updated.Name, updated.ID)
	return nil
}

func inputFromProduct(p domain.Product) domain.ProductInput {
	return domain.ProductInput{
		SKU:              p.SKU,
		Slug:             p.Slug,
		Name:             p.Name,
		Brand:            p.Brand,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		BasePrice:        p.BasePrice,
		PrimaryCategory:  p.PrimaryCategory,
		PackOptions:      p.PackOptions,
		Images:           p.Images,
		Stock:            p.Stock,
		IsFeatured:       p.IsFeatured,
		IsActive:         p.IsActive,
		MetaTitle:        p.MetaTitle,
		MetaDescription:  p.MetaDescription,
	}
}

func (a *App) runProductDelete(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("product delete", pflag.ContinueOnError)
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("usage: admin product delete <id>")
	}
	id := flags.Arg(0)

	if !*yes && !a.confirm("Are you sure you want to delete this product?") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.products.Delete(ctx, id)
}
