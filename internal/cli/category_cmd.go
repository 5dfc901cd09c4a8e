package cli

import (
	"context"
	"errors"
	"fmt"

	"wholesale-admin/internal/catalog"
	"wholesale-admin/internal/domain"

	"github.com/spf13/pflag"
)

func (a *App) runCategory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin category list|tree|add|update|delete")
	}

	switch args[0] {
	case "list":
		if err := a.categories.RefreshList(ctx); err != nil {
			return err
		}
		renderCategoryList(a.out, a.categories.List)
		return nil
	case "tree":
		return a.runCategoryTree(ctx, args[1:])
	case "add":
		return a.runCategoryAdd(ctx, args[1:])
	case "update":
		return a.runCategoryUpdate(ctx, args[1:])
	case "delete":
		return a.runCategoryDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown category command %q", args[0])
	}
}

func (a *App) runCategoryTree(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("category tree", pflag.ContinueOnError)
	expand := flags.StringSlice("expand", nil, "category ids to expand")
	all := flags.Bool("all", false, "expand every node")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := a.categories.RefreshTree(ctx); err != nil {
		return err
	}

	view := catalog.NewTreeView(a.categories.Tree)
	if *all {
		for _, node := range catalog.Flatten(a.categories.Tree) {
			if len(node.Children) > 0 {
				view.Toggle(node.ID)
			}
		}
	} else {
		for _, id := range *expand {
			view.Toggle(id)
		}
	}

	renderTree(a.out, view)
	return nil
}

func categoryFlags(name string) (*pflag.FlagSet, *domain.CategoryInput) {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	in := &domain.CategoryInput{}
	flags.StringVar(&in.Name, "name", "", "category name")
	flags.StringVar(&in.Slug, "slug", "", "category slug (defaults to a slug of the name)")
	flags.StringVar(&in.Description, "description", "", "category description")
	flags.StringVar(&in.Parent, "parent", "", "parent category id")
	return flags, in
}

func (a *App) runCategoryAdd(ctx context.Context, args []string) error {
	flags, in := categoryFlags("category add")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if in.Slug == "" && in.Name != "" {
		in.Slug = domain.Slugify(in.Name)
	}

	if in.Parent != "" {
		if err := a.checkParentDepth(ctx, in.Parent); err != nil {
			return err
		}
	}

	created, err := a.categories.Add(ctx, *in)
	if err != nil {
		return err
	}

	view := catalog.NewTreeView(a.categories.Tree)
	if path := catalog.FindPath(a.categories.Tree, created.ID); path != nil {
		for _, node := range path[:len(path)-1] {
			view.Toggle(node.ID)
		}
	}
	renderTree(a.out, view)
	return nil
}

// checkParentDepth refuses subcategories deeper than the console's
// add-subcategory limit, matching the tree view's action rules.
func (a *App) checkParentDepth(ctx context.Context, parentID string) error {
	if len(a.categories.Tree) == 0 {
		if err := a.categories.RefreshTree(ctx); err != nil {
			return err
		}
	}
	path := catalog.FindPath(a.categories.Tree, parentID)
	if path == nil {
		return fmt.Errorf("parent category %q not found", parentID)
	}
	if len(path)-1 >= catalog.MaxSubcategoryDepth {
		return fmt.Errorf("categories nest at most %d levels deep", catalog.MaxSubcategoryDepth+1)
	}
	return nil
}

func (a *App) runCategoryUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin category update <id> [flags]")
	}
	id := args[0]

	flags, in := categoryFlags("category update")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	// Unset flags keep the current values, so an update can change a
	// single field.
	if err := a.categories.RefreshList(ctx); err != nil {
		return err
	}
	for _, current := range a.categories.List {
		if current.ID != id {
			continue
		}
		if !flags.Changed("name") {
			in.Name = current.Name
		}
		if !flags.Changed("slug") {
			in.Slug = current.Slug
		}
		if !flags.Changed("description") {
			in.Description = current.Description
		}
		if !flags.Changed("parent") {
			in.Parent = current.Parent.String()
		}
	}

	if _, err := a.categories.Update(ctx, id, *in); err != nil {
		return err
	}
	renderTree(a.out, catalog.NewTreeView(a.categories.Tree))
	return nil
}

func (a *App) runCategoryDelete(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("category delete", pflag.ContinueOnError)
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("usage: admin category delete <id>")
	}
	id := flags.Arg(0)

	if !*yes && !a.confirm("Are you sure you want to delete this category?") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.categories.Delete(ctx, id); err != nil {
		return err
	}
	renderTree(a.out, catalog.NewTreeView(a.categories.Tree))
	return nil
}
