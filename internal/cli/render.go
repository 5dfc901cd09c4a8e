package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"wholesale-admin/internal/catalog"
	"wholesale-admin/internal/domain"
)

// renderTree prints the visible rows of the category tree view. Collapsed
// nodes show a ▸ marker, expanded ones ▾, leaves neither.
func renderTree(out io.Writer, view *catalog.TreeView) {
	rows := view.Rows()
	if len(rows) == 0 {
		fmt.Fprintln(out, "No categories found. Add your first category to get started.")
		return
	}

	for _, row := range rows {
		marker := "  "
		if row.HasChildren {
			if row.Expanded {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}

		line := strings.Repeat("    ", row.Depth) + marker + row.Category.Name
		detail := row.Category.Slug
		if row.Category.Description != "" {
			detail += " - " + row.Category.Description
		}
		fmt.Fprintf(out, "%s  (%s)  [id %s]\n", line, detail, row.Category.ID)
	}

	stats := view.Stats()
	fmt.Fprintf(out, "\n%d categories: %d top-level, %d subcategories\n",
		stats.Total, stats.Roots, stats.Subcategories)
}

func renderCategoryList(out io.Writer, categories []domain.Category) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG\tPARENT")
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Slug, c.Parent)
	}
	w.Flush()
}

func renderProducts(out io.Writer, products []domain.Product) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNAME\tPRICE\tSTOCK\tSTATUS\tACTIVE")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%t\n",
			p.ID, p.SKU, p.Name, p.BasePrice.StringFixed(2),
			p.Stock.Level, p.Stock.Status, p.IsActive)
	}
	w.Flush()
}

func renderOrders(out io.Writer, orders []domain.Order) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tCUSTOMER\tITEMS\tTOTAL\tSTATUS\tNOTES")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			o.ID, o.OrderID, o.CustomerInfo.Name, len(o.Items),
			o.OrderTotal.StringFixed(2), o.Status, o.Notes)
	}
	w.Flush()
}

func renderUsers(out io.Writer, users []domain.User) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tSTATUS")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.Status)
	}
	w.Flush()
}
