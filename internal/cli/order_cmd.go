package cli

import (
	"context"
	"errors"
	"fmt"

	"wholesale-admin/internal/domain"

	"github.com/spf13/pflag"
)

var orderStatuses = []string{
	domain.OrderPending,
	domain.OrderConfirmed,
	domain.OrderProcessing,
	domain.OrderShipped,
	domain.OrderDelivered,
	domain.OrderCancelled,
}

func (a *App) runOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin order list|set-status|delete")
	}

	switch args[0] {
	case "list":
		if err := a.orders.Refresh(ctx); err != nil {
			return err
		}
		renderOrders(a.out, a.orders.List)
		return nil
	case "set-status":
		return a.runOrderSetStatus(ctx, args[1:])
	case "delete":
		return a.runOrderDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown order command %q", args[0])
	}
}

func (a *App) runOrderSetStatus(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("order set-status", pflag.ContinueOnError)
	notes := flags.String("notes", "", "internal notes stored with the status")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		return errors.New("usage: admin order set-status <id> <status> [--notes ...]")
	}
	id, status := flags.Arg(0), flags.Arg(1)

	if !validOrderStatus(status) {
		return fmt.Errorf("invalid status %q, expected one of %v", status, orderStatuses)
	}

	updated, err := a.orders.SetStatus(ctx, id, status, *notes)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Order %s is now %s\n", updated.OrderID, updated.Status)
	return nil
}

func validOrderStatus(status string) bool {
	for _, s := range orderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func (a *App) runOrderDelete(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("order delete", pflag.ContinueOnError)
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("usage: admin order delete <id>")
	}
	id := flags.Arg(0)

	if !*yes && !a.confirm("Are you sure you want to delete this order?") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.orders.Delete(ctx, id)
}
