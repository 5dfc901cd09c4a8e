package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

func (a *App) runUser(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: admin user list|set-status|delete")
	}

	switch args[0] {
	case "list":
		if err := a.users.Refresh(ctx); err != nil {
			return err
		}
		renderUsers(a.out, a.users.List)
		return nil
	case "set-status":
		if len(args) != 3 {
			return errors.New("usage: admin user set-status <id> <status>")
		}
		updated, err := a.users.SetStatus(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "User %s is now %s\n", updated.Email, updated.Status)
		return nil
	case "delete":
		return a.runUserDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown user command %q", args[0])
	}
}

func (a *App) runUserDelete(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("user delete", pflag.ContinueOnError)
	yes := flags.Bool("yes", false, "skip the confirmation prompt")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return errors.New("usage: admin user delete <id>")
	}
	id := flags.Arg(0)

	if !*yes && !a.confirm("Are you sure you want to delete this user?") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}
	return a.users.Delete(ctx, id)
}
