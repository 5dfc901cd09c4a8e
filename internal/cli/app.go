package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"wholesale-admin/internal/api"
	"wholesale-admin/internal/config"
	"wholesale-admin/internal/service"
	"wholesale-admin/internal/session"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// App wires the console: API client, session store, gate, and the state
// services behind each command group.
type App struct {
	logger  *zap.Logger
	client  *api.Client
	session session.Service
	gate    *session.Gate

	categories *service.CategoryService
	products   *service.ProductService
	orders     *service.OrderService
	users      *service.UserService

	out io.Writer
	in  *bufio.Reader
}

// New builds a fully wired console from configuration.
func New(cfg *config.Config, logger *zap.Logger, out io.Writer, in io.Reader) (*App, error) {
	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	if err != nil {
		return nil, err
	}

	persist, err := session.NewFileStore(cfg.Session.StatePath, cfg.Session.Secret, logger)
	if err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	store := session.NewStore(client, persist, logger)

	app := &App{
		logger:  logger,
		client:  client,
		session: store,
		gate:    session.NewGate(store),
		out:     out,
		in:      bufio.NewReader(in),
	}

	// Any 401 clears the session globally; the next protected command
	// lands on the login hint rather than a stale session.
	client.SetUnauthorizedHook(func() {
		store.Reset()
		fmt.Fprintln(out, "Session expired, please log in again.")
	})

	notifier := consoleNotifier{out: out}
	app.categories = service.NewCategoryService(client, notifier, logger)
	app.products = service.NewProductService(client, notifier, logger)
	app.orders = service.NewOrderService(client, notifier, logger)
	app.users = service.NewUserService(client, notifier, logger)

	return app, nil
}

// Run dispatches one command line and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	cmd, rest := args[0], args[1:]

	var err error
	switch cmd {
	case "login":
		err = a.runLogin(ctx, rest)
	case "logout":
		err = a.runLogout(ctx)
	case "status":
		err = a.runStatus(ctx)
	case "category":
		err = a.runProtected(ctx, args, a.runCategory)
	case "product":
		err = a.runProtected(ctx, args, a.runProduct)
	case "order":
		err = a.runProtected(ctx, args, a.runOrder)
	case "user":
		err = a.runProtected(ctx, args, a.runUser)
	case "help", "-h", "--help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		a.usage()
		return 2
	}

	if err != nil {
		var loginErr session.ErrLoginRequired
		if errors.As(err, &loginErr) {
			fmt.Fprintf(a.out, "Not logged in. Run `admin login`, then retry: %s\n", loginErr.From)
			return 1
		}
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return 1
	}
	return 0
}

type commandFunc func(ctx context.Context, args []string) error

// runProtected sends a command group through the auth gate, preserving
// the full command line as the post-login return target.
func (a *App) runProtected(ctx context.Context, full []string, fn commandFunc) error {
	if err := a.gate.Require(ctx, strings.Join(full, " ")); err != nil {
		return err
	}
	return fn(ctx, full[1:])
}

func (a *App) runLogin(ctx context.Context, args []string) error {
	flags := pflag.NewFlagSet("login", pflag.ContinueOnError)
	email := flags.String("email", "", "admin email")
	password := flags.String("password", "", "admin password")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("both --email and --password are required")
	}

	if err := a.session.Login(ctx, *email, *password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Admin logged in successfully")
	return nil
}

func (a *App) runLogout(ctx context.Context) error {
	// Local state clears even when the server call fails.
	if err := a.session.Logout(ctx); err != nil {
		a.logger.Debug("Logout completed with server error", zap.Error(err))
	}
	fmt.Fprintln(a.out, "Admin logged out successfully")
	return nil
}

func (a *App) runStatus(ctx context.Context) error {
	if err := a.gate.Require(ctx, "status"); err != nil {
		return err
	}
	state := a.session.State()
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", state.User.Name, state.User.Email)
	return nil
}

// confirm asks the user a yes/no question, defaulting to no.
func (a *App) confirm(prompt string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)
	answer, err := a.in.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (a *App) usage() {
	fmt.Fprint(a.out, `wholesale-admin console

Usage:
  admin login --email <email> --password <password>
  admin logout
  admin status
  admin category list|tree|add|update|delete ...
  admin product list|add|update|delete ...
  admin order list|set-status|delete ...
  admin user list|set-status|delete ...

Run a command group without arguments for its flags.
`)
}
