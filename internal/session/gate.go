package session

import (
	"context"
	"fmt"
)

// ErrLoginRequired is returned by the gate when the session resolved
// unauthenticated. From preserves the originally requested command so the
// user can be sent back after logging in.
type ErrLoginRequired struct {
	From string
}

func (e ErrLoginRequired) Error() string {
	if e.From == "" {
		return "login required"
	}
	return fmt.Sprintf("login required to run %q", e.From)
}

// Gate protects authenticated operations. On first use it triggers the
// session check; nothing protected runs until the check resolves.
type Gate struct {
	session Service
}

// NewGate wraps a session service.
func NewGate(session Service) *Gate {
	return &Gate{session: session}
}

// Require allows the caller to proceed only with an authenticated admin
// session. While the session is uninitialized the status check runs
// exactly once, regardless of any rehydrated logged-in flag; if the
// session resolves unauthenticated the caller gets ErrLoginRequired
// carrying the requested operation.
func (g *Gate) Require(ctx context.Context, requested string) error {
	if !g.session.State().IsInitialized {
		// A failed check is not retried; it resolves the session to
		// unauthenticated and the redirect below is the only surfacing.
		_ = g.session.CheckStatus(ctx)
	}

	state := g.session.State()
	if !state.IsInitialized || !state.IsLoggedIn {
		return ErrLoginRequired{From: requested}
	}
	return nil
}
