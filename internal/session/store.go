// Package session holds the admin authentication state machine, its
// encrypted on-disk persistence, and the gate that protects every
// authenticated command.
package session

import (
	"context"
	"fmt"

	"wholesale-admin/internal/domain"

	"go.uber.org/zap"
)

// Phase is the position of the session in its state machine.
type Phase int

const (
	PhaseUnchecked Phase = iota
	PhaseChecking
	PhaseAuthenticated
	PhaseUnauthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseUnchecked:
		return "unchecked"
	case PhaseChecking:
		return "checking"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is the persisted session slice. IsInitialized distinguishes
// "never checked" from "checked and logged out"; it flips to true exactly
// once per process, after the first status check resolves either way.
type State struct {
	User          *domain.User `json:"user"`
	IsLoggedIn    bool         `json:"isLoggedIn"`
	IsInitialized bool         `json:"isInitialized"`
}

// AuthAPI is the slice of the backend client the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (domain.User, error)
}

// Persister stores and restores session state between processes.
type Persister interface {
	Save(State) error
	Load() (State, bool)
}

// Service is the injectable surface the gate and the CLI depend on.
type Service interface {
	State() State
	Phase() Phase
	CheckStatus(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	Reset()
}

// Store drives the session state machine:
// unchecked -> checking -> authenticated | unauthenticated.
// It is designed for the console's single event goroutine and takes no
// locks; state moves only when an operation resolves.
type Store struct {
	api     AuthAPI
	persist Persister
	logger  *zap.Logger

	phase Phase
	state State
}

// NewStore rehydrates persisted state and returns a store in the
// unchecked phase. A persisted IsInitialized is never trusted: the status
// check still runs once per process so a stale positive cannot
// authenticate anyone.
func NewStore(api AuthAPI, persist Persister, logger *zap.Logger) *Store {
	s := &Store{
		api:     api,
		persist: persist,
		logger:  logger,
		phase:   PhaseUnchecked,
	}

	if state, ok := persist.Load(); ok {
		state.IsInitialized = false
		s.state = state
		s.logger.Debug("Rehydrated persisted session",
			zap.Bool("was_logged_in", state.IsLoggedIn),
		)
	}

	return s
}

// State returns a copy of the current session slice.
func (s *Store) State() State { return s.state }

// Phase returns the current state-machine phase.
func (s *Store) Phase() Phase { return s.phase }

// CheckStatus performs the once-per-process session check against the
// backend. It authenticates only when the principal carries the admin
// role; every failure resolves to unauthenticated without retrying.
func (s *Store) CheckStatus(ctx context.Context) error {
	s.phase = PhaseChecking

	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Debug("Session check failed", zap.Error(err))
		s.resolveUnauthenticated()
		return err
	}
	if !user.IsAdmin() {
		s.logger.Warn("Session principal lacks admin role",
			zap.String("role", user.Role),
		)
		s.resolveUnauthenticated()
		return fmt.Errorf("account %s is not an administrator", user.Email)
	}

	s.state = State{User: &user, IsLoggedIn: true, IsInitialized: true}
	s.phase = PhaseAuthenticated
	s.save()
	return nil
}

// Login authenticates against the admin login endpoint and stores the
// returned principal.
func (s *Store) Login(ctx context.Context, email, password string) error {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.resolveUnauthenticated()
		return fmt.Errorf("login failed: %w", err)
	}

	s.state = State{User: &user, IsLoggedIn: true, IsInitialized: true}
	s.phase = PhaseAuthenticated
	s.save()
	s.logger.Info("Admin logged in", zap.String("email", user.Email))
	return nil
}

// Logout asks the backend to invalidate the server session, then clears
// local state unconditionally even if that call failed.
func (s *Store) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)
	if err != nil {
		s.logger.Warn("Server-side logout failed, clearing local session anyway",
			zap.Error(err),
		)
	}

	s.resolveUnauthenticated()
	return err
}

// Reset clears all session state, persisted and in memory. The API
// client's 401 hook calls this so a subsequent process start begins
// unchecked rather than authenticated.
func (s *Store) Reset() {
	s.state = State{}
	s.phase = PhaseUnchecked
	s.save()
}

func (s *Store) resolveUnauthenticated() {
	s.state = State{IsInitialized: true}
	s.phase = PhaseUnauthenticated
	s.save()
}

func (s *Store) save() {
	if err := s.persist.Save(s.state); err != nil {
		s.logger.Warn("Failed to persist session state", zap.Error(err))
	}
}
