package session

import (
	"context"
	"errors"
	"testing"

	"wholesale-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

// Mock backend and persister for testing
type mockAuthAPI struct {
	loginUser domain.User
	loginErr  error
	meUser    domain.User
	meErr     error
	logoutErr error

	meCalls     int
	logoutCalls int
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (domain.User, error) {
	return m.loginUser, m.loginErr
}

func (m *mockAuthAPI) Logout(ctx context.Context) error {
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuthAPI) Me(ctx context.Context) (domain.User, error) {
	m.meCalls++
	return m.meUser, m.meErr
}

type memPersister struct {
	state State
	has   bool
	saves int
}

func (m *memPersister) Save(state State) error {
	m.state = state
	m.has = true
	m.saves++
	return nil
}

func (m *memPersister) Load() (State, bool) {
	return m.state, m.has
}

func adminUser() domain.User {
	return domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleAdmin}
}

func TestNewStoreStartsUnchecked(t *testing.T) {
	store := NewStore(&mockAuthAPI{}, &memPersister{}, zap.NewNop())
	assert.Equal(t, PhaseUnchecked, store.Phase())
	assert.Equal(t, State{}, store.State())
}

func TestNewStoreNeverTrustsPersistedInitialization(t *testing.T) {
	persist := &memPersister{
		state: State{User: &domain.User{ID: "u1"}, IsLoggedIn: true, IsInitialized: true},
		has:   true,
	}

	store := NewStore(&mockAuthAPI{}, persist, zap.NewNop())

	assert.False(t, store.State().IsInitialized,
		"a rehydrated session must re-check before anything protected runs")
	assert.True(t, store.State().IsLoggedIn, "the optimistic flag itself survives")
	assert.Equal(t, PhaseUnchecked, store.Phase())
}

func TestCheckStatusAuthenticatesAdmins(t *testing.T) {
	api := &mockAuthAPI{meUser: adminUser()}
	persist := &memPersister{}
	store := NewStore(api, persist, zap.NewNop())

	require.NoError(t, store.CheckStatus(context.Background()))

	assert.Equal(t, PhaseAuthenticated, store.Phase())
	state := store.State()
	assert.True(t, state.IsLoggedIn)
	assert.True(t, state.IsInitialized)
	require.NotNil(t, state.User)
	assert.Equal(t, "ada@example.com", state.User.Email)
	assert.True(t, persist.state.IsLoggedIn, "the resolved state is persisted")
}

func TestCheckStatusRejectsNonAdmins(t *testing.T) {
	api := &mockAuthAPI{meUser: domain.User{ID: "u2", Email: "c@example.com", Role: "customer"}}
	store := NewStore(api, &memPersister{}, zap.NewNop())

	err := store.CheckStatus(context.Background())

	require.Error(t, err)
	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.False(t, store.State().IsLoggedIn)
	assert.True(t, store.State().IsInitialized, "a rejected check still initializes the session")
}

func TestCheckStatusResolvesUnauthenticatedOnFailure(t *testing.T) {
	api := &mockAuthAPI{meErr: errors.New("connection refused")}
	store := NewStore(api, &memPersister{}, zap.NewNop())

	err := store.CheckStatus(context.Background())

	require.Error(t, err)
	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.True(t, store.State().IsInitialized)
}

func TestLoginFailureClearsState(t *testing.T) {
	api := &mockAuthAPI{loginErr: errors.New("invalid credentials")}
	store := NewStore(api, &memPersister{}, zap.NewNop())

	err := store.Login(context.Background(), "ada@example.com", "wrong")

	require.Error(t, err)
	assert.Equal(t, PhaseUnauthenticated, store.Phase())
	assert.False(t, store.State().IsLoggedIn)
}

func TestLogoutClearsLocalStateEvenWhenServerFails(t *testing.T) {
	api := &mockAuthAPI{loginUser: adminUser(), logoutErr: errors.New("timeout")}
	store := NewStore(api, &memPersister{}, zap.NewNop())
	require.NoError(t, store.Login(context.Background(), "ada@example.com", "pw"))

	err := store.Logout(context.Background())

	require.Error(t, err)
	assert.Equal(t, 1, api.logoutCalls)
	assert.False(t, store.State().IsLoggedIn)
	assert.True(t, store.State().IsInitialized)
}

func TestResetReturnsToUnchecked(t *testing.T) {
	api := &mockAuthAPI{loginUser: adminUser()}
	persist := &memPersister{}
	store := NewStore(api, persist, zap.NewNop())
	require.NoError(t, store.Login(context.Background(), "ada@example.com", "pw"))

	store.Reset()

	assert.Equal(t, PhaseUnchecked, store.Phase())
	assert.Equal(t, State{}, store.State())
	assert.Equal(t, State{}, persist.state, "the cleared state is persisted")

	// A new process over the reset persistence starts unchecked too.
	next := NewStore(api, persist, zap.NewNop())
	assert.False(t, next.State().IsInitialized)
	assert.False(t, next.State().IsLoggedIn)
}

func TestGateChecksOnceThenAllowsAdmins(t *testing.T) {
	api := &mockAuthAPI{meUser: adminUser()}
	store := NewStore(api, &memPersister{}, zap.NewNop())
	gate := NewGate(store)

	require.NoError(t, gate.Require(context.Background(), "category list"))
	require.NoError(t, gate.Require(context.Background(), "product list"))
	assert.Equal(t, 1, api.meCalls, "the status check runs once per process")
}

func TestGateRejectsWhenCheckFails(t *testing.T) {
	api := &mockAuthAPI{meErr: errors.New("401")}
	store := NewStore(api, &memPersister{}, zap.NewNop())
	gate := NewGate(store)

	err := gate.Require(context.Background(), "category add --name Fruit")

	var loginErr ErrLoginRequired
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "category add --name Fruit", loginErr.From)

	// A failed check is not retried on the next protected command.
	_ = gate.Require(context.Background(), "category list")
	assert.Equal(t, 1, api.meCalls)
}

func TestGateRejectsNonAdminPrincipal(t *testing.T) {
	api := &mockAuthAPI{meUser: domain.User{ID: "u2", Email: "c@example.com", Role: "customer"}}
	store := NewStore(api, &memPersister{}, zap.NewNop())
	gate := NewGate(store)

	err := gate.Require(context.Background(), "product list")

	var loginErr ErrLoginRequired
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "product list", loginErr.From)
}

func TestGateIgnoresRehydratedLoggedInFlag(t *testing.T) {
	persist := &memPersister{
		state: State{User: &domain.User{ID: "u1"}, IsLoggedIn: true, IsInitialized: true},
		has:   true,
	}
	api := &mockAuthAPI{meErr: errors.New("session expired")}
	store := NewStore(api, persist, zap.NewNop())
	gate := NewGate(store)

	err := gate.Require(context.Background(), "order list")

	var loginErr ErrLoginRequired
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, 1, api.meCalls, "the persisted flag never bypasses the check")
}
