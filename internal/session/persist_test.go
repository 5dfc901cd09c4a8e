package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"wholesale-admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func newTestFileStore(t *testing.T, secret string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "session.enc")
	store, err := NewFileStore(path, secret, zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestFileStoreRejectsEmptySecret(t *testing.T) {
	_, err := NewFileStore(filepath.Join(t.TempDir(), "s.enc"), "", zap.NewNop())
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t, "correct horse battery staple")

	saved := State{
		User:          &domain.User{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: domain.RoleAdmin},
		IsLoggedIn:    true,
		IsInitialized: true,
	}
	require.NoError(t, store.Save(saved))

	loaded, ok := store.Load()
	require.True(t, ok)
	assert.Equal(t, saved, loaded)
}

func TestFileStoreBlobIsNotPlaintext(t *testing.T) {
	store := newTestFileStore(t, "secret")
	require.NoError(t, store.Save(State{
		User:       &domain.User{Email: "ada@example.com"},
		IsLoggedIn: true,
	}))

	blob, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "ada@example.com")
	assert.NotContains(t, string(blob), "isLoggedIn")
}

func TestFileStoreLoadFailsClosed(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := newTestFileStore(t, "secret")
		state, ok := store.Load()
		assert.False(t, ok)
		assert.Equal(t, State{}, state)
	})

	t.Run("wrong secret", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "session.enc")
		writer, err := NewFileStore(path, "secret-a", zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, writer.Save(State{IsLoggedIn: true}))

		reader, err := NewFileStore(path, "secret-b", zap.NewNop())
		require.NoError(t, err)
		state, ok := reader.Load()
		assert.False(t, ok)
		assert.Equal(t, State{}, state)
	})

	t.Run("garbage on disk", func(t *testing.T) {
		store := newTestFileStore(t, "secret")
		require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
		require.NoError(t, os.WriteFile(store.path, []byte("not json"), 0o600))

		_, ok := store.Load()
		assert.False(t, ok)
	})

	t.Run("version mismatch", func(t *testing.T) {
		store := newTestFileStore(t, "secret")
		require.NoError(t, store.Save(State{IsLoggedIn: true}))

		blob, err := os.ReadFile(store.path)
		require.NoError(t, err)
		var env envelope
		require.NoError(t, json.Unmarshal(blob, &env))
		env.Version = blobVersion + 1
		tampered, err := json.Marshal(env)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(store.path, tampered, 0o600))

		_, ok := store.Load()
		assert.False(t, ok)
	})

	t.Run("namespace mismatch", func(t *testing.T) {
		store := newTestFileStore(t, "secret")
		require.NoError(t, store.Save(State{IsLoggedIn: true}))

		blob, err := os.ReadFile(store.path)
		require.NoError(t, err)
		var env envelope
		require.NoError(t, json.Unmarshal(blob, &env))
		env.Namespace = "Other_App"
		tampered, err := json.Marshal(env)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(store.path, tampered, 0o600))

		_, ok := store.Load()
		assert.False(t, ok)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		store := newTestFileStore(t, "secret")
		require.NoError(t, store.Save(State{IsLoggedIn: true}))

		blob, err := os.ReadFile(store.path)
		require.NoError(t, err)
		var env envelope
		require.NoError(t, json.Unmarshal(blob, &env))
		env.Data = env.Data[:len(env.Data)-8] + "AAAAAAA="
		tampered, err := json.Marshal(env)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(store.path, tampered, 0o600))

		_, ok := store.Load()
		assert.False(t, ok)
	})
}

func TestFileStoreFreshSaltPerWrite(t *testing.T) {
	store := newTestFileStore(t, "secret")

	require.NoError(t, store.Save(State{IsLoggedIn: true}))
	first, err := os.ReadFile(store.path)
	require.NoError(t, err)

	require.NoError(t, store.Save(State{IsLoggedIn: true}))
	second, err := os.ReadFile(store.path)
	require.NoError(t, err)

	var a, b envelope
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))
	assert.NotEqual(t, a.Salt, b.Salt)
	assert.NotEqual(t, a.Nonce, b.Nonce)
}
