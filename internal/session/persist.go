package session

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Namespace keys the persisted blob to this application.
const Namespace = "Wholesale_Admin"

// blobVersion is bumped whenever the persisted layout changes; a mismatch
// resets the state instead of attempting migration.
const blobVersion = 1

const saltSize = 16

var ErrNoSecret = errors.New("session state secret is not configured")

// envelope is the on-disk layout: a versioned, namespaced, encrypted blob.
type envelope struct {
	Version   int    `json:"version"`
	Namespace string `json:"namespace"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// FileStore persists session state to a single file, encrypted with a key
// derived from an externally supplied secret. Loading fails closed: any
// version mismatch, tamper, or wrong secret yields a fresh unchecked
// state rather than an error surfaced to the user.
type FileStore struct {
	path   string
	secret []byte
	logger *zap.Logger
}

// NewFileStore creates a store writing to path. The secret comes from
// configuration and is never compiled in.
func NewFileStore(path, secret string, logger *zap.Logger) (*FileStore, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &FileStore{path: path, secret: []byte(secret), logger: logger}, nil
}

// Save encrypts and writes the state, creating parent directories as
// needed. A fresh salt and nonce are drawn on every write.
func (f *FileStore) Save(state State) error {
	plaintext, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("failed to generate salt: %w", err)
	}

	aead, err := chacha20poly1305.NewX(f.deriveKey(salt))
	if err != nil {
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, plaintext, []byte(Namespace))

	blob, err := json.Marshal(envelope{
		Version:   blobVersion,
		Namespace: Namespace,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(sealed),
	})
	if err != nil {
		return fmt.Errorf("failed to encode session envelope: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(f.path, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}

// Load reads and decrypts the persisted state. The second return value is
// false whenever no usable state exists.
func (f *FileStore) Load() (State, bool) {
	blob, err := os.ReadFile(f.path)
	if err != nil {
		return State{}, false
	}

	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		f.logger.Warn("Discarding unreadable session state", zap.Error(err))
		return State{}, false
	}
	if env.Version != blobVersion || env.Namespace != Namespace {
		f.logger.Info("Discarding session state from another version",
			zap.Int("version", env.Version),
		)
		return State{}, false
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return State{}, false
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return State{}, false
	}
	sealed, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return State{}, false
	}

	aead, err := chacha20poly1305.NewX(f.deriveKey(salt))
	if err != nil {
		return State{}, false
	}
	if len(nonce) != aead.NonceSize() {
		return State{}, false
	}

	plaintext, err := aead.Open(nil, nonce, sealed, []byte(Namespace))
	if err != nil {
		f.logger.Warn("Failed to decrypt session state, starting unauthenticated")
		return State{}, false
	}

	var state State
	if err := json.Unmarshal(plaintext, &state); err != nil {
		return State{}, false
	}
	return state, true
}

func (f *FileStore) deriveKey(salt []byte) []byte {
	return argon2.IDKey(f.secret, salt, 1, 64*1024, 4, chacha20poly1305.KeySize)
}
