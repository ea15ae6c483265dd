package bookmarks

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore persists tokens in the OS-native credential store (macOS
// Keychain, Windows Credential Manager, or the Linux Secret Service). Use it
// when bookmark tokens should not live in a world-readable preferences file.
//
// Tokens are base64-encoded because the keyring stores strings.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a KeyringStore scoped to the given service
// identifier, typically the application's bundle or module identifier.
func NewKeyringStore(service string) (*KeyringStore, error) {
	if service == "" {
		return nil, errors.New("bookmarks: keyring service cannot be empty")
	}
	return &KeyringStore{service: service}, nil
}

// Load returns the token stored under key.
func (k *KeyringStore) Load(key string) ([]byte, error) {
	encoded, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
		}
		return nil, fmt.Errorf("bookmarks: read keyring entry %q: %w", key, err)
	}
	token, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("bookmarks: decode keyring entry %q: %w", key, err)
	}
	return token, nil
}

// Save stores token under key, replacing any existing entry.
func (k *KeyringStore) Save(key string, token []byte) error {
	if err := keyring.Set(k.service, key, base64.StdEncoding.EncodeToString(token)); err != nil {
		return fmt.Errorf("bookmarks: write keyring entry %q: %w", key, err)
	}
	return nil
}

// Delete removes the token stored under key. Deleting a missing key is not
// an error.
func (k *KeyringStore) Delete(key string) error {
	err := keyring.Delete(k.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("bookmarks: delete keyring entry %q: %w", key, err)
	}
	return nil
}

// Keys is unsupported: the system keyring cannot enumerate entries.
func (k *KeyringStore) Keys() ([]string, error) {
	return nil, fmt.Errorf("bookmarks: keyring store: %w", errors.ErrUnsupported)
}

var _ TokenStore = (*KeyringStore)(nil)
