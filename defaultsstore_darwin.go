package bookmarks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tmc/bookmarks/internal/foundation"
)

// defaultsKeyPrefix namespaces bookmark entries within the app's defaults
// domain so Keys can enumerate them without picking up unrelated settings.
const defaultsKeyPrefix = "bookmarks."

// DefaultsStore persists tokens in NSUserDefaults, the conventional home for
// bookmark data in macOS applications. It is the default TokenStore on
// macOS.
type DefaultsStore struct {
	// Prefix namespaces the defaults keys. Empty means "bookmarks.".
	Prefix string
}

func (d *DefaultsStore) prefix() string {
	if d.Prefix != "" {
		return d.Prefix
	}
	return defaultsKeyPrefix
}

// Load returns the token stored under key.
func (d *DefaultsStore) Load(key string) ([]byte, error) {
	token, ok := foundation.DefaultsData(d.prefix() + key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return token, nil
}

// Save stores token under key, replacing any existing token.
func (d *DefaultsStore) Save(key string, token []byte) error {
	foundation.SetDefaultsData(d.prefix()+key, token)
	return nil
}

// Delete removes the token stored under key, if any.
func (d *DefaultsStore) Delete(key string) error {
	foundation.RemoveDefaultsKey(d.prefix() + key)
	return nil
}

// Keys returns the stored bookmark keys in sorted order.
func (d *DefaultsStore) Keys() ([]string, error) {
	raw := foundation.DefaultsKeys(d.prefix())
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, strings.TrimPrefix(k, d.prefix()))
	}
	sort.Strings(keys)
	return keys, nil
}

var _ TokenStore = (*DefaultsStore)(nil)
