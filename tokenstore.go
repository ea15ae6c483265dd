package bookmarks

// TokenStore persists opaque bookmark tokens under short string keys.
// Implementations must be last-write-wins: Save replaces any token already
// stored under the key.
//
// Load returns an error matching ErrNotFound (via errors.Is) when no token
// exists for the key.
type TokenStore interface {
	Load(key string) ([]byte, error)
	Save(key string, token []byte) error
	Delete(key string) error

	// Keys lists the stored bookmark keys. Stores backed by media that
	// cannot be enumerated (the system keyring) return errors.ErrUnsupported.
	Keys() ([]string, error)
}
