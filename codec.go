package bookmarks

// Codec encodes folder paths into opaque platform tokens and resolves them
// back. Tokens must be treated as unintelligible blobs: their layout is owned
// by the platform and may change between OS releases.
//
// Two macOS implementations exist (security-scoped for sandboxed processes,
// plain bookmark data otherwise), selected at runtime by New. Non-macOS
// builds get a portable codec whose tokens are the path bytes themselves.
type Codec interface {
	// Encode issues a fresh token for path.
	Encode(path string) ([]byte, error)

	// Resolve decodes a token into a Folder. A stale token (the target
	// moved or was renamed since encoding) still resolves; Folder.Stale
	// reports it so the caller can refresh.
	Resolve(token []byte) (*Folder, error)
}

// Folder is a resolved bookmark target.
type Folder struct {
	// Path is the folder's current filesystem path.
	Path string

	// Stale reports that the token used to resolve this folder is out of
	// date and should be re-encoded from Path.
	Stale bool

	scope accessScope

	// refresh re-encodes a fresh token from the resolved platform handle.
	// Codecs set it when encoding from the bare path would be rejected
	// (inside a sandbox the grant lives on the resolved URL, not the
	// path). Only called during Resolve, before the scope is released.
	refresh func() ([]byte, error)
}

// accessScope brackets the period during which the platform grant backing a
// resolved folder is active. stop must be idempotent.
type accessScope interface {
	start() bool
	stop()
}

// StartAccess activates the permission grant backing the folder. It reports
// whether the platform accepted the request. Every successful StartAccess
// must be balanced by StopAccess; prefer Store.WithAccess, which guarantees
// the pairing.
//
// Folders without a platform scope (portable codec, non-scoped bookmark
// data) always report true.
func (f *Folder) StartAccess() bool {
	if f.scope == nil {
		return true
	}
	return f.scope.start()
}

// StopAccess releases the permission grant. Calling it more than once, or
// without a prior StartAccess, is safe.
func (f *Folder) StopAccess() {
	if f.scope == nil {
		return
	}
	f.scope.stop()
}
