package bookmarks

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Store operations. Match with errors.Is.
var (
	// ErrNotFound indicates no token is stored under the requested key.
	ErrNotFound = errors.New("no bookmark stored for key")

	// ErrNoUIContext indicates there is no active window to attach the
	// folder chooser to (e.g. the process is not running as a UI app).
	ErrNoUIContext = errors.New("no UI context available")

	// ErrNoSelection indicates the user dismissed the folder chooser
	// without selecting anything.
	ErrNoSelection = errors.New("no folder selected")
)

// Error represents a bookmarks error with additional context and actionable guidance.
type Error struct {
	Op   string // Operation that failed (e.g., "resolve bookmark", "choose folder")
	Err  error  // Underlying error
	Help string // Actionable guidance for the user
}

func (e *Error) Error() string {
	if e.Help != "" {
		return fmt.Sprintf("bookmarks: %s: %v\n  hint: %s", e.Op, e.Err, e.Help)
	}
	return fmt.Sprintf("bookmarks: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
