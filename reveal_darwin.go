package bookmarks

import "github.com/tmc/bookmarks/internal/foundation"

// Reveal shows path in the Finder. It is a no-op for an empty path.
func Reveal(path string) error {
	if path == "" {
		return nil
	}
	foundation.RevealInFileViewer(path)
	return nil
}
