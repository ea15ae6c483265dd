//go:build !darwin

package bookmarks

import "os/exec"

// Reveal opens path in the host file browser. It is a no-op for an empty
// path.
func Reveal(path string) error {
	if path == "" {
		return nil
	}
	if err := exec.Command("xdg-open", path).Start(); err != nil {
		return &Error{Op: "reveal folder", Err: err, Help: "install xdg-utils or open the folder manually"}
	}
	return nil
}
