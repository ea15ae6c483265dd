//go:build !darwin

package bookmarks

func newPlatformChooser() Chooser {
	return unsupportedChooser{}
}

// unsupportedChooser stands in where no native folder dialog exists.
type unsupportedChooser struct{}

func (unsupportedChooser) ChooseFolder(prompt, message, initialDir string) (string, error) {
	return "", &Error{
		Op:   "choose folder",
		Err:  ErrNoUIContext,
		Help: "folder dialogs are only available on macOS; set Store.Chooser to a custom implementation",
	}
}
