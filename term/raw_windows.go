//go:build windows

package term

// On Windows, github.com/mattn/go-tty owns raw-mode entry and exit
// internally, so the Terminal Port calls only the no-op
// InstallExitHook here and never SetRaw/Restore/RestoreFD. These stubs
// exist only so callers written against a single Reader abstraction
// compile on both platforms.

// SetRaw is a no-op on Windows; see the package comment.
func SetRaw(fd int) error { return nil }

// Restore is a no-op on Windows; see the package comment.
func Restore() error { return nil }

// RestoreFD is a no-op on Windows; see the package comment.
func RestoreFD(fd int) error { return nil }

// InstallExitHook is a no-op on Windows; go-tty restores console mode
// when the Windows reader's Close is called.
func InstallExitHook() {}
