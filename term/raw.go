//go:build unix

// Package term provides the process-wide raw-mode state cache used by
// the POSIX Terminal Port implementation. Grounded on
// _examples/joeycumines-go-utilpkg/prompt/term/raw_test.go's exported
// contract (getOriginalTermios/SetRaw/Restore/RestoreFD and the
// saveTermios* globals), reconstructed to match that test file
// exactly since only the test survived retrieval.
package term

import (
	"sync"

	"golang.org/x/sys/unix"
)

// The original termios is captured once per process, the first time
// any fd is put into raw mode, and is restored from that single
// cached copy thereafter regardless of which fd asks (spec §9: "a
// once-initialized hook ... keyed on a process-wide saved-terminal-
// state slot").
var (
	saveTermiosOnce sync.Once
	saveTermiosErr  error
	saveTermiosFD   int
	saveTermios     unix.Termios
)

func getOriginalTermios(fd int) (*unix.Termios, error) {
	saveTermiosOnce.Do(func() {
		saveTermiosFD = fd
		t, err := unix.IoctlGetTermios(fd, ioctlGets)
		if err != nil {
			saveTermiosErr = err
			return
		}
		saveTermios = *t
	})
	if saveTermiosErr != nil {
		return nil, saveTermiosErr
	}
	cp := saveTermios
	return &cp, nil
}

// SetRaw disables canonical mode, echo, and signal generation on fd,
// caching the original state on first call so Restore/RestoreFD can
// undo it later, even on an fd that never called SetRaw itself.
func SetRaw(fd int) error {
	orig, err := getOriginalTermios(fd)
	if err != nil {
		return err
	}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, ioctlSets, &raw)
}

// Restore reverts the fd that first called SetRaw back to its
// original mode.
func Restore() error {
	return RestoreFD(saveTermiosFD)
}

// RestoreFD reverts fd to the process-wide cached original termios,
// regardless of which fd originally captured it.
func RestoreFD(fd int) error {
	if saveTermiosErr != nil {
		return saveTermiosErr
	}
	cp := saveTermios
	return unix.IoctlSetTermios(fd, ioctlSets, &cp)
}
