//go:build unix

package linenoise

import (
	"os"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/shakfu/linenoise/term"
	"golang.org/x/sys/unix"
)

// posixReader is the POSIX Terminal Port implementation (spec §6).
// Grounded on
// _examples/joeycumines-go-utilpkg/prompt/reader_posix.go's
// injectable-syscall-function shape (used here for testability of the
// same seams), extended with unix.Poll-based read timeouts to satisfy
// the Key Decoder's escape-sequence timeout discipline (spec §4.2),
// which the teacher's non-blocking-fd design does not need since it
// polls from an external event loop instead.
type posixReader struct {
	fd int

	open  func(string, int, uint32) (int, error)
	close func(int) error
	read  func(int, []byte) (int, error)
	write func(int, []byte) (int, error)
	poll  func([]unix.PollFd, int) (int, error)

	setRaw       func(int) error
	restoreFD    func(int) error
	ioctlWinsize func(int, uint) (*unix.Winsize, error)
}

func (r *posixReader) initFuncs() {
	if r.open == nil {
		r.open = syscall.Open
	}
	if r.close == nil {
		r.close = syscall.Close
	}
	if r.read == nil {
		r.read = syscall.Read
	}
	if r.write == nil {
		r.write = syscall.Write
	}
	if r.poll == nil {
		r.poll = unix.Poll
	}
	if r.setRaw == nil {
		r.setRaw = term.SetRaw
	}
	if r.restoreFD == nil {
		r.restoreFD = term.RestoreFD
	}
	if r.ioctlWinsize == nil {
		r.ioctlWinsize = unix.IoctlGetWinsize
	}
}

// newPosixReader opens /dev/tty, falling back to stdin, per the
// teacher's Open().
func newPosixReader() (*posixReader, error) {
	r := &posixReader{}
	r.initFuncs()
	fd, err := r.open("/dev/tty", syscall.O_RDWR, 0)
	if os.IsNotExist(err) {
		fd = syscall.Stdin
	} else if err != nil {
		return nil, err
	}
	r.fd = fd
	return r, nil
}

func (r *posixReader) EnterRaw() error {
	if !r.IsTTY() {
		return newError(ErrNotTTY, "input handle is not a terminal")
	}
	term.InstallExitHook()
	return r.setRaw(r.fd)
}

func (r *posixReader) LeaveRaw() error {
	return r.restoreFD(r.fd)
}

func (r *posixReader) ReadByte(timeoutMs int) (byte, bool, error) {
	if timeoutMs >= 0 {
		fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}}
		n, err := r.poll(fds, timeoutMs)
		if err != nil {
			if err == unix.EINTR {
				return 0, false, nil
			}
			return 0, false, newErrorWrap(ErrRead, err)
		}
		if n == 0 {
			return 0, false, nil
		}
	}

	var buf [1]byte
	n, err := r.read(r.fd, buf[:])
	if err != nil {
		return 0, false, newErrorWrap(ErrRead, err)
	}
	if n == 0 {
		return 0, false, newError(ErrEOF, "input closed")
	}
	return buf[0], true, nil
}

func (r *posixReader) Write(p []byte) (int, error) {
	n, err := r.write(r.fd, p)
	if err != nil {
		return n, newErrorWrap(ErrWrite, err)
	}
	return n, nil
}

func (r *posixReader) IsTTY() bool {
	return isatty.IsTerminal(uintptr(r.fd))
}

func (r *posixReader) WinSize() WinSize {
	ws, err := r.ioctlWinsize(r.fd, unix.TIOCGWINSZ)
	if err != nil {
		return WinSize{Row: DefRowCount, Col: DefColCount}
	}
	return WinSize{Row: ws.Row, Col: ws.Col}
}

func (r *posixReader) Columns() int {
	ws := r.WinSize()
	if ws.Col == 0 {
		return DefColCount
	}
	return int(ws.Col)
}

func (r *posixReader) ClearScreen() error {
	_, err := r.Write([]byte("\x1b[H\x1b[2J"))
	return err
}

func (r *posixReader) Close() error {
	return r.close(r.fd)
}

// NewStdinReader returns a Reader that reads from the controlling
// terminal (/dev/tty, falling back to stdin).
func NewStdinReader() (Reader, error) {
	return newPosixReader()
}

// NewFDReader returns a Reader backed directly by an already-open file
// descriptor, bypassing /dev/tty resolution. Intended for the pty-backed
// termtest harness, where the descriptor is one end of a pseudo-terminal
// rather than the process's own controlling terminal.
func NewFDReader(fd int) Reader {
	r := &posixReader{fd: fd}
	r.initFuncs()
	return r
}
