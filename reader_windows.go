//go:build windows

package linenoise

import (
	"io"
	"sync"
	"time"

	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	tty "github.com/mattn/go-tty"
	"github.com/shakfu/linenoise/term"
)

// windowsReader is the Win32 console Terminal Port implementation
// (spec §6). Grounded on
// _examples/joeycumines-go-utilpkg/prompt/reader_windows.go's use of
// github.com/mattn/go-tty; adapted to a background-goroutine byte
// pump so ReadByte can honor the millisecond timeout semantics the
// Key Decoder requires (spec §4.2), which the teacher's design leaves
// to an external event loop instead.
type windowsReader struct {
	mu   sync.Mutex
	tty  *tty.TTY
	out  io.Writer
	open bool

	bytes chan byte
	errs  chan error
}

func newWindowsReader() (*windowsReader, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, newErrorWrap(ErrNotTTY, err)
	}
	r := &windowsReader{
		tty:   t,
		out:   colorable.NewColorable(t.Output()),
		open:  true,
		bytes: make(chan byte, 256),
		errs:  make(chan error, 1),
	}
	go r.pump()
	return r, nil
}

func (r *windowsReader) pump() {
	buf := make([]byte, 4)
	for {
		ru, err := r.tty.ReadRune()
		if err != nil {
			select {
			case r.errs <- err:
			default:
			}
			return
		}
		n := encodeRuneUTF8(buf, ru)
		for _, b := range buf[:n] {
			r.bytes <- b
		}
	}
}

func encodeRuneUTF8(buf []byte, r rune) int {
	return copy(buf, string(r))
}

func (r *windowsReader) EnterRaw() error {
	term.InstallExitHook()
	return nil
}

func (r *windowsReader) LeaveRaw() error { return nil }

func (r *windowsReader) ReadByte(timeoutMs int) (byte, bool, error) {
	if timeoutMs < 0 {
		select {
		case b := <-r.bytes:
			return b, true, nil
		case err := <-r.errs:
			return 0, false, newErrorWrap(ErrRead, err)
		}
	}
	if timeoutMs == 0 {
		select {
		case b := <-r.bytes:
			return b, true, nil
		default:
			return 0, false, nil
		}
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case b := <-r.bytes:
		return b, true, nil
	case err := <-r.errs:
		return 0, false, newErrorWrap(ErrRead, err)
	case <-timer.C:
		return 0, false, nil
	}
}

func (r *windowsReader) Write(p []byte) (int, error) {
	n, err := r.out.Write(p)
	if err != nil {
		return n, newErrorWrap(ErrWrite, err)
	}
	return n, nil
}

func (r *windowsReader) IsTTY() bool {
	return isatty.IsTerminal(r.tty.Input().Fd())
}

func (r *windowsReader) WinSize() WinSize {
	w, h, err := r.tty.Size()
	if err != nil {
		return WinSize{Row: DefRowCount, Col: DefColCount}
	}
	return WinSize{Row: uint16(h), Col: uint16(w)}
}

func (r *windowsReader) Columns() int {
	ws := r.WinSize()
	if ws.Col == 0 {
		return DefColCount
	}
	return int(ws.Col)
}

func (r *windowsReader) ClearScreen() error {
	_, err := r.Write([]byte("\x1b[H\x1b[2J"))
	return err
}

func (r *windowsReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return nil
	}
	r.open = false
	return r.tty.Close()
}

// NewStdinReader returns a Reader that reads from the Win32 console.
func NewStdinReader() (Reader, error) {
	return newWindowsReader()
}
