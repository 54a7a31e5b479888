//go:build unix

package termtest

import (
	"os"
	"time"

	"github.com/creack/pty"
	"github.com/shakfu/linenoise"
)

// Harness runs a real linenoise.Context against one half of a
// pseudo-terminal pair, while the test drives the other half.
// Grounded on
// _examples/joeycumines-go-utilpkg/prompt/termtest/harness.go's
// in-process PTY-pair shape, trimmed to a single synchronous Read
// call per harness instance (this core has no async Run loop to
// drive, per spec.md §5).
type Harness struct {
	master *os.File
	slave  *os.File
	ctx    *linenoise.Context

	resultCh chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewHarness opens a pty pair and constructs a Context bound to the
// slave side, applying opts.
func NewHarness(opts ...linenoise.Option) (*Harness, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, err
	}
	reader := linenoise.NewFDReader(int(slave.Fd()))
	ctx := linenoise.NewContext(reader, opts...)
	return &Harness{master: master, slave: slave, ctx: ctx, resultCh: make(chan readResult, 1)}, nil
}

// Context returns the underlying Context, for configuration or
// history inspection.
func (h *Harness) Context() *linenoise.Context { return h.ctx }

// StartRead begins a blocking Read(prompt) on a background goroutine.
// Call WaitLine to retrieve its result.
func (h *Harness) StartRead(prompt string) {
	go func() {
		line, err := h.ctx.Read(prompt)
		h.resultCh <- readResult{line: line, err: err}
	}()
}

// WaitLine blocks until StartRead's Read call returns or timeout
// elapses.
func (h *Harness) WaitLine(timeout time.Duration) (string, error, bool) {
	select {
	case r := <-h.resultCh:
		return r.line, r.err, true
	case <-time.After(timeout):
		return "", nil, false
	}
}

// SendString writes raw bytes to the master side, as if a user had
// typed them.
func (h *Harness) SendString(s string) error {
	_, err := h.master.Write([]byte(s))
	return err
}

// SendKey writes the byte sequence for a friendly key name (see
// key.go).
func (h *Harness) SendKey(name string) error {
	seq, err := LookupKey(name)
	if err != nil {
		return err
	}
	return h.SendString(seq)
}

// ReadOutput reads whatever the Context has written to the slave side
// so far, up to len(buf) bytes, within timeout. Returns the number of
// bytes read.
func (h *Harness) ReadOutput(buf []byte, timeout time.Duration) (int, error) {
	_ = h.master.SetReadDeadline(time.Now().Add(timeout))
	n, err := h.master.Read(buf)
	_ = h.master.SetReadDeadline(time.Time{})
	if err != nil {
		if os.IsTimeout(err) {
			return n, nil
		}
		return n, err
	}
	return n, nil
}

// Close releases both halves of the pty pair.
func (h *Harness) Close() error {
	_ = h.slave.Close()
	return h.master.Close()
}
