package linenoise

import "io"

// appendBuffer accumulates escape sequences and text for a single
// refresh so the renderer issues one Write per frame instead of many
// small ones (spec §4.4: a refresh must be a single atomic write to
// avoid flicker). Grounded on the original implementation's `struct
// abuf`, which does the same coalescing in C.
type appendBuffer struct {
	buf []byte
}

func (a *appendBuffer) WriteString(s string) {
	a.buf = append(a.buf, s...)
}

func (a *appendBuffer) Write(p []byte) (int, error) {
	a.buf = append(a.buf, p...)
	return len(p), nil
}

func (a *appendBuffer) Len() int { return len(a.buf) }

func (a *appendBuffer) Reset() { a.buf = a.buf[:0] }

// Flush writes the accumulated bytes to w in one call and resets the
// buffer for reuse.
func (a *appendBuffer) Flush(w io.Writer) error {
	if len(a.buf) == 0 {
		return nil
	}
	_, err := w.Write(a.buf)
	a.Reset()
	return err
}
