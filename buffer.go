package linenoise

// This file implements the Edit State (spec §3) and the
// grapheme-aware Editor Operations (spec §4.3). Grounded on
// _examples/joeycumines-go-utilpkg/prompt/buffer_test.go's observable
// contract (InsertText/DeleteBeforeCursor/etc. naming and semantics)
// and on the original implementation's linenoiseEdit* family for the
// exact byte-shifting behavior of each mutation.

// EditState is the mutable editing context for one line (spec §3). A
// zero EditState is not usable; construct one with newEditState.
type EditState struct {
	buf []byte // always well-formed UTF-8, no trailing NUL stored
	pos int    // cursor byte offset, always a grapheme boundary
	// maxLen bounds buf's length in fixed-buffer mode; 0 means dynamic
	// (grow freely), matching the source's buflen==0 sentinel.
	maxLen int

	prompt string
	cols   int

	// Previous render geometry, consulted by the multi-line renderer
	// to erase exactly what it drew last time.
	oldpos  int
	oldrows int
	oldrpos int

	historyIndex  int
	inCompletion  bool
	completionIdx int
}

func newEditState(prompt string, cols int) *EditState {
	if cols <= 0 {
		cols = DefColCount
	}
	return &EditState{prompt: prompt, cols: cols}
}

// Bytes returns the current buffer contents. Callers must not retain
// or mutate the returned slice past the next mutating call.
func (e *EditState) Bytes() []byte { return e.buf }

// String returns the current buffer contents as a string (a copy).
func (e *EditState) String() string { return string(e.buf) }

// Pos returns the cursor's byte offset into the buffer.
func (e *EditState) Pos() int { return e.pos }

// Len returns the buffer's byte length.
func (e *EditState) Len() int { return len(e.buf) }

func (e *EditState) fits(extra int) bool {
	return e.maxLen == 0 || len(e.buf)+extra <= e.maxLen
}

// InsertBytes inserts raw bytes (expected to be one grapheme cluster,
// though callers may batch a paste) at the cursor and advances pos
// past them. Silently drops the insert if it would overflow a
// fixed-size buffer (spec §4.3 insert).
func (e *EditState) InsertBytes(b []byte) {
	if len(b) == 0 || !e.fits(len(b)) {
		return
	}
	if e.pos == len(e.buf) {
		e.buf = append(e.buf, b...)
		e.pos += len(b)
		return
	}
	e.buf = append(e.buf, b...)
	copy(e.buf[e.pos+len(b):], e.buf[e.pos:len(e.buf)-len(b)])
	copy(e.buf[e.pos:], b)
	e.pos += len(b)
}

// fastAppendEligible reports whether InsertBytes at end-of-buffer in
// single-line mode with no hint can be drawn as a raw one-cluster
// append rather than a full re-render (spec §4.3 insert fast path).
func (e *EditState) fastAppendEligible(insertWidth int) bool {
	if e.pos != len(e.buf) {
		return false
	}
	pwidth := displayWidth([]byte(e.prompt), len(e.prompt))
	lwidth := displayWidth(e.buf, len(e.buf))
	return pwidth+lwidth+insertWidth < e.cols
}

// Backspace removes the grapheme cluster immediately before pos.
// Reports whether anything was removed.
func (e *EditState) Backspace() bool {
	clen := prevGraphemeLen(e.buf, e.pos)
	if clen == 0 {
		return false
	}
	e.buf = append(e.buf[:e.pos-clen], e.buf[e.pos:]...)
	e.pos -= clen
	return true
}

// DeleteForward removes the grapheme cluster starting at pos.
// Reports whether anything was removed.
func (e *EditState) DeleteForward() bool {
	clen := nextGraphemeLen(e.buf, e.pos, len(e.buf))
	if clen == 0 {
		return false
	}
	e.buf = append(e.buf[:e.pos], e.buf[e.pos+clen:]...)
	return true
}

// MoveLeft moves pos back by one grapheme cluster. Reports whether it
// moved.
func (e *EditState) MoveLeft() bool {
	clen := prevGraphemeLen(e.buf, e.pos)
	if clen == 0 {
		return false
	}
	e.pos -= clen
	return true
}

// MoveRight moves pos forward by one grapheme cluster. Reports
// whether it moved.
func (e *EditState) MoveRight() bool {
	clen := nextGraphemeLen(e.buf, e.pos, len(e.buf))
	if clen == 0 {
		return false
	}
	e.pos += clen
	return true
}

// MoveHome moves pos to the start of the buffer. Reports whether it
// moved.
func (e *EditState) MoveHome() bool {
	if e.pos == 0 {
		return false
	}
	e.pos = 0
	return true
}

// MoveEnd moves pos to the end of the buffer. Reports whether it
// moved.
func (e *EditState) MoveEnd() bool {
	if e.pos == len(e.buf) {
		return false
	}
	e.pos = len(e.buf)
	return true
}

// DeletePreviousWord removes graphemes leftward from pos: first any
// run of ASCII spaces, then any run of non-space graphemes.
func (e *EditState) DeletePreviousWord() bool {
	start := e.pos
	p := e.pos
	for p > 0 && e.buf[p-1] == ' ' {
		p -= prevGraphemeLen(e.buf, p)
	}
	for p > 0 && e.buf[p-1] != ' ' {
		p -= prevGraphemeLen(e.buf, p)
	}
	if p == start {
		return false
	}
	e.buf = append(e.buf[:p], e.buf[start:]...)
	e.pos = p
	return true
}

// DeleteLine clears the entire buffer and moves pos to 0.
func (e *EditState) DeleteLine() bool {
	if len(e.buf) == 0 {
		return false
	}
	e.buf = e.buf[:0]
	e.pos = 0
	return true
}

// DeleteToEnd truncates the buffer at pos.
func (e *EditState) DeleteToEnd() bool {
	if e.pos == len(e.buf) {
		return false
	}
	e.buf = e.buf[:e.pos]
	return true
}

// Transpose swaps the grapheme cluster before pos with the one at (or
// before, at end-of-line) pos, per spec §4.3. It is a no-op unless
// both clusters exist.
func (e *EditState) Transpose() bool {
	if e.pos == len(e.buf) {
		// Corner case (spec §9 open question): swap the two clusters
		// immediately preceding pos, leaving pos at the end.
		secondLen := prevGraphemeLen(e.buf, e.pos)
		if secondLen == 0 {
			return false
		}
		firstEnd := e.pos - secondLen
		firstLen := prevGraphemeLen(e.buf, firstEnd)
		if firstLen == 0 {
			return false
		}
		first := append([]byte(nil), e.buf[firstEnd-firstLen:firstEnd]...)
		second := append([]byte(nil), e.buf[firstEnd:e.pos]...)
		out := append([]byte(nil), e.buf[:firstEnd-firstLen]...)
		out = append(out, second...)
		out = append(out, first...)
		out = append(out, e.buf[e.pos:]...)
		e.buf = out
		return true
	}

	afterLen := nextGraphemeLen(e.buf, e.pos, len(e.buf))
	beforeLen := prevGraphemeLen(e.buf, e.pos)
	if afterLen == 0 || beforeLen == 0 {
		return false
	}
	start := e.pos - beforeLen
	before := append([]byte(nil), e.buf[start:e.pos]...)
	after := append([]byte(nil), e.buf[e.pos:e.pos+afterLen]...)
	out := append([]byte(nil), e.buf[:start]...)
	out = append(out, after...)
	out = append(out, before...)
	out = append(out, e.buf[e.pos+afterLen:]...)
	e.buf = out
	e.pos = start + beforeLen + afterLen
	return true
}

// LoadFromHistory replaces the buffer contents with s, truncated to
// maxLen if the state is fixed-size, and moves pos to end.
func (e *EditState) LoadFromHistory(s string) {
	b := []byte(s)
	if e.maxLen > 0 && len(b) > e.maxLen {
		b = b[:e.maxLen]
	}
	e.buf = append(e.buf[:0], b...)
	e.pos = len(e.buf)
}
