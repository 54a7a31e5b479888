package linenoise

// This file implements the Completion Loop of spec §4.5. It is a
// deliberate simplification of the windowed, paged completion dropdown
// found in
// _examples/joeycumines-go-utilpkg/prompt/completion.go's
// CompletionManager: this core replaces the whole line with the
// candidate text and cycles with a bell on wrap, rather than rendering
// a scrollable suggestion box, matching the original implementation's
// completeLine behavior (see DESIGN.md).

// Suggest is one completion candidate. Description is carried for
// hosting applications that want to display it themselves; the core's
// own render only ever uses Text.
type Suggest struct {
	Text        string
	Description string
}

// Completer is the application-supplied completion callback (spec
// §6): given the current line, it returns zero or more candidates.
type Completer func(line string) []Suggest

// completionState tracks an in-progress Tab-cycle (spec §4.5).
type completionState struct {
	active     bool
	candidates []Suggest
	idx        int
	saved      []byte // buffer contents before completion started
	savedPos   int
}

// completionLoop drives Tab-cycling completion against an EditState.
// It is a small stateful helper rather than a method directly on
// EditState so Context can own exactly one instance per session.
type completionLoop struct {
	fn    Completer
	state completionState
}

func newCompletionLoop(fn Completer) *completionLoop {
	return &completionLoop{fn: fn}
}

// bellFunc rings the terminal bell; supplied by the caller so this
// package stays independent of any particular Reader.
type bellFunc func()

// Tab handles one Tab keypress. It returns true if the buffer was
// changed and needs a render.
func (c *completionLoop) Tab(e *EditState, ring bellFunc) bool {
	if c.fn == nil {
		return false
	}
	if !c.state.active {
		candidates := c.fn(string(e.buf))
		if len(candidates) == 0 {
			ring()
			return false
		}
		c.state = completionState{
			active:     true,
			candidates: candidates,
			idx:        0,
			saved:      append([]byte(nil), e.buf...),
			savedPos:   e.pos,
		}
		c.applyCandidate(e)
		return true
	}

	c.state.idx = (c.state.idx + 1) % (len(c.state.candidates) + 1)
	if c.state.idx == len(c.state.candidates) {
		ring()
		e.buf = append(e.buf[:0], c.state.saved...)
		e.pos = c.state.savedPos
		return true
	}
	c.applyCandidate(e)
	return true
}

func (c *completionLoop) applyCandidate(e *EditState) {
	cand := c.state.candidates[c.state.idx].Text
	e.buf = append(e.buf[:0], cand...)
	e.pos = len(e.buf)
}

// Active reports whether a completion cycle is in progress.
func (c *completionLoop) Active() bool { return c.state.active }

// Escape reverts to the pre-completion buffer and exits completion
// mode (spec §4.5 step 4).
func (c *completionLoop) Escape(e *EditState) {
	if !c.state.active {
		return
	}
	e.buf = append(e.buf[:0], c.state.saved...)
	e.pos = c.state.savedPos
	c.reset()
}

// Accept exits completion mode, leaving the currently displayed
// candidate in place as the real buffer (spec §4.5 step 4: any
// non-Escape, non-Tab key accepts and falls through to normal
// processing).
func (c *completionLoop) Accept() {
	c.reset()
}

func (c *completionLoop) reset() {
	c.state = completionState{}
}
