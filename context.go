package linenoise

import (
	"bufio"
	"io"

	"github.com/shakfu/linenoise/debug"
)

// Context owns one editor's configuration, callbacks, and history
// (spec §4.7, §5). All mutable editing state lives either on the
// Context itself or on the EditState of the session currently in
// progress; nothing here is process-global except the raw-mode cache
// in package term, per spec §9.
type Context struct {
	term Reader

	multiline       bool
	mask            bool
	completer       Completer
	hintFn          HintFunc
	escapeTimeoutMs int

	history *History

	keyBindings map[KeyType]func(*Context, *session) bool

	lastErr error

	// session is non-nil between Start and Stop, or for the duration
	// of a blocking Read.
	sess *session
}

// session holds the state of one in-progress editing loop: the Edit
// State plus the collaborators bound to this Context's Reader.
type session struct {
	edit       *EditState
	decoder    *Decoder
	renderer   *Renderer
	completion *completionLoop
	// pendingHistoryTail is the tentative in-progress entry appended
	// to history at session start (spec §4.3 history-prev/next: "the
	// current in-progress edit lives as the last history slot"), and
	// removed on Ctrl-C/Ctrl-D cancellation (spec §5).
	pendingHistoryTail bool
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithMultiline turns multi-line rendering on or off. Unlike the
// original implementation's process-global toggle, this may be
// changed between calls to Read via NewContext or by constructing a
// fresh option set; spec.md §9's supplemented-feature note documents
// the reasoning.
func WithMultiline(on bool) Option {
	return func(c *Context) { c.multiline = on }
}

// WithMaskMode enables password-style rendering (one '*' per
// grapheme cluster, no source bytes emitted).
func WithMaskMode(on bool) Option {
	return func(c *Context) { c.mask = on }
}

// WithCompleter registers the Tab-completion callback.
func WithCompleter(fn Completer) Option {
	return func(c *Context) { c.completer = fn }
}

// WithHints registers the hints callback.
func WithHints(fn HintFunc) Option {
	return func(c *Context) { c.hintFn = fn }
}

// WithHistoryMaxLen sets the history capacity.
func WithHistoryMaxLen(n int) Option {
	return func(c *Context) { c.history.SetMaxLen(n) }
}

// WithHistoryFile loads history entries from path at construction
// time. Load errors are recorded via LastError but do not prevent
// Context construction (spec §7: history load failure is not fatal).
func WithHistoryFile(path string) Option {
	return func(c *Context) {
		if err := c.history.Load(path); err != nil {
			c.lastErr = err
		}
	}
}

// WithEscapeTimeout overrides the escape-sequence timeout (spec §9
// open question: "whether to expose it is the implementer's choice").
func WithEscapeTimeout(ms int) Option {
	return func(c *Context) { c.escapeTimeoutMs = ms }
}

// WithKeyBinding overrides the default handling of key, replacing it
// with fn. fn receives the Context and returns whether the buffer
// changed and needs a render. Passing a nil fn removes any existing
// override for key. Bindings are not consulted while a completion
// cycle is active, nor for KeyTab when a completer is registered.
func WithKeyBinding(key KeyType, fn func(*Context) bool) Option {
	return func(c *Context) {
		if fn == nil {
			delete(c.keyBindings, key)
			return
		}
		c.keyBindings[key] = func(_ *Context, _ *session) bool { return fn(c) }
	}
}

// NewContext constructs a Context bound to term, applying opts in
// order.
func NewContext(term Reader, opts ...Option) *Context {
	c := &Context{
		term:            term,
		escapeTimeoutMs: DefaultEscapeTimeoutMs,
		history:         NewHistory(DefaultHistoryMaxLen),
		keyBindings:     make(map[KeyType]func(*Context, *session) bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// History returns the Context's history store.
func (c *Context) History() *History { return c.history }

// LastError returns the most recently recorded error, or nil.
func (c *Context) LastError() error { return c.lastErr }

func (c *Context) setErr(err error) {
	c.lastErr = err
	debug.Log("linenoise: %v", err)
}

// Read is the blocking public API (spec §4.7): it enters raw mode,
// writes prompt, loops over Key Decoder events until Enter, Ctrl-C, or
// Ctrl-D, and restores the terminal before returning. Grounded on
// _examples/flynn-flynn/vendor/github.com/tiborvass/uniline/uniline.go's
// Scan(prompt) loop shape: a synchronous per-key dispatch loop with a
// single normal-return and a single cancellation path, adapted from
// panic/recover control flow to explicit Go error returns.
func (c *Context) Read(prompt string) (string, error) {
	if !c.term.IsTTY() {
		return c.readLineNoEdit()
	}

	if err := c.Start(prompt); err != nil {
		return "", err
	}
	for {
		line, more, err := c.Feed()
		if err != nil {
			c.Stop()
			return "", err
		}
		if !more {
			c.Stop()
			return line, nil
		}
	}
}

// readLineNoEdit implements spec §4.7's degrade-to-line-oriented-read
// behavior when the input handle is not a terminal.
func (c *Context) readLineNoEdit() (string, error) {
	r := bufio.NewReader(readerAdapter{c.term})
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", newErrorWrap(ErrRead, err)
	}
	if len(line) == 0 && err == io.EOF {
		return "", newError(ErrEOF, "no more input")
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line, nil
}

// readerAdapter turns the Terminal Port's timed ReadByte into an
// io.Reader for the non-TTY fallback path.
type readerAdapter struct{ r Reader }

func (a readerAdapter) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	b, ok, err := a.r.ReadByte(-1)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, io.EOF
	}
	p[0] = b
	return 1, nil
}

// Start begins a non-blocking editing session: enters raw mode and
// writes the prompt (spec §4.7).
func (c *Context) Start(prompt string) error {
	if c.sess != nil {
		return newError(ErrInvalid, "session already started")
	}
	if !c.term.IsTTY() {
		return newError(ErrNotTTY, "input handle is not a terminal")
	}
	if err := c.term.EnterRaw(); err != nil {
		return err
	}

	edit := newEditState(prompt, c.term.Columns())
	c.history.Add("") // tentative tail slot for in-progress edit
	sess := &session{
		edit:               edit,
		decoder:            NewDecoder(c.term, c.escapeTimeoutMs),
		renderer:           NewRenderer(c.term, c.multiline, c.mask, c.hintFn),
		completion:         newCompletionLoop(c.completer),
		pendingHistoryTail: true,
	}
	c.sess = sess
	return sess.renderer.Render(sess.edit)
}

// Feed processes exactly one input event (spec §4.7). It returns
// more=true while editing continues; more=false with the final line
// (possibly empty) on Enter; and an error (with more=false) on
// Ctrl-C/Ctrl-D or an I/O failure.
func (c *Context) Feed() (line string, more bool, err error) {
	sess := c.sess
	if sess == nil {
		return "", false, newError(ErrInvalid, "no active session")
	}

	ev, err := sess.decoder.Next()
	if err != nil {
		c.setErr(err)
		c.dropPendingTail()
		return "", false, err
	}

	if sess.completion.Active() {
		return c.feedDuringCompletion(sess, ev)
	}

	if ev.Type == KeyTab && c.completer != nil {
		if sess.completion.Tab(sess.edit, c.bell) {
			_ = sess.renderer.Render(sess.edit)
		}
		return "", true, nil
	}

	if fn, ok := c.keyBindings[ev.Type]; ok {
		if fn(c, sess) {
			_ = sess.renderer.Render(sess.edit)
		}
		return "", true, nil
	}

	return c.dispatch(sess, ev)
}

func (c *Context) feedDuringCompletion(sess *session, ev Event) (string, bool, error) {
	switch ev.Type {
	case KeyTab:
		sess.completion.Tab(sess.edit, c.bell)
		_ = sess.renderer.Render(sess.edit)
		return "", true, nil
	case KeyEscape:
		sess.completion.Escape(sess.edit)
		_ = sess.renderer.Render(sess.edit)
		return "", true, nil
	default:
		sess.completion.Accept()
		return c.dispatch(sess, ev)
	}
}

func (c *Context) bell() {
	_, _ = c.term.Write([]byte{0x07})
}

// dispatch applies the default key binding for ev to the session's
// Edit State (spec §4.3), rendering afterward if it changed anything.
func (c *Context) dispatch(sess *session, ev Event) (line string, more bool, err error) {
	e := sess.edit
	changed := false

	switch ev.Type {
	case KeyPrintable:
		width := displayWidth(ev.Bytes, len(ev.Bytes))
		fast := e.fastAppendEligible(width) && !c.multiline && c.hintFn == nil && !c.mask
		e.InsertBytes(ev.Bytes)
		if fast {
			_, _ = c.term.Write(ev.Bytes)
			return "", true, nil
		}
		changed = true

	case KeyEnter:
		result := e.String()
		c.commitLine(result)
		_, _ = c.term.Write([]byte("\r\n"))
		return result, false, nil

	case KeyBackspace, KeyCtrlH:
		changed = e.Backspace()

	case KeyDelete:
		changed = e.DeleteForward()

	case KeyCtrlD:
		if e.Len() == 0 {
			c.dropPendingTail()
			ce := newError(ErrEOF, "end of input")
			c.setErr(ce)
			return "", false, ce
		}
		changed = e.DeleteForward()

	case KeyCtrlC:
		c.dropPendingTail()
		ce := newError(ErrInterrupted, "interrupted")
		c.setErr(ce)
		return "", false, ce

	case KeyArrowLeft, KeyCtrlB:
		changed = e.MoveLeft()

	case KeyArrowRight, KeyCtrlF:
		changed = e.MoveRight()

	case KeyHome, KeyCtrlA:
		changed = e.MoveHome()

	case KeyEnd, KeyCtrlE:
		changed = e.MoveEnd()

	case KeyCtrlK:
		changed = e.DeleteToEnd()

	case KeyCtrlU:
		changed = e.DeleteLine()

	case KeyCtrlW:
		changed = e.DeletePreviousWord()

	case KeyCtrlT:
		changed = e.Transpose()

	case KeyCtrlL:
		_ = sess.renderer.ClearScreen(e)
		changed = true

	case KeyArrowUp, KeyCtrlP:
		changed = c.historyPrev(sess)

	case KeyArrowDown, KeyCtrlN:
		changed = c.historyNext(sess)

	default:
		// KeyUnknown, KeyEscape (standalone), KeyBackTab: no default
		// binding.
	}

	if changed {
		_ = sess.renderer.Render(e)
	}
	return "", true, nil
}

func (c *Context) commitLine(line string) {
	if c.sess.pendingHistoryTail {
		entries := c.history.entries
		if n := len(entries); n > 0 {
			c.history.entries = entries[:n-1]
		}
	}
	c.history.Add(line)
}

func (c *Context) dropPendingTail() {
	if c.sess != nil && c.sess.pendingHistoryTail {
		entries := c.history.entries
		if n := len(entries); n > 0 {
			c.history.entries = entries[:n-1]
		}
		c.sess.pendingHistoryTail = false
	}
}

// historyPrev/historyNext implement spec §4.3's history-prev/next: the
// current buffer is saved back into the history slot at the current
// history index (the tentative tail slot when the index is 0) before
// navigating so it is not lost.
func (c *Context) historyPrev(sess *session) bool {
	n := c.history.Len()
	if sess.edit.historyIndex+1 >= n {
		return false
	}
	c.saveCurrentIntoTail(sess)
	sess.edit.historyIndex++
	entry, _ := c.history.At(sess.edit.historyIndex)
	sess.edit.LoadFromHistory(entry)
	return true
}

func (c *Context) historyNext(sess *session) bool {
	if sess.edit.historyIndex == 0 {
		return false
	}
	c.saveCurrentIntoTail(sess)
	sess.edit.historyIndex--
	entry, _ := c.history.At(sess.edit.historyIndex)
	sess.edit.LoadFromHistory(entry)
	return true
}

func (c *Context) saveCurrentIntoTail(sess *session) {
	n := c.history.Len()
	if n == 0 {
		return
	}
	idx := n - 1 - sess.edit.historyIndex
	if idx < 0 || idx >= n {
		return
	}
	c.history.entries[idx] = sess.edit.String()
}

// Stop restores the terminal. It writes nothing itself: the newline
// after an accepted line is written when Feed processes Enter, and no
// newline is written when a session ends on Ctrl-C, Ctrl-D or an error.
func (c *Context) Stop() {
	if c.sess == nil {
		return
	}
	_ = c.term.LeaveRaw()
	c.sess = nil
}

// Hide erases the currently rendered prompt/line without destroying
// Edit State (spec §4.7), so an application can interleave
// asynchronous output.
func (c *Context) Hide() error {
	if c.sess == nil {
		return nil
	}
	_, err := c.term.Write([]byte("\r\x1b[0K"))
	return err
}

// Show re-renders the current session after a Hide.
func (c *Context) Show() error {
	if c.sess == nil {
		return nil
	}
	return c.sess.renderer.Render(c.sess.edit)
}

// DebugKeyCodes prints the name of every decoded key event to the
// terminal until Ctrl-C, Ctrl-D or a lone 'q' is typed (a diagnostic
// mode modelled on the original implementation's linenoiseKeyCodes).
// Only key names are printed; the raw bytes of a key or escape
// sequence are not shown.
func (c *Context) DebugKeyCodes() error {
	if err := c.term.EnterRaw(); err != nil {
		return err
	}
	defer c.term.LeaveRaw()

	_, _ = c.term.Write([]byte("Linenoise key codes debugging mode.\r\n" +
		"Press keys to see scan codes. Type 'q' at any time to exit.\r\n"))

	dec := NewDecoder(c.term, c.escapeTimeoutMs)
	for {
		ev, err := dec.Next()
		if err != nil {
			return err
		}
		if ev.Type == KeyCtrlC || ev.Type == KeyCtrlD {
			return nil
		}
		if ev.Type == KeyPrintable && len(ev.Bytes) == 1 && ev.Bytes[0] == 'q' {
			return nil
		}
		_, _ = c.term.Write([]byte("'" + ev.Type.String() + "'\r\n"))
	}
}

// HandleResize recomputes the session's column geometry after a
// terminal resize (spec.md Non-goals: no reflow mid-edit beyond a
// recomputation at next refresh). Grounded on the teacher's
// signal_common.go/signal_default.go SIGWINCH plumbing, adapted from
// a background-goroutine subscription into an explicit call the host
// application's own signal handler invokes, consistent with spec §5's
// single-threaded cooperative model (no core-owned goroutines).
func (c *Context) HandleResize() {
	if c.sess == nil {
		return
	}
	c.sess.edit.cols = c.term.Columns()
	c.sess.edit.oldrows = 0
	c.sess.edit.oldrpos = 0
	_ = c.sess.renderer.Render(c.sess.edit)
}
