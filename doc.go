// Package linenoise implements a minimal, self-contained interactive
// line editor for VT100-compatible terminals: single-line and
// multi-line editing with grapheme-cluster-aware cursor movement,
// history navigation, and Tab completion, without depending on a
// full readline library.
//
// A Context owns one editor's configuration, callbacks, and history:
//
//	term, err := linenoise.NewStdinReader()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ctx := linenoise.NewContext(term, linenoise.WithHistoryMaxLen(200))
//	line, err := ctx.Read("hello> ")
//
// Read blocks until the user presses Enter, Ctrl-C, or Ctrl-D. For an
// event-loop-driven application, Start/Feed/Stop expose the same state
// machine non-blockingly.
package linenoise
