// Package termtest drives a linenoise.Context under a real
// pseudo-terminal for end-to-end tests of the blocking Read loop.
// Grounded on
// _examples/joeycumines-go-utilpkg/prompt/termtest's Harness/Console
// split, trimmed to the single in-process pty case this module needs:
// a real *linenoise.Context runs against one half of a
// github.com/creack/pty pair while the test drives the other half,
// sending key sequences and asserting on the rendered output with
// github.com/google/go-cmp.
package termtest
