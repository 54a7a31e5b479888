// Package strings provides the small set of string-measurement types
// and helpers the linenoise core uses to keep byte offsets, rune
// counts, and terminal display columns from being interchanged by
// accident. Whole-string width and grapheme counting delegate to
// github.com/rivo/uniseg and github.com/mattn/go-runewidth; the
// byte-level, cursor-critical grapheme walk used by the edit buffer
// lives in the root package (grapheme.go) because it must match the
// linenoise core's own classification rules exactly, including its
// malformed-UTF-8 fallback behavior.
package strings

import (
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Width is a count of terminal display columns.
type Width int

// RuneNumber is a count of Unicode code points (runes).
type RuneNumber int

// GraphemeNumber is a count of user-perceived characters (grapheme
// clusters).
type GraphemeNumber int

// GetWidth returns the number of terminal display columns occupied by
// s, using East-Asian-width-aware rune classification.
func GetWidth(s string) Width {
	return Width(runewidth.StringWidth(s))
}

// RuneCountInString returns the number of Unicode code points in s.
func RuneCountInString(s string) RuneNumber {
	return RuneNumber(utf8.RuneCountInString(s))
}

// GraphemeCountInString returns the number of grapheme clusters
// (user-perceived characters) in s.
func GraphemeCountInString(s string) GraphemeNumber {
	n := 0
	state := -1
	for len(s) > 0 {
		_, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		s = rest
		state = newState
		n++
	}
	return GraphemeNumber(n)
}

// Truncate shortens s to fit within max display columns, appending
// suffix and padding with spaces on the right so the result occupies
// exactly max columns whenever s alone would have been wider than max.
// If s already fits, it is returned unmodified.
func Truncate(s string, max Width, suffix string) string {
	if GetWidth(s) <= max {
		return s
	}
	truncated := runewidth.Truncate(s, int(max), suffix)
	return runewidth.FillRight(truncated, int(max))
}
