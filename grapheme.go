package linenoise

import "unicode/utf8"

// This file implements the UTF-8/Grapheme model described in spec §4.1.
// It operates directly on raw bytes because the edit buffer's cursor
// and length invariants (spec §3: "pos always sits on a grapheme
// boundary") must hold even in the presence of malformed UTF-8 typed
// or pasted by a user, and must never panic. Grounded on
// _examples/flynn-flynn/vendor/github.com/tiborvass/uniline/utils.go's
// leader+extender walk shape, cross-checked against the exact
// codepoint ranges in spec.md §4.1.

// byteLenOfLeader returns the expected UTF-8 sequence length given a
// leading byte. An invalid leader byte is treated as a single Latin-1
// byte (length 1), so callers never over-read past malformed input.
func byteLenOfLeader(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// decodeAt decodes the codepoint starting at offset, returning the
// codepoint and the number of bytes consumed. Malformed sequences
// decode as utf8.RuneError with length 1.
func decodeAt(b []byte, offset int) (rune, int) {
	if offset >= len(b) {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRune(b[offset:])
	if r == utf8.RuneError && size <= 1 {
		return utf8.RuneError, 1
	}
	return r, size
}

// inRange reports whether cp lies within [lo, hi], inclusive.
func inRange(cp, lo, hi rune) bool { return cp >= lo && cp <= hi }

// codepointWidth classifies cp per spec §3/§4.1 into {0, 1, 2}.
func codepointWidth(cp rune) int {
	switch {
	case cp == 0:
		return 0
	case inRange(cp, 0x0300, 0x036F),
		inRange(cp, 0x1AB0, 0x1AFF),
		inRange(cp, 0x1DC0, 0x1DFF),
		inRange(cp, 0x20D0, 0x20FF),
		inRange(cp, 0xFE20, 0xFE2F),
		cp == 0xFE0E, cp == 0xFE0F,
		inRange(cp, 0x1F3FB, 0x1F3FF),
		cp == 0x200D:
		return 0
	case isWide(cp):
		return 2
	default:
		return 1
	}
}

// isWide reports whether cp falls in one of the double-width ranges
// enumerated by spec §4.1.
func isWide(cp rune) bool {
	switch {
	case inRange(cp, 0x1100, 0x115F), // Hangul Jamo
		inRange(cp, 0x2E80, 0x303E),  // CJK Radicals .. CJK Symbols
		inRange(cp, 0x3041, 0x33FF),  // Hiragana .. CJK Compatibility
		inRange(cp, 0x3400, 0x4DBF),  // CJK Ext A
		inRange(cp, 0x4E00, 0x9FFF),  // CJK Unified Ideographs
		inRange(cp, 0xA000, 0xA4CF),  // Yi
		inRange(cp, 0xAC00, 0xD7A3),  // Hangul Syllables
		inRange(cp, 0xF900, 0xFAFF),  // CJK Compatibility Ideographs
		inRange(cp, 0xFF00, 0xFF60),  // Fullwidth Forms
		inRange(cp, 0xFFE0, 0xFFE6),  // Fullwidth Signs
		inRange(cp, 0x1F1E6, 0x1F1FF), // regional indicators
		inRange(cp, 0x1F300, 0x1F9FF), // misc symbols/pictographs/emoji
		inRange(cp, 0x1FA00, 0x1FAFF), // symbols/pictographs extended-A
		inRange(cp, 0x20000, 0x3FFFD): // CJK Ext B..
		return true
	default:
		return false
	}
}

// isGraphemeExtender reports whether cp only ever extends a preceding
// base codepoint (combining marks, variation selectors, skin-tone
// modifiers) and never starts a new grapheme cluster on its own.
func isGraphemeExtender(cp rune) bool {
	switch {
	case inRange(cp, 0x0300, 0x036F),
		inRange(cp, 0x1AB0, 0x1AFF),
		inRange(cp, 0x1DC0, 0x1DFF),
		inRange(cp, 0x20D0, 0x20FF),
		inRange(cp, 0xFE20, 0xFE2F),
		cp == 0xFE0E, cp == 0xFE0F,
		inRange(cp, 0x1F3FB, 0x1F3FF):
		return true
	default:
		return false
	}
}

// isZWJ reports whether cp is the Zero-Width Joiner.
func isZWJ(cp rune) bool { return cp == 0x200D }

// nextGraphemeLen returns the byte length of the grapheme cluster
// starting at offset, never reading past end.
func nextGraphemeLen(b []byte, offset, end int) int {
	if offset >= end {
		return 0
	}
	cp, n := decodeAt(b, offset)
	if n == 0 {
		return 0
	}
	total := n
	pos := offset + n
	lastWasZWJ := false
	_ = cp
	for pos < end {
		next, size := decodeAt(b, pos)
		if size == 0 {
			break
		}
		if isGraphemeExtender(next) {
			total += size
			pos += size
			lastWasZWJ = false
			continue
		}
		if lastWasZWJ {
			// The ZWJ glues this base into the same cluster; keep
			// consuming and continue watching for further extenders.
			total += size
			pos += size
			lastWasZWJ = isZWJ(next)
			continue
		}
		if isZWJ(next) {
			total += size
			pos += size
			lastWasZWJ = true
			continue
		}
		break
	}
	return total
}

// prevGraphemeLen returns the byte length of the grapheme cluster
// ending at offset (i.e. the cluster a Backspace at offset should
// remove). A bespoke backward walk over ZWJ joins is easy to get
// wrong (it must drop each preceding base unconditionally once a ZWJ
// is crossed, exactly mirroring nextGraphemeLen's forward handling),
// so instead this replays nextGraphemeLen forward from the start of
// the buffer up to offset and returns the length of whichever cluster
// lands there. This makes the two functions symmetric by
// construction: prevGraphemeLen can never disagree with
// nextGraphemeLen about where a boundary falls.
func prevGraphemeLen(b []byte, offset int) int {
	if offset <= 0 || offset > len(b) {
		return 0
	}
	pos, last := 0, 0
	for pos < offset {
		clen := nextGraphemeLen(b, pos, offset)
		if clen == 0 {
			return 1 // malformed input never advances; drop one byte.
		}
		last = clen
		pos += clen
	}
	return last
}

func isContinuation(b byte) bool { return b&0xC0 == 0x80 }

// displayWidth computes the total display width of buf[:byteLen],
// summing the width of each grapheme cluster's base codepoint
// (extenders and ZWJ-joined continuations contribute 0 beyond the
// base already counted).
func displayWidth(buf []byte, byteLen int) int {
	width := 0
	offset := 0
	for offset < byteLen {
		clen := nextGraphemeLen(buf, offset, byteLen)
		if clen == 0 {
			break
		}
		width += singleClusterWidth(buf[offset : offset+clen])
		offset += clen
	}
	return width
}

// singleClusterWidth returns the display width of the grapheme
// cluster occupying the first clen bytes of buf (the width of its
// base codepoint; extenders never widen a cluster).
func singleClusterWidth(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	cp, _ := decodeAt(buf, 0)
	return codepointWidth(cp)
}
