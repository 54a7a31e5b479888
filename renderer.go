package linenoise

import (
	"strings"

	istrings "github.com/shakfu/linenoise/strings"
)

// HintFunc is the application-supplied hints callback (spec §6):
// given the current line, it may return advisory text plus an SGR
// color code and bold flag to render past the cursor.
type HintFunc func(line string) (hint string, color int, bold bool)

// Renderer implements the Single-line and Multi-line renderers of
// spec §4.4, using only the six VT100 sequences it enumerates.
// Grounded on the original implementation's refreshSingleLine and
// refreshMultiLine, adapted to Go slice/index idioms and to operate
// against the Reader capability set instead of raw fds.
type Renderer struct {
	out       Reader
	multiline bool
	mask      bool
	hintFn    HintFunc
}

// NewRenderer returns a Renderer writing to out.
func NewRenderer(out Reader, multiline, mask bool, hintFn HintFunc) *Renderer {
	return &Renderer{out: out, multiline: multiline, mask: mask, hintFn: hintFn}
}

// Render draws the current Edit State, choosing the single-line or
// multi-line algorithm per r.multiline.
func (r *Renderer) Render(e *EditState) error {
	var ab appendBuffer
	if r.multiline {
		r.renderMultiLine(e, &ab)
	} else {
		r.renderSingleLine(e, &ab)
	}
	return ab.Flush(r.out)
}

// renderHintText invokes the hints callback and returns the SGR-wrapped,
// grapheme-truncated hint text that fits in the given remaining columns.
func (r *Renderer) renderHintText(line string, remaining int) string {
	if r.hintFn == nil || remaining <= 0 {
		return ""
	}
	text, color, bold := r.hintFn(line)
	if text == "" {
		return ""
	}
	code := color
	if bold {
		code += ColorBold
	}
	truncated := istrings.Truncate(text, istrings.Width(remaining), "")
	seq := sgrSequence(code)
	if seq == "" {
		return truncated
	}
	return seq + truncated + sgrReset
}

// singleLineWindow computes the visible byte range [start,end) of
// e.buf per spec §4.4 steps 2-3 (left-scroll then right-trim), plus
// the display columns of the cursor and of the window's end, relative
// to the window.
func singleLineWindow(buf []byte, pos, pwidth, cols int) (start, end, poscol, lencol int) {
	start, end = 0, len(buf)
	poscol = displayWidth(buf[start:pos], pos-start)
	lencol = displayWidth(buf[start:end], end-start)

	for pwidth+poscol >= cols {
		clen := nextGraphemeLen(buf, start, end)
		if clen == 0 {
			break
		}
		w := singleClusterWidth(buf[start : start+clen])
		start += clen
		poscol -= w
		lencol -= w
		if start > pos {
			poscol = 0
		}
	}
	for pwidth+lencol > cols {
		clen := prevGraphemeLen(buf, end)
		if clen == 0 || end-clen < start {
			break
		}
		w := singleClusterWidth(buf[end-clen : end])
		end -= clen
		lencol -= w
	}
	return start, end, poscol, lencol
}

func (r *Renderer) renderSingleLine(e *EditState, ab *appendBuffer) {
	pwidth := displayWidth([]byte(e.prompt), len(e.prompt))
	start, end, poscol, _ := singleLineWindow(e.buf, e.pos, pwidth, e.cols)

	ab.WriteString("\r")
	ab.WriteString(e.prompt)
	visible := e.buf[start:end]
	if r.mask {
		n := 0
		for off := 0; off < len(visible); {
			clen := nextGraphemeLen(visible, off, len(visible))
			if clen == 0 {
				break
			}
			off += clen
			n++
		}
		ab.WriteString(strings.Repeat("*", n))
	} else {
		ab.Write(visible)
	}

	// refresh_show_Hints in the original implementation gates purely on
	// whether the full (untrimmed) buffer plus prompt fits in one row,
	// independent of cursor position or horizontal scroll.
	remaining := e.cols - pwidth - displayWidth(e.buf, len(e.buf))
	ab.WriteString(r.renderHintText(string(e.buf), remaining))

	ab.WriteString("\x1b[0K")
	ab.WriteString("\r")
	if col := pwidth + poscol; col > 0 {
		ab.WriteString("\x1b[")
		ab.WriteString(itoa(col))
		ab.WriteString("C")
	}
}

func (r *Renderer) renderMultiLine(e *EditState, ab *appendBuffer) {
	pwidth := displayWidth([]byte(e.prompt), len(e.prompt))
	cols := e.cols
	if cols <= 0 {
		cols = DefColCount
	}

	rows := ceilDiv(pwidth+displayWidth(e.buf, len(e.buf)), cols)
	if rows == 0 {
		rows = 1
	}

	if e.oldrows > 0 {
		if diff := e.oldrows - e.oldrpos; diff > 0 {
			ab.WriteString("\x1b[")
			ab.WriteString(itoa(diff))
			ab.WriteString("B")
		}
		for i := 0; i < e.oldrows-1; i++ {
			ab.WriteString("\r\x1b[0K\x1b[1A")
		}
	}
	ab.WriteString("\r\x1b[0K")

	ab.WriteString(e.prompt)
	if r.mask {
		n := 0
		for off := 0; off < len(e.buf); {
			clen := nextGraphemeLen(e.buf, off, len(e.buf))
			if clen == 0 {
				break
			}
			off += clen
			n++
		}
		ab.WriteString(strings.Repeat("*", n))
	} else {
		ab.Write(e.buf)
	}

	poswidth := displayWidth(e.buf[:e.pos], e.pos)
	// Same "fits in one row" gate as the single-line case, independent
	// of cursor position (refresh_show_Hints in the original
	// implementation).
	remaining := cols - pwidth - displayWidth(e.buf, len(e.buf))
	ab.WriteString(r.renderHintText(string(e.buf), remaining))

	if e.pos > 0 && e.pos == len(e.buf) && (pwidth+poswidth)%cols == 0 {
		ab.WriteString("\n\r")
		rows++
	}

	rpos2 := (pwidth + poswidth + cols) / cols
	if diff := rows - rpos2; diff > 0 {
		ab.WriteString("\x1b[")
		ab.WriteString(itoa(diff))
		ab.WriteString("A")
	}

	col := (pwidth + poswidth) % cols
	if col > 0 {
		ab.WriteString("\r\x1b[")
		ab.WriteString(itoa(col))
		ab.WriteString("C")
	} else {
		ab.WriteString("\r")
	}

	e.oldpos = e.pos
	e.oldrows = rows
	e.oldrpos = rpos2
}

// ClearScreen requests the Terminal Port clear (spec §4.3
// clear-screen), for the caller to follow with a fresh Render.
func (r *Renderer) ClearScreen(e *EditState) error {
	e.oldrows = 0
	e.oldrpos = 0
	return r.out.ClearScreen()
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
