package linenoise

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	written []byte
	cols    int
}

func (f *fakeReader) EnterRaw() error                 { return nil }
func (f *fakeReader) LeaveRaw() error                 { return nil }
func (f *fakeReader) ReadByte(int) (byte, bool, error) { return 0, false, nil }
func (f *fakeReader) Write(p []byte) (int, error) {
	f.written = append(f.written, p...)
	return len(p), nil
}
func (f *fakeReader) IsTTY() bool { return true }
func (f *fakeReader) Columns() int {
	if f.cols == 0 {
		return DefColCount
	}
	return f.cols
}
func (f *fakeReader) WinSize() WinSize { return WinSize{Row: DefRowCount, Col: uint16(f.Columns())} }
func (f *fakeReader) ClearScreen() error {
	f.written = append(f.written, "\x1b[H\x1b[2J"...)
	return nil
}
func (f *fakeReader) Close() error { return nil }

func TestSingleLineRenderEmitsPromptAndBuffer(t *testing.T) {
	out := &fakeReader{cols: 60}
	e := newEditState("hello> ", 60)
	e.InsertBytes([]byte("hi"))
	r := NewRenderer(out, false, false, nil)
	require.NoError(t, r.Render(e))
	got := string(out.written)
	assert.True(t, strings.HasPrefix(got, "\r"))
	assert.Contains(t, got, "hello> hi")
	assert.Contains(t, got, "\x1b[0K")
}

func TestSingleLineRenderMasksBuffer(t *testing.T) {
	out := &fakeReader{cols: 60}
	e := newEditState("pw> ", 60)
	e.InsertBytes([]byte("secret"))
	r := NewRenderer(out, false, true, nil)
	require.NoError(t, r.Render(e))
	got := string(out.written)
	assert.Contains(t, got, "******")
	assert.NotContains(t, got, "secret")
}

func TestSingleLineRenderScrollsWhenOverWidth(t *testing.T) {
	out := &fakeReader{cols: 10}
	e := newEditState("> ", 10)
	e.InsertBytes([]byte(strings.Repeat("a", 20)))
	r := NewRenderer(out, false, false, nil)
	require.NoError(t, r.Render(e))
	got := string(out.written)
	assert.NotContains(t, got, strings.Repeat("a", 20))
}

func TestSingleLineWindowFitsWithinCols(t *testing.T) {
	buf := []byte(strings.Repeat("a", 30))
	start, end, poscol, lencol := singleLineWindow(buf, len(buf), 7, 20)
	assert.True(t, end-start <= 13)
	assert.True(t, 7+poscol < 20)
	assert.True(t, 7+lencol <= 20)
}

func TestMultiLineRenderTracksRows(t *testing.T) {
	out := &fakeReader{cols: 10}
	e := newEditState("> ", 10)
	e.InsertBytes([]byte(strings.Repeat("a", 25)))
	r := NewRenderer(out, true, false, nil)
	require.NoError(t, r.Render(e))
	assert.True(t, e.oldrows >= 2)
}

func TestRenderHintTextEmptyWithoutCallback(t *testing.T) {
	r := NewRenderer(&fakeReader{}, false, false, nil)
	assert.Equal(t, "", r.renderHintText("abc", 20))
}

func TestRenderHintTextWrapsSGR(t *testing.T) {
	hint := func(line string) (string, int, bool) { return "hint", ColorRed, false }
	r := NewRenderer(&fakeReader{}, false, false, hint)
	got := r.renderHintText("abc", 20)
	assert.Contains(t, got, "hint")
	assert.Contains(t, got, "\x1b[0m")
}
