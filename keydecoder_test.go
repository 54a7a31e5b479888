package linenoise

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueReader is a minimal Reader backed by a byte slice, used only to
// exercise the Decoder in isolation from any terminal.
type queueReader struct {
	buf *bytes.Buffer
}

func newQueueReader(b []byte) *queueReader { return &queueReader{buf: bytes.NewBuffer(b)} }

func (q *queueReader) EnterRaw() error { return nil }
func (q *queueReader) LeaveRaw() error { return nil }
func (q *queueReader) ReadByte(timeoutMs int) (byte, bool, error) {
	b, err := q.buf.ReadByte()
	if err != nil {
		return 0, false, nil
	}
	return b, true, nil
}
func (q *queueReader) Write(p []byte) (int, error)  { return len(p), nil }
func (q *queueReader) IsTTY() bool                  { return true }
func (q *queueReader) Columns() int                 { return DefColCount }
func (q *queueReader) WinSize() WinSize             { return WinSize{Row: DefRowCount, Col: DefColCount} }
func (q *queueReader) ClearScreen() error           { return nil }
func (q *queueReader) Close() error                 { return nil }

func TestDecodeControlKeys(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte{0x01, 0x05, 0x17, 0x7f, 0x0d}), 20)
	types := []KeyType{}
	for i := 0; i < 5; i++ {
		ev, err := d.Next()
		require.NoError(t, err)
		types = append(types, ev.Type)
	}
	assert.Equal(t, []KeyType{KeyCtrlA, KeyCtrlE, KeyCtrlW, KeyBackspace, KeyEnter}, types)
}

func TestDecodePrintableASCII(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte("x")), 20)
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyPrintable, ev.Type)
	assert.Equal(t, []byte("x"), ev.Bytes)
}

func TestDecodeArrowKeys(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte("\x1b[A\x1b[B\x1b[C\x1b[D")), 20)
	want := []KeyType{KeyArrowUp, KeyArrowDown, KeyArrowRight, KeyArrowLeft}
	for _, w := range want {
		ev, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, w, ev.Type)
	}
}

func TestDecodeHomeEndDeleteViaTilde(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte("\x1b[1~\x1b[4~\x1b[3~")), 20)
	want := []KeyType{KeyHome, KeyEnd, KeyDelete}
	for _, w := range want {
		ev, err := d.Next()
		require.NoError(t, err)
		assert.Equal(t, w, ev.Type)
	}
}

func TestDecodeSS3HomeEnd(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte("\x1bOH\x1bOF")), 20)
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyHome, ev.Type)
	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyEnd, ev.Type)
}

func TestDecodeLoneEscapeIsStandalone(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte{0x1b}), 5)
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyEscape, ev.Type)
}

func TestDecodeUnrecognizedEscapeSequenceIsDiscardedSilently(t *testing.T) {
	// ESC followed by a lead byte that starts neither a CSI ("[") nor
	// an SS3 ("O") sequence: the whole sequence is discarded silently
	// (spec §4.2), yielding one KeyUnknown event with 'a' consumed as
	// part of it, not a standalone Escape followed by a printable 'a'.
	d := NewDecoder(newQueueReader([]byte("\x1ba")), 5)
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyUnknown, ev.Type)
}

func TestDecodeMultiByteUTF8(t *testing.T) {
	d := NewDecoder(newQueueReader([]byte("あ")), 5)
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyPrintable, ev.Type)
	assert.Equal(t, []byte("あ"), ev.Bytes)
}

func TestDecodeCoalescesCombiningMark(t *testing.T) {
	// 'e' + combining acute accent, immediately available.
	d := NewDecoder(newQueueReader([]byte("éx")), 5)
	ev, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyPrintable, ev.Type)
	assert.Equal(t, []byte("é"), ev.Bytes)

	ev, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, KeyPrintable, ev.Type)
	assert.Equal(t, []byte("x"), ev.Bytes)
}
