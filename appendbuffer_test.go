package linenoise

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBufferCoalescesWrites(t *testing.T) {
	var a appendBuffer
	a.WriteString("\r")
	a.WriteString("\x1b[0K")
	a.WriteString("hello")
	assert.Equal(t, "\r\x1b[0Khello", string(a.buf))
}

func TestAppendBufferFlushResets(t *testing.T) {
	var a appendBuffer
	a.WriteString("abc")
	var out bytes.Buffer
	assert.NoError(t, a.Flush(&out))
	assert.Equal(t, "abc", out.String())
	assert.Equal(t, 0, a.Len())
}

func TestAppendBufferFlushEmptyIsNoop(t *testing.T) {
	var a appendBuffer
	var out bytes.Buffer
	assert.NoError(t, a.Flush(&out))
	assert.Equal(t, 0, out.Len())
}
