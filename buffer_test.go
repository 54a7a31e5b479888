package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertBytesFastAppend(t *testing.T) {
	e := newEditState("hello> ", 60)
	e.InsertBytes([]byte("hi"))
	assert.Equal(t, "hi", e.String())
	assert.Equal(t, 2, e.Pos())
}

func TestInsertBytesMiddle(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("ac"))
	e.pos = 1
	e.InsertBytes([]byte("b"))
	assert.Equal(t, "abc", e.String())
	assert.Equal(t, 2, e.Pos())
}

func TestInsertBytesDropsOnFixedOverflow(t *testing.T) {
	e := newEditState("> ", 60)
	e.maxLen = 3
	e.InsertBytes([]byte("abc"))
	e.InsertBytes([]byte("d"))
	assert.Equal(t, "abc", e.String())
}

func TestBackspaceInverseOfInsert(t *testing.T) {
	e := newEditState("> ", 60)
	family := "\U0001F468‍\U0001F469‍\U0001F467"
	e.InsertBytes([]byte(family))
	before := len(e.buf)
	assert.True(t, e.Backspace())
	assert.Equal(t, 0, e.Len())
	_ = before
}

func TestBackspaceNoopAtStart(t *testing.T) {
	e := newEditState("> ", 60)
	assert.False(t, e.Backspace())
}

func TestDeleteForward(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("abc"))
	e.pos = 1
	assert.True(t, e.DeleteForward())
	assert.Equal(t, "ac", e.String())
}

func TestMoveLeftRightWideRune(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("あ"))
	assert.True(t, e.MoveLeft())
	assert.Equal(t, 0, e.Pos())
	assert.True(t, e.MoveRight())
	assert.Equal(t, len("あ"), e.Pos())
}

func TestMoveHomeEnd(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("abc"))
	assert.True(t, e.MoveHome())
	assert.Equal(t, 0, e.Pos())
	assert.True(t, e.MoveEnd())
	assert.Equal(t, 3, e.Pos())
	assert.False(t, e.MoveEnd())
}

func TestDeletePreviousWord(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("foo bar "))
	assert.True(t, e.DeletePreviousWord())
	assert.Equal(t, "foo ", e.String())
}

func TestDeleteLine(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("abc"))
	assert.True(t, e.DeleteLine())
	assert.Equal(t, "", e.String())
	assert.Equal(t, 0, e.Pos())
}

func TestDeleteToEnd(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("abcdef"))
	e.pos = 3
	assert.True(t, e.DeleteToEnd())
	assert.Equal(t, "abc", e.String())
}

func TestTransposeMiddle(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("abc"))
	e.pos = 1
	assert.True(t, e.Transpose())
	assert.Equal(t, "bac", e.String())
}

func TestTransposeAtEnd(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("ab"))
	assert.True(t, e.Transpose())
	assert.Equal(t, "ba", e.String())
	assert.Equal(t, 2, e.Pos())
}

func TestLoadFromHistorySetsPosToEnd(t *testing.T) {
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("draft"))
	e.LoadFromHistory("older entry")
	assert.Equal(t, "older entry", e.String())
	assert.Equal(t, len("older entry"), e.Pos())
}
