package linenoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionCycleWrapsWithBell(t *testing.T) {
	completer := func(line string) []Suggest {
		return []Suggest{{Text: "foo"}, {Text: "foobar"}}
	}
	c := newCompletionLoop(completer)
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("fo"))

	rings := 0
	ring := func() { rings++ }

	c.Tab(e, ring)
	assert.Equal(t, "foo", e.String())

	c.Tab(e, ring)
	assert.Equal(t, "foobar", e.String())

	c.Tab(e, ring)
	assert.Equal(t, "fo", e.String())
	assert.Equal(t, 1, rings)

	c.Tab(e, ring)
	assert.Equal(t, "foo", e.String())
}

func TestCompletionEmptyListRingsBell(t *testing.T) {
	c := newCompletionLoop(func(string) []Suggest { return nil })
	e := newEditState("> ", 60)
	rings := 0
	changed := c.Tab(e, func() { rings++ })
	assert.False(t, changed)
	assert.Equal(t, 1, rings)
}

func TestCompletionEscapeReverts(t *testing.T) {
	completer := func(string) []Suggest { return []Suggest{{Text: "xyz"}} }
	c := newCompletionLoop(completer)
	e := newEditState("> ", 60)
	e.InsertBytes([]byte("x"))
	c.Tab(e, func() {})
	assert.Equal(t, "xyz", e.String())
	c.Escape(e)
	assert.Equal(t, "x", e.String())
	assert.False(t, c.Active())
}

func TestCompletionAcceptKeepsCandidate(t *testing.T) {
	completer := func(string) []Suggest { return []Suggest{{Text: "xyz"}} }
	c := newCompletionLoop(completer)
	e := newEditState("> ", 60)
	c.Tab(e, func() {})
	c.Accept()
	assert.Equal(t, "xyz", e.String())
	assert.False(t, c.Active())
}

func TestCompletionNoopWithoutCallback(t *testing.T) {
	c := newCompletionLoop(nil)
	e := newEditState("> ", 60)
	changed := c.Tab(e, func() {})
	assert.False(t, changed)
}
