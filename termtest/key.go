package termtest

import "fmt"

// keyMap maps friendly key names to the byte sequences the linenoise
// Key Decoder recognizes (spec §4.2). A small subset of
// _examples/joeycumines-go-utilpkg/prompt/termtest/key.go's much
// larger table, covering only the sequences this core's decoder acts
// on.
var keyMap = map[string]string{
	"enter":     "\r",
	"tab":       "\t",
	"backspace": "\x7f",
	"escape":    "\x1b",

	"ctrl+a": "\x01",
	"ctrl+b": "\x02",
	"ctrl+c": "\x03",
	"ctrl+d": "\x04",
	"ctrl+e": "\x05",
	"ctrl+f": "\x06",
	"ctrl+h": "\x08",
	"ctrl+k": "\x0b",
	"ctrl+l": "\x0c",
	"ctrl+n": "\x0e",
	"ctrl+p": "\x10",
	"ctrl+t": "\x14",
	"ctrl+u": "\x15",
	"ctrl+w": "\x17",

	"up":    "\x1b[A",
	"down":  "\x1b[B",
	"right": "\x1b[C",
	"left":  "\x1b[D",
	"home":  "\x1b[H",
	"end":   "\x1b[F",
	"del":   "\x1b[3~",
}

// LookupKey resolves a friendly key name (e.g. "ctrl+c", "up") to its
// raw byte sequence.
func LookupKey(name string) (string, error) {
	seq, ok := keyMap[name]
	if !ok {
		return "", fmt.Errorf("termtest: unknown key %q", name)
	}
	return seq, nil
}
