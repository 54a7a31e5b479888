package linenoise

import (
	"bufio"
	"os"
	"strings"
)

// DefaultHistoryMaxLen is the default capacity of a fresh History
// (spec §3: "default 100").
const DefaultHistoryMaxLen = 100

// History is the bounded FIFO ring of past entries described in spec
// §4.6. Grounded on
// _examples/joeycumines-go-utilpkg/prompt/history_test.go's Add/Save/
// Load contract; the file-permission discipline follows the original
// implementation's linenoiseHistorySave.
type History struct {
	entries []string
	maxLen  int
}

// NewHistory returns a History with the given capacity. A
// non-positive maxLen falls back to DefaultHistoryMaxLen.
func NewHistory(maxLen int) *History {
	if maxLen <= 0 {
		maxLen = DefaultHistoryMaxLen
	}
	return &History{maxLen: maxLen}
}

// Len returns the current number of stored entries.
func (h *History) Len() int { return len(h.entries) }

// MaxLen returns the configured capacity.
func (h *History) MaxLen() int { return h.maxLen }

// Entries returns the stored entries, oldest first. The returned
// slice must not be mutated.
func (h *History) Entries() []string { return h.entries }

// At returns the entry that is index positions back from the most
// recent (0 = most recent), and whether index was in range.
func (h *History) At(index int) (string, bool) {
	n := len(h.entries)
	if index < 0 || index >= n {
		return "", false
	}
	return h.entries[n-1-index], true
}

// Add appends line to the history, deduplicating against the current
// tail and evicting the oldest entry on overflow (spec §4.6).
func (h *History) Add(line string) {
	if h.maxLen == 0 {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	if len(h.entries) >= h.maxLen {
		h.entries = h.entries[1:]
	}
	h.entries = append(h.entries, line)
}

// SetMaxLen changes the capacity, dropping the oldest entries if
// shrinking below the current length.
func (h *History) SetMaxLen(n int) {
	if n < 1 {
		n = 1
	}
	h.maxLen = n
	if len(h.entries) > n {
		h.entries = h.entries[len(h.entries)-n:]
	}
}

// Save writes the history to path, one LF-terminated entry per line,
// with owner-only permissions established at creation time rather
// than via a post-hoc chmod (spec §4.6, §8: mode 0600 round-trip).
func (h *History) Save(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, e := range h.entries {
		if _, err := w.WriteString(e); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Load reads entries from path, stripping trailing CR/LF, and Adds
// each one in file order.
func (h *History) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		h.Add(line)
	}
	return scanner.Err()
}
