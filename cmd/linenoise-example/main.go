// Command linenoise-example is a minimal echo REPL, grounded on
// _examples/joeycumines-go-utilpkg/prompt/_example/simple-echo's
// completer-and-loop shape.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/shakfu/linenoise"
)

var words = []string{"select", "insert", "update", "delete", "from", "where"}

func completer(line string) []linenoise.Suggest {
	last := line
	if i := strings.LastIndexByte(line, ' '); i >= 0 {
		last = line[i+1:]
	}
	if last == "" {
		return nil
	}
	var out []linenoise.Suggest
	for _, w := range words {
		if strings.HasPrefix(w, strings.ToLower(last)) {
			out = append(out, linenoise.Suggest{Text: line[:len(line)-len(last)] + w})
		}
	}
	return out
}

func hints(line string) (string, int, bool) {
	if strings.HasPrefix(line, "sel") && line != "select" {
		return "ect ...", linenoise.ColorCyan, false
	}
	return "", linenoise.ColorDefault, false
}

func main() {
	term, err := linenoise.NewStdinReader()
	if err != nil {
		fmt.Fprintln(os.Stderr, "linenoise-example:", err)
		os.Exit(1)
	}
	defer term.Close()

	histFile := os.Getenv("LINENOISE_EXAMPLE_HISTORY")
	opts := []linenoise.Option{
		linenoise.WithCompleter(completer),
		linenoise.WithHints(hints),
	}
	if histFile != "" {
		opts = append(opts, linenoise.WithHistoryFile(histFile))
	}
	ctx := linenoise.NewContext(term, opts...)

	for {
		line, err := ctx.Read("sql> ")
		if err != nil {
			if linenoise.IsKind(err, linenoise.ErrEOF) || linenoise.IsKind(err, linenoise.ErrInterrupted) {
				break
			}
			fmt.Fprintln(os.Stderr, "linenoise-example:", err)
			break
		}
		fmt.Println("echo:", line)
	}

	if histFile != "" {
		_ = ctx.History().Save(histFile)
	}
}
