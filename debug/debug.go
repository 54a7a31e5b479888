// Package debug provides opt-in logging and assertion helpers for the
// linenoise core. Both are disabled by default because a line editor
// runs in raw mode and cannot safely write diagnostic output to the
// controlling terminal without corrupting the render.
package debug

import (
	"fmt"
	"log"
	"os"
)

const (
	envEnableLog   = "LINENOISE_ENABLE_LOG"
	envAssertPanic = "LINENOISE_ASSERT_PANIC"
	logFileName    = "linenoise-debug.log"
)

var (
	enableAssert = os.Getenv(envAssertPanic) != ""
	logger       *log.Logger
	logfile      *os.File
)

func init() {
	if os.Getenv(envEnableLog) == "" {
		return
	}
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	logfile = f
	logger = log.New(f, "", log.LstdFlags|log.Lmicroseconds)
}

// Log writes a formatted message to the debug log, if enabled. It is a
// no-op otherwise.
func Log(format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Output(2, fmt.Sprintf(format, args...))
}

// Assert panics with msg if cond is false and LINENOISE_ASSERT_PANIC is
// set; otherwise it logs the failure and continues.
func Assert(cond bool, msg string) {
	if cond {
		return
	}
	if enableAssert {
		panic(msg)
	}
	if logger != nil {
		logger.Output(2, "assertion failed: "+msg)
	} else {
		fmt.Fprintln(os.Stderr, "linenoise: assertion failed:", msg)
	}
}

// AssertNoError is Assert(err == nil, err.Error()), skipped entirely
// when err is nil.
func AssertNoError(err error) {
	if err == nil {
		return
	}
	Assert(false, err.Error())
}

// Close releases the debug log file, if one is open.
func Close() {
	if logfile == nil {
		return
	}
	_ = logfile.Close()
	logfile = nil
	logger = nil
}
