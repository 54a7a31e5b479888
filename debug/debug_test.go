package debug

import (
	"testing"
)

func resetGlobals() {
	enableAssert = false
	logger = nil
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
}

func TestAssertPanicsWhenEnabled(t *testing.T) {
	t.Cleanup(resetGlobals)
	enableAssert = true
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when assertions enabled")
		}
	}()
	Assert(false, "boom")
}

func TestAssertNoOpWhenConditionTrue(t *testing.T) {
	t.Cleanup(resetGlobals)
	enableAssert = true
	Assert(true, "should not panic")
}

func TestAssertDoesNotPanicWhenDisabled(t *testing.T) {
	t.Cleanup(resetGlobals)
	enableAssert = false
	Assert(false, "should not panic, just report")
}

func TestAssertNoErrorNoOpWhenNil(t *testing.T) {
	t.Cleanup(resetGlobals)
	enableAssert = true
	AssertNoError(nil)
}

func TestLogNoOpWithoutLogfile(t *testing.T) {
	t.Cleanup(resetGlobals)
	// Should never panic even though no log file is configured.
	Log("hello %s", "world")
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Cleanup(resetGlobals)
	Close()
	Close()
}
