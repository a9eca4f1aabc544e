package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestForSourceMemoizes(t *testing.T) {
	a := ForSource("contacts")
	b := ForSource("contacts")
	if a != b {
		t.Error("expected the same logger instance for the same source")
	}
}

func TestLevelsAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	l := ForSource("testsrc")
	l.Infof("hello %d", 42)
	l.Warnf("careful")
	l.Errorf("boom")

	out := buf.String()
	for _, want := range []string{"INFO [testsrc] hello 42", "WARN [testsrc] careful", "ERROR [testsrc] boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestDebugGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(&bytes.Buffer{})

	l := ForSource("gated")
	l.Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged while debug disabled")
	}

	EnableDebugFor("gated")
	l.Debugf("visible")
	if !strings.Contains(buf.String(), "DEBUG [gated] visible") {
		t.Errorf("debug message not logged after EnableDebugFor, got:\n%s", buf.String())
	}

	SetGlobalDebug(true)
	defer SetGlobalDebug(false)
	if !DebugEnabledFor("other") {
		t.Error("global debug should enable every source")
	}
}
