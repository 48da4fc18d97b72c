package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected warn message in output: %s", out)
	}
}

func TestNewFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New("verbose", &buf)

	logger.Debug("debug")
	logger.Info("info")

	out := buf.String()
	if strings.Contains(out, `"msg":"debug"`) || !strings.Contains(out, `"msg":"info"`) {
		t.Fatalf("unexpected output for invalid level: %s", out)
	}
}
