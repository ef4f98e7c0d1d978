package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func captureLogger(buf *bytes.Buffer, component string) *Logger {
	return New(Config{
		Level:     slog.LevelDebug,
		Component: component,
		Handler:   slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})
}

func TestLogger_SingleComponentTag(t *testing.T) {
	var buf bytes.Buffer
	logger := captureLogger(&buf, "app")

	logger.Info("starting")
	line := buf.String()
	if got := strings.Count(line, "component="); got != 1 {
		t.Fatalf("component tags = %d in %q, want 1", got, line)
	}
	if !strings.Contains(line, "component=app") {
		t.Errorf("record %q missing component=app", line)
	}
}

func TestLogger_WithComponentReplacesTag(t *testing.T) {
	var buf bytes.Buffer
	logger := captureLogger(&buf, "app").WithComponent("reading")

	logger.Info("Reading timer started", FieldDurationMin, 10)
	line := buf.String()
	if got := strings.Count(line, "component="); got != 1 {
		t.Fatalf("component tags = %d in %q, want 1", got, line)
	}
	if !strings.Contains(line, "component=reading") {
		t.Errorf("record %q missing component=reading", line)
	}

	// Re-scoping an already scoped logger must not stack tags either.
	buf.Reset()
	logger.WithComponent("worker").Warn("sync skipped")
	line = buf.String()
	if got := strings.Count(line, "component="); got != 1 {
		t.Fatalf("component tags after re-scope = %d in %q, want 1", got, line)
	}
	if logger.Component() != "reading" {
		t.Errorf("Component() = %q, want reading", logger.Component())
	}
}
