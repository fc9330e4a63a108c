package xfermodes

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs installs a debug-level text logger for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelError} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("silent logger enabled for %v", level)
		}
	}
}

func TestCompositeParallelLogsBands(t *testing.T) {
	buf := captureLogs(t)

	dst := NewPixmap(8, 64)
	src := NewPixmap(8, 64)
	CompositeParallel(dst, src, 0, 0, Xor, 2)

	out := buf.String()
	if !strings.Contains(out, "composite parallel") || !strings.Contains(out, "mode=Xor") {
		t.Errorf("expected composite debug record, got: %s", out)
	}
}

func TestPoolCompositeLogsRegion(t *testing.T) {
	buf := captureLogs(t)

	pool := NewPool(2)
	defer pool.Close()
	pool.Composite(NewPixmap(8, 64), NewPixmap(8, 64), 0, 0, Screen)

	out := buf.String()
	if !strings.Contains(out, "mode=Screen") || !strings.Contains(out, "region=(0,0)-(8,64)") {
		t.Errorf("expected pool debug record, got: %s", out)
	}
}

func TestCompositeSerialIsQuiet(t *testing.T) {
	buf := captureLogs(t)

	Composite(NewPixmap(8, 8), NewPixmap(8, 8), 0, 0, SrcOver)
	// Too few rows to split, so CompositeParallel falls back to Composite.
	CompositeParallel(NewPixmap(8, 8), NewPixmap(8, 8), 0, 0, SrcOver, 4)

	if buf.Len() != 0 {
		t.Errorf("serial composite logged: %s", buf.String())
	}
}

func BenchmarkLoggerDisabledLog(b *testing.B) {
	l := Logger()
	b.ReportAllocs()
	for b.Loop() {
		l.Debug("message", "key", "value")
	}
}
