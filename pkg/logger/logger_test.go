package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}

	if err := Init(WithFormat("xml")); err == nil {
		t.Fatal("expected unknown format to fail")
	}
}

func TestLoggerWritesFields(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf), WithFormat(FormatJSON)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Get().Info(context.Background(), "served roster", String("version", "v3"), Int("count", 4))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected a JSON record, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "served roster" {
		t.Errorf("unexpected msg: %v", record["msg"])
	}
	if record["version"] != "v3" {
		t.Errorf("unexpected version: %v", record["version"])
	}
	if record["count"] != float64(4) {
		t.Errorf("unexpected count: %v", record["count"])
	}
	if src, _ := record["source"].(string); !strings.Contains(src, "logger_test.go") {
		t.Errorf("expected source to point at the caller, got %q", src)
	}
}

func TestLoggerNamedAndWith(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}

	Named("roster").With(String("request_id", "abc")).Warn(context.Background(), "test message")

	out := buf.String()
	if !strings.Contains(out, "logger=roster") {
		t.Errorf("expected logger name in output, got %q", out)
	}
	if !strings.Contains(out, "request_id=abc") {
		t.Errorf("expected bound field in output, got %q", out)
	}
}

func TestSetLevelString(t *testing.T) {
	var buf bytes.Buffer
	if err := Init(WithWriter(&buf)); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	ctx := context.Background()

	if Get().Enabled(ctx, slog.LevelDebug) {
		t.Fatal("debug should be disabled by default")
	}
	Get().Debug(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output at info level, got %q", buf.String())
	}

	if err := SetLevelString("DEBUG"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Get().Enabled(ctx, slog.LevelDebug) {
		t.Fatal("debug should be enabled")
	}

	for _, level := range []string{"", "info", "warn", "warning", "error"} {
		if err := SetLevelString(level); err != nil {
			t.Errorf("level %q: unexpected error: %v", level, err)
		}
	}
	if err := SetLevelString("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
