package vlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetAndRestore(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	L().Debug("mode change", "view", "v1")
	if !strings.Contains(buf.String(), "mode change") {
		t.Errorf("log output = %q", buf.String())
	}

	Set(nil)
	if L().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Set(nil) should restore the silent logger")
	}
}
