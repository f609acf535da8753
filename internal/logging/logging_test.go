package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_HasComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelDebug, "json", &buf)

	logger := New("corpus")
	logger.Info("scan complete")

	output := buf.String()
	if !strings.Contains(output, `"component":"corpus"`) {
		t.Errorf("expected component attribute in output, got: %s", output)
	}
	if !strings.Contains(output, "scan complete") {
		t.Errorf("expected message in output, got: %s", output)
	}
}

func TestInit_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelInfo, "json", &buf)

	New("fmt-test").Info("json check")

	if !strings.Contains(buf.String(), `"level":"INFO"`) {
		t.Errorf("expected JSON level field, got: %s", buf.String())
	}
}

func TestInit_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, "json", &buf)

	New("filter-test").Info("should not appear")

	if buf.Len() != 0 {
		t.Errorf("expected info below warn level to be dropped, got: %s", buf.String())
	}
}
