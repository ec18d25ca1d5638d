package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestWriterLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf)
	logger.SetLevel(WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown", Fields{"note": "A4"})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown note=A4") {
		t.Errorf("Unexpected warn output: %q", out)
	}
}

func TestWithFieldsAndContext(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)

	ctx := ContextWithFields(context.Background(), Fields{"request": 7})
	logger := base.WithFields(Fields{"component": "render"}).WithContext(ctx)
	logger.Error(errors.New("boom"), "render failed")

	out := buf.String()
	if !strings.Contains(out, "[ERROR] render failed: boom component=render request=7") {
		t.Errorf("Unexpected error output: %q", out)
	}

	// the parent logger keeps its own field set
	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("WithFields leaked into parent logger: %q", buf.String())
	}
}

func TestSetGlobalLoggerNil(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Errorf("Expected NoOpLogger after SetGlobalLogger(nil), got %T", GetGlobalLogger())
	}
}
