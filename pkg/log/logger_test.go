package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"Warn":    WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got != want {
			t.Fatalf("parse %q: got %v want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("bogus"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestTextFormatterFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(DebugLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l.Info("file written", Str("path", "/tmp/a.json"), Int("items", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "file written") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "items=3") || !strings.Contains(line, "path=/tmp/a.json") {
		t.Fatalf("missing fields: %q", line)
	}
}

func TestLevelGate(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(WarnLevel),
		WithFormatter(&TextFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l.Debug("dropped")
	l.Info("dropped too")
	l.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("below-level entries should be gated: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn entry missing: %q", out)
	}
}

func TestWithCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(
		WithFormatter(&JSONFormatter{}),
		WithOutput(NewWriterOutput(&buf)),
	)
	l = l.WithComponent("store").With(Str("file", "records.json"))
	l.Info("flush done", Int("flushed", 2))

	out := buf.String()
	for _, want := range []string{`"component":"store"`, `"file":"records.json"`, `"flushed":2`} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in %q", want, out)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNopLogger()
	// must not panic or write anywhere
	l.Error("ignored", Err(nil))
}
