package logger

import (
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        Info,
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"nope":    Info,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if ParseFormat("JSON") != FormatJSON {
		t.Fatalf("expected json format")
	}
	if ParseFormat("whatever") != FormatText {
		t.Fatalf("expected text fallback")
	}
}

func TestToZapFields_SortedAndSkipsEmptyKeys(t *testing.T) {
	fields := toZapFields(map[string]any{
		"b":  1,
		"a":  "x",
		" ":  "ignored",
		"er": errors.New("boom"),
	})
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	want := []string{"a", "b", "er"}
	for i, f := range fields {
		if f.Key != want[i] {
			t.Fatalf("field %d: expected key %q, got %q", i, want[i], f.Key)
		}
	}
	if fields[2].Type != zap.NamedError("er", errors.New("x")).Type {
		t.Fatalf("expected error field type for %q", fields[2].Key)
	}
}

func TestNop_WithReturnsUsableLogger(t *testing.T) {
	l := Nop().With(map[string]any{"request_id": "r-1"})
	l.Info("hello", map[string]any{"k": "v"})
	if err := l.Sync(); err != nil {
		t.Fatalf("nop sync: %v", err)
	}
}
