package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// TestNewLevels verifies level parsing and the warn fallback.
func TestNewLevels(t *testing.T) {
	cases := []struct {
		level     string
		infoShown bool
	}{
		{level: "debug", infoShown: true},
		{level: "INFO", infoShown: true},
		{level: "warn", infoShown: false},
		{level: "", infoShown: false},
		{level: "chatty", infoShown: false},
	}
	for _, tc := range cases {
		var out bytes.Buffer
		logger := New(&out, tc.level, false)
		logger.Info().Str("file", "exam.tex").Msg("written")
		if got := strings.Contains(out.String(), "written"); got != tc.infoShown {
			t.Fatalf("level %q: expected info shown=%v, got output %q", tc.level, tc.infoShown, out.String())
		}
	}
}

// TestNewNoColor verifies unstyled loggers emit no escape codes.
func TestNewNoColor(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, "warn", false)
	logger.Warn().Str("file", "exam.tex").Msg("typesetting failed")
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("expected plain output, got %q", out.String())
	}
	if !strings.Contains(out.String(), "file=exam.tex") {
		t.Fatalf("expected field in output, got %q", out.String())
	}
}

// TestShouldStyle verifies environment and flag overrides.
func TestShouldStyle(t *testing.T) {
	original := isTerminal
	isTerminal = func(io.Writer) bool { return true }
	t.Cleanup(func() { isTerminal = original })
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("CLICOLOR", "")

	var out bytes.Buffer
	if !ShouldStyle(&out, false) {
		t.Fatalf("expected styling on a terminal")
	}
	if ShouldStyle(&out, true) {
		t.Fatalf("expected --no-color to disable styling")
	}
	t.Setenv("NO_COLOR", "1")
	if ShouldStyle(&out, false) {
		t.Fatalf("expected NO_COLOR to disable styling")
	}
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "0")
	if ShouldStyle(&out, false) {
		t.Fatalf("expected CLICOLOR=0 to disable styling")
	}
}
