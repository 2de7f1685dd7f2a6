package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to w at the named level. Unknown levels
// fall back to warn.
func New(w io.Writer, level string, styled bool) zerolog.Logger {
	level = strings.ToLower(strings.TrimSpace(level))
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		parsed = zerolog.WarnLevel
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !styled,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(console).Level(parsed).With().Timestamp().Logger()
}
