package output

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DefaultPasses is how many times each file is typeset so cross-references and
// page counts settle.
const DefaultPasses = 2

// Typesetter turns a generated source file into its rendered form.
type Typesetter interface {
	Typeset(ctx context.Context, path string) error
}

// LatexTypesetter runs a LaTeX engine in the directory of each file.
type LatexTypesetter struct {
	Command string
	Passes  int
	// Output receives the engine's stdout and stderr; nil discards them.
	Output io.Writer
	Logger zerolog.Logger
}

// Resolve returns a copy whose Command is the absolute path of the configured
// command. Typeset runs in each file's directory, so a relative command must be
// pinned against the current directory first.
func (l LatexTypesetter) Resolve() (LatexTypesetter, error) {
	path, err := exec.LookPath(l.Command)
	if err != nil {
		return LatexTypesetter{}, fmt.Errorf("typesetter %q not found: %w", l.Command, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return LatexTypesetter{}, fmt.Errorf("resolve typesetter %q: %w", l.Command, err)
	}
	l.Command = abs
	return l, nil
}

// Typeset runs every pass even when an earlier one fails and returns the joined
// pass errors.
func (l LatexTypesetter) Typeset(ctx context.Context, path string) error {
	passes := l.Passes
	if passes <= 0 {
		passes = DefaultPasses
	}
	out := l.Output
	if out == nil {
		out = io.Discard
	}
	var errs []error
	for pass := 1; pass <= passes; pass++ {
		cmd := exec.CommandContext(ctx, l.Command, filepath.Base(path))
		cmd.Dir = filepath.Dir(path)
		cmd.Stdout = out
		cmd.Stderr = out
		l.Logger.Debug().Str("file", path).Int("pass", pass).Msg("typesetting")
		if err := cmd.Run(); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			errs = append(errs, fmt.Errorf("%s pass %d: %w", l.Command, pass, err))
		}
	}
	return errors.Join(errs...)
}

// TypesetAll typesets each path in order. Failures are logged and the next file is
// processed; only cancellation stops the loop.
func TypesetAll(ctx context.Context, typesetter Typesetter, paths []string, logger zerolog.Logger) error {
	for _, path := range paths {
		if err := typesetter.Typeset(ctx, path); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.Warn().Err(err).Str("file", path).Msg("typesetting failed")
			continue
		}
		logger.Info().Str("file", path).Msg("typeset")
	}
	return nil
}
