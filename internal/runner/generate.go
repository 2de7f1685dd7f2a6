package runner

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"examgen/internal/assemble"
	"examgen/internal/exam"
	"examgen/internal/output"
	"examgen/internal/render"
	"examgen/internal/summary"
)

// Params controls a generation run.
type Params struct {
	Prefix     string
	Versions   int
	Debug      bool
	MaxChoices int
	Seed       string
	// Typesetter is run on every written file; nil skips typesetting.
	Typesetter output.Typesetter
	Logger     zerolog.Logger
}

// Generate writes every document for an exam that has already been validated and
// returns the run summary. Each version is built, written and typeset before the
// next one starts.
func Generate(ctx context.Context, ex exam.Exam, params Params) (summary.Summary, error) {
	paths, err := output.NewPaths(params.Prefix)
	if err != nil {
		return summary.Summary{}, err
	}
	run := summary.Summary{Title: ex.Title, Fingerprint: ex.Fingerprint}
	opts := assemble.Options{MaxChoices: params.MaxChoices, Debug: params.Debug}

	if params.Debug {
		version, err := assemble.Build(ex, 0, opts, nil)
		if err != nil {
			return summary.Summary{}, fmt.Errorf("build debug document: %w", err)
		}
		path := paths.DebugPath()
		if err := emit(ctx, params, &run, document{path: path, content: version.AnswersDocument()}); err != nil {
			return summary.Summary{}, err
		}
		run.Add(summary.VersionStats{Version: 0, Label: version.Label, Debug: true, Stats: version.Stats})
		return run, nil
	}

	if params.Versions < 1 {
		return summary.Summary{}, fmt.Errorf("versions must be >= 1, got %d", params.Versions)
	}
	for number := 0; number < params.Versions; number++ {
		version, err := assemble.Build(ex, number, opts, render.NewRand(params.Seed, number))
		if err != nil {
			return summary.Summary{}, fmt.Errorf("build version %d: %w", number, err)
		}
		params.Logger.Debug().Int("version", number).Str("label", version.Label).Msg("version built")
		err = emit(ctx, params, &run,
			document{path: paths.QuestionsPath(number), content: version.QuestionsDocument()},
			document{path: paths.AnswersPath(number), content: version.AnswersDocument()},
		)
		if err != nil {
			return summary.Summary{}, err
		}
		run.Add(summary.VersionStats{Version: number, Label: version.Label, Stats: version.Stats})
	}
	return run, nil
}

type document struct {
	path    string
	content templ.Component
}

// emit writes the documents of one version, then typesets them.
func emit(ctx context.Context, params Params, run *summary.Summary, docs ...document) error {
	written := make([]string, 0, len(docs))
	for _, doc := range docs {
		if err := output.WriteDocument(ctx, doc.content, doc.path); err != nil {
			return err
		}
		params.Logger.Info().Str("file", doc.path).Msg("wrote document")
		written = append(written, doc.path)
	}
	run.AddFiles(written...)
	if params.Typesetter == nil {
		return nil
	}
	return output.TypesetAll(ctx, params.Typesetter, written, params.Logger)
}
