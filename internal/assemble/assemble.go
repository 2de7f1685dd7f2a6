package assemble

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"examgen/internal/exam"
	"examgen/internal/render"
	"examgen/internal/summary"
)

// Document class lines for the two projections of a version.
const (
	QuestionsClass = `\documentclass[addpoints,11pt]{exam}`
	AnswersClass   = `\documentclass[answers,addpoints,11pt]{exam}`
)

// Options controls how a version is assembled.
type Options struct {
	MaxChoices int
	Debug      bool
}

// Version is one randomized instance of an exam. The questions and answers
// documents are projections of the same body, so they always share their draws.
type Version struct {
	Number int
	Label  string
	Body   templ.Component
	Stats  summary.Stats
}

// QuestionsDocument returns the learner-facing document.
func (v Version) QuestionsDocument() templ.Component {
	return Document(QuestionsClass, v.Body)
}

// AnswersDocument returns the answer key.
func (v Version) AnswersDocument() templ.Component {
	return Document(AnswersClass, v.Body)
}

// Document prefixes a body with its class line.
func Document(class string, body templ.Component) templ.Component {
	return templ.Join(render.Lines(class), body)
}

// VersionLabel interpolates the version number into a hash template of the form
// "prefix,suffix".
func VersionLabel(hash string, version int) (string, error) {
	prefix, suffix, ok := strings.Cut(hash, exam.HashDelimiter)
	if !ok || strings.Contains(suffix, exam.HashDelimiter) {
		return "", fmt.Errorf("hash %q must contain exactly one %q", hash, exam.HashDelimiter)
	}
	return prefix + strconv.Itoa(version) + suffix, nil
}

// Build assembles one version of an exam.
func Build(ex exam.Exam, version int, opts Options, rng *rand.Rand) (Version, error) {
	label, err := VersionLabel(ex.Hash, version)
	if err != nil {
		return Version{}, err
	}
	questions, stats, err := QuestionSet(ex.Questions, opts, rng)
	if err != nil {
		return Version{}, err
	}
	body := templ.Join(
		Preamble(ex, label),
		Instructions(ex.Description),
		render.Lines(`\vspace{1cm}`, `\par\noindent\rule{\textwidth}{0.4pt}`),
		questions,
		render.Lines(`\end{document}`),
	)
	return Version{Number: version, Label: label, Body: body, Stats: stats}, nil
}

// QuestionSet renders every question that is not skipped: choice questions first,
// then a page break, then open questions. Outside debug mode each group is shuffled
// independently.
func QuestionSet(questions []exam.Question, opts Options, rng *rand.Rand) (templ.Component, summary.Stats, error) {
	stats := summary.NewStats()
	var choiceBlocks, openBlocks []render.Block
	for _, q := range questions {
		if q.Skip || q.Kind != exam.KindChoice {
			continue
		}
		block, err := render.RenderChoice(q, opts.MaxChoices, rng, &stats, opts.Debug)
		if err != nil {
			return nil, summary.Stats{}, err
		}
		choiceBlocks = append(choiceBlocks, block)
	}
	for _, q := range questions {
		if q.Skip || q.Kind != exam.KindOpen {
			continue
		}
		openBlocks = append(openBlocks, render.RenderOpen(q, opts.Debug))
		stats.RecordOpen()
	}
	if !opts.Debug {
		shuffleBlocks(rng, choiceBlocks)
		shuffleBlocks(rng, openBlocks)
	}

	parts := make([]templ.Component, 0, len(choiceBlocks)+len(openBlocks)+3)
	parts = append(parts, render.Lines(`\begin{questions}`))
	for _, block := range choiceBlocks {
		parts = append(parts, block.Component())
	}
	parts = append(parts, render.Lines(`\newpage`))
	for _, block := range openBlocks {
		parts = append(parts, block.Component())
	}
	parts = append(parts, render.Lines(`\end{questions}`))
	return templ.Join(parts...), stats, nil
}

func shuffleBlocks(rng *rand.Rand, blocks []render.Block) {
	rng.Shuffle(len(blocks), func(i, j int) {
		blocks[i], blocks[j] = blocks[j], blocks[i]
	})
}
