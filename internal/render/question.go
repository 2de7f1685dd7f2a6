package render

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"examgen/internal/exam"
	"examgen/internal/summary"
)

// ErrInsufficientWrong is returned when a choice question has too few wrong
// answers to fill the requested number of choices.
var ErrInsufficientWrong = errors.New("not enough wrong answers")

// EmptyBoxHeight is the height of the answer area left under open questions.
const EmptyBoxHeight = "10cm"

// Block is the LaTeX for one question, one entry per line.
type Block []string

// Choice is one selectable answer of a choice question.
type Choice struct {
	Text    string
	Correct bool
}

// Line renders the choice inside a checkboxes environment.
func (c Choice) Line() string {
	if c.Correct {
		return `    \CorrectChoice{` + c.Text + `}`
	}
	return `    \choice ` + c.Text
}

// SelectChoices picks the answers shown for a choice question. In debug mode every
// answer is returned in source order, correct ones first. Otherwise all correct
// answers are combined with maxChoices-len(correct) wrong answers sampled without
// replacement, and the result is shuffled.
func SelectChoices(q exam.Question, maxChoices int, rng *rand.Rand, debug bool) ([]Choice, error) {
	wrong := q.Wrong
	if !debug {
		need := maxChoices - len(q.Correct)
		if need < 0 {
			return nil, fmt.Errorf("%d correct answers exceed %d choices", len(q.Correct), maxChoices)
		}
		if len(q.Wrong) < need {
			return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientWrong, need, len(q.Wrong))
		}
		wrong = sample(rng, q.Wrong, need)
	}

	choices := make([]Choice, 0, len(q.Correct)+len(wrong))
	for _, answer := range q.Correct {
		choices = append(choices, Choice{Text: answer, Correct: true})
	}
	for _, answer := range wrong {
		choices = append(choices, Choice{Text: answer})
	}
	if !debug {
		rng.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})
	}
	return choices, nil
}

// sample draws n distinct elements of pool; pool is left untouched.
func sample(rng *rand.Rand, pool []string, n int) []string {
	picked := make([]string, 0, n)
	for _, index := range rng.Perm(len(pool))[:n] {
		picked = append(picked, pool[index])
	}
	return picked
}

// RenderChoice renders a choice question and counts it in stats.
func RenderChoice(q exam.Question, maxChoices int, rng *rand.Rand, stats *summary.Stats, debug bool) (Block, error) {
	choices, err := SelectChoices(q, maxChoices, rng, debug)
	if err != nil {
		return nil, fmt.Errorf("question %q: %w", q.Prompt, err)
	}
	stats.RecordChoice(len(q.Correct))

	block := Block{
		`\filbreak`,
		`  \question ` + q.Prompt,
		`  \begin{checkboxes}`,
	}
	for _, choice := range choices {
		block = append(block, choice.Line())
	}
	return append(block,
		`  \end{checkboxes}`,
		`\vspace{0.5cm}`,
	), nil
}

// RenderOpen renders an open question with either the model answer (debug) or an
// empty answer box.
func RenderOpen(q exam.Question, debug bool) Block {
	block := Block{
		`\filbreak`,
		`  \question ` + q.Prompt,
		`\vspace{0.2cm}`,
	}
	if debug {
		return append(block, `    \noindent\fbox{\parbox{\textwidth}{\textbf{Possible Expected Answer:}\\`+q.Answer+`}}`)
	}
	return append(block, `   \makeemptybox{`+EmptyBoxHeight+`}`)
}
