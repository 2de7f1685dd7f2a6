package output

import (
	"fmt"
	"strings"
)

// Paths names the generated files for an output prefix.
type Paths struct {
	Prefix string
}

// NewPaths validates and constructs output paths.
func NewPaths(prefix string) (Paths, error) {
	if strings.TrimSpace(prefix) == "" {
		return Paths{}, fmt.Errorf("output prefix is empty")
	}
	return Paths{Prefix: prefix}, nil
}

// DebugPath returns the path of the fully revealed reference document.
func (p Paths) DebugPath() string {
	return p.Prefix + "-debug.tex"
}

// QuestionsPath returns the learner-facing document path for a version.
func (p Paths) QuestionsPath(version int) string {
	return fmt.Sprintf("%s-questions-v%d.tex", p.Prefix, version)
}

// AnswersPath returns the answer key path for a version.
func (p Paths) AnswersPath(version int) string {
	return fmt.Sprintf("%s-answers-v%d.tex", p.Prefix, version)
}
