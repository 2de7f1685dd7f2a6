package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"examgen/internal/assemble"
	"examgen/internal/cli"
)

// featureState holds scenario state for CLI feature tests.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires steps to a fresh feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^an exam file "([^"]+)" with one choice question and one open question$`, state.anExamFile)
	ctx.Step(`^the hash of "([^"]+)" is "([^"]*)"$`, state.theHashIs)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^these files exist:$`, state.theseFilesExist)
	ctx.Step(`^no file matches "([^"]+)"$`, state.noFileMatches)
	ctx.Step(`^"([^"]+)" and "([^"]+)" differ only in the document class$`, state.differOnlyInClass)
	ctx.Step(`^"([^"]+)" contains "([^"]+)"$`, state.fileContains)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
}

// reset creates a scratch directory and moves into it.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	dir, err := os.MkdirTemp("", "examgen-feature-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working dir: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("chdir: %w", err)
	}
	s.workDir = dir
	s.previousWD = wd
	return nil
}

// cleanup restores the working directory and removes scratch files.
func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

func (s *featureState) anExamFile(name string) error {
	return os.WriteFile(filepath.Join(s.workDir, name), []byte(examYAML), 0o644)
}

func (s *featureState) theHashIs(name, hash string) error {
	path := filepath.Join(s.workDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	updated := strings.Replace(string(data), `hash: "MID,X"`, fmt.Sprintf("hash: %q", hash), 1)
	return os.WriteFile(path, []byte(updated), 0o644)
}

// iRunCommand runs the CLI in-process.
func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "examgen" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(code int) error {
	if s.exitCode != code {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", code, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theseFilesExist(table *godog.Table) error {
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			name := strings.TrimSpace(cell.Value)
			if name == "" {
				continue
			}
			if _, err := os.Stat(filepath.Join(s.workDir, name)); err != nil {
				return fmt.Errorf("expected file %s: %w", name, err)
			}
		}
	}
	return nil
}

func (s *featureState) noFileMatches(pattern string) error {
	matches, err := filepath.Glob(filepath.Join(s.workDir, pattern))
	if err != nil {
		return err
	}
	if len(matches) > 0 {
		return fmt.Errorf("expected no files matching %s, found %v", pattern, matches)
	}
	return nil
}

func (s *featureState) differOnlyInClass(questionsName, answersName string) error {
	questions, err := s.readLines(questionsName)
	if err != nil {
		return err
	}
	answers, err := s.readLines(answersName)
	if err != nil {
		return err
	}
	if questions[0] != assemble.QuestionsClass {
		return fmt.Errorf("%s: unexpected class line %q", questionsName, questions[0])
	}
	if answers[0] != assemble.AnswersClass {
		return fmt.Errorf("%s: unexpected class line %q", answersName, answers[0])
	}
	if strings.Join(questions[1:], "\n") != strings.Join(answers[1:], "\n") {
		return fmt.Errorf("%s and %s have different bodies", questionsName, answersName)
	}
	return nil
}

func (s *featureState) fileContains(name, text string) error {
	data, err := os.ReadFile(filepath.Join(s.workDir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if !strings.Contains(string(data), text) {
		return fmt.Errorf("expected %s to contain %q", name, text)
	}
	return nil
}

func (s *featureState) theOutputContains(text string) error {
	if !strings.Contains(s.stdout.String(), text) {
		return fmt.Errorf("expected output to contain %q, got %q", text, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(text string) error {
	if !strings.Contains(s.stderr.String(), text) {
		return fmt.Errorf("expected error output to contain %q, got %q", text, s.stderr.String())
	}
	return nil
}

func (s *featureState) readLines(name string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.workDir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n"), nil
}

const examYAML = `exam:
  title: Databases Midterm
  institution: Example University
  course: DB 210
  edition: Spring 2025
  date: "2025-03-14"
  hash: "MID,X"
  description:
    - Write your name on every page.
  questions:
    - full-question:
      question: Which are ACID properties?
      answers:
        correct: [Atomicity, Durability]
        wrong: [Elasticity, Scalability, Availability]
    - open-question:
      question: Explain write-ahead logging.
      answer: Changes are logged before they are applied to data pages.
`
