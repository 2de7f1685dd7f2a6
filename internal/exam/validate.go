package exam

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	govalidator "github.com/go-playground/validator/v10"
)

// DefaultMaxChoices is the number of answers shown for each choice question.
const DefaultMaxChoices = 4

// Rules carries the generation settings that constrain a valid exam.
type Rules struct {
	MaxChoices int
	Debug      bool
}

// Issue captures a validation problem in an exam file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "exam validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var (
	validateOnce sync.Once
	validate     *govalidator.Validate
)

// structValidator reports field names by their yaml keys.
func structValidator() *govalidator.Validate {
	validateOnce.Do(func() {
		validate = govalidator.New(govalidator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks an exam against the generation rules. Skipped questions are not
// checked for answer pool sizes since they are never rendered.
func Validate(exam Exam, rules Rules) error {
	collector := &issueCollector{}
	if rules.MaxChoices < 1 {
		collector.add("max_choices", "must be >= 1")
	}

	if err := structValidator().Struct(exam); err != nil {
		var fieldErrors govalidator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return fmt.Errorf("validate exam: %w", err)
		}
		for _, fieldError := range fieldErrors {
			collector.add(fieldPath(fieldError.Namespace()), describeTag(fieldError))
		}
	}

	if exam.Hash != "" && strings.Count(exam.Hash, HashDelimiter) != 1 {
		collector.add("exam.hash", fmt.Sprintf("must contain exactly one %q delimiter", HashDelimiter))
	}

	for i, question := range exam.Questions {
		prefix := fmt.Sprintf("exam.questions[%d]", i)
		if question.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		switch question.Kind {
		case KindChoice:
			validateChoice(collector, prefix, question, rules)
		case KindOpen:
			if question.Answer == "" {
				collector.add(prefix+".answer", "is required")
			}
		default:
			collector.add(prefix, "unknown question kind")
		}
	}
	return collector.result()
}

func validateChoice(collector *issueCollector, prefix string, question Question, rules Rules) {
	if len(question.Correct) == 0 {
		collector.add(prefix+".answers.correct", "must include at least one entry")
	}
	for i, answer := range question.Correct {
		if answer == "" {
			collector.add(fmt.Sprintf("%s.answers.correct[%d]", prefix, i), "is required")
		}
	}
	for i, answer := range question.Wrong {
		if answer == "" {
			collector.add(fmt.Sprintf("%s.answers.wrong[%d]", prefix, i), "is required")
		}
	}
	if question.Skip || rules.MaxChoices < 1 {
		return
	}
	if len(question.Correct) > rules.MaxChoices {
		collector.add(prefix+".answers.correct", fmt.Sprintf("has %d entries, more than the %d choices per question", len(question.Correct), rules.MaxChoices))
		return
	}
	if rules.Debug {
		return
	}
	if need := rules.MaxChoices - len(question.Correct); len(question.Wrong) < need {
		collector.add(prefix+".answers.wrong", fmt.Sprintf("needs at least %d entries, got %d", need, len(question.Wrong)))
	}
}

// fieldPath turns a validator namespace such as "Exam.questions" into "exam.questions".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return "exam." + rest
	}
	return "exam"
}

func describeTag(fieldError govalidator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must include at least %s entry", fieldError.Param())
	default:
		return fmt.Sprintf("failed %q check", fieldError.Tag())
	}
}
