package exam

import (
	"errors"
	"strings"
	"testing"
)

func validExam() Exam {
	return Exam{
		Title:       "Networks",
		Institution: "Example University",
		Course:      "NET 101",
		Edition:     "Fall",
		Date:        "2024-01-10",
		Hash:        "NET,X",
		Description: []string{"No phones."},
		Questions: []Question{
			{Kind: KindChoice, Prompt: "Pick transport protocols", Correct: []string{"TCP"}, Wrong: []string{"HTTP", "DNS", "SMTP"}},
			{Kind: KindOpen, Prompt: "Describe a handshake", Answer: "SYN, SYN-ACK, ACK"},
		},
	}
}

func issueFields(t *testing.T, err error) []string {
	t.Helper()
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := make([]string, 0, len(validationErr.Issues))
	for _, issue := range validationErr.Issues {
		fields = append(fields, issue.Field)
	}
	return fields
}

func containsField(fields []string, want string) bool {
	for _, field := range fields {
		if field == want {
			return true
		}
	}
	return false
}

// TestValidateAcceptsValidExam verifies a complete exam passes.
func TestValidateAcceptsValidExam(t *testing.T) {
	if err := Validate(validExam(), Rules{MaxChoices: 4}); err != nil {
		t.Fatalf("expected valid exam, got %v", err)
	}
}

// TestValidateRequiredFields verifies missing header fields are reported by yaml name.
func TestValidateRequiredFields(t *testing.T) {
	exam := validExam()
	exam.Title = ""
	exam.Date = ""
	exam.Description = []string{"ok", ""}
	fields := issueFields(t, Validate(exam, Rules{MaxChoices: 4}))
	for _, want := range []string{"exam.title", "exam.date", "exam.description[1]"} {
		if !containsField(fields, want) {
			t.Fatalf("expected issue for %s, got %v", want, fields)
		}
	}
}

// TestValidateNoQuestions verifies an exam needs questions.
func TestValidateNoQuestions(t *testing.T) {
	exam := validExam()
	exam.Questions = nil
	fields := issueFields(t, Validate(exam, Rules{MaxChoices: 4}))
	if !containsField(fields, "exam.questions") {
		t.Fatalf("expected questions issue, got %v", fields)
	}
}

// TestValidateHashDelimiter verifies the hash template needs exactly one delimiter.
func TestValidateHashDelimiter(t *testing.T) {
	for _, hash := range []string{"NOSPLIT", "A,B,C"} {
		exam := validExam()
		exam.Hash = hash
		fields := issueFields(t, Validate(exam, Rules{MaxChoices: 4}))
		if !containsField(fields, "exam.hash") {
			t.Fatalf("%s: expected hash issue, got %v", hash, fields)
		}
	}
}

// TestValidateWrongPoolTooSmall verifies small distractor pools fail outside debug mode.
func TestValidateWrongPoolTooSmall(t *testing.T) {
	exam := validExam()
	exam.Questions[0].Wrong = []string{"HTTP"}
	err := Validate(exam, Rules{MaxChoices: 4})
	fields := issueFields(t, err)
	if !containsField(fields, "exam.questions[0].answers.wrong") {
		t.Fatalf("expected wrong pool issue, got %v", fields)
	}
	if !strings.Contains(err.Error(), "needs at least 3 entries, got 1") {
		t.Fatalf("unexpected message: %v", err)
	}

	if err := Validate(exam, Rules{MaxChoices: 4, Debug: true}); err != nil {
		t.Fatalf("expected debug mode to accept small pool, got %v", err)
	}
}

// TestValidateTooManyCorrect verifies correct answers cannot exceed the choice count.
func TestValidateTooManyCorrect(t *testing.T) {
	exam := validExam()
	exam.Questions[0].Correct = []string{"TCP", "UDP", "QUIC"}
	fields := issueFields(t, Validate(exam, Rules{MaxChoices: 2}))
	if !containsField(fields, "exam.questions[0].answers.correct") {
		t.Fatalf("expected correct count issue, got %v", fields)
	}
}

// TestValidateSkippedQuestionPool verifies skipped questions are not checked for pool size.
func TestValidateSkippedQuestionPool(t *testing.T) {
	exam := validExam()
	exam.Questions[0].Wrong = nil
	exam.Questions[0].Skip = true
	if err := Validate(exam, Rules{MaxChoices: 4}); err != nil {
		t.Fatalf("expected skipped question to pass, got %v", err)
	}
}

// TestValidateQuestionContent verifies empty prompts and answers are reported.
func TestValidateQuestionContent(t *testing.T) {
	exam := validExam()
	exam.Questions[0].Correct = nil
	exam.Questions[1].Prompt = ""
	exam.Questions[1].Answer = ""
	fields := issueFields(t, Validate(exam, Rules{MaxChoices: 4}))
	for _, want := range []string{
		"exam.questions[0].answers.correct",
		"exam.questions[1].question",
		"exam.questions[1].answer",
	} {
		if !containsField(fields, want) {
			t.Fatalf("expected issue for %s, got %v", want, fields)
		}
	}
}

// TestValidateMaxChoices verifies the choice count must be positive.
func TestValidateMaxChoices(t *testing.T) {
	fields := issueFields(t, Validate(validExam(), Rules{MaxChoices: 0}))
	if !containsField(fields, "max_choices") {
		t.Fatalf("expected max_choices issue, got %v", fields)
	}
}
