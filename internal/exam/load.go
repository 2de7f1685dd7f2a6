package exam

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Marker keys identifying question records.
const (
	markerChoice = "full-question"
	markerOpen   = "open-question"
	markerSkip   = "skip"
)

var fingerprintNamespace = uuid.MustParse("9c3a51e4-2f6d-4b0e-8a77-3e1d5c0b9f42")

// Load reads and parses an exam file. The result is normalized but not validated;
// call Validate with the generation rules before rendering.
func Load(path string) (Exam, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Exam{}, fmt.Errorf("read exam file: %w", err)
	}
	exam, err := Parse(data)
	if err != nil {
		return Exam{}, err
	}
	exam.Source = path
	return exam, nil
}

// Parse decodes exam YAML from memory.
func Parse(data []byte) (Exam, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return Exam{}, fmt.Errorf("parse yaml: document is empty")
		}
		return Exam{}, fmt.Errorf("parse yaml: %w", err)
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		if err == nil {
			return Exam{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Exam{}, fmt.Errorf("parse yaml: %w", err)
	}
	exam := normalize(doc.Exam)
	exam.Fingerprint = Fingerprint(data)
	return exam, nil
}

// Fingerprint returns a stable identifier for exam file contents.
func Fingerprint(data []byte) string {
	return uuid.NewSHA1(fingerprintNamespace, data).String()
}

type questionFields struct {
	Question string        `yaml:"question"`
	Answers  *answerFields `yaml:"answers"`
	Answer   *string       `yaml:"answer"`
}

type answerFields struct {
	Correct []string `yaml:"correct"`
	Wrong   []string `yaml:"wrong"`
}

// UnmarshalYAML decodes a question record. Marker keys only need to be present;
// their values are ignored.
func (q *Question) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: question must be a mapping", value.Line)
	}
	var choice, open, skip bool
	fields := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: value.Line, Column: value.Column}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		switch key.Value {
		case markerChoice:
			choice = true
		case markerOpen:
			open = true
		case markerSkip:
			skip = true
		case "question", "answers", "answer":
			fields.Content = append(fields.Content, key, val)
		default:
			return fmt.Errorf("line %d: field %s not found in question", key.Line, key.Value)
		}
	}

	var decoded questionFields
	if err := fields.Decode(&decoded); err != nil {
		return err
	}

	switch {
	case choice && open:
		return fmt.Errorf("line %d: question cannot be both %s and %s", value.Line, markerChoice, markerOpen)
	case choice:
		if decoded.Answer != nil {
			return fmt.Errorf("line %d: %s uses answers, not answer", value.Line, markerChoice)
		}
		*q = Question{Kind: KindChoice, Prompt: decoded.Question, Skip: skip}
		if decoded.Answers != nil {
			q.Correct = decoded.Answers.Correct
			q.Wrong = decoded.Answers.Wrong
		}
	case open:
		if decoded.Answers != nil {
			return fmt.Errorf("line %d: %s uses answer, not answers", value.Line, markerOpen)
		}
		*q = Question{Kind: KindOpen, Prompt: decoded.Question, Skip: skip}
		if decoded.Answer != nil {
			q.Answer = *decoded.Answer
		}
	default:
		return fmt.Errorf("line %d: question needs a %s or %s marker", value.Line, markerChoice, markerOpen)
	}
	return nil
}

func normalize(exam Exam) Exam {
	exam.Title = strings.TrimSpace(exam.Title)
	exam.Institution = strings.TrimSpace(exam.Institution)
	exam.Course = strings.TrimSpace(exam.Course)
	exam.Edition = strings.TrimSpace(exam.Edition)
	exam.Date = strings.TrimSpace(exam.Date)
	exam.Hash = strings.TrimSpace(exam.Hash)
	exam.Description = normalizeStringSlice(exam.Description)
	for i, question := range exam.Questions {
		question.Prompt = strings.TrimSpace(question.Prompt)
		question.Answer = strings.TrimSpace(question.Answer)
		question.Correct = normalizeStringSlice(question.Correct)
		question.Wrong = normalizeStringSlice(question.Wrong)
		exam.Questions[i] = question
	}
	return exam
}

func normalizeStringSlice(values []string) []string {
	if values == nil {
		return nil
	}
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
