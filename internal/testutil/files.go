package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteFile writes contents to dir/name and returns the full path.
func WriteFile(t testing.TB, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// ReadLines returns the lines of a generated file without the trailing newline.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// ExamYAML is a small valid exam with one choice question (2 correct, 3 wrong)
// and one open question.
const ExamYAML = `exam:
  title: Computer Networks
  institution: Example University
  course: NET 301
  edition: Autumn 2024
  date: "2024-11-05"
  hash: "NET,A"
  description:
    - Answer every question.
  questions:
    - full-question:
      question: Which protocols are connection oriented?
      answers:
        correct: [TCP, SCTP]
        wrong: [UDP, ICMP, ARP]
    - open-question:
      question: Explain slow start.
      answer: The congestion window grows exponentially until a threshold.
`
