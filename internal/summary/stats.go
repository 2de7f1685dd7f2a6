package summary

import "sort"

// Stats counts rendered questions: choice questions by number of correct answers,
// plus open questions.
type Stats struct {
	ByCorrect map[int]int
	Open      int
}

// NewStats returns an empty accumulator.
func NewStats() Stats {
	return Stats{ByCorrect: map[int]int{}}
}

// RecordChoice counts a choice question with the given number of correct answers.
func (s *Stats) RecordChoice(correct int) {
	if s.ByCorrect == nil {
		s.ByCorrect = map[int]int{}
	}
	s.ByCorrect[correct]++
}

// RecordOpen counts an open question.
func (s *Stats) RecordOpen() {
	s.Open++
}

// Merge adds the counts of other into s.
func (s *Stats) Merge(other Stats) {
	for correct, count := range other.ByCorrect {
		if s.ByCorrect == nil {
			s.ByCorrect = map[int]int{}
		}
		s.ByCorrect[correct] += count
	}
	s.Open += other.Open
}

// ChoiceTotal returns the number of choice questions counted.
func (s Stats) ChoiceTotal() int {
	total := 0
	for _, count := range s.ByCorrect {
		total += count
	}
	return total
}

// Bucket is one entry of the correct-answer distribution.
type Bucket struct {
	Correct   int
	Questions int
}

// Distribution returns the correct-answer counts sorted by number of correct answers.
func (s Stats) Distribution() []Bucket {
	buckets := make([]Bucket, 0, len(s.ByCorrect))
	for correct, count := range s.ByCorrect {
		buckets = append(buckets, Bucket{Correct: correct, Questions: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Correct < buckets[j].Correct
	})
	return buckets
}
