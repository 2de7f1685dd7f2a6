package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// VersionStats holds the statistics collected while building one version.
type VersionStats struct {
	Version int
	Label   string
	Debug   bool
	Stats   Stats
}

// Summary collects statistics across a run for printing once all files are written.
type Summary struct {
	Title       string
	Fingerprint string
	Versions    []VersionStats
	Files       []string
}

// Add records the statistics of one built version.
func (s *Summary) Add(version VersionStats) {
	s.Versions = append(s.Versions, version)
}

// AddFiles records generated files.
func (s *Summary) AddFiles(paths ...string) {
	s.Files = append(s.Files, paths...)
}

// Total merges the statistics of every version.
func (s Summary) Total() Stats {
	total := NewStats()
	for _, version := range s.Versions {
		total.Merge(version.Stats)
	}
	return total
}

// Print writes the run summary: a distribution block per version followed by a
// table of totals. Colors are applied only when styled is set.
func Print(w io.Writer, s Summary, styled bool) {
	heading := lipgloss.NewStyle()
	if styled {
		heading = heading.Bold(true).Foreground(lipgloss.Color("12"))
	}

	if s.Title != "" {
		fmt.Fprintln(w, heading.Render(fmt.Sprintf("Exam: %s", s.Title)))
		if s.Fingerprint != "" {
			fmt.Fprintf(w, "Fingerprint: %s\n", s.Fingerprint)
		}
	}
	for _, path := range s.Files {
		fmt.Fprintf(w, "Wrote %s\n", path)
	}
	for _, version := range s.Versions {
		fmt.Fprintln(w, heading.Render(versionHeading(version)))
		for _, bucket := range version.Stats.Distribution() {
			fmt.Fprintf(w, "# of Questions with %d correct answers: %d\n", bucket.Correct, bucket.Questions)
		}
		fmt.Fprintf(w, "Open Questions: %d\n", version.Stats.Open)
	}
	if len(s.Versions) > 0 {
		fmt.Fprintln(w, totalsTable(s.Total(), styled).Render())
	}
}

func versionHeading(version VersionStats) string {
	if version.Debug {
		return "--- Question Distribution (debug)"
	}
	return fmt.Sprintf("--- Question Distribution (v%d, %s)", version.Version, version.Label)
}

func totalsTable(total Stats, styled bool) *table.Table {
	cell := lipgloss.NewStyle().Padding(0, 1)
	header := cell.Bold(styled)
	if styled {
		header = header.Foreground(lipgloss.Color("252"))
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Correct answers", "Questions").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, bucket := range total.Distribution() {
		tbl.Row(strconv.Itoa(bucket.Correct), strconv.Itoa(bucket.Questions))
	}
	tbl.Row("open", strconv.Itoa(total.Open))
	return tbl
}
