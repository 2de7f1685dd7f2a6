package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"examgen/internal/exam"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := registerCommonFlags(flags)
		positionals, err := parseInterspersed(flags, args)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if len(positionals) != 1 {
			fmt.Fprintf(stderr, "expected <input>, got %d arguments: %s\n", len(positionals), strings.Join(positionals, " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := common.resolveConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}
		ex, err := loadExam(positionals[0], common.rules(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		var choice, open, skipped int
		for _, question := range ex.Questions {
			switch {
			case question.Skip:
				skipped++
			case question.Kind == exam.KindChoice:
				choice++
			case question.Kind == exam.KindOpen:
				open++
			}
		}
		fmt.Fprintf(stdout, "Exam OK: %d choice, %d open, %d skipped\n", choice, open, skipped)
		return ExitOK
	}
}
