package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"examgen/internal/logging"
	"examgen/internal/output"
	"examgen/internal/runner"
	"examgen/internal/summary"
)

var generate = runner.Generate

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		common := registerCommonFlags(flags)
		versions := flags.Int("versions", 1, "Number of versions to produce")
		seed := flags.String("seed", "", "Seed for reproducible versions (default: random)")
		latexCmd := flags.String("latex-cmd", "", "Typesetter command (default from EXAMGEN_LATEX_CMD or pdflatex)")
		noCompile := flags.Bool("no-compile", false, "Write documents without typesetting them")
		verbose := flags.Bool("verbose", false, "Log every file and typesetter pass")
		noColor := flags.Bool("no-color", false, "Disable colored output")
		positionals, err := parseInterspersed(flags, args)
		if err != nil {
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if len(positionals) != 2 {
			fmt.Fprintf(stderr, "expected <input> <prefix>, got %d arguments: %s\n", len(positionals), strings.Join(positionals, " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *versions < 1 {
			fmt.Fprintf(stderr, "--versions must be >= 1, got %d\n", *versions)
			return ExitUsage
		}
		inputPath, prefix := positionals[0], positionals[1]

		cfg, err := common.resolveConfig()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}
		if *latexCmd != "" {
			cfg.LatexCommand = *latexCmd
		}
		if *verbose {
			cfg.LogLevel = "debug"
		}
		logger := logging.New(stderr, cfg.LogLevel, logging.ShouldStyle(stderr, *noColor))

		ex, err := loadExam(inputPath, common.rules(cfg))
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		logger.Debug().Str("input", ex.Source).Str("fingerprint", ex.Fingerprint).Int("questions", len(ex.Questions)).Msg("loaded exam")

		var typesetter output.Typesetter
		if !*noCompile {
			latex := output.LatexTypesetter{
				Command: cfg.LatexCommand,
				Passes:  cfg.LatexPasses,
				Output:  stderr,
				Logger:  logger,
			}
			resolved, err := latex.Resolve()
			if err != nil {
				fmt.Fprintf(stderr, "Generation failed: %v\n", err)
				return ExitError
			}
			typesetter = resolved
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		run, err := generate(ctx, ex, runner.Params{
			Prefix:     prefix,
			Versions:   *versions,
			Debug:      *common.debug,
			MaxChoices: cfg.MaxChoices,
			Seed:       *seed,
			Typesetter: typesetter,
			Logger:     logger,
		})
		if err != nil {
			if errors.Is(err, context.Canceled) {
				fmt.Fprintln(stderr, "Generation interrupted")
				return ExitError
			}
			fmt.Fprintf(stderr, "Generation failed: %v\n", err)
			return ExitError
		}

		summary.Print(stdout, run, logging.ShouldStyle(stdout, *noColor))
		return ExitOK
	}
}
