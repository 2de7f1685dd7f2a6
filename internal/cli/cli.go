package cli

import (
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches to a command. Arguments that do not start with a command name
// are treated as "generate" arguments.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
			printUsage(stderr)
			return ExitUsage
		}
		return findCommand("generate").Run(args, stdout, stderr)
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  examgen <command> [options]")
	fmt.Fprintln(w, "  examgen <input> <prefix> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"examgen <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
	fmt.Fprintf(w, "\n%s\n", inputFormatNote)
}

// inputFormatNote is shown by every command, since each one reads an exam file.
const inputFormatNote = `Exam files are read strictly: every question needs exactly one of the
full-question or open-question keys, and keys other than question, answers,
answer and skip are rejected, as are unknown keys under exam.`

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("generate", "Write question and answer documents and typeset them", []string{
		"examgen generate <input> <prefix> [--versions N] [--debug] [--max-choices N] [--seed S]",
		"                 [--latex-cmd PATH] [--no-compile] [--env-file PATH] [--verbose] [--no-color]",
	}, runGenerate),
	command("validate", "Check an exam file without writing anything", []string{
		"examgen validate <input> [--max-choices N] [--debug] [--env-file PATH]",
	}, runValidate),
}
