package cli

import (
	"flag"

	"examgen/internal/config"
	"examgen/internal/exam"
)

// commonFlags are shared by generate and validate; zero values mean "use config".
type commonFlags struct {
	maxChoices *int
	debug      *bool
	envFile    *string
}

func registerCommonFlags(flags *flag.FlagSet) commonFlags {
	return commonFlags{
		maxChoices: flags.Int("max-choices", 0, "Choices shown per question (default from EXAMGEN_MAX_CHOICES or 4)"),
		debug:      flags.Bool("debug", false, "Reveal all answers without sampling or shuffling"),
		envFile:    flags.String("env-file", "", "Load settings from this file instead of ./.env"),
	}
}

// resolveConfig loads configuration and applies flag overrides.
func (f commonFlags) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(*f.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if *f.maxChoices != 0 {
		cfg.MaxChoices = *f.maxChoices
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (f commonFlags) rules(cfg config.Config) exam.Rules {
	return exam.Rules{MaxChoices: cfg.MaxChoices, Debug: *f.debug}
}

// loadExam loads and validates the exam input.
func loadExam(path string, rules exam.Rules) (exam.Exam, error) {
	ex, err := exam.Load(path)
	if err != nil {
		return exam.Exam{}, err
	}
	if err := exam.Validate(ex, rules); err != nil {
		return exam.Exam{}, err
	}
	return ex, nil
}
