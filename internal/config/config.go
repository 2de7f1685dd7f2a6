package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvLatexCommand = "EXAMGEN_LATEX_CMD"
	EnvLatexPasses  = "EXAMGEN_LATEX_PASSES"
	EnvMaxChoices   = "EXAMGEN_MAX_CHOICES"
	EnvLogLevel     = "EXAMGEN_LOG_LEVEL"
)

// Defaults used when the environment does not say otherwise.
const (
	DefaultLatexCommand = "pdflatex"
	DefaultLatexPasses  = 2
	DefaultMaxChoices   = 4
	DefaultLogLevel     = "warn"
)

// Config holds generator settings; command-line flags override it.
type Config struct {
	LatexCommand string
	LatexPasses  int
	MaxChoices   int
	LogLevel     string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LatexCommand: DefaultLatexCommand,
		LatexPasses:  DefaultLatexPasses,
		MaxChoices:   DefaultMaxChoices,
		LogLevel:     DefaultLogLevel,
	}
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded when present; an explicit envFile must exist. Variables
// already set in the environment win over file entries.
func Load(envFile string) (Config, error) {
	if strings.TrimSpace(envFile) == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	cfg, err := FromLookup(os.LookupEnv)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromLookup builds a config from a variable lookup function and validates it.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if value, ok := lookupTrimmed(lookup, EnvLatexCommand); ok {
		cfg.LatexCommand = value
	}
	if value, ok := lookupTrimmed(lookup, EnvLogLevel); ok {
		cfg.LogLevel = value
	}
	if value, ok := lookupTrimmed(lookup, EnvLatexPasses); ok {
		passes, err := strconv.Atoi(value)
		if err != nil {
			add(EnvLatexPasses, fmt.Sprintf("invalid integer %q", value))
		} else {
			cfg.LatexPasses = passes
		}
	}
	if value, ok := lookupTrimmed(lookup, EnvMaxChoices); ok {
		choices, err := strconv.Atoi(value)
		if err != nil {
			add(EnvMaxChoices, fmt.Sprintf("invalid integer %q", value))
		} else {
			cfg.MaxChoices = choices
		}
	}

	if err := cfg.Validate(); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			issues = append(issues, validationErr.Issues...)
		}
	}
	if len(issues) > 0 {
		return Config{}, &ValidationError{Issues: issues}
	}
	return cfg, nil
}

// Validate checks the settings after flags have been applied.
func (cfg Config) Validate() error {
	var issues []Issue
	if strings.TrimSpace(cfg.LatexCommand) == "" {
		issues = append(issues, Issue{Field: EnvLatexCommand, Message: "is required"})
	}
	if cfg.LatexPasses < 1 {
		issues = append(issues, Issue{Field: EnvLatexPasses, Message: "must be >= 1"})
	}
	if cfg.MaxChoices < 1 {
		issues = append(issues, Issue{Field: EnvMaxChoices, Message: "must be >= 1"})
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func lookupTrimmed(lookup func(string) (string, bool), key string) (string, bool) {
	value, ok := lookup(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}
