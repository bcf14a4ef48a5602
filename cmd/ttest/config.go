package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the command defaults. Every field can be set through a TTEST_
// environment variable; command-line flags take precedence.
type Config struct {
	Type      string `envconfig:"TYPE" default:"unpaired"`
	Delimiter string `envconfig:"DELIMITER" default:","`
	Precision int    `envconfig:"PRECISION" default:"3"`
	Verbose   bool   `envconfig:"VERBOSE" default:"false"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("TTEST", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// delimiter returns the single rune named by cfg.Delimiter. The two-character
// escape `\t` and the word "tab" select a tab.
func (cfg *Config) delimiter() (rune, error) {
	switch cfg.Delimiter {
	case `\t`, "tab":
		return '\t', nil
	}
	if utf8.RuneCountInString(cfg.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", cfg.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(cfg.Delimiter)

	return r, nil
}

func (cfg *Config) validate() error {
	if cfg.Precision < 0 || cfg.Precision > 17 {
		return fmt.Errorf("precision must be between 0 and 17, got %d", cfg.Precision)
	}
	if _, err := cfg.delimiter(); err != nil {
		return err
	}

	return nil
}

// newLogger builds the diagnostics logger writing to w.
func (cfg *Config) newLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
}
