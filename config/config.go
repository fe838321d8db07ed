// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Output modes.
const (
	OutputAuto     = "auto"
	OutputTable    = "table"
	OutputYAML     = "yaml"
	OutputMarkdown = "markdown"
	OutputHTML     = "html"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the process configuration.
type Config struct {
	LogLevel      string `env:"FURRY_LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"FURRY_LOG_FORMAT" envDefault:"text"`
	Output        string `env:"FURRY_OUTPUT" envDefault:"auto"`
	SeedSamples   bool   `env:"FURRY_SEED_SAMPLES" envDefault:"true"`
	MessageBuffer int    `env:"FURRY_MESSAGE_BUFFER" envDefault:"128"`
	MaxTextWidth  int    `env:"FURRY_MAX_TEXT_WIDTH" envDefault:"48"`
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	if !ValidOutput(c.Output) {
		return fmt.Errorf("%w: output %q", ErrInvalid, c.Output)
	}
	if c.MessageBuffer <= 0 {
		return fmt.Errorf("%w: message buffer %d", ErrInvalid, c.MessageBuffer)
	}
	if c.MaxTextWidth < 4 {
		return fmt.Errorf("%w: max text width %d", ErrInvalid, c.MaxTextWidth)
	}
	return nil
}

// ValidOutput reports whether mode is a known output mode.
func ValidOutput(mode string) bool {
	switch mode {
	case OutputAuto, OutputTable, OutputYAML, OutputMarkdown, OutputHTML:
		return true
	}
	return false
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return level, nil
}

// NewLogger builds a logger writing to w in the configured format.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
