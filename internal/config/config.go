// Package config provides configuration for chess sessions and the perft tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=results only, 1=summary lines, 2=per-move commentary

	// Logging
	LogLevel zerolog.Level
	LogFile  io.Writer

	// Results are written here.
	Output io.Writer

	Generation *GenerationConfig
	Perft      *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogLevel:   zerolog.InfoLevel,
		LogFile:    os.Stderr,
		Output:     os.Stdout,
		Generation: NewGenerationConfig(),
		Perft:      NewPerftConfig(),
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("no output writer: %w", errors.ErrInvalidConfig)
	}
	if c.Perft != nil {
		if err := c.Perft.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Logger builds a console-formatted logger writing to LogFile at LogLevel.
// A nil LogFile yields a logger that discards everything.
func (c *Config) Logger() zerolog.Logger {
	if c.LogFile == nil {
		return zerolog.Nop()
	}
	out := zerolog.ConsoleWriter{Out: c.LogFile, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(c.LogLevel).With().Timestamp().Logger()
}

// ParseLogLevel maps a level name such as "debug" or "warn" to a zerolog
// level.
func ParseLogLevel(name string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", name, errors.ErrInvalidConfig)
	}
	return level, nil
}
