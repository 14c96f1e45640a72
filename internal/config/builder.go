package config

import (
	"io"

	"github.com/rs/zerolog"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogLevel sets the minimum level written to the log.
func (b *ConfigBuilder) WithLogLevel(level zerolog.Level) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithLogFile sets the log destination.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the result destination.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output = w
	return b
}

// WithDoubleCheckFastPath toggles king-only generation under double check.
func (b *ConfigBuilder) WithDoubleCheckFastPath(enabled bool) *ConfigBuilder {
	b.cfg.Generation.DoubleCheckFastPath = enabled
	return b
}

// WithDepth sets the perft depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	return b
}

// WithDivide enables per-root-move output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithWorkers sets the number of perft worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithBufferSize sets the work queue size.
func (b *ConfigBuilder) WithBufferSize(size int) *ConfigBuilder {
	b.cfg.Perft.BufferSize = size
	return b
}

// WithCacheEntries bounds the shared subtree cache.
func (b *ConfigBuilder) WithCacheEntries(n int) *ConfigBuilder {
	b.cfg.Perft.CacheEntries = n
	return b
}

// WithCrossCheck enables recounting with an independent generator.
func (b *ConfigBuilder) WithCrossCheck(enabled bool) *ConfigBuilder {
	b.cfg.Perft.CrossCheck = enabled
	return b
}
