package config

import (
	"fmt"

	"github.com/lgbarn/chesscore/internal/errors"
)

// MaxPerftDepth bounds the depth accepted by the perft tool.
const MaxPerftDepth = 15

// PerftConfig holds settings for node counting.
type PerftConfig struct {
	Depth int

	// Divide prints the node count below each root move.
	Divide bool

	// Parallelism; zero picks a default.
	Workers    int
	BufferSize int

	// CacheEntries bounds the shared subtree cache; zero disables it.
	CacheEntries int

	// CrossCheck recounts with an independent move generator and reports
	// any disagreement.
	CrossCheck bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Depth: 1}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth %d not in 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) < 0: %w", p.BufferSize, errors.ErrInvalidConfig)
	}
	if p.CacheEntries < 0 {
		return fmt.Errorf("cache entries (%d) < 0: %w", p.CacheEntries, errors.ErrInvalidConfig)
	}
	return nil
}
