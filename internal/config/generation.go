package config

import "github.com/lgbarn/chesscore/internal/engine"

// GenerationConfig holds settings for legal move generation.
type GenerationConfig struct {
	// DoubleCheckFastPath generates only king moves when the side to move
	// is attacked by two pieces.
	DoubleCheckFastPath bool
}

// NewGenerationConfig creates a GenerationConfig with default values.
func NewGenerationConfig() *GenerationConfig {
	return &GenerationConfig{}
}

// Options converts the settings into engine generation options.
func (g *GenerationConfig) Options() engine.GenOptions {
	if g == nil {
		return engine.GenOptions{}
	}
	return engine.GenOptions{DoubleCheckFastPath: g.DoubleCheckFastPath}
}
