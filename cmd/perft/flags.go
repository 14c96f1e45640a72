// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
)

var (
	// Position
	fenFlag  = flag.String("fen", engine.InitialFEN, "Position to count from, in FEN")
	moveList = flag.String("moves", "", "Space-separated coordinate moves to play from -fen first")

	// Counting
	depth      = flag.Int("depth", 1, "Perft depth")
	divide     = flag.Bool("divide", false, "Print the node count below each root move")
	workers    = flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	bufferSize = flag.Int("buffer", 0, "Work queue size (0 = one slot per root move)")
	cacheSize  = flag.Int("cache", 0, "Subtree cache entries (0 = no cache)")
	crossCheck = flag.Bool("crosscheck", false, "Recount with dragontoothmg and report disagreements")
	fastPath   = flag.Bool("fastpath", false, "Generate only king moves under double check")

	// Modes
	classifyOnly = flag.Bool("classify", false, "Print the position status and legal moves instead of counting")

	// Logging
	logLevel = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	logFile  = flag.String("log", "", "Write log to this file (default: stderr)")
	quiet    = flag.Bool("s", false, "Silent mode: print results only")
	verbose  = flag.Bool("v", false, "Report each root move as it completes")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	applyPerftFlags(cfg)
	cfg.Generation.DoubleCheckFastPath = *fastPath

	level, err := config.ParseLogLevel(*logLevel)
	if err != nil {
		return err
	}
	cfg.LogLevel = level

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return cfg.Validate()
}

// applyPerftFlags configures node counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.BufferSize = *bufferSize
	cfg.Perft.CacheEntries = *cacheSize
	cfg.Perft.CrossCheck = *crossCheck
}
