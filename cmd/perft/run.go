package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/hashing"
	"github.com/lgbarn/chesscore/internal/worker"
)

// runPerft counts the nodes below board at the configured depth and writes
// the result to cfg.Output. With cross-checking enabled, any disagreement
// with the reference generator is logged and returned as an error.
func runPerft(ctx context.Context, cfg *config.Config, board *engine.Board, logger zerolog.Logger) error {
	pc := cfg.Perft
	opts := worker.DivideOptions{Workers: pc.Workers, BufferSize: pc.BufferSize}
	var cache *hashing.PerftCache
	if pc.CacheEntries > 0 {
		cache = hashing.NewPerftCache(pc.CacheEntries)
		opts.Cache = cache
	}

	logger.Debug().Str("fen", board.FEN()).Int("depth", pc.Depth).Msg("counting")
	start := time.Now()
	entries, err := worker.Divide(ctx, board, pc.Depth, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	total := engine.TotalNodes(entries)

	if pc.Divide {
		for _, e := range entries {
			fmt.Fprintf(cfg.Output, "%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Fprintf(cfg.Output, "\nTotal: %d\n", total)
	} else {
		fmt.Fprintf(cfg.Output, "Nodes: %d\n", total)
	}

	if cfg.Verbosity >= 2 {
		for _, e := range entries {
			logger.Info().Str("move", e.Move.String()).Uint64("nodes", e.Nodes).Msg("root move")
		}
	}
	if cfg.Verbosity >= 1 {
		event := logger.Info().
			Int("depth", pc.Depth).
			Uint64("nodes", total).
			Dur("elapsed", elapsed)
		if secs := elapsed.Seconds(); secs > 0 {
			event = event.Float64("nps", float64(total)/secs)
		}
		event.Msg("perft complete")
		if cache != nil {
			hits, misses := cache.Stats()
			logger.Info().Uint64("hits", hits).Uint64("misses", misses).Int("entries", cache.Len()).Msg("cache")
		}
	}

	if !pc.CrossCheck {
		return nil
	}
	diffs := crossCheckDivide(board.FEN(), pc.Depth, entries)
	for _, d := range diffs {
		logger.Error().Str("move", d.Move).Uint64("ours", d.Ours).Uint64("reference", d.Theirs).Msg("count mismatch")
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%d root moves disagree with the reference generator", len(diffs))
	}
	logger.Info().Msg("cross-check passed")
	return nil
}

// runClassify writes the status, draw state and legal moves of board to
// cfg.Output.
func runClassify(cfg *config.Config, board *engine.Board) {
	moves := engine.LegalMovesWith(board, cfg.Generation.Options())
	text := make([]string, len(moves))
	for i, m := range moves {
		text[i] = m.String()
	}
	sort.Strings(text)

	fmt.Fprintf(cfg.Output, "fen: %s\n", board.FEN())
	fmt.Fprintf(cfg.Output, "status: %s\n", engine.Classify(board))
	fmt.Fprintf(cfg.Output, "draw: %s\n", engine.DrawState(board, nil))
	fmt.Fprintf(cfg.Output, "moves (%d): %s\n", len(text), strings.Join(text, " "))
}
