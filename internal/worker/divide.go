package worker

import (
	"context"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

// DivideOptions configures a parallel divide.
type DivideOptions struct {
	Workers    int              // Defaults to GOMAXPROCS
	BufferSize int              // Defaults to the number of root moves
	Cache      engine.NodeCache // Optional shared subtree cache; must be safe for concurrent use
}

// Divide counts the perft nodes below each legal root move, one root move
// per work item. Each item carries its own board copy so no two goroutines
// share a board. Entries are sorted by move text, as engine.Divide returns
// them. A cancelled context stops the pool and returns ctx.Err().
func Divide(ctx context.Context, board *engine.Board, depth int, opts DivideOptions) ([]engine.DivideEntry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "depth %d: must be at least 1", depth)
	}

	moves := engine.LegalMoves(board)
	if len(moves) == 0 {
		return []engine.DivideEntry{}, nil
	}

	bufferSize := opts.BufferSize
	if bufferSize < 1 {
		bufferSize = len(moves)
	}

	pool := NewPoolWithOptions(countSubtree(opts.Cache), WithWorkers(opts.Workers), WithBufferSize(bufferSize))
	pool.Start()

	go func() {
		defer pool.Close()
		for i, m := range moves {
			item := WorkItem{Board: board.Copy(), Move: m, Depth: depth - 1, Index: i}
			if err := pool.SubmitContext(ctx, item); err != nil {
				pool.Stop()
				return
			}
		}
	}()

	entries := make([]engine.DivideEntry, 0, len(moves))
	var firstErr error
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		entries = append(entries, engine.DivideEntry{Move: result.Move, Nodes: result.Nodes})
		if ctx.Err() != nil {
			pool.Stop()
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if firstErr != nil {
		return nil, firstErr
	}
	engine.SortDivide(entries)
	return entries, nil
}

// Perft is the parallel counterpart of engine.Perft.
func Perft(ctx context.Context, board *engine.Board, depth int, opts DivideOptions) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := Divide(ctx, board, depth, opts)
	if err != nil {
		return 0, err
	}
	return engine.TotalNodes(entries), nil
}

// countSubtree plays the root move on the item's own board and counts below it.
func countSubtree(cache engine.NodeCache) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		if _, err := engine.MakeMove(item.Board, item.Move); err != nil {
			return ProcessResult{Move: item.Move, Index: item.Index, Error: err}
		}
		var nodes uint64
		if cache != nil {
			nodes = engine.PerftCached(item.Board, item.Depth, cache)
		} else {
			nodes = engine.Perft(item.Board, item.Depth)
		}
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
	}
}
