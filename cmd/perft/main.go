// perft counts, divides and classifies chess positions from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(realMain())
}

// realMain runs the tool and returns the process exit code, so deferred
// cleanup runs before the process exits.
func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("perft version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	file, err := setupLogFile(cfg, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		return 1
	}
	if file != nil {
		defer file.Close() //nolint:errcheck // log file close on exit
	}
	logger := cfg.Logger()

	board, err := setupBoard(*fenFlag, *moveList)
	if err != nil {
		logger.Error().Err(err).Msg("cannot set up position")
		return 2
	}

	if *classifyOnly {
		runClassify(cfg, board)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := runPerft(ctx, cfg, board, logger); err != nil {
		logger.Error().Err(err).Msg("perft failed")
		return 1
	}
	return 0
}

// setupLogFile points cfg.LogFile at path, opened for appending. It returns
// the opened file for the caller to close, or nil when path is empty.
func setupLogFile(cfg *config.Config, path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		return nil, err
	}
	cfg.LogFile = file
	return file, nil
}

// setupBoard parses the starting position and plays the given moves on it.
func setupBoard(fen, moves string) (*engine.Board, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}
	for i, text := range strings.Fields(moves) {
		m, err := engine.ParseMove(board, text)
		if err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
		if _, err := engine.MakeMove(board, m); err != nil {
			return nil, errors.Wrapf(err, "move %d", i+1)
		}
	}
	return board, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the leaf nodes of the legal move tree below a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  perft -depth 5\n")
	fmt.Fprintf(os.Stderr, "  perft -fen \"%s\" -depth 3 -divide -crosscheck\n", engine.InitialFEN)
	fmt.Fprintf(os.Stderr, "  perft -moves \"e2e4 e7e5\" -classify\n")
}
