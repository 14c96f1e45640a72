package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	chesserrors "github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/testutil"
)

func play(t *testing.T, s *Session, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if err := s.ApplyMove(text); err != nil {
			t.Fatalf("ApplyMove(%q) failed: %v", text, err)
		}
	}
}

func TestNewSession(t *testing.T) {
	s := New()

	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, len(s.LegalMoves()), 20)
	testutil.AssertEqual(t, s.Classify(), engine.Normal)
	testutil.AssertEqual(t, s.Repetitions(), 1)
	testutil.AssertFalse(t, s.IsDraw())
	testutil.AssertEqual(t, len(s.MoveHistory()), 0)
}

func TestApplyMove(t *testing.T) {
	s := New()
	play(t, s, "e2e4", "c7c5", "g1f3")

	testutil.AssertEqual(t, s.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
	testutil.AssertEqual(t, s.MoveHistory(), []string{"e2e4", "c7c5", "g1f3"})
}

func TestApplyMove_Rejected(t *testing.T) {
	tests := []struct {
		name string
		move string
	}{
		{"pawn three squares", "e2e5"},
		{"opponent piece", "e7e5"},
		{"malformed text", "e2"},
		{"missing promotion", "a7a8"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			s := New(WithLogger(zerolog.New(&logs)))

			err := s.ApplyMove(tt.move)
			if !errors.Is(err, chesserrors.ErrIllegalMove) {
				t.Fatalf("ApplyMove(%q) error = %v, want ErrIllegalMove", tt.move, err)
			}
			testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
			testutil.AssertEqual(t, len(s.MoveHistory()), 0)
			testutil.AssertContains(t, logs.String(), `"level":"warn"`)
		})
	}
}

func TestClassify(t *testing.T) {
	t.Run("fool's mate", func(t *testing.T) {
		s := New()
		play(t, s, "f2f3", "e7e5", "g2g4", "d8h4")
		testutil.AssertEqual(t, s.Classify(), engine.Checkmate)
		testutil.AssertEqual(t, len(s.LegalMoves()), 0)
		testutil.AssertFalse(t, s.IsDraw())

		err := s.ApplyMove("e1f2")
		if !errors.Is(err, chesserrors.ErrIllegalMove) {
			t.Errorf("move after mate error = %v, want ErrIllegalMove", err)
		}
	})

	t.Run("check", func(t *testing.T) {
		s := New()
		play(t, s, "e2e4", "f7f6", "d1h5")
		testutil.AssertEqual(t, s.Classify(), engine.Check)
		testutil.AssertSameElements(t, s.LegalMoves(), []string{"g7g6"})
	})

	t.Run("stalemate", func(t *testing.T) {
		s := New()
		testutil.AssertNoError(t, s.SetPosition("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"))
		testutil.AssertEqual(t, s.Classify(), engine.Stalemate)
		testutil.AssertEqual(t, s.DrawState(), engine.DrawByStalemate)
	})
}

func TestSetPosition(t *testing.T) {
	s := New()
	play(t, s, "e2e4")

	testutil.AssertNoError(t, s.SetPosition(testutil.KiwipeteFEN))
	testutil.AssertEqual(t, s.FEN(), testutil.KiwipeteFEN)
	testutil.AssertEqual(t, len(s.LegalMoves()), 48)
	testutil.AssertEqual(t, len(s.MoveHistory()), 0)
	testutil.AssertEqual(t, s.Repetitions(), 1)

	if _, err := s.Undo(); err == nil {
		t.Error("Undo after SetPosition should fail")
	}
}

func TestSetPosition_Malformed(t *testing.T) {
	s := New()
	play(t, s, "d2d4")
	before := s.FEN()

	for _, fen := range []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - zero 1",
	} {
		err := s.SetPosition(fen)
		if !errors.Is(err, chesserrors.ErrMalformedPosition) {
			t.Errorf("SetPosition(%q) error = %v, want ErrMalformedPosition", fen, err)
		}
	}
	testutil.AssertEqual(t, s.FEN(), before)
	testutil.AssertEqual(t, s.MoveHistory(), []string{"d2d4"})
}

func TestUndo(t *testing.T) {
	s := New()
	play(t, s, "e2e4", "e7e5")
	afterFirst := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"

	undone, err := s.Undo()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, undone, "e7e5")
	testutil.AssertEqual(t, s.FEN(), afterFirst)

	undone, err = s.Undo()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, undone, "e2e4")
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, s.Repetitions(), 1)

	_, err = s.Undo()
	if !errors.Is(err, chesserrors.ErrInconsistentUndo) {
		t.Errorf("Undo with no moves error = %v, want ErrInconsistentUndo", err)
	}
}

func TestNewGame(t *testing.T) {
	s := New()
	play(t, s, "g1f3", "g8f6")
	s.NewGame()

	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
	testutil.AssertEqual(t, len(s.MoveHistory()), 0)
	testutil.AssertEqual(t, s.Repetitions(), 1)
}

func TestDrawState(t *testing.T) {
	t.Run("threefold repetition", func(t *testing.T) {
		s := New()
		shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
		play(t, s, shuffle...)
		testutil.AssertEqual(t, s.Repetitions(), 2)
		testutil.AssertFalse(t, s.IsDraw())

		play(t, s, shuffle...)
		testutil.AssertEqual(t, s.Repetitions(), 3)
		testutil.AssertEqual(t, s.DrawState(), engine.DrawByRepetition)

		_, err := s.Undo()
		testutil.AssertNoError(t, err)
		testutil.AssertFalse(t, s.IsDraw())
	})

	t.Run("fifty-move rule", func(t *testing.T) {
		s := New()
		testutil.AssertNoError(t, s.SetPosition("8/8/8/8/8/5k2/8/R3K3 w - - 99 80"))
		testutil.AssertFalse(t, s.IsDraw())
		play(t, s, "a1a2")
		testutil.AssertEqual(t, s.DrawState(), engine.DrawByFiftyMoves)
	})

	t.Run("insufficient material", func(t *testing.T) {
		s := New()
		testutil.AssertNoError(t, s.SetPosition("8/8/4k3/8/8/8/8/4K3 w - - 0 1"))
		testutil.AssertEqual(t, s.DrawState(), engine.DrawByInsufficientMaterial)
		testutil.AssertTrue(t, s.IsDraw())
	})
}

func TestBoardIsCopy(t *testing.T) {
	s := New()
	board := s.Board()
	if _, err := engine.MakeMove(board, testutil.MustMove(t, board, "e2e4")); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	testutil.AssertEqual(t, s.FEN(), engine.InitialFEN)
}

func TestWithConfig(t *testing.T) {
	var logs bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithDoubleCheckFastPath(true).
		WithLogFile(&logs).
		WithLogLevel(zerolog.DebugLevel).
		Build()
	s := New(WithConfig(cfg))

	testutil.AssertNoError(t, s.SetPosition("k3r3/8/8/8/8/5n2/8/4K3 w - - 0 1"))
	testutil.AssertSameElements(t, s.LegalMoves(), []string{"e1d1", "e1f1", "e1f2"})
	play(t, s, "e1f2")

	out := logs.String()
	if !strings.Contains(out, "position set") || !strings.Contains(out, "move applied") {
		t.Errorf("expected position and move log lines, got %q", out)
	}
}
