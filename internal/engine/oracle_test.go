package engine_test

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"

	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/testutil"
)

var oracleFENs = []string{
	engine.InitialFEN,
	testutil.KiwipeteFEN,
	testutil.EndgameFEN,
	testutil.PromotionFEN,
	position5FEN,
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"8/8/8/KPp4r/8/8/8/4k3 w - c6 0 2",
}

// dragonPerft counts leaf nodes with an independent bitboard generator.
func dragonPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragonPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func TestPerft_MatchesDragontooth(t *testing.T) {
	depth := 3
	if testing.Short() {
		depth = 2
	}

	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			oracle := dragontoothmg.ParseFen(fen)
			want := dragonPerft(&oracle, depth)
			got := engine.Perft(testutil.MustBoard(t, fen), depth)
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestDivide_MatchesDragontooth(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			oracle := dragontoothmg.ParseFen(fen)
			want := map[string]uint64{}
			for _, m := range oracle.GenerateLegalMoves() {
				unapply := oracle.Apply(m)
				want[m.String()] = dragonPerft(&oracle, 1)
				unapply()
			}

			got := map[string]uint64{}
			for _, e := range engine.Divide(testutil.MustBoard(t, fen), 2) {
				got[e.Move.String()] = e.Nodes
			}
			testutil.AssertEqual(t, got, want)
		})
	}
}

func TestLegalMoves_MatchNotnil(t *testing.T) {
	for _, fen := range oracleFENs {
		t.Run(fen, func(t *testing.T) {
			opt, err := chess.FEN(fen)
			testutil.AssertNoError(t, err)
			pos := chess.NewGame(opt).Position()

			var want []string
			for _, m := range pos.ValidMoves() {
				want = append(want, chess.UCINotation{}.Encode(pos, m))
			}

			got := testutil.MoveStrings(engine.LegalMoves(testutil.MustBoard(t, fen)))
			testutil.AssertSameElements(t, got, want)
		})
	}
}

func TestClassify_MatchesNotnil(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		backRankMateFEN,
		"7k/6Q1/6K1/8/8/8/8/8 b - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"8/8/8/8/8/5k2/5p2/5K2 w - - 0 1",
		"4k3/8/8/8/8/8/8/4K2r w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			opt, err := chess.FEN(fen)
			testutil.AssertNoError(t, err)
			pos := chess.NewGame(opt).Position()

			got := engine.Classify(testutil.MustBoard(t, fen))
			switch pos.Status() {
			case chess.Checkmate:
				testutil.AssertEqual(t, got, engine.Checkmate)
			case chess.Stalemate:
				testutil.AssertEqual(t, got, engine.Stalemate)
			default:
				testutil.AssertFalse(t, got.IsTerminal(), "got %s", got)
			}
		})
	}
}
