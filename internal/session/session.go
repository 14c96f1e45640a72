// Package session implements the command interface over the rules core: one
// game whose position is set, advanced and queried with FEN and coordinate
// notation text. It does not read input or speak any protocol itself.
package session

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/engine"
	"github.com/lgbarn/chesscore/internal/errors"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// Session holds a game in progress. It is not safe for concurrent use.
type Session struct {
	board *engine.Board

	// One entry per applied move, most recent last.
	played []engine.Move
	undos  []engine.UndoRecord

	// Every position reached since the last NewGame or SetPosition.
	history *hashing.History

	genOpts engine.GenOptions
	log     zerolog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.log = logger
	}
}

// WithConfig applies the generation settings of cfg and logs through the
// logger it describes.
func WithConfig(cfg *config.Config) Option {
	return func(s *Session) {
		if cfg == nil {
			return
		}
		s.genOpts = cfg.Generation.Options()
		s.log = cfg.Logger()
	}
}

// New creates a session holding the standard starting position.
func New(opts ...Option) *Session {
	s := &Session{
		history: hashing.NewHistory(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset(engine.NewInitialBoard())
	return s
}

// NewGame discards the current game and sets up the starting position.
func (s *Session) NewGame() {
	s.reset(engine.NewInitialBoard())
	s.log.Info().Str("fen", s.board.FEN()).Msg("new game")
}

// SetPosition replaces the current game with the position described by fen.
// On error the session is left unchanged.
func (s *Session) SetPosition(fen string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		s.log.Warn().Err(err).Str("fen", fen).Msg("position rejected")
		return err
	}
	s.reset(board)
	s.log.Info().Str("fen", fen).Msg("position set")
	return nil
}

// ApplyMove plays a move given in coordinate notation. A move that is not
// legal in the current position is rejected with an error wrapping
// errors.ErrIllegalMove and the position is left unchanged.
func (s *Session) ApplyMove(text string) error {
	m, err := engine.ParseMove(s.board, text)
	if err != nil {
		s.log.Warn().Err(err).Str("move", text).Msg("move rejected")
		return err
	}
	undo, err := engine.MakeMove(s.board, m)
	if err != nil {
		s.log.Error().Err(err).Str("move", text).Msg("resolved move failed to apply")
		return err
	}
	s.played = append(s.played, m)
	s.undos = append(s.undos, undo)
	reps := s.history.Push(s.board)

	s.log.Debug().
		Str("move", m.String()).
		Str("fen", s.board.FEN()).
		Int("repetitions", reps).
		Msg("move applied")
	return nil
}

// Undo takes back the last move and returns its text.
func (s *Session) Undo() (string, error) {
	n := len(s.undos)
	if n == 0 {
		err := errors.Wrap(errors.ErrInconsistentUndo, "no move to take back")
		s.log.Warn().Err(err).Msg("undo rejected")
		return "", err
	}
	undo := s.undos[n-1]
	if err := engine.Undo(s.board, undo); err != nil {
		s.log.Error().Err(err).Str("move", undo.Move.String()).Msg("undo record does not match board")
		return "", err
	}
	s.history.Pop()
	s.undos = s.undos[:n-1]
	s.played = s.played[:n-1]

	s.log.Debug().Str("move", undo.Move.String()).Str("fen", s.board.FEN()).Msg("move undone")
	return undo.Move.String(), nil
}

// LegalMoves returns the legal moves of the current position in coordinate
// notation.
func (s *Session) LegalMoves() []string {
	moves := engine.LegalMovesWith(s.board, s.genOpts)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// Classify returns the status of the current position.
func (s *Session) Classify() engine.Status {
	return engine.Classify(s.board)
}

// DrawState reports the rule, if any, under which the current position is
// drawn, counting repetitions over the moves played in this session.
func (s *Session) DrawState() engine.DrawReason {
	return engine.DrawState(s.board, s.history)
}

// IsDraw returns true if the current position is drawn by any rule.
func (s *Session) IsDraw() bool {
	return s.DrawState() != engine.NoDraw
}

// Repetitions returns how often the current position has occurred.
func (s *Session) Repetitions() int {
	return s.history.Repetitions(s.board)
}

// MoveHistory returns the moves played since the game was set up.
func (s *Session) MoveHistory() []string {
	out := make([]string, len(s.played))
	for i, m := range s.played {
		out[i] = m.String()
	}
	return out
}

// FEN returns the current position in FEN.
func (s *Session) FEN() string {
	return s.board.FEN()
}

// Board returns a copy of the current position.
func (s *Session) Board() *engine.Board {
	return s.board.Copy()
}

// reset starts a fresh game from board.
func (s *Session) reset(board *engine.Board) {
	s.board = board
	s.played = s.played[:0]
	s.undos = s.undos[:0]
	s.history.Reset()
	s.history.Push(board)
}
