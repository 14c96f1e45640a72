package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrMalformedPosition", ErrMalformedPosition},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrInconsistentUndo", ErrInconsistentUndo},
		{"ErrInvalidConfig", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
			if !Is(wrapped, tt.sentinel) {
				t.Errorf("Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrMalformedPosition) {
		t.Error("ErrIllegalMove matches ErrMalformedPosition")
	}
	if errors.Is(ErrInconsistentUndo, ErrIllegalMove) {
		t.Error("ErrInconsistentUndo matches ErrIllegalMove")
	}
}

// TestPositionError_Error verifies the error message format
func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:    ErrMalformedPosition,
				Field:  "castling",
				Token:  "KQxq",
				Reason: "unexpected letter",
			},
			contains: []string{"malformed position", "castling", `"KQxq"`, "unexpected letter"},
		},
		{
			name:     "sentinel only",
			err:      &PositionError{Err: ErrMalformedPosition},
			contains: []string{"malformed position"},
		},
		{
			name:     "no underlying error",
			err:      &PositionError{Field: "side", Token: "x"},
			contains: []string{"side", `"x"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMalformed(t *testing.T) {
	err := Malformed("placement", "9/8", "rank has 9 squares")

	if !errors.Is(err, ErrMalformedPosition) {
		t.Fatal("errors.Is(Malformed(...), ErrMalformedPosition) = false, want true")
	}

	var posErr *PositionError
	if !errors.As(fmt.Errorf("parse: %w", err), &posErr) {
		t.Fatal("errors.As() could not extract PositionError")
	}
	if posErr.Field != "placement" {
		t.Errorf("posErr.Field = %q, want %q", posErr.Field, "placement")
	}
	if posErr.Token != "9/8" {
		t.Errorf("posErr.Token = %q, want %q", posErr.Token, "9/8")
	}
}

// TestMoveError_Error verifies MoveError formatting
func TestMoveError_Error(t *testing.T) {
	err := &MoveError{
		Err:      ErrIllegalMove,
		MoveText: "e2e5",
		FEN:      "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}

	msg := err.Error()
	for _, s := range []string{"e2e5", "RNBQKBNR w KQkq", "illegal move"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrInconsistentUndo, MoveText: "e1g1"}

	if !errors.Is(moveErr, ErrInconsistentUndo) {
		t.Error("errors.Is(moveErr, ErrInconsistentUndo) = false, want true")
	}

	var extracted *MoveError
	if !As(fmt.Errorf("undo failed: %w", moveErr), &extracted) {
		t.Fatal("As() could not extract MoveError")
	}
	if extracted.MoveText != "e1g1" {
		t.Errorf("extracted.MoveText = %q, want %q", extracted.MoveText, "e1g1")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrMalformedPosition, "loading position")

	if !errors.Is(wrapped, ErrMalformedPosition) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
