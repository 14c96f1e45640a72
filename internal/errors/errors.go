// Package errors provides sentinel errors and error types for the rules core.
// It defines the failure conditions callers can inspect with errors.Is() and
// structured types that keep position and move context for errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedPosition indicates a bad serialized position or an
	// impossible piece placement.
	ErrMalformedPosition = errors.New("malformed position")

	// ErrIllegalMove indicates a move that is not among the legal moves of
	// the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInconsistentUndo indicates an undo record that does not match the
	// board it is applied to.
	ErrInconsistentUndo = errors.New("inconsistent undo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError describes why a serialized position was rejected.
// It implements the error interface and unwraps to the underlying error,
// normally ErrMalformedPosition.
type PositionError struct {
	Err    error  // The underlying error
	Field  string // FEN field name: "placement", "side", "castling", ...
	Token  string // The offending token (if applicable)
	Reason string // Human-readable detail
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Token))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ": ")
	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%v: %s", e.Err, context)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Malformed builds a PositionError wrapping ErrMalformedPosition.
func Malformed(field, token, reason string) error {
	return &PositionError{Err: ErrMalformedPosition, Field: field, Token: token, Reason: reason}
}

// MoveError wraps errors with move context: the move text and the position
// it was attempted in. It supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move in coordinate notation (if known)
	FEN      string // The position the move was tried in (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("position %q", e.FEN))
	}

	context := strings.Join(parts, " in ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
