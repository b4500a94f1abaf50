package evaluator

import (
	"errors"
	"fmt"
)

// ErrNoExpression flags an empty input.
var ErrNoExpression = errors.New("no expression to evaluate")

// Error is an error located in the source text of an expression.
type Error struct {
	Pos int    // byte offset into the source text
	Msg string // error message
	Err error  // underlying error, may be nil
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (at position %d)", e.Msg, e.Pos)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func located(pos int, err error) *Error {
	return &Error{Pos: pos, Msg: err.Error(), Err: err}
}
