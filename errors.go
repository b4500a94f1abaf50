package yard

import (
	"errors"
	"fmt"
)

// ErrParenMismatch is matched by every ParenMismatchError, using errors.Is.
var ErrParenMismatch = errors.New("parenthesis mismatch")

// ErrCorruptStack flags a pending stack in a shape the conversion did not
// expect. It signals a bug in this package, not a malformed input.
var ErrCorruptStack = errors.New("yard: corrupt pending stack")

// ParenMismatchError is returned by ToPostfix for unbalanced parentheses.
//
// Pos is the zero-based position of the offending token within the input:
// either a closing parenthesis without an opening counterpart or, if
// Unclosed is set, an opening parenthesis still open at the end of input.
type ParenMismatchError struct {
	Pos      int
	Unclosed bool
}

func (e *ParenMismatchError) Error() string {
	if e.Unclosed {
		return fmt.Sprintf("unmatched opening parenthesis at position %d", e.Pos)
	}
	return fmt.Sprintf("unmatched closing parenthesis at position %d", e.Pos)
}

// Is makes ParenMismatchError match ErrParenMismatch.
func (e *ParenMismatchError) Is(target error) bool {
	return target == ErrParenMismatch
}
