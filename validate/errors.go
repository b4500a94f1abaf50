package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/yard"
)

// Sentinel errors, to be used with errors.Is.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrParenMismatch = errors.New("parenthesis mismatch")
	ErrIncomplete    = errors.New("incomplete expression")
)

// InvalidTokenError flags a token which is not legal in its position.
// Found references the token within the validated input.
type InvalidTokenError[V, F, O any] struct {
	Found    *yard.InputToken[V, F, O]
	Expected []yard.Kind // token kinds which would have been accepted
	Pos      int         // zero-based position of Found
}

func (e *InvalidTokenError[V, F, O]) Error() string {
	return fmt.Sprintf("invalid token %s (%s) at position %d, expected %s",
		e.Found.String(), e.Found.Kind, e.Pos, kindList(e.Expected))
}

// Is makes InvalidTokenError match ErrInvalidToken.
func (e *InvalidTokenError[V, F, O]) Is(target error) bool {
	return target == ErrInvalidToken
}

// ParenMismatchError is returned for a non-zero parenthesis balance at the
// end of input. Count is positive for unclosed parentheses.
type ParenMismatchError struct {
	Count int
}

func (e *ParenMismatchError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("%d unclosed parenthesis", e.Count)
	}
	return fmt.Sprintf("%d unmatched closing parenthesis", -e.Count)
}

// Is makes ParenMismatchError match ErrParenMismatch.
func (e *ParenMismatchError) Is(target error) bool {
	return target == ErrParenMismatch
}

// IncompleteError is returned if input ends where an operand is still
// missing, e.g. after an operator. Pos is the length of the input.
type IncompleteError struct {
	Pos      int
	Expected []yard.Kind
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("unexpected end of expression at position %d, expected %s",
		e.Pos, kindList(e.Expected))
}

// Is makes IncompleteError match ErrIncomplete.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete
}

func kindList(kinds []yard.Kind) string {
	s := make([]string, len(kinds))
	for i, k := range kinds {
		s[i] = k.String()
	}
	return "{" + strings.Join(s, ", ") + "}"
}
