package validate

import (
	"iter"

	"github.com/npillmayer/yard"
)

// Infix validates an infix token sequence. It returns nil if the sequence
// forms a well-formed expression, or one of *InvalidTokenError,
// *ParenMismatchError and *IncompleteError.
//
// Infix does not modify tokens; an InvalidTokenError points into tokens.
func Infix[V, F, O any](tokens []yard.InputToken[V, F, O], opts ...Option[O]) error {
	return Seq(func(yield func(*yard.InputToken[V, F, O]) bool) {
		for i := range tokens {
			if !yield(&tokens[i]) {
				return
			}
		}
	}, opts...)
}

// Seq is like Infix, but consumes an iterator over token references. The
// sequence has to be finite, as acceptance is decided at its end.
func Seq[V, F, O any](tokens iter.Seq[*yard.InputToken[V, F, O]], opts ...Option[O]) error {
	v := &validator[V, F, O]{state: expression, ctx: newNesting()}
	for _, opt := range opts {
		opt(&v.options)
	}
	pos := 0
	for token := range tokens {
		if !v.accept(token) {
			tracer().Debugf("%s rejects %s at position %d", v.state, token.Kind, pos)
			return &InvalidTokenError[V, F, O]{
				Found:    token,
				Expected: expected[v.state],
				Pos:      pos,
			}
		}
		pos++
	}
	return v.finish(pos)
}

// Option configures validation.
type Option[O any] func(*options[O])

type options[O any] struct {
	isPrefix func(O) bool
}

// WithPrefixOperators lets operators for which isPrefix returns true occur
// where an operand is expected, i.e. at the start of an expression or after
// another operator. Without this option every operator is treated as binary.
func WithPrefixOperators[O any](isPrefix func(O) bool) Option[O] {
	return func(opts *options[O]) {
		opts.isPrefix = isPrefix
	}
}

// --- State machine ---------------------------------------------------------

type state uint8

const (
	expression  state = iota // expecting the start of an (sub-)expression
	afterValue               // an operand has been completed
	fnArgsStart              // a function has to be followed by its argument list
)

func (s state) String() string {
	switch s {
	case expression:
		return "Expression"
	case afterValue:
		return "AfterValue"
	case fnArgsStart:
		return "FunctionArgsStart"
	}
	return "?"
}

// expected lists the token kinds legal for each state.
var expected = [...][]yard.Kind{
	expression:  {yard.ValueToken, yard.LeftParen, yard.FunctionToken},
	afterValue:  {yard.OperatorToken, yard.RightParen, yard.ArgSeparator},
	fnArgsStart: {yard.LeftParen},
}

type validator[V, F, O any] struct {
	state   state
	ctx     *nesting
	options options[O]
}

// accept performs the transition for token. If token is illegal in the
// current state, accept returns false and leaves the state unchanged.
func (v *validator[V, F, O]) accept(token *yard.InputToken[V, F, O]) bool {
	switch v.state {
	case expression:
		switch token.Kind {
		case yard.ValueToken:
			v.state = afterValue
		case yard.LeftParen:
			v.ctx.leftParen()
		case yard.FunctionToken:
			v.state = fnArgsStart
		case yard.OperatorToken:
			return v.options.isPrefix != nil && v.options.isPrefix(token.Op)
		default:
			return false
		}
	case afterValue:
		switch token.Kind {
		case yard.OperatorToken:
			v.state = expression
		case yard.RightParen:
			return v.ctx.rightParen()
		case yard.ArgSeparator:
			if !v.ctx.allowArgSeparator() {
				return false
			}
			v.state = expression
		default:
			return false
		}
	case fnArgsStart:
		if token.Kind != yard.LeftParen {
			return false
		}
		v.ctx.enterFnArgs()
		v.state = expression
	}
	return true
}

// finish decides acceptance at the end of input.
func (v *validator[V, F, O]) finish(length int) error {
	if v.ctx.depth != 0 {
		tracer().Debugf("%d parentheses left open", v.ctx.depth)
		return &ParenMismatchError{Count: v.ctx.depth}
	}
	if v.state != afterValue {
		tracer().Debugf("input ends in state %s", v.state)
		return &IncompleteError{Pos: length, Expected: expected[v.state]}
	}
	return nil
}
