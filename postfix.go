package yard

import (
	"fmt"
	"iter"
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ref: https://en.wikipedia.org/wiki/Shunting-yard_algorithm

// ToPostfix converts an infix token sequence into postfix order.
//
// Values, functions and operators of the input appear exactly once in the
// output; parentheses and argument separators never do. The only error
// condition is a parenthesis mismatch, reported as *ParenMismatchError.
// Otherwise malformed input (e.g., two consecutive values) will produce
// output without meaningful postfix semantics. Use package validate to
// detect this kind of input.
//
// Functions called without parentheses take the rest of the enclosing
// argument as their argument: they are closed by the enclosing ")" or ","
// or by the end of input. With "sqrt 9 + 7", "+" binds to 9.
func ToPostfix[V, F any, O Operator](infix []InputToken[V, F, O]) ([]OutputToken[V, F, O], error) {
	return toPostfix(slices.Values(infix), len(infix))
}

// ToPostfixSeq is like ToPostfix, but consumes an iterator. The sequence
// has to be finite.
func ToPostfixSeq[V, F any, O Operator](infix iter.Seq[InputToken[V, F, O]]) ([]OutputToken[V, F, O], error) {
	return toPostfix(infix, 0)
}

func toPostfix[V, F any, O Operator](infix iter.Seq[InputToken[V, F, O]], sizeHint int) (
	[]OutputToken[V, F, O], error) {
	//
	c := &converter[V, F, O]{
		out:     make([]OutputToken[V, F, O], 0, sizeHint),
		pending: pendingStack[F, O]{arraystack.New()},
	}
	pos := 0
	for token := range infix {
		if err := c.consume(token, pos); err != nil {
			tracer().Debugf("conversion to postfix failed: %v", err)
			return nil, err
		}
		pos++
	}
	if err := c.finish(); err != nil {
		tracer().Debugf("conversion to postfix failed: %v", err)
		return nil, err
	}
	tracer().Debugf("converted %d infix tokens to %d postfix tokens", pos, len(c.out))
	return c.out, nil
}

// --- Pending stack ---------------------------------------------------------

type entryKind uint8

const (
	parenMarker entryKind = iota
	pendingFunc
	pendingOp
)

// stackEntry is an entry of the pending stack. Left parenthesis markers
// remember their input position for error reporting.
type stackEntry[F any, O Operator] struct {
	kind entryKind
	pos  int
	fn   F
	op   O
}

// pendingStack is a typed view onto a gods array stack.
type pendingStack[F any, O Operator] struct {
	*arraystack.Stack
}

func (ps pendingStack[F, O]) top() (stackEntry[F, O], bool) {
	e, ok := ps.Peek()
	if !ok {
		return stackEntry[F, O]{}, false
	}
	return e.(stackEntry[F, O]), true
}

func (ps pendingStack[F, O]) pop() (stackEntry[F, O], bool) {
	e, ok := ps.Pop()
	if !ok {
		return stackEntry[F, O]{}, false
	}
	return e.(stackEntry[F, O]), true
}

// --- Conversion ------------------------------------------------------------

// converter holds the state of a single conversion: the output queue,
// the stack of pending entries and the number of open parentheses.
type converter[V, F any, O Operator] struct {
	out     []OutputToken[V, F, O]
	pending pendingStack[F, O]
	open    int
}

func (c *converter[V, F, O]) consume(token InputToken[V, F, O], pos int) error {
	switch token.Kind {
	case ValueToken:
		c.out = append(c.out, OutputToken[V, F, O]{Kind: ValueToken, Value: token.Value})
	case LeftParen:
		c.pending.Push(stackEntry[F, O]{kind: parenMarker, pos: pos})
		c.open++
	case RightParen:
		return c.closeParen(pos)
	case FunctionToken:
		c.pending.Push(stackEntry[F, O]{kind: pendingFunc, fn: token.Func})
	case ArgSeparator:
		c.flushArgument()
	case OperatorToken:
		c.pushOperator(token.Op)
	default:
		return fmt.Errorf("invalid token kind %s at position %d", token.Kind, pos)
	}
	return nil
}

// emit appends a function or operator entry to the output.
func (c *converter[V, F, O]) emit(e stackEntry[F, O]) {
	if e.kind == pendingFunc {
		c.out = append(c.out, OutputToken[V, F, O]{Kind: FunctionToken, Func: e.fn})
	} else {
		c.out = append(c.out, OutputToken[V, F, O]{Kind: OperatorToken, Op: e.op})
	}
}

// flushArgument emits every entry above the innermost left parenthesis
// marker. These are operators and functions called without parentheses;
// a function with a parenthesized argument list always sits below its marker.
func (c *converter[V, F, O]) flushArgument() {
	for {
		top, ok := c.pending.top()
		if !ok || top.kind == parenMarker {
			return
		}
		c.pending.Pop()
		c.emit(top)
	}
}

func (c *converter[V, F, O]) closeParen(pos int) error {
	if c.open == 0 {
		return &ParenMismatchError{Pos: pos}
	}
	c.open--
	c.flushArgument()
	if marker, ok := c.pending.pop(); !ok || marker.kind != parenMarker {
		return fmt.Errorf("%w: no parenthesis marker for position %d", ErrCorruptStack, pos)
	}
	if top, ok := c.pending.top(); ok && top.kind == pendingFunc {
		c.pending.Pop()
		c.emit(top) // the function's argument list is complete
	}
	return nil
}

func (c *converter[V, F, O]) pushOperator(o1 O) {
	for {
		top, ok := c.pending.top()
		if !ok || top.kind != pendingOp || !yields(o1, top.op) {
			break
		}
		c.pending.Pop()
		c.emit(top)
	}
	c.pending.Push(stackEntry[F, O]{kind: pendingOp, op: o1})
}

// finish drains the pending stack at end of input.
func (c *converter[V, F, O]) finish() error {
	for {
		e, ok := c.pending.pop()
		if !ok {
			return nil
		}
		if e.kind == parenMarker {
			return &ParenMismatchError{Pos: e.pos, Unclosed: true}
		}
		c.emit(e)
	}
}
