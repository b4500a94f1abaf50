package grammar

import (
	"fmt"

	"github.com/npillmayer/yard"
	"github.com/npillmayer/yard/corelang"
	"github.com/npillmayer/yard/op"
)

// Span is a byte range [From, To) of the source text.
type Span struct {
	From, To int
}

func (s Span) String() string {
	return fmt.Sprintf("%d…%d", s.From, s.To)
}

// SyntaxError is an error located in the source text.
type SyntaxError struct {
	Span Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Span.From, e.Msg)
}

// Operand is a literal value or a reference to a variable.
type Operand struct {
	Literal corelang.Value // valid if Name is empty
	Name    string         // variable name
	Span    Span
}

// IsVariable is a predicate: does the operand reference a variable?
func (o Operand) IsVariable() bool {
	return o.Name != ""
}

func (o Operand) String() string {
	if o.IsVariable() {
		return o.Name
	}
	return o.Literal.String()
}

// Call is a function call. Argc is the number of arguments, counted from
// the argument list of the call, or -1 for calls without parentheses.
type Call struct {
	Name string
	Argc int
	Span Span
}

func (c *Call) String() string {
	return c.Name
}

// Operator is an operator from package op, located in the source text.
type Operator struct {
	op.Operator
	Span Span
}

// Token is a token of an infix expression.
type Token = yard.InputToken[Operand, *Call, Operator]

// Expression is a tokenized infix expression.
type Expression struct {
	Source string
	Infix  []Token
	Spans  []Span // Spans[i] is the source location of Infix[i]
}

// Symbols classifies identifiers. An identifier followed by an argument
// list is always a function.
type Symbols interface {
	IsFunction(name string) bool               // name is a function
	Operator(name string) (op.Operator, bool) // name is an operator
}

// Tokenize splits src into infix tokens. isFunction tells whether an
// identifier names a function, even if it is not followed by an argument
// list. It may be nil.
func Tokenize(src string, isFunction func(string) bool) (*Expression, error) {
	return TokenizeWith(src, functions(isFunction))
}

// TokenizeWith splits src into infix tokens, classifying identifiers
// with syms.
func TokenizeWith(src string, syms Symbols) (*Expression, error) {
	lexemes, err := Scan(src)
	if err != nil {
		return nil, err
	}
	t := tokenizer{
		expr: &Expression{Source: src},
		syms: syms,
	}
	for i, lx := range lexemes {
		if err := t.add(lx, lexemes[i+1:]); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("tokenized %q into %d tokens", src, len(t.expr.Infix))
	return t.expr, nil
}

// functions adapts a predicate to Symbols without operators.
type functions func(string) bool

func (f functions) IsFunction(name string) bool {
	return f != nil && f(name)
}

func (f functions) Operator(string) (op.Operator, bool) {
	return nil, false
}

type tokenizer struct {
	expr   *Expression
	syms   Symbols
	parens []*paren // open parentheses
	prev   int      // lexeme type of previous token, 0 at start
}

// paren is an open parenthesis. For argument lists it tracks the call.
type paren struct {
	call  *Call
	empty bool // no token since the opening parenthesis
}

func (t *tokenizer) emit(token Token, span Span) {
	t.expr.Infix = append(t.expr.Infix, token)
	t.expr.Spans = append(t.expr.Spans, span)
}

func (t *tokenizer) add(lx Lexeme, rest []Lexeme) error {
	if lx.Type != RightParenTok && len(t.parens) > 0 {
		t.parens[len(t.parens)-1].empty = false
	}
	switch lx.Type {
	case NumberTok:
		v, err := corelang.ParseNumeric(lx.Text)
		if err != nil {
			return &SyntaxError{Span: lx.Span, Msg: err.Error()}
		}
		t.emit(yard.Value[Operand, *Call, Operator](Operand{Literal: v, Span: lx.Span}), lx.Span)
	case TrueTok, FalseTok:
		v := corelang.FromBool(lx.Type == TrueTok)
		t.emit(yard.Value[Operand, *Call, Operator](Operand{Literal: v, Span: lx.Span}), lx.Span)
	case IdentTok:
		args := len(rest) > 0 && rest[0].Type == LeftParenTok
		if o, ok := t.syms.Operator(lx.Text); ok && !args {
			return t.addNamedOperator(o, lx)
		}
		if args || t.syms.IsFunction(lx.Text) {
			call := &Call{Name: lx.Text, Argc: -1, Span: lx.Span}
			t.emit(yard.Function[Operand, *Call, Operator](call), lx.Span)
		} else {
			t.emit(yard.Value[Operand, *Call, Operator](Operand{Name: lx.Text, Span: lx.Span}), lx.Span)
		}
	case LeftParenTok:
		p := &paren{empty: true}
		if n := len(t.expr.Infix); n > 0 && t.expr.Infix[n-1].Kind == yard.FunctionToken {
			p.call = t.expr.Infix[n-1].Func
			p.call.Argc = 1
		}
		t.parens = append(t.parens, p)
		t.emit(yard.LParen[Operand, *Call, Operator](), lx.Span)
	case RightParenTok:
		if n := len(t.parens); n > 0 {
			if p := t.parens[n-1]; p.call != nil && p.empty {
				p.call.Argc = 0
			}
			t.parens = t.parens[:n-1]
		}
		t.emit(yard.RParen[Operand, *Call, Operator](), lx.Span)
	case CommaTok:
		if n := len(t.parens); n > 0 && t.parens[n-1].call != nil {
			t.parens[n-1].call.Argc++
		}
		t.emit(yard.Separator[Operand, *Call, Operator](), lx.Span)
	case OperatorTok:
		o, ok := op.Lookup(lx.Text, t.prefixPosition())
		if !ok {
			return &SyntaxError{
				Span: lx.Span,
				Msg:  fmt.Sprintf("operator %s not allowed here", lx.Text),
			}
		}
		t.emit(yard.Op[Operand, *Call, Operator](Operator{Operator: o, Span: lx.Span}), lx.Span)
	default:
		return &SyntaxError{Span: lx.Span, Msg: fmt.Sprintf("unknown token %q", lx.Text)}
	}
	t.prev = lx.Type
	return nil
}

// addNamedOperator adds an operator spelled as an identifier. Unary
// operators are allowed in prefix position only, binary ones elsewhere.
func (t *tokenizer) addNamedOperator(o op.Operator, lx Lexeme) error {
	if (o.Arity() == 1) != t.prefixPosition() {
		return &SyntaxError{
			Span: lx.Span,
			Msg:  fmt.Sprintf("operator %s not allowed here", lx.Text),
		}
	}
	t.emit(yard.Op[Operand, *Call, Operator](Operator{Operator: o, Span: lx.Span}), lx.Span)
	t.prev = OperatorTok
	return nil
}

// prefixPosition is a predicate: is an operator at the current position a
// prefix operator? This includes the argument of a call without parentheses.
func (t *tokenizer) prefixPosition() bool {
	if n := len(t.expr.Infix); n > 0 && t.expr.Infix[n-1].Kind == yard.FunctionToken {
		return true
	}
	switch t.prev {
	case 0, OperatorTok, LeftParenTok, CommaTok:
		return true
	}
	return false
}
