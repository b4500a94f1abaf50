package evaluator

import (
	stderrors "errors"

	"github.com/npillmayer/yard"
	"github.com/npillmayer/yard/corelang"
	"github.com/npillmayer/yard/grammar"
	"github.com/npillmayer/yard/validate"
	"github.com/pkg/errors"
)

// Interpreter interprets expressions given as source text.
//
// An Interpreter is not safe for concurrent use.
type Interpreter struct {
	Validate  bool // validate infix token sequences before conversion
	evaluator *Evaluator
}

// NewInterpreter creates a new interpreter with validation switched on.
// If lang is nil, the standard language will be loaded.
func NewInterpreter(lang *corelang.Language) *Interpreter {
	return &Interpreter{
		Validate:  true,
		evaluator: NewEvaluator(lang),
	}
}

// Evaluator returns the interpreter's evaluator.
func (intp *Interpreter) Evaluator() *Evaluator {
	return intp.evaluator
}

func isPrefix(o grammar.Operator) bool {
	return o.Arity() == 1
}

// Parse tokenizes, validates and converts src. Errors are wrapped; use
// errors.As to find an *Error.
func (intp *Interpreter) Parse(src string) (*grammar.Expression, Postfix, error) {
	expr, err := grammar.TokenizeWith(src, intp.evaluator.Lang)
	if err != nil {
		var serr *grammar.SyntaxError
		if stderrors.As(err, &serr) {
			err = &Error{Pos: serr.Span.From, Msg: serr.Msg, Err: err}
		}
		return nil, nil, errors.Wrap(err, "tokenize")
	}
	if len(expr.Infix) == 0 {
		return expr, nil, ErrNoExpression
	}
	if intp.Validate {
		if err = validate.Infix(expr.Infix, validate.WithPrefixOperators(isPrefix)); err != nil {
			return expr, nil, errors.Wrap(locate(expr, err), "validate")
		}
	}
	postfix, err := yard.ToPostfix(expr.Infix)
	if err != nil {
		return expr, nil, errors.Wrap(locate(expr, err), "convert")
	}
	tracer().Debugf("postfix = %v", postfix)
	return expr, postfix, nil
}

// locate attaches a source position to validation and conversion errors.
func locate(expr *grammar.Expression, err error) error {
	var invalid *validate.InvalidTokenError[grammar.Operand, *grammar.Call, grammar.Operator]
	var mismatch *yard.ParenMismatchError
	switch {
	case stderrors.As(err, &invalid):
		return located(expr.Spans[invalid.Pos].From, err)
	case stderrors.As(err, &mismatch):
		return located(expr.Spans[mismatch.Pos].From, err)
	case stderrors.Is(err, validate.ErrParenMismatch), stderrors.Is(err, validate.ErrIncomplete):
		return located(len(expr.Source), err)
	}
	return err
}

// Postfix converts src to postfix.
func (intp *Interpreter) Postfix(src string) (Postfix, error) {
	_, postfix, err := intp.Parse(src)
	return postfix, err
}

// Interpret evaluates src.
func (intp *Interpreter) Interpret(src string) (corelang.Value, error) {
	_, postfix, err := intp.Parse(src)
	if err != nil {
		return corelang.Value{}, err
	}
	v, err := intp.evaluator.Evaluate(postfix)
	if err != nil {
		return v, errors.Wrap(err, "evaluate")
	}
	return v, nil
}

// Assign evaluates src and assigns the result to variable name, in the
// innermost scope defining name, or in global scope.
func (intp *Interpreter) Assign(name, src string) (corelang.Value, error) {
	v, err := intp.Interpret(src)
	if err != nil {
		return v, err
	}
	sc := intp.evaluator.Scopes.Set(name, v)
	tracer().P("var", name).Debugf("%s := %s in [%s]", name, v, sc.Name)
	return v, nil
}

// Save declares a variable local to the current group, initialized to v.
func (intp *Interpreter) Save(name string, v corelang.Value) {
	intp.evaluator.Scopes.Define(name, v)
}

// Variable returns the current value of a variable.
func (intp *Interpreter) Variable(name string) (corelang.Value, bool) {
	v, _, ok := intp.evaluator.Scopes.Resolve(name)
	return v, ok
}

// Begingroup opens a new scope for variables. Clients may supply a name
// for the group, otherwise it will be set to "group".
func (intp *Interpreter) Begingroup(name string) {
	if name == "" {
		name = "group"
	}
	intp.evaluator.Scopes.PushNewFrame(name)
}

// Endgroup closes the innermost group. Variables saved in the group are
// dropped.
func (intp *Interpreter) Endgroup() error {
	_, err := intp.evaluator.Scopes.PopFrame()
	return err
}
