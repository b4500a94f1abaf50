package evaluator

import (
	"fmt"

	"github.com/npillmayer/yard"
	"github.com/npillmayer/yard/corelang"
	"github.com/npillmayer/yard/grammar"
	"github.com/npillmayer/yard/op"
	"github.com/npillmayer/yard/sframe"
)

// Postfix is a postfix expression produced from tokenized source text.
type Postfix = []yard.OutputToken[grammar.Operand, *grammar.Call, grammar.Operator]

// Evaluator is a runtime environment for evaluating postfix expressions.
//
// An Evaluator is not safe for concurrent use.
type Evaluator struct {
	Scopes *sframe.ScopeFrameTree[corelang.Value] // variables
	Lang   *corelang.Language                     // functions
	stack  *corelang.ExprStack
}

// NewEvaluator creates an evaluating runtime environment.
// It is fully initialized and has no variables. If lang is nil, the
// standard language will be loaded.
func NewEvaluator(lang *corelang.Language) *Evaluator {
	if lang == nil {
		lang = corelang.LoadStandardLanguage()
	}
	return &Evaluator{
		Scopes: sframe.NewScopeFrameTree[corelang.Value](),
		Lang:   lang,
		stack:  corelang.NewExprStack(),
	}
}

// SetPrecision sets the number of decimal places for division results,
// both for operators and functions of the evaluator's language.
func (ev *Evaluator) SetPrecision(places int32) {
	ev.stack.SetPrecision(places)
	ev.Lang.SetPrecision(places)
}

// Evaluate evaluates a postfix expression. Errors are of type *Error.
func (ev *Evaluator) Evaluate(postfix Postfix) (corelang.Value, error) {
	if len(postfix) == 0 {
		return corelang.Value{}, ErrNoExpression
	}
	ev.stack.Clear()
	for _, token := range postfix {
		var err error
		var pos int
		switch token.Kind {
		case yard.ValueToken:
			pos = token.Value.Span.From
			err = ev.push(token.Value)
		case yard.FunctionToken:
			pos = token.Func.Span.From
			err = ev.call(token.Func)
		case yard.OperatorToken:
			pos = token.Op.Span.From
			err = ev.apply(token.Op)
		default:
			err = fmt.Errorf("unexpected %s in postfix expression", token.Kind)
		}
		if err != nil {
			tracer().Debugf("evaluation of %v failed: %v", token, err)
			return corelang.Value{}, located(pos, err)
		}
	}
	if ev.stack.Size() != 1 {
		ev.stack.Dump()
		return corelang.Value{}, &Error{
			Pos: endOf(postfix),
			Msg: fmt.Sprintf("malformed expression leaves %d values", ev.stack.Size()),
		}
	}
	r, _ := ev.stack.Pop()
	return r, nil
}

func (ev *Evaluator) push(operand grammar.Operand) error {
	if !operand.IsVariable() {
		ev.stack.Push(operand.Literal)
		return nil
	}
	v, _, ok := ev.Scopes.Resolve(operand.Name)
	if !ok {
		return fmt.Errorf("undefined variable %s", operand.Name)
	} else if !v.IsKnown() {
		return fmt.Errorf("variable %s has no value", operand.Name)
	}
	tracer().P("var", operand.Name).Debugf("resolved to %s", v)
	ev.stack.Push(v)
	return nil
}

func (ev *Evaluator) call(c *grammar.Call) error {
	argc := c.Argc
	if argc < 0 { // call without argument list
		f, ok := ev.Lang.Lookup(c.Name)
		if !ok {
			return fmt.Errorf("function not implemented: %s", c.Name)
		}
		if argc = f.Arity; argc == corelang.Variadic {
			argc = 1
		}
	}
	args, err := ev.popArgs(argc, c.Name)
	if err != nil {
		return err
	}
	r, err := ev.Lang.Call(c.Name, args)
	if err != nil {
		return err
	}
	ev.stack.Push(r)
	return nil
}

func (ev *Evaluator) popArgs(n int, fun string) ([]corelang.Value, error) {
	if ev.stack.Size() < n {
		return nil, fmt.Errorf("%s needs %d argument(s), but %d on stack", fun, n, ev.stack.Size())
	}
	args := make([]corelang.Value, n)
	for i := n - 1; i >= 0; i-- {
		args[i], _ = ev.stack.Pop()
	}
	return args, nil
}

func (ev *Evaluator) apply(o grammar.Operator) error {
	switch x := o.Operator.(type) {
	case op.Math:
		switch x {
		case op.Add:
			return ev.stack.AddTOS2OS()
		case op.Sub:
			return ev.stack.SubtractTOS2OS()
		case op.Mul:
			return ev.stack.MultiplyTOS2OS()
		case op.Div:
			return ev.stack.DivideTOS2OS()
		case op.Mod:
			return ev.stack.ModuloTOS2OS()
		case op.Exponent:
			return ev.stack.PowerTOS2OS()
		case op.Neg:
			return ev.stack.NegateTOS()
		}
	case op.Logic:
		if x == op.Not {
			return ev.stack.NotTOS()
		} else if x.IsComparison() {
			return ev.stack.CompareTOS2OS(x)
		}
		return ev.stack.LogicTOS2OS(x)
	case op.Custom: // delegated to a function of the same name
		args, err := ev.popArgs(x.Arity(), x.Name)
		if err != nil {
			return err
		}
		r, err := ev.Lang.Call(x.Name, args)
		if err != nil {
			return err
		}
		ev.stack.Push(r)
		return nil
	}
	return fmt.Errorf("operator not implemented: %s", o)
}

func endOf(postfix Postfix) int {
	end := 0
	for _, token := range postfix {
		var s grammar.Span
		switch token.Kind {
		case yard.ValueToken:
			s = token.Value.Span
		case yard.FunctionToken:
			s = token.Func.Span
		case yard.OperatorToken:
			s = token.Op.Span
		}
		if s.To > end {
			end = s.To
		}
	}
	return end
}
