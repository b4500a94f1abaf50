package corelang

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/yard/op"
	"github.com/shopspring/decimal"
)

/*
----------------------------------------------------------------------

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

----------------------------------------------------------------------

 * This module implements a stack of values. It is used for
 * evaluating postfix expressions: operands are pushed, operators
 * replace their operands on the stack with their result.
 *
 * Numeric operands are decimals, so sums and products are exact.
 * Division, and powers with negative exponent, are rounded to the
 * stack's precision. Powers with fractional exponent and the
 * trigonometric functions are calculated in floating point.

*/

// ErrDivisionByZero is returned by division and modulo with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// DefaultPrecision is the number of decimal places division results are
// rounded to, unless changed with SetPrecision.
const DefaultPrecision = 16

// === Expression Stack ======================================================

// ExprStack implements a stack of numeric or boolean values.
// Various mathematical operations may be performed on the stack values.
//
// An ExprStack is not safe for concurrent use.
type ExprStack struct {
	stack     *linkedliststack.Stack // a stack of values
	precision int32                  // decimal places for division
}

// NewExprStack creates
// a new expression stack. It is fully initialized and empty.
func NewExprStack() *ExprStack {
	return &ExprStack{
		stack:     linkedliststack.New(), // stack of interface{}
		precision: DefaultPrecision,
	}
}

// SetPrecision sets the number of decimal places division results are
// rounded to.
func (es *ExprStack) SetPrecision(places int32) *ExprStack {
	if places < 0 {
		places = 0
	}
	es.precision = places
	return es
}

// Precision returns the number of decimal places for division results.
func (es *ExprStack) Precision() int32 {
	return es.precision
}

// Top is part of
// stack functionality. Will return an undefined value if stack is empty.
func (es *ExprStack) Top() Value {
	tos, ok := es.stack.Peek()
	if !ok {
		return Value{}
	}
	return tos.(Value)
}

// Pop is part of
// stack functionality.
func (es *ExprStack) Pop() (Value, bool) {
	tos, ok := es.stack.Pop()
	if !ok {
		return Value{}, false
	}
	return tos.(Value), true
}

// Push is part of
// stack functionality.
func (es *ExprStack) Push(v Value) *ExprStack {
	tracer().Debugf("pushing %s", v)
	es.stack.Push(v)
	return es
}

// IsEmpty is part of
// stack functionality.
func (es *ExprStack) IsEmpty() bool {
	return es.stack.Empty()
}

// Size is part of
// stack functionality.
func (es *ExprStack) Size() int {
	return es.stack.Size()
}

// Clear removes all values from the stack.
func (es *ExprStack) Clear() {
	es.stack.Clear()
}

// Dump is an
// internal helper: dump expression stack. This is printed to the trace
// with level=DEBUG.
func (es *ExprStack) Dump() {
	tracer().P("size", es.Size()).Debugf("Expression Stack, TOS first:")
	it := es.stack.Iterator()
	for it.Next() {
		tracer().P("#", it.Index()).Debugf("    %s", it.Value().(Value))
	}
}

// CheckOperands checks
// the operands on the stack for an operation: there have to be at least n
// operands, the topmost n of them of type t.
func (es *ExprStack) CheckOperands(n int, t ValueType, op string) error {
	if n <= 0 {
		return fmt.Errorf("internal error: illegal count for stack operands")
	}
	if es.Size() < n {
		return fmt.Errorf("attempt to %s %d operand(s), but %d on stack", op, n, es.Size())
	}
	it := es.stack.Iterator()
	for i := 0; i < n && it.Next(); i++ {
		if v := it.Value().(Value); v.Type() != t {
			return fmt.Errorf("cannot %s operand of type %s", op, v.Type())
		}
	}
	return nil
}

// pop2 pops 2ndOS and TOS, in this order.
func (es *ExprStack) pop2() (Value, Value) {
	e2, _ := es.Pop()
	e1, _ := es.Pop()
	return e1, e2
}

// === Arithmetic Operations =================================================

// AddTOS2OS adds
// TOS and 2ndOS.
func (es *ExprStack) AddTOS2OS() error {
	if err := es.CheckOperands(2, NumericType, "add"); err != nil {
		return err
	}
	e1, e2 := es.pop2()
	e := FromDecimal(e1.n.Add(e2.n))
	es.Push(e)
	tracer().P("op", "ADD").Debugf("result %s", e)
	return nil
}

// SubtractTOS2OS substracts
// TOS from 2ndOS.
func (es *ExprStack) SubtractTOS2OS() error {
	if err := es.CheckOperands(2, NumericType, "subtract"); err != nil {
		return err
	}
	e1, e2 := es.pop2()
	e := FromDecimal(e1.n.Sub(e2.n))
	es.Push(e)
	tracer().P("op", "SUB").Debugf("result %s", e)
	return nil
}

// MultiplyTOS2OS multiplies
// TOS and 2ndOS.
func (es *ExprStack) MultiplyTOS2OS() error {
	if err := es.CheckOperands(2, NumericType, "multiply"); err != nil {
		return err
	}
	e1, e2 := es.pop2()
	e := FromDecimal(e1.n.Mul(e2.n))
	es.Push(e)
	tracer().P("op", "MUL").Debugf("result = %s", e)
	return nil
}

// DivideTOS2OS divides
// 2ndOS by TOS. Divisor must be non-0.
func (es *ExprStack) DivideTOS2OS() error {
	if err := es.CheckOperands(2, NumericType, "divide"); err != nil {
		return err
	}
	if es.Top().n.IsZero() {
		return ErrDivisionByZero
	}
	e1, e2 := es.pop2()
	e := FromDecimal(e1.n.DivRound(e2.n, es.precision))
	es.Push(e)
	tracer().P("op", "DIV").Debugf("result = %s", e)
	return nil
}

// ModuloTOS2OS calculates
// 2ndOS modulo TOS. The result has the sign of 2ndOS.
func (es *ExprStack) ModuloTOS2OS() error {
	if err := es.CheckOperands(2, NumericType, "take modulo of"); err != nil {
		return err
	}
	if es.Top().n.IsZero() {
		return ErrDivisionByZero
	}
	e1, e2 := es.pop2()
	e := FromDecimal(e1.n.Mod(e2.n))
	es.Push(e)
	tracer().P("op", "MOD").Debugf("result = %s", e)
	return nil
}

// PowerTOS2OS raises
// 2ndOS to the power of TOS.
func (es *ExprStack) PowerTOS2OS() error {
	if err := es.CheckOperands(2, NumericType, "exponentiate"); err != nil {
		return err
	}
	e1, e2 := es.pop2()
	p, err := Power(e1.n, e2.n, es.precision)
	if err != nil {
		return err
	}
	e := FromDecimal(p)
	es.Push(e)
	tracer().P("op", "POW").Debugf("result = %s", e)
	return nil
}

// NegateTOS negates TOS.
func (es *ExprStack) NegateTOS() error {
	if err := es.CheckOperands(1, NumericType, "negate"); err != nil {
		return err
	}
	e, _ := es.Pop()
	e = FromDecimal(e.n.Neg())
	es.Push(e)
	tracer().P("op", "NEG").Debugf("result = %s", e)
	return nil
}

// Power calculates base^exp. Integer exponents are calculated exactly,
// except for the final division for negative exponents, which is rounded to
// places. Fractional exponents are calculated in floating point.
//
// Exact results are limited to about MaxPowerDigits digits; larger powers
// are rejected with an error.
func Power(base, exp decimal.Decimal, places int32) (decimal.Decimal, error) {
	if exp.Equal(exp.Truncate(0)) {
		one := decimal.New(1, 0)
		switch {
		case base.Equal(one), exp.IsZero():
			return one, nil
		case base.IsZero() && exp.Sign() > 0:
			return decimal.Zero, nil
		case base.Equal(one.Neg()):
			if exp.Mod(decimal.New(2, 0)).IsZero() {
				return one, nil
			}
			return one.Neg(), nil
		}
		if !powerInRange(base, exp) {
			return decimal.Zero, fmt.Errorf("%s ^ %s exceeds the supported range", base, exp)
		}
		if exp.Sign() >= 0 {
			return base.Pow(exp), nil
		}
		if base.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return decimal.New(1, 0).DivRound(base.Pow(exp.Neg()), places), nil
	}
	b, _ := base.Float64()
	e, _ := exp.Float64()
	r := math.Pow(b, e)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return decimal.Zero, fmt.Errorf("%s ^ %s is not a real number", base, exp)
	}
	return decimal.NewFromFloat(r), nil
}

// MaxPowerDigits bounds the estimated number of digits of exact powers.
const MaxPowerDigits = 100000

// powerInRange estimates the size of base^exp by the number of digits of
// base's coefficient times |exp|.
func powerInRange(base, exp decimal.Decimal) bool {
	if exp.Abs().GreaterThan(decimal.New(math.MaxInt32, 0)) {
		return false
	}
	digits := int64(len(new(big.Int).Abs(base.Coefficient()).String()))
	return digits*exp.Abs().IntPart() <= MaxPowerDigits
}

// === Logical Operations ====================================================

// NotTOS negates a boolean TOS.
func (es *ExprStack) NotTOS() error {
	if err := es.CheckOperands(1, BooleanType, "negate"); err != nil {
		return err
	}
	e, _ := es.Pop()
	e = FromBool(!e.b)
	es.Push(e)
	tracer().P("op", "NOT").Debugf("result = %s", e)
	return nil
}

// CompareTOS2OS compares
// 2ndOS with TOS. Numeric operands may be compared with any comparison,
// boolean operands only for (in-)equality.
func (es *ExprStack) CompareTOS2OS(cmp op.Logic) error {
	if !cmp.IsComparison() {
		return fmt.Errorf("internal error: %s is not a comparison", cmp)
	}
	t := es.Top().Type()
	if t == BooleanType && cmp != op.Eq && cmp != op.Ne {
		t = NumericType // forces a type error
	}
	if err := es.CheckOperands(2, t, "compare"); err != nil {
		return err
	}
	e1, e2 := es.pop2()
	var r bool
	switch cmp {
	case op.Eq:
		r = e1.Equal(e2)
	case op.Ne:
		r = !e1.Equal(e2)
	case op.Lt:
		r = e1.n.LessThan(e2.n)
	case op.Le:
		r = e1.n.LessThanOrEqual(e2.n)
	case op.Gt:
		r = e1.n.GreaterThan(e2.n)
	case op.Ge:
		r = e1.n.GreaterThanOrEqual(e2.n)
	}
	e := FromBool(r)
	es.Push(e)
	tracer().P("op", cmp.String()).Debugf("result = %s", e)
	return nil
}

// LogicTOS2OS combines
// the boolean values 2ndOS and TOS with a binary boolean operator.
func (es *ExprStack) LogicTOS2OS(lop op.Logic) error {
	if lop != op.And && lop != op.Or && lop != op.Xor {
		return fmt.Errorf("internal error: %s is not a binary boolean operator", lop)
	}
	if err := es.CheckOperands(2, BooleanType, lop.String()); err != nil {
		return err
	}
	e1, e2 := es.pop2()
	var r bool
	switch lop {
	case op.And:
		r = e1.b && e2.b
	case op.Or:
		r = e1.b || e2.b
	case op.Xor:
		r = e1.b != e2.b
	}
	e := FromBool(r)
	es.Push(e)
	tracer().P("op", lop.String()).Debugf("result = %s", e)
	return nil
}
