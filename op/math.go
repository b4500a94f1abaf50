package op

import "fmt"

// Math is the catalog of arithmetic operators.
type Math uint8

// Arithmetic operators. Neg is the unary minus.
const (
	Add Math = iota + 1
	Sub
	Mul
	Div
	Mod
	Exponent
	Neg
)

// Precedence is part of interface yard.Operator.
func (m Math) Precedence() uint {
	switch m {
	case Add, Sub:
		return 11
	case Mul, Div, Mod:
		return 12
	case Exponent:
		return 13
	case Neg:
		return 14
	}
	return 0
}

// IsLeftAssociative is part of interface yard.Operator.
func (m Math) IsLeftAssociative() bool {
	return m != Exponent && m != Neg
}

// Arity returns the number of operands.
func (m Math) Arity() int {
	if m == Neg {
		return 1
	}
	return 2
}

func (m Math) String() string {
	switch m {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Exponent:
		return "^"
	case Neg:
		return "neg"
	}
	return fmt.Sprintf("Math(%d)", uint8(m))
}
