package op

import "fmt"

// Logic is the catalog of comparison and boolean operators.
type Logic uint8

// Comparison and boolean operators. Not is a prefix operator.
const (
	Lt Logic = iota + 1
	Le
	Gt
	Ge
	Eq
	Ne
	Xor
	And
	Or
	Not
)

// Precedence is part of interface yard.Operator.
func (l Logic) Precedence() uint {
	switch l {
	case Lt, Le, Gt, Ge:
		return 9
	case Eq, Ne:
		return 8
	case Xor:
		return 6
	case And:
		return 4
	case Or:
		return 3
	case Not:
		return 14
	}
	return 0
}

// IsLeftAssociative is part of interface yard.Operator.
func (l Logic) IsLeftAssociative() bool {
	return l != Not
}

// Arity returns the number of operands.
func (l Logic) Arity() int {
	if l == Not {
		return 1
	}
	return 2
}

// IsComparison is a predicate: does l compare two operands?
func (l Logic) IsComparison() bool {
	return l >= Lt && l <= Ne
}

func (l Logic) String() string {
	switch l {
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Xor:
		return "xor"
	case And:
		return "and"
	case Or:
		return "or"
	case Not:
		return "not"
	}
	return fmt.Sprintf("Logic(%d)", uint8(l))
}
