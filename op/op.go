/*
Package op contains predefined operator catalogs for package yard.

The precedence values are based on the JavaScript definition, see
https://developer.mozilla.org/en-US/docs/Web/JavaScript/Reference/Operators/Operator_precedence.
Catalogs are reference implementations; clients are free to bring their own
operator types.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package op

import (
	"github.com/npillmayer/yard"
)

// Operator is an operator which knows its number of operands and its
// textual representation. All operators of this package implement it,
// therefore Operator may serve as the type parameter for token sequences
// mixing operators of different catalogs.
type Operator interface {
	yard.Operator
	Arity() int
	String() string
}

// Lookup finds a catalog operator for a symbol. If prefix is true, only
// prefix (unary) operators will be considered, otherwise only binary ones.
func Lookup(symbol string, prefix bool) (Operator, bool) {
	var table map[string]Operator
	if prefix {
		table = prefixOps
	} else {
		table = infixOps
	}
	o, ok := table[symbol]
	return o, ok
}

var infixOps = map[string]Operator{
	"+":   Add,
	"-":   Sub,
	"*":   Mul,
	"/":   Div,
	"%":   Mod,
	"^":   Exponent,
	"**":  Exponent,
	"<":   Lt,
	"<=":  Le,
	">":   Gt,
	">=":  Ge,
	"==":  Eq,
	"!=":  Ne,
	"xor": Xor,
	"&&":  And,
	"and": And,
	"||":  Or,
	"or":  Or,
}

var prefixOps = map[string]Operator{
	"-":   Neg,
	"!":   Not,
	"not": Not,
}
