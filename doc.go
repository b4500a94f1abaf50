/*
Package yard converts infix expressions into postfix (Reverse Polish) order,
using a generalized version of Dijkstra's Shunting-Yard algorithm.

The package does not scan text. Clients hand in a sequence of already lexed
input tokens: values, operators, functions, parentheses and argument separators.
Tokens are generic over a value type V, a function-identifier type F and an
operator type O. The operator type has to implement interface Operator, which
reports a precedence and an associativity.

	infix := yard.Infix[int, string, op.Math]{}.
		Function("max").LParen().Value(2).Separator().Value(3).RParen().
		Op(op.Mul).Value(4)
	postfix, err := yard.ToPostfix(infix)   // 2 3 max 4 *

Function calls may omit their parentheses. A bare call followed by a single
value is converted as if the argument had been parenthesized. For bare calls
with more than one argument, a trailing operator binds to the last argument's
sub-expression rather than to the function's result; no attempt is made to
disambiguate this.

The conversion engine reports unbalanced parentheses only. Checking a token
sequence for well-formedness is the job of package validate, which should be
run before conversion if input comes from an untrusted source.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package yard

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'yard'.
func tracer() tracing.Trace {
	return tracing.Select("yard")
}
