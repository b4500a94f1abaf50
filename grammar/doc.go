/*
Package grammar tokenizes textual infix expressions into token sequences
for package yard.

Expressions consist of numbers, the literals true and false, identifiers,
function calls, parentheses and operators from package op:

    + - * / % ^ ** < <= > >= == != && || and or xor ! not

A minus, '!' and 'not' in prefix position (at the start of an expression,
after an operator, an opening parenthesis or an argument separator) are
prefix operators. Identifiers followed by an opening parenthesis are
function calls, as are identifiers which name a known function.

Every token records its location in the source text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yard.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("yard.grammar")
}
