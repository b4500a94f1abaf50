/*
Package validate checks infix token sequences for well-formedness before they
are handed to yard.ToPostfix.

Validation is a small finite state machine over token kinds:

	expression   := Value after_value
	             |  LeftParen expression
	             |  Function fn_args_start
	after_value  := Operator expression
	             |  RightParen after_value
	             |  ArgSeparator expression      (directly inside an argument list)
	fn_args_start:= LeftParen expression

Argument separators are legal only at the top level of a function's argument
list, not inside a parenthesized sub-expression of one of the arguments.
Validation is stricter than conversion: functions have to be followed by a
parenthesized argument list, even though yard.ToPostfix accepts single-argument
calls without parentheses.

Validation stops at the first invalid token. It never modifies the input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package validate

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'yard.validate'.
func tracer() tracing.Trace {
	return tracing.Select("yard.validate")
}
