/*
Package corelang implements the runtime core for evaluating arithmetic and
logical expressions, as produced by the shunting-yard converter of package
yard.

Values

Values are either numeric or boolean. Numeric values are exact decimals
(github.com/shopspring/decimal), with division rounded to a configurable
precision.

Expression Stack

Postfix expressions are evaluated on an ExprStack. Arithmetic and logical
operations take their operands from the top of the stack and push their
result back.

Lua Scripting

Functions not defined by the language core are delegated to a Lua
scripting subsystem, if one is attached. Lua functions receive numeric
and boolean arguments and return exactly one value.

For further information please refer to types Language and Scripting.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package corelang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yard.corelang'.
func tracer() tracing.Trace {
	return tracing.Select("yard.corelang")
}
