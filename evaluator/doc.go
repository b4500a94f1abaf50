/*
Package evaluator evaluates textual expressions.

An Interpreter runs source text through a pipeline: the text is tokenized
(package grammar), validated (package validate), converted to postfix
(package yard) and finally evaluated on an expression stack (package
corelang) by an Evaluator.

Variables live in dynamic scopes (package sframe). Groups open a new
scope; variables assigned within a group are visible in the group only if
they have not been defined in an outer scope before.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'yard.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("yard.evaluator")
}
