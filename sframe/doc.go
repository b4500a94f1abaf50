/*
Package sframe implements dynamic scopes for variables.

Scopes and memory frames collapse to one: there is no static scope tree,
as scopes are dynamically created for groups (begingroup … endgroup).
Lookups walk from the innermost frame outwards to the global frame.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sframe

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'yard.runtime'
func tracer() tracing.Trace {
	return tracing.Select("yard.runtime")
}
