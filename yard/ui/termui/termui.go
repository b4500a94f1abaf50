// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'yard.cli'.
func trace() tracing.Trace {
	return tracing.Select("yard.cli")
}

// Formatter writes items to an output, returning true if it knew how to
// format item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors, tables and everything printable.
type DefaultFormatter struct{}

// Format is part of interface Formatter.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = fmt.Fprintf(w, "▶ %s\n", t)
	case error:
		_, err = fmt.Fprintf(w, "%s %s\n", prtxt.FgRed.Sprint("✗"), t.Error())
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = fmt.Fprintf(w, "%s\n", t.Render())
		}
	case fmt.Stringer:
		_, err = fmt.Fprintf(w, "▶ %s\n", t.String())
	default:
		_, err = fmt.Fprintf(w, "▶ object of type %T\n", t)
	}
	return err == nil, err
}
