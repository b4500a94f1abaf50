package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/yard"
	"github.com/npillmayer/yard/corelang"
	"github.com/npillmayer/yard/evaluator"
	"github.com/npillmayer/yard/grammar"
	"github.com/npillmayer/yard/sframe"
	"github.com/npillmayer/yard/yard/ui/termui"
	"github.com/pkg/errors"
)

// Formatter formats values and located errors for the terminal.
type Formatter struct {
	termui.DefaultFormatter
	Source string // source text of the current statement
}

// Format is part of interface termui.Formatter.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format called for item %T", item)
	switch t := item.(type) {
	case corelang.Value:
		_, err := fmt.Fprintf(w, "▶ %s : %s\n", t, t.Type())
		return err == nil, err
	case error:
		var eerr *evaluator.Error
		if errors.As(t, &eerr) && f.Source != "" {
			fmt.Fprintf(w, "  %s\n  %s^\n", f.Source, strings.Repeat(" ", eerr.Pos))
		}
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables for various types -------------------------------------

func postfixAsTable(expr *grammar.Expression, postfix evaluator.Postfix) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Postfix of %q", expr.Source)
	tw.AppendHeader(table.Row{"#", "token", "kind", "source"})
	for i, token := range postfix {
		var span grammar.Span
		detail := ""
		switch token.Kind {
		case yard.ValueToken:
			span = token.Value.Span
			if token.Value.IsVariable() {
				detail = " (variable)"
			}
		case yard.FunctionToken:
			span = token.Func.Span
			if token.Func.Argc >= 0 {
				detail = fmt.Sprintf(" (%d args)", token.Func.Argc)
			}
		case yard.OperatorToken:
			span = token.Op.Span
			detail = fmt.Sprintf(" (prec %d)", token.Op.Precedence())
		}
		tw.AppendRow(table.Row{
			i,
			token.String(),
			token.Kind.String() + detail,
			excerpt(expr.Source, span) + " @ " + span.String(),
		})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func variablesAsTable(scopes *sframe.ScopeFrameTree[corelang.Value], names []string) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("Variables")
	tw.AppendHeader(table.Row{"name", "value", "type", "scope"})
	for _, name := range names {
		v, sc, ok := scopes.Resolve(name)
		if !ok {
			tw.AppendRow(table.Row{name, "–", "<undefined>", "–"})
			continue
		}
		tw.AppendRow(table.Row{name, v.String(), v.Type().String(), sc.Name})
	}
	tw.SetStyle(table.StyleLight)
	return tw
}

func excerpt(src string, span grammar.Span) string {
	if span.From < 0 || span.To > len(src) || span.From >= span.To {
		return ""
	}
	return src[span.From:span.To]
}
