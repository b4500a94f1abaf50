package cli

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/npillmayer/yard/corelang"
	"github.com/npillmayer/yard/evaluator"
	"github.com/pkg/errors"
)

// statements of the interpreter, besides plain expressions
var statements = []string{"postfix", "let", "save", "begingroup", "endgroup", "show"}

var helpText = `
Statements of the interpreter:

  <expr>                 : evaluate an infix expression
  postfix <expr>         : display the postfix form of an expression
  let <var> = <expr>     : assign the value of an expression to a variable
  save <var>             : make a variable local to the current group
  begingroup [name]      : open a group for local variables
  endgroup               : close the innermost group
  show [var]             : display a variable or all visible variables

`

var identifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// yardIntpr interprets statements, either from the command line or
// interactively from the REPL.
type yardIntpr struct {
	*evaluator.Interpreter
	stdout, stderr io.Writer
	scripting      *corelang.Scripting // nil if no script has been loaded
	postfixOnly    bool                // print postfix instead of evaluating
}

// Close frees the Lua state, if any.
func (yintp *yardIntpr) Close() {
	if yintp.scripting != nil {
		yintp.scripting.Close()
		yintp.scripting = nil
	}
}

// batch executes expressions and returns the number of failed ones.
func (yintp *yardIntpr) batch(exprs []string) int {
	errcnt := 0
	for _, src := range exprs {
		src = strings.TrimSpace(src)
		if err := SignalContext.Err(); err != nil {
			tracer().Infof("batch interrupted")
			return errcnt + 1
		}
		var err error
		if yintp.postfixOnly {
			err = yintp.showPostfix(src)
		} else {
			err = yintp.execute(src)
		}
		if err != nil {
			yintp.report(src, err)
			errcnt++
		}
	}
	return errcnt
}

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (yintp *yardIntpr) InterpretCommand(line string) {
	if err := yintp.execute(line); err != nil {
		yintp.report(line, err)
	}
}

// execute dispatches on the first word of a statement.
func (yintp *yardIntpr) execute(line string) error {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	tracer().P("stmt", cmd).Debugf("execute '%s'", line)
	switch cmd {
	case "postfix":
		return yintp.showPostfix(rest)
	case "let":
		name, src, ok := strings.Cut(rest, "=")
		name = strings.TrimSpace(name)
		if !ok || !identifier.MatchString(name) {
			return errors.New("usage: let <var> = <expr>")
		}
		if yintp.Evaluator().Lang.IsFunction(name) {
			return errors.Errorf("cannot assign to function %s", name)
		}
		v, err := yintp.Assign(name, src)
		if err != nil {
			return err
		}
		return yintp.print(v, "")
	case "save":
		if !identifier.MatchString(rest) {
			return errors.New("usage: save <var>")
		}
		yintp.Save(rest, corelang.Value{})
		return nil
	case "begingroup":
		yintp.Begingroup(rest)
		return nil
	case "endgroup":
		return yintp.Endgroup()
	case "show":
		return yintp.show(rest)
	}
	v, err := yintp.Interpret(line)
	if err != nil {
		return err
	}
	return yintp.print(v, "")
}

func (yintp *yardIntpr) showPostfix(src string) error {
	expr, postfix, err := yintp.Parse(src)
	if err != nil {
		return err
	}
	return yintp.print(postfixAsTable(expr, postfix), "")
}

func (yintp *yardIntpr) show(name string) error {
	scopes := yintp.Evaluator().Scopes
	var names []string
	if name != "" {
		names = []string{name}
	} else {
		seen := make(map[string]bool)
		for sc := scopes.Current(); sc != nil; sc = sc.Parent {
			for _, n := range sc.Names() {
				if !seen[n] {
					seen[n] = true
					names = append(names, n)
				}
			}
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		return yintp.print("no variables defined", "")
	}
	return yintp.print(variablesAsTable(scopes, names), "")
}

func (yintp *yardIntpr) print(item interface{}, src string) error {
	_, err := Formatter{Source: src}.Format(item, yintp.stdout)
	return err
}

// report writes an error to stderr, marking its position within src if
// the error is located.
func (yintp *yardIntpr) report(src string, err error) {
	tracer().Infof("%s: %v", src, err)
	src = strings.TrimSpace(src)
	if cmd, rest, ok := strings.Cut(src, " "); ok {
		switch cmd { // errors are located relative to the expression
		case "postfix":
			src = strings.TrimSpace(rest)
		case "let":
			if _, rest, ok = strings.Cut(rest, "="); ok {
				src = rest
			}
		}
	}
	if _, ferr := (Formatter{Source: src}).Format(err, yintp.stderr); ferr != nil {
		fmt.Fprintln(yintp.stderr, err.Error())
	}
}
