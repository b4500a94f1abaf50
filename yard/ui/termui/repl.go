package termui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
)

var welcomeMessage = "Welcome to %s [V%s]"
var stdprompt = prtxt.FgGreen.Sprint("%s> ")
var editmode string = "emacs"

// BaseREPL reads lines with readline, handles the REPL's own commands and
// hands everything else to an interpreter.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	toolname    string
	version     string
}

// NewBaseREPL creates a REPL for a tool. Input history goes to histfile, or
// to a temporary file if histfile is empty. statements are offered for
// completion.
func NewBaseREPL(toolname, version, histfile string, statements ...string) *BaseREPL {
	return &BaseREPL{
		readline: newReadline(toolname, histfile, statements),
		toolname: toolname,
		version:  version,
	}
}

// REPLCommandInterpreter interprets lines which are not REPL commands.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

func newReadline(toolname, histfile string, statements []string) *readline.Instance {
	if histfile == "" {
		histfile = filepath.Join(os.TempDir(), toolname+"-repl-history.tmp")
	} else if err := os.MkdirAll(filepath.Dir(histfile), 0755); err != nil {
		trace().Errorf("cannot create directory for history file: %v", err)
	}
	prompt := fmt.Sprintf(stdprompt, toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        replCompleter(statements),
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

var replCommands = [][2]string{
	{"help", "print this message"},
	{"bye", "quit"},
	{"mode [vi|emacs]", "display or set the editing mode"},
	{"setprompt [prompt]", "set the prompt, or reset it to the default"},
}

// displayCommands lists the REPL's own commands.
func (repl *BaseREPL) displayCommands(out io.Writer) {
	fmt.Fprintf(out, welcomeMessage+"\n\nREPL commands:\n\n", repl.toolname, repl.version)
	for _, c := range replCommands {
		fmt.Fprintf(out, "  %-22s : %s\n", c[0], c[1])
	}
}

func replCompleter(statements []string) *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	}
	for _, stmt := range statements {
		items = append(items, readline.PcItem(stmt))
	}
	return readline.NewPrefixCompleter(items...)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt runs the read-eval-print loop until 'bye', end of input or an
// interrupt on an empty line.
func (repl *BaseREPL) Prompt() {
	defer repl.readline.Close()
	stderr := repl.readline.Stderr()
	fmt.Fprintf(stderr, welcomeMessage+"\n", repl.toolname, repl.version)
	for {
		line, err := repl.readline.Readline()
		switch {
		case err == readline.ErrInterrupt && line != "":
			continue
		case err != nil: // EOF or interrupt on empty line
			return
		}
		if repl.executeCommand(strings.TrimSpace(line)) {
			return
		}
	}
}

// executeCommand dispatches a line to the REPL's own commands or to the
// interpreter. It returns true on 'bye'.
func (repl *BaseREPL) executeCommand(line string) bool {
	stderr := repl.readline.Stderr()
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case "":
	case "help":
		repl.displayCommands(stderr)
		if repl.Helper != nil {
			repl.Helper(stderr)
		}
	case "bye":
		io.WriteString(stderr, "> goodbye!\n")
		return true
	case "mode":
		if arg == "vi" || arg == "emacs" {
			repl.readline.SetVimMode(arg == "vi")
			editmode = arg
		} else {
			fmt.Fprintf(stderr, "> current input mode: %s\n", editmode)
		}
	case "setprompt":
		if arg == "" {
			repl.readline.SetPrompt(fmt.Sprintf(stdprompt, repl.toolname))
		} else {
			repl.readline.SetPrompt(arg + " ")
		}
	default:
		trace().Debugf("interpret '%s'", line)
		if repl.Interpreter != nil {
			repl.Interpreter.InterpretCommand(line)
		}
	}
	return false
}

// filterReplInput blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	return r, r != readline.CharCtrlZ
}
