package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/yard/corelang"
	"github.com/npillmayer/yard/evaluator"
	"github.com/npillmayer/yard/yard/ui/termui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const version = "0.1 experimental"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yard",
	Short: "Evaluate infix expressions",
	Long: `Welcome to YARD V0.1 (experimental)

YARD evaluates arithmetic and logical expressions given in infix notation,
converting them to postfix with the shunting-yard algorithm.

YARD is able to run in interactive mode or evaluate one or more expressions
in batch-mode (flag -e). Functions may be supplied as a Lua script.

`,
	Args: cobra.NoArgs,
	Run:  runYardCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by yard.main().
func Execute() {
	if rootCmd.Execute() != nil {
		Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().StringArrayP("expr", "e", nil, "Expression to evaluate (repeatable)")
	rootCmd.PersistentFlags().Bool("postfix", false, "Print postfix form instead of evaluating")
	rootCmd.PersistentFlags().String("script", "", "Lua file with function definitions")
	rootCmd.PersistentFlags().Bool("no-validate", false, "Do not validate expressions before conversion")
	rootCmd.PersistentFlags().Int("precision", corelang.DefaultPrecision, "Decimal places of division results")
}

func runYardCmd(cmd *cobra.Command, args []string) {
	tracing.Infof("yard interpreter called")
	yintp, err := newYardIntpr(os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		Exit(1)
	}
	defer yintp.Close()
	exprs, _ := cmd.Flags().GetStringArray("expr")
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(exprs) > 0 {
		if errcnt := yintp.batch(exprs); errcnt > 0 && !interactive {
			yintp.Close()
			Exit(1)
		}
		if !interactive {
			return
		}
	}
	repl := termui.NewBaseREPL("yard", version, locatePaths().HistoryFile(), statements...)
	repl.Interpreter = yintp
	repl.Helper = func(w io.Writer) {
		io.WriteString(w, helpText)
	}
	yintp.stdout, yintp.stderr = repl.Outputs()
	repl.Prompt()
}

// newYardIntpr creates an interpreter as configured.
func newYardIntpr(stdout, stderr io.Writer) (*yardIntpr, error) {
	lang := corelang.LoadStandardLanguage()
	yintp := &yardIntpr{
		stdout: stdout,
		stderr: stderr,
	}
	script := ""
	if Configuration != nil {
		script = Configuration.String("script")
	}
	if script != "" {
		yintp.scripting = corelang.NewScripting()
		if err := yintp.scripting.LoadFile(script); err != nil {
			yintp.scripting.Close()
			return nil, errors.Wrapf(err, "loading script %s", script)
		}
		if err := lang.DefineScriptedOperators(yintp.scripting); err != nil {
			yintp.scripting.Close()
			return nil, errors.Wrapf(err, "operators of script %s", script)
		}
	}
	yintp.Interpreter = evaluator.NewInterpreter(lang)
	if Configuration != nil {
		yintp.Validate = Configuration.Bool("validate")
		yintp.Evaluator().SetPrecision(int32(Configuration.Int("precision")))
		yintp.postfixOnly = Configuration.Bool("postfix")
	}
	return yintp, nil
}
