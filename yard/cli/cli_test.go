package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newTestIntpr(t *testing.T) (*yardIntpr, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errout := &bytes.Buffer{}, &bytes.Buffer{}
	yintp, err := newYardIntpr(out, errout)
	if err != nil {
		t.Fatal(err)
	}
	return yintp, out, errout
}

func TestBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.cli")
	defer teardown()
	//
	yintp, out, errout := newTestIntpr(t)
	defer yintp.Close()
	errcnt := yintp.batch([]string{"1 + 2 * 3", "max(2, 5) > 4", "1 / 0"})
	if errcnt != 1 {
		t.Errorf("expected 1 failed expression, have %d", errcnt)
	}
	if !strings.Contains(out.String(), "▶ 7 : numeric") {
		t.Errorf("expected result 7, output is %q", out.String())
	}
	if !strings.Contains(out.String(), "▶ true : boolean") {
		t.Errorf("expected result true, output is %q", out.String())
	}
	if !strings.Contains(errout.String(), "division by zero") {
		t.Errorf("expected division error, error output is %q", errout.String())
	}
	if !strings.Contains(errout.String(), "  1 / 0\n    ^\n") {
		t.Errorf("expected error position to be marked, error output is %q", errout.String())
	}
}

func TestPostfixOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.cli")
	defer teardown()
	//
	yintp, out, _ := newTestIntpr(t)
	defer yintp.Close()
	yintp.postfixOnly = true
	if errcnt := yintp.batch([]string{"(1 + 2) * x"}); errcnt != 0 {
		t.Fatalf("expected conversion to succeed, have %d errors", errcnt)
	}
	table := out.String()
	t.Logf("\n%s", table)
	for _, s := range []string{"Postfix of", "Operator (prec", "(variable)"} {
		if !strings.Contains(table, s) {
			t.Errorf("expected postfix table to contain %q", s)
		}
	}
}

func TestStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.cli")
	defer teardown()
	//
	yintp, out, errout := newTestIntpr(t)
	defer yintp.Close()
	for _, line := range []string{
		"let a = 2",
		"begingroup inner",
		"save a",
		"let a = 40",
		"a + 2",
		"endgroup",
		"a * 3",
	} {
		yintp.InterpretCommand(line)
	}
	if errout.Len() > 0 {
		t.Fatalf("expected statements to succeed, errors are %q", errout.String())
	}
	if !strings.Contains(out.String(), "▶ 42 : numeric") {
		t.Errorf("expected local a + 2 = 42, output is %q", out.String())
	}
	if !strings.Contains(out.String(), "▶ 6 : numeric") {
		t.Errorf("expected global a * 3 = 6, output is %q", out.String())
	}
	out.Reset()
	yintp.InterpretCommand("show")
	if !strings.Contains(out.String(), "#global") {
		t.Errorf("expected variable table, output is %q", out.String())
	}
}

func TestStatementErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.cli")
	defer teardown()
	//
	yintp, _, errout := newTestIntpr(t)
	defer yintp.Close()
	for _, x := range []struct {
		line, msg string
	}{
		{"let 1x = 2", "usage: let"},
		{"let sqrt = 2", "cannot assign to function"},
		{"endgroup", "global"},
		{"save", "usage: save"},
		{"let b = 1 +", "end of expression"},
	} {
		errout.Reset()
		yintp.InterpretCommand(x.line)
		if !strings.Contains(errout.String(), x.msg) {
			t.Errorf("%q: expected error containing %q, have %q", x.line, x.msg, errout.String())
		}
	}
}

func TestScriptOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.cli")
	defer teardown()
	//
	script := filepath.Join(t.TempDir(), "ops.lua")
	err := os.WriteFile(script, []byte(`
function hyp(a, b) return math.sqrt(a*a + b*b) end
operators = { hyp = { prec = 12 } }
`), 0644)
	if err != nil {
		t.Fatal(err)
	}
	k := koanf.New(".")
	conf := map[string]interface{}{"script": script, "validate": true, "precision": 4}
	if err = k.Load(confmap.Provider(conf, "."), nil); err != nil {
		t.Fatal(err)
	}
	Configuration = k
	defer func() { Configuration = nil }()
	yintp, out, errout := newTestIntpr(t)
	defer yintp.Close()
	if errcnt := yintp.batch([]string{"3 hyp 4 * 2", "pow(3, -1)"}); errcnt != 0 {
		t.Fatalf("expected batch to succeed, errors are %q", errout.String())
	}
	if !strings.Contains(out.String(), "▶ 10 : numeric") {
		t.Errorf("expected 3 hyp 4 * 2 = 10, output is %q", out.String())
	}
	if !strings.Contains(out.String(), "▶ 0.3333 : numeric") {
		t.Errorf("expected pow to round to 4 places, output is %q", out.String())
	}
}
