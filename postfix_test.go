package yard_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yard"
	"github.com/npillmayer/yard/op"
)

type mathInfix = yard.Infix[int, string, op.Math]
type mathPostfix = []yard.OutputToken[int, string, op.Math]

func val(v int) yard.OutputToken[int, string, op.Math] {
	return yard.OutputToken[int, string, op.Math]{Kind: yard.ValueToken, Value: v}
}

func fn(f string) yard.OutputToken[int, string, op.Math] {
	return yard.OutputToken[int, string, op.Math]{Kind: yard.FunctionToken, Func: f}
}

func opr(o op.Math) yard.OutputToken[int, string, op.Math] {
	return yard.OutputToken[int, string, op.Math]{Kind: yard.OperatorToken, Op: o}
}

func TestValueOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	postfix, err := yard.ToPostfix(mathInfix{}.Value(1))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(postfix, mathPostfix{val(1)}) {
		t.Errorf("expected [1], have %v", postfix)
	}
}

func TestEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	postfix, err := yard.ToPostfix(mathInfix{})
	if err != nil || len(postfix) != 0 {
		t.Errorf("expected empty postfix without error, have %v, %v", postfix, err)
	}
}

func TestToPostfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	for i, x := range []struct {
		name  string
		infix mathInfix
		want  mathPostfix
	}{
		{"1 + 2",
			mathInfix{}.Value(1).Op(op.Add).Value(2),
			mathPostfix{val(1), val(2), opr(op.Add)}},
		{"1 * 2 + 3",
			mathInfix{}.Value(1).Op(op.Mul).Value(2).Op(op.Add).Value(3),
			mathPostfix{val(1), val(2), opr(op.Mul), val(3), opr(op.Add)}},
		{"1 + 2 * 3",
			mathInfix{}.Value(1).Op(op.Add).Value(2).Op(op.Mul).Value(3),
			mathPostfix{val(1), val(2), val(3), opr(op.Mul), opr(op.Add)}},
		{"1 - 2 - 3",
			mathInfix{}.Value(1).Op(op.Sub).Value(2).Op(op.Sub).Value(3),
			mathPostfix{val(1), val(2), opr(op.Sub), val(3), opr(op.Sub)}},
		{"1 ^ 2 ^ 3",
			mathInfix{}.Value(1).Op(op.Exponent).Value(2).Op(op.Exponent).Value(3),
			mathPostfix{val(1), val(2), val(3), opr(op.Exponent), opr(op.Exponent)}},
		{"( 1 + 2 ) * 3",
			mathInfix{}.LParen().Value(1).Op(op.Add).Value(2).RParen().Op(op.Mul).Value(3),
			mathPostfix{val(1), val(2), opr(op.Add), val(3), opr(op.Mul)}},
		{"1 * ( 2 + 3 )",
			mathInfix{}.Value(1).Op(op.Mul).LParen().Value(2).Op(op.Add).Value(3).RParen(),
			mathPostfix{val(1), val(2), val(3), opr(op.Add), opr(op.Mul)}},
		{"( ( 1 ) )",
			mathInfix{}.LParen().LParen().Value(1).RParen().RParen(),
			mathPostfix{val(1)}},
		{"- 2 ^ 2",
			mathInfix{}.Op(op.Neg).Value(2).Op(op.Exponent).Value(2),
			mathPostfix{val(2), opr(op.Neg), val(2), opr(op.Exponent)}},
		{"2 * - 3",
			mathInfix{}.Value(2).Op(op.Mul).Op(op.Neg).Value(3),
			mathPostfix{val(2), val(3), opr(op.Neg), opr(op.Mul)}},
		{"- - 3",
			mathInfix{}.Op(op.Neg).Op(op.Neg).Value(3),
			mathPostfix{val(3), opr(op.Neg), opr(op.Neg)}},
		{"sin ( max ( 2 , 3 ) / 3 * 4 )",
			mathInfix{}.Function("sin").LParen().Function("max").LParen().Value(2).
				Separator().Value(3).RParen().Op(op.Div).Value(3).Op(op.Mul).Value(4).RParen(),
			mathPostfix{val(2), val(3), fn("max"), val(3), opr(op.Div), val(4), opr(op.Mul), fn("sin")}},
		{"f ( 1 + 2 , 3 * 4 , 5 )",
			mathInfix{}.Function("f").LParen().Value(1).Op(op.Add).Value(2).Separator().
				Value(3).Op(op.Mul).Value(4).Separator().Value(5).RParen(),
			mathPostfix{val(1), val(2), opr(op.Add), val(3), val(4), opr(op.Mul), val(5), fn("f")}},
		{"f ( g ( 1 ) , ( 2 ) )",
			mathInfix{}.Function("f").LParen().Function("g").LParen().Value(1).RParen().
				Separator().LParen().Value(2).RParen().RParen(),
			mathPostfix{val(1), fn("g"), val(2), fn("f")}},
		{"f ( )",
			mathInfix{}.Function("f").LParen().RParen(),
			mathPostfix{fn("f")}},
	} {
		postfix, err := yard.ToPostfix(x.infix)
		if err != nil {
			t.Errorf("test %d (%s): unexpected error: %v", i, x.name, err)
			continue
		}
		if !slices.Equal(postfix, x.want) {
			t.Errorf("test %d (%s):\nwant: %v\nhave: %v", i, x.name, x.want, postfix)
		}
	}
}

func TestBareFunctionCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	for i, x := range []struct {
		name  string
		infix mathInfix
		want  mathPostfix
	}{
		{"f 2",
			mathInfix{}.Function("f").Value(2),
			mathPostfix{val(2), fn("f")}},
		{"f 2 equals f ( 2 )",
			mathInfix{}.Function("f").LParen().Value(2).RParen(),
			mathPostfix{val(2), fn("f")}},
		{"( f 2 ) + 1",
			mathInfix{}.LParen().Function("f").Value(2).RParen().Op(op.Add).Value(1),
			mathPostfix{val(2), fn("f"), val(1), opr(op.Add)}},
		{"max ( f 2 , 3 )",
			mathInfix{}.Function("max").LParen().Function("f").Value(2).Separator().
				Value(3).RParen(),
			mathPostfix{val(2), fn("f"), val(3), fn("max")}},
		{"g f ( 1 )",
			mathInfix{}.Function("g").Function("f").LParen().Value(1).RParen(),
			mathPostfix{val(1), fn("f"), fn("g")}},
		{"( f 2 + 1 ) * 3 (closed by the enclosing parenthesis)",
			mathInfix{}.LParen().Function("f").Value(2).Op(op.Add).Value(1).RParen().
				Op(op.Mul).Value(3),
			mathPostfix{val(2), val(1), opr(op.Add), fn("f"), val(3), opr(op.Mul)}},
		{"f 2 + 3 (ambiguous, binds to the argument)",
			mathInfix{}.Function("f").Value(2).Op(op.Add).Value(3),
			mathPostfix{val(2), val(3), opr(op.Add), fn("f")}},
	} {
		postfix, err := yard.ToPostfix(x.infix)
		if err != nil {
			t.Errorf("test %d (%s): unexpected error: %v", i, x.name, err)
			continue
		}
		if !slices.Equal(postfix, x.want) {
			t.Errorf("test %d (%s):\nwant: %v\nhave: %v", i, x.name, x.want, postfix)
		}
	}
}

func TestParenMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	type boolInfix = yard.Infix[bool, string, op.Logic]
	for i, x := range []struct {
		name     string
		infix    boolInfix
		pos      int
		unclosed bool
	}{
		{"false )", boolInfix{}.Value(false).RParen().Op(op.And).Value(true), 1, false},
		{"false (", boolInfix{}.Value(false).LParen().Value(true), 1, true},
		{")", boolInfix{}.RParen(), 0, false},
		{"( true ) )", boolInfix{}.LParen().Value(true).RParen().RParen(), 3, false},
		{"( ( true )", boolInfix{}.LParen().LParen().Value(true).RParen(), 0, true},
		{"( true and (", boolInfix{}.LParen().Value(true).Op(op.And).LParen(), 3, true},
	} {
		_, err := yard.ToPostfix(x.infix)
		if err == nil {
			t.Errorf("test %d (%s): expected error, got none", i, x.name)
			continue
		}
		if !errors.Is(err, yard.ErrParenMismatch) {
			t.Errorf("test %d (%s): expected paren mismatch, have %v", i, x.name, err)
		}
		var perr *yard.ParenMismatchError
		if !errors.As(err, &perr) {
			t.Fatalf("test %d (%s): expected *ParenMismatchError, have %T", i, x.name, err)
		}
		if perr.Pos != x.pos || perr.Unclosed != x.unclosed {
			t.Errorf("test %d (%s): expected mismatch at %d (unclosed=%v), have %d (unclosed=%v)",
				i, x.name, x.pos, x.unclosed, perr.Pos, perr.Unclosed)
		}
	}
}

func TestDynamicOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	type dynInfix = yard.Infix[float64, string, yard.Operator]
	dot := op.Custom{Name: "dot", Prec: 12, LeftAssoc: true}
	// 1 + 2 dot 3 < 4 and not 5
	infix := dynInfix{}.Value(1).Op(op.Add).Value(2).Op(dot).Value(3).Op(op.Lt).Value(4).
		Op(op.And).Op(op.Not).Value(5)
	postfix, err := yard.ToPostfix(infix)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "2", "3", "dot", "+", "4", "<", "5", "not", "and"}
	if len(postfix) != len(want) {
		t.Fatalf("expected %d output tokens, have %d: %v", len(want), len(postfix), postfix)
	}
	for i, tok := range postfix {
		if tok.String() != want[i] {
			t.Errorf("output token #%d: want %s, have %s", i, want[i], tok.String())
		}
	}
}

func TestToPostfixSeq(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	infix := mathInfix{}.Value(1).Op(op.Add).Value(2).Op(op.Mul).Value(3)
	postfix, err := yard.ToPostfixSeq(slices.Values(infix))
	if err != nil {
		t.Fatal(err)
	}
	want := mathPostfix{val(1), val(2), val(3), opr(op.Mul), opr(op.Add)}
	if !slices.Equal(postfix, want) {
		t.Errorf("want: %v\nhave: %v", want, postfix)
	}
	unbalanced := mathInfix{}.LParen().Value(1)
	if _, err = yard.ToPostfixSeq(slices.Values(unbalanced)); !errors.Is(err, yard.ErrParenMismatch) {
		t.Errorf("expected paren mismatch, have %v", err)
	}
}

func TestConcurrentConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard")
	defer teardown()
	//
	infix := mathInfix{}.Function("sin").LParen().Function("max").LParen().Value(2).
		Separator().Value(3).RParen().Op(op.Div).Value(3).Op(op.Mul).Value(4).RParen()
	want, _ := yard.ToPostfix(infix)
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			postfix, err := yard.ToPostfix(infix)
			if err != nil || !slices.Equal(postfix, want) {
				errs <- "concurrent conversion differs"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
