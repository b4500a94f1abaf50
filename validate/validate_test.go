package validate

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/yard"
	"github.com/npillmayer/yard/op"
)

type infix = yard.Infix[int, string, op.Operator]

func TestValidateExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	for i, in := range []infix{
		// 1
		infix{}.Value(1),
		// 1 + 1
		infix{}.Value(1).Op(op.Add).Value(1),
		// 1 + 1 + 1
		infix{}.Value(1).Op(op.Add).Value(1).Op(op.Add).Value(1),
		// 1 + ( 1 + 1 )
		infix{}.Value(1).Op(op.Add).LParen().Value(1).Op(op.Add).Value(1).RParen(),
		// 1 + sin ( 1 + 1 )
		infix{}.Value(1).Op(op.Add).Function("sin").LParen().Value(1).Op(op.Add).Value(1).RParen(),
		// 1 + f ( 1 , 1 )
		infix{}.Value(1).Op(op.Add).Function("f").LParen().Value(1).Separator().Value(1).RParen(),
		// ( ( 1 ) )
		infix{}.LParen().LParen().Value(1).RParen().RParen(),
		// f ( ( 1 ) , 2 )
		infix{}.Function("f").LParen().LParen().Value(1).RParen().Separator().Value(2).RParen(),
		// f ( ( g ( 1 , 2 ) ) , 3 )
		infix{}.Function("f").LParen().LParen().Function("g").LParen().Value(1).Separator().
			Value(2).RParen().RParen().Separator().Value(3).RParen(),
		// ( f ( 1 , 2 ) )
		infix{}.LParen().Function("f").LParen().Value(1).Separator().Value(2).RParen().RParen(),
		// sin ( max ( 2 , 3 ) / 3 * 4 )
		infix{}.Function("sin").LParen().Function("max").LParen().Value(2).Separator().
			Value(3).RParen().Op(op.Div).Value(3).Op(op.Mul).Value(4).RParen(),
	} {
		if err := Infix(in); err != nil {
			t.Errorf("test %d: expected %v to be valid, have %v", i, in, err)
		}
	}
}

func TestInvalidTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	for i, x := range []struct {
		name     string
		in       infix
		pos      int
		expected []yard.Kind
	}{
		{"+", infix{}.Op(op.Add), 0, expected[expression]},
		{"12 13", infix{}.Value(12).Value(13), 1, expected[afterValue]},
		{")", infix{}.RParen(), 0, expected[expression]},
		{"false )", infix{}.Value(0).RParen().Op(op.And).Value(1), 1, expected[afterValue]},
		{"1 (", infix{}.Value(1).LParen().Value(2).RParen(), 1, expected[afterValue]},
		{"f 1", infix{}.Function("f").Value(1), 1, expected[fnArgsStart]},
		{"( )", infix{}.LParen().RParen(), 1, expected[expression]},
		{"f ( ( 1 , 2 ) )", infix{}.Function("f").LParen().LParen().Value(1).Separator().
			Value(2).RParen().RParen(), 4, expected[afterValue]},
		{"( 1 , 2 )", infix{}.LParen().Value(1).Separator().Value(2).RParen(), 2, expected[afterValue]},
		{"f ( 1 ) + ( 2 , 3 )", infix{}.Function("f").LParen().Value(1).RParen().Op(op.Add).
			LParen().Value(2).Separator().Value(3).RParen(), 7, expected[afterValue]},
		{"1 , 2", infix{}.Value(1).Separator().Value(2), 1, expected[afterValue]},
		{"f ( , 1 )", infix{}.Function("f").LParen().Separator().Value(1).RParen(), 2, expected[expression]},
		{"- 1", infix{}.Op(op.Neg).Value(1), 0, expected[expression]},
	} {
		err := Infix(x.in)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("test %d (%s): expected invalid token error, have %v", i, x.name, err)
			continue
		}
		var terr *InvalidTokenError[int, string, op.Operator]
		if !errors.As(err, &terr) {
			t.Fatalf("test %d (%s): cannot unwrap %T", i, x.name, err)
		}
		if terr.Pos != x.pos {
			t.Errorf("test %d (%s): expected invalid token at %d, have %d", i, x.name, x.pos, terr.Pos)
		}
		if terr.Found != &x.in[x.pos] {
			t.Errorf("test %d (%s): expected error to reference input token #%d", i, x.name, x.pos)
		}
		if !slices.Equal(terr.Expected, x.expected) {
			t.Errorf("test %d (%s): expected %v to be reported as legal, have %v",
				i, x.name, x.expected, terr.Expected)
		}
	}
}

func TestParenMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	for i, x := range []struct {
		name  string
		in    infix
		count int
	}{
		{"(", infix{}.LParen(), 1},
		{"( ( ( 1 )", infix{}.LParen().LParen().LParen().Value(1).RParen(), 2},
		{"f ( 1", infix{}.Function("f").LParen().Value(1), 1},
		{"1 + ( 2 * (", infix{}.Value(1).Op(op.Add).LParen().Value(2).Op(op.Mul).LParen(), 2},
	} {
		err := Infix(x.in)
		var perr *ParenMismatchError
		if !errors.As(err, &perr) {
			t.Errorf("test %d (%s): expected paren mismatch, have %v", i, x.name, err)
			continue
		}
		if perr.Count != x.count {
			t.Errorf("test %d (%s): expected imbalance of %d, have %d", i, x.name, x.count, perr.Count)
		}
		if !errors.Is(err, ErrParenMismatch) {
			t.Errorf("test %d (%s): expected error to match ErrParenMismatch", i, x.name)
		}
	}
}

func TestIncompleteExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	for i, x := range []struct {
		name string
		in   infix
	}{
		{"(empty)", infix{}},
		{"1 +", infix{}.Value(1).Op(op.Add)},
		{"f", infix{}.Function("f")},
	} {
		err := Infix(x.in)
		var ierr *IncompleteError
		if !errors.As(err, &ierr) {
			t.Errorf("test %d (%s): expected incomplete expression, have %v", i, x.name, err)
			continue
		}
		if ierr.Pos != len(x.in) {
			t.Errorf("test %d (%s): expected error at end of input, have %d", i, x.name, ierr.Pos)
		}
	}
}

func TestPrefixOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	isPrefix := WithPrefixOperators(func(o op.Operator) bool { return o.Arity() == 1 })
	for i, in := range []infix{
		infix{}.Op(op.Neg).Value(1),
		infix{}.Value(2).Op(op.Mul).Op(op.Neg).Value(1),
		infix{}.Op(op.Not).Op(op.Not).LParen().Value(1).RParen(),
		infix{}.Function("f").LParen().Op(op.Neg).Value(1).Separator().Op(op.Neg).Value(2).RParen(),
	} {
		if err := Infix(in, isPrefix); err != nil {
			t.Errorf("test %d: expected %v to be valid, have %v", i, in, err)
		}
	}
	if err := Infix(infix{}.Op(op.Add).Value(1), isPrefix); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected binary operator in prefix position to be rejected, have %v", err)
	}
	if err := Infix(infix{}.Value(1).Op(op.Neg), isPrefix); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected trailing prefix operator to be rejected, have %v", err)
	}
}

func TestRevalidationIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	for i, in := range []infix{
		infix{}.Value(1).Op(op.Add).Value(2),
		infix{}.Function("f").LParen().LParen().Value(1).Separator().Value(2).RParen().RParen(),
		infix{}.LParen(),
	} {
		orig := slices.Clone(in)
		err1, err2 := Infix(in), Infix(in)
		if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
			t.Errorf("test %d: re-validation differs: %v vs. %v", i, err1, err2)
		}
		if !slices.Equal(orig, in) {
			t.Errorf("test %d: validation modified its input", i)
		}
	}
}

func TestSeqStopsAtFirstError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	in := infix{}.Value(1).Value(2).Value(3).Value(4)
	pulled := 0
	err := Seq(func(yield func(*yard.InputToken[int, string, op.Operator]) bool) {
		for i := range in {
			pulled++
			if !yield(&in[i]) {
				return
			}
		}
	})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, have %v", err)
	}
	if pulled != 2 {
		t.Errorf("expected validation to stop after 2 tokens, pulled %d", pulled)
	}
}

func TestNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "yard.validate")
	defer teardown()
	//
	n := newNesting()
	if n.allowArgSeparator() {
		t.Error("expected separator to be illegal outside of function calls")
	}
	n.enterFnArgs()
	if !n.allowArgSeparator() {
		t.Error("expected separator to be legal in argument list")
	}
	n.leftParen()
	if n.allowArgSeparator() {
		t.Error("expected separator to be illegal in nested parenthesis")
	}
	n.rightParen()
	n.rightParen()
	if n.depth != 0 || !n.levels.Empty() {
		t.Errorf("expected nesting to be balanced, depth = %d, levels = %d", n.depth, n.levels.Size())
	}
	if n.rightParen() {
		t.Error("expected unmatched right parenthesis to be rejected")
	}
}
