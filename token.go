package yard

import "fmt"

// Kind classifies tokens of infix and postfix sequences.
type Kind uint8

// Token kinds. LeftParen, RightParen and ArgSeparator occur in infix input only.
const (
	ValueToken Kind = iota
	LeftParen
	RightParen
	FunctionToken
	ArgSeparator
	OperatorToken
)

func (k Kind) String() string {
	switch k {
	case ValueToken:
		return "Value"
	case LeftParen:
		return "LeftParen"
	case RightParen:
		return "RightParen"
	case FunctionToken:
		return "Function"
	case ArgSeparator:
		return "ArgSeparator"
	case OperatorToken:
		return "Operator"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// InputToken is a token of an infix expression. Depending on Kind, one of
// Value, Func or Op carries the payload; delimiters carry none.
type InputToken[V, F, O any] struct {
	Kind  Kind
	Value V
	Func  F
	Op    O
}

// OutputToken is a token of a postfix expression. Kind is one of
// ValueToken, FunctionToken or OperatorToken.
type OutputToken[V, F, O any] struct {
	Kind  Kind
	Value V
	Func  F
	Op    O
}

func (t InputToken[V, F, O]) String() string {
	switch t.Kind {
	case ValueToken:
		return fmt.Sprintf("%v", t.Value)
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case FunctionToken:
		return fmt.Sprintf("%v", t.Func)
	case ArgSeparator:
		return ","
	case OperatorToken:
		return fmt.Sprintf("%v", t.Op)
	}
	return t.Kind.String()
}

func (t OutputToken[V, F, O]) String() string {
	switch t.Kind {
	case ValueToken:
		return fmt.Sprintf("%v", t.Value)
	case FunctionToken:
		return fmt.Sprintf("%v", t.Func)
	case OperatorToken:
		return fmt.Sprintf("%v", t.Op)
	}
	return t.Kind.String()
}

// Value creates an input token for an operand.
func Value[V, F, O any](v V) InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: ValueToken, Value: v}
}

// LParen creates an opening parenthesis.
func LParen[V, F, O any]() InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: LeftParen}
}

// RParen creates a closing parenthesis.
func RParen[V, F, O any]() InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: RightParen}
}

// Function creates an input token introducing a function application.
func Function[V, F, O any](f F) InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: FunctionToken, Func: f}
}

// Separator creates an argument separator.
func Separator[V, F, O any]() InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: ArgSeparator}
}

// Op creates an input token for an operator.
func Op[V, F, O any](o O) InputToken[V, F, O] {
	return InputToken[V, F, O]{Kind: OperatorToken, Op: o}
}

// --- Building sequences ----------------------------------------------------

// Infix is a sequence of input tokens. Its methods append a token and return
// the extended sequence, which allows for writing infix expressions fluently:
//
//	yard.Infix[int, string, op.Math]{}.Value(1).Op(op.Add).Value(2)
//
type Infix[V, F, O any] []InputToken[V, F, O]

// Value appends an operand.
func (in Infix[V, F, O]) Value(v V) Infix[V, F, O] {
	return append(in, Value[V, F, O](v))
}

// LParen appends an opening parenthesis.
func (in Infix[V, F, O]) LParen() Infix[V, F, O] {
	return append(in, LParen[V, F, O]())
}

// RParen appends a closing parenthesis.
func (in Infix[V, F, O]) RParen() Infix[V, F, O] {
	return append(in, RParen[V, F, O]())
}

// Function appends a function token.
func (in Infix[V, F, O]) Function(f F) Infix[V, F, O] {
	return append(in, Function[V, F, O](f))
}

// Separator appends an argument separator.
func (in Infix[V, F, O]) Separator() Infix[V, F, O] {
	return append(in, Separator[V, F, O]())
}

// Op appends an operator.
func (in Infix[V, F, O]) Op(o O) Infix[V, F, O] {
	return append(in, Op[V, F, O](o))
}
