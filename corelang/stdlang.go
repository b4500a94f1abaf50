package corelang

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/npillmayer/yard/op"
	"github.com/shopspring/decimal"
)

// Variadic is the arity of functions taking any positive number of arguments.
const Variadic = -1

// Function is a function callable from expressions.
type Function struct {
	Name  string
	Arity int // number of arguments, or Variadic
	Impl  func(args []Value) (Value, error)
}

// Language is a table of functions and of operators spelled as identifiers.
// Lookups fall back to an attached Lua scripting subsystem for names not
// defined in the table.
//
// Language is safe for concurrent use.
type Language struct {
	sync.RWMutex
	funcs     map[string]*Function
	operators map[string]op.Custom
	scripting *Scripting
	places    int32 // precision of rounded results
}

// NewLanguage creates an empty language.
func NewLanguage() *Language {
	return &Language{
		funcs:     make(map[string]*Function),
		operators: make(map[string]op.Custom),
		places:    DefaultPrecision,
	}
}

// SetPrecision sets the number of decimal places functions round their
// results to, where rounding is necessary.
func (lang *Language) SetPrecision(places int32) {
	lang.Lock()
	defer lang.Unlock()
	lang.places = places
}

// Precision returns the number of decimal places for rounded results.
func (lang *Language) Precision() int32 {
	lang.RLock()
	defer lang.RUnlock()
	return lang.places
}

// Define enters a function into the language, replacing any previous
// definition of name.
func (lang *Language) Define(name string, arity int, impl func([]Value) (Value, error)) {
	lang.Lock()
	defer lang.Unlock()
	lang.funcs[name] = &Function{Name: name, Arity: arity, Impl: impl}
}

// DefineOperator enters a custom operator into the language. Applying it
// calls the function of the same name. If impl is not nil, it is defined as
// this function; otherwise the function has to be defined separately, e.g.
// in a Lua script.
func (lang *Language) DefineOperator(c op.Custom, impl func([]Value) (Value, error)) {
	if impl != nil {
		lang.Define(c.Name, c.Arity(), impl)
	}
	lang.Lock()
	defer lang.Unlock()
	lang.operators[c.Name] = c
}

// Operator finds a custom operator by name.
func (lang *Language) Operator(name string) (op.Operator, bool) {
	lang.RLock()
	defer lang.RUnlock()
	c, ok := lang.operators[name]
	if !ok {
		return nil, false
	}
	return c, true
}

// DefineScriptedOperators enters the operators declared by a Lua script
// (see Scripting.Operators) and attaches the script.
func (lang *Language) DefineScriptedOperators(s *Scripting) error {
	ops, err := s.Operators()
	if err != nil {
		return err
	}
	lang.AttachScripting(s)
	for _, c := range ops {
		tracer().P("op", c.Name).Debugf("operator from script, precedence %d", c.Prec)
		lang.DefineOperator(c, nil)
	}
	return nil
}

// AttachScripting makes Lua functions of s callable from expressions.
func (lang *Language) AttachScripting(s *Scripting) {
	lang.Lock()
	defer lang.Unlock()
	lang.scripting = s
}

// Lookup finds a function by name. Lua functions are variadic.
func (lang *Language) Lookup(name string) (*Function, bool) {
	lang.RLock()
	f, ok := lang.funcs[name]
	s := lang.scripting
	lang.RUnlock()
	if ok {
		return f, true
	}
	if s != nil && s.Has(name) {
		return &Function{
			Name:  name,
			Arity: Variadic,
			Impl: func(args []Value) (Value, error) {
				return s.Call(name, args)
			},
		}, true
	}
	return nil, false
}

// IsFunction is a predicate: is name a known function?
func (lang *Language) IsFunction(name string) bool {
	_, ok := lang.Lookup(name)
	return ok
}

// Functions returns the sorted names of all functions defined in the
// table, not including Lua functions.
func (lang *Language) Functions() []string {
	lang.RLock()
	defer lang.RUnlock()
	names := make([]string, 0, len(lang.funcs))
	for name := range lang.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call applies a function, given by name, to arguments args.
func (lang *Language) Call(name string, args []Value) (Value, error) {
	f, ok := lang.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("function not implemented: %s", name)
	}
	if f.Arity == Variadic && len(args) == 0 {
		return Value{}, fmt.Errorf("function %s needs at least one argument", name)
	}
	if f.Arity != Variadic && f.Arity != len(args) {
		return Value{}, fmt.Errorf("function %s takes %d argument(s), have %d",
			name, f.Arity, len(args))
	}
	tracer().P("func", name).Debugf("call with %d argument(s)", len(args))
	return f.Impl(args)
}

// LoadStandardLanguage creates a language with standard math functions.
// Results of trigonometric functions and of sqrt are calculated in
// floating point, with angles in radians.
func LoadStandardLanguage() *Language {
	lang := NewLanguage()
	defineNumericOps(lang)
	return lang
}

func defineNumericOps(lang *Language) {
	unary := func(name string, f func(decimal.Decimal) decimal.Decimal) {
		lang.Define(name, 1, func(args []Value) (Value, error) {
			if !args[0].IsNumeric() {
				return Value{}, argError(name, args[0])
			}
			return FromDecimal(f(args[0].n)), nil
		})
	}
	float := func(name string, f func(float64) float64) {
		lang.Define(name, 1, func(args []Value) (Value, error) {
			if !args[0].IsNumeric() {
				return Value{}, argError(name, args[0])
			}
			r := f(args[0].AsFloat())
			if math.IsNaN(r) || math.IsInf(r, 0) {
				return Value{}, fmt.Errorf("%s(%s) is not a real number", name, args[0])
			}
			return FromFloat(r), nil
		})
	}
	extremum := func(name string, better func(a, b decimal.Decimal) bool) {
		lang.Define(name, Variadic, func(args []Value) (Value, error) {
			var m decimal.Decimal
			for i, arg := range args {
				if !arg.IsNumeric() {
					return Value{}, argError(name, arg)
				}
				if i == 0 || better(arg.n, m) {
					m = arg.n
				}
			}
			return FromDecimal(m), nil
		})
	}
	unary("abs", decimal.Decimal.Abs)
	unary("floor", decimal.Decimal.Floor)
	unary("ceil", decimal.Decimal.Ceil)
	unary("round", func(d decimal.Decimal) decimal.Decimal { return d.Round(0) })
	float("sqrt", math.Sqrt)
	float("sin", math.Sin)
	float("cos", math.Cos)
	float("tan", math.Tan)
	extremum("min", decimal.Decimal.LessThan)
	extremum("max", decimal.Decimal.GreaterThan)
	lang.Define("pow", 2, func(args []Value) (Value, error) {
		for _, arg := range args {
			if !arg.IsNumeric() {
				return Value{}, argError("pow", arg)
			}
		}
		p, err := Power(args[0].n, args[1].n, lang.Precision())
		if err != nil {
			return Value{}, err
		}
		return FromDecimal(p), nil
	})
}

func argError(fun string, arg Value) error {
	return fmt.Errorf("function %s: illegal argument of type %s", fun, arg.Type())
}
