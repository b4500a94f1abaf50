package corelang

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"sync"

	"github.com/npillmayer/yard/op"
	lua "github.com/yuin/gopher-lua"
)

// Scripting is the Lua scripting subsystem. Lua functions defined in
// global scope may be called from expressions.
//
// A Scripting instance serializes access to its Lua state and is therefore
// safe for concurrent use.
type Scripting struct {
	sync.Mutex
	L *lua.LState
}

// NewScripting creates a new Lua scripting subsystem. Clients have to call
// Close() when done.
func NewScripting() *Scripting {
	return &Scripting{L: lua.NewState()}
}

// Close shuts down the Lua state.
func (s *Scripting) Close() {
	s.Lock()
	defer s.Unlock()
	s.L.Close()
}

// Load executes a chunk of Lua source code, usually containing function
// definitions.
func (s *Scripting) Load(src string) error {
	s.Lock()
	defer s.Unlock()
	if err := s.L.DoString(src); err != nil {
		tracer().Errorf("scripting error: %v", err)
		return err
	}
	return nil
}

// LoadFile executes a Lua source file.
func (s *Scripting) LoadFile(path string) error {
	s.Lock()
	defer s.Unlock()
	tracer().P("script", path).Debugf("loading Lua file")
	if err := s.L.DoFile(path); err != nil {
		tracer().P("script", path).Errorf("scripting error: %v", err)
		return err
	}
	return nil
}

// Has is a predicate: is name a global Lua function?
func (s *Scripting) Has(name string) bool {
	s.Lock()
	defer s.Unlock()
	return s.L.GetGlobal(name).Type() == lua.LTFunction
}

// Call calls the global Lua function name with arguments args. The function
// has to return a single numeric or boolean value.
func (s *Scripting) Call(name string, args []Value) (Value, error) {
	s.Lock()
	defer s.Unlock()
	fn := s.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return Value{}, fmt.Errorf("no Lua function %s", name)
	}
	largs := make([]lua.LValue, len(args))
	for i, arg := range args {
		switch arg.Type() {
		case NumericType:
			largs[i] = lua.LNumber(arg.AsFloat())
		case BooleanType:
			largs[i] = lua.LBool(arg.AsBool())
		default:
			return Value{}, fmt.Errorf("cannot pass %s argument to Lua", arg.Type())
		}
	}
	tracer().P("func", name).Debugf("calling Lua scripting subsytem")
	err := s.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, largs...)
	if err != nil {
		tracer().P("func", name).Errorf("scripting error: %v", err)
		return Value{}, err
	}
	ret := s.L.Get(-1)
	s.L.Pop(1)
	switch r := ret.(type) {
	case lua.LNumber:
		f := float64(r)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Value{}, fmt.Errorf("Lua function %s returned %v", name, f)
		}
		return FromFloat(f), nil
	case lua.LBool:
		return FromBool(bool(r)), nil
	}
	return Value{}, fmt.Errorf("Lua function %s returned %s, expected number or boolean",
		name, ret.Type())
}

var operatorName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Operators reads operator declarations from the global Lua table
// "operators". Every entry declares a global Lua function as an operator:
//
//	function hyp(a, b) return math.sqrt(a*a + b*b) end
//	operators = { hyp = { prec = 12, left = true, args = 2 } }
//
// prec is required and positive. left defaults to true, args to 2; args == 1
// declares a prefix operator. Operators are returned sorted by name.
func (s *Scripting) Operators() ([]op.Custom, error) {
	s.Lock()
	defer s.Unlock()
	tbl := s.L.GetGlobal("operators")
	if tbl == lua.LNil {
		return nil, nil
	}
	decls, ok := tbl.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("Lua global 'operators' is a %s, expected a table", tbl.Type())
	}
	var ops []op.Custom
	var err error
	decls.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		var c op.Custom
		if c, err = s.operatorDecl(k, v); err == nil {
			ops = append(ops, c)
		}
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops, nil
}

func (s *Scripting) operatorDecl(k, v lua.LValue) (op.Custom, error) {
	name, ok := k.(lua.LString)
	if !ok || !operatorName.MatchString(string(name)) {
		return op.Custom{}, fmt.Errorf("illegal operator name %s", k)
	}
	c := op.Custom{Name: string(name), LeftAssoc: true, Args: 2}
	decl, ok := v.(*lua.LTable)
	if !ok {
		return c, fmt.Errorf("operator %s: declaration is not a table", name)
	}
	if s.L.GetGlobal(c.Name).Type() != lua.LTFunction {
		return c, fmt.Errorf("operator %s: no Lua function %s", name, name)
	}
	prec, ok := decl.RawGetString("prec").(lua.LNumber)
	if !ok || prec < 1 || prec != lua.LNumber(math.Trunc(float64(prec))) {
		return c, fmt.Errorf("operator %s: prec has to be a positive integer", name)
	}
	c.Prec = uint(prec)
	switch left := decl.RawGetString("left").(type) {
	case lua.LBool:
		c.LeftAssoc = bool(left)
	case *lua.LNilType:
	default:
		return c, fmt.Errorf("operator %s: left has to be a boolean", name)
	}
	switch args := decl.RawGetString("args").(type) {
	case lua.LNumber:
		if args != 1 && args != 2 {
			return c, fmt.Errorf("operator %s: args has to be 1 or 2", name)
		}
		c.Args = int(args)
	case *lua.LNilType:
	default:
		return c, fmt.Errorf("operator %s: args has to be a number", name)
	}
	return c, nil
}
