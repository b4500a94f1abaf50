package sframe

import (
	"errors"
	"sort"
)

// ErrGlobalFrame is returned when attempting to pop the global frame.
var ErrGlobalFrame = errors.New("cannot pop global scope frame")

// DynamicScopeFrame is a scope frame, holding a symbol table for variables
// of type T.
type DynamicScopeFrame[T any] struct {
	Name    string
	Parent  *DynamicScopeFrame[T]
	symbols map[string]T
}

func makeScopeFrame[T any](name string, parent *DynamicScopeFrame[T]) *DynamicScopeFrame[T] {
	if name == "" {
		name = "⟨scope⟩"
	}
	return &DynamicScopeFrame[T]{
		Name:    name,
		Parent:  parent,
		symbols: make(map[string]T),
	}
}

// Lookup finds a symbol in this frame, not considering outer frames.
func (dsf *DynamicScopeFrame[T]) Lookup(name string) (T, bool) {
	v, ok := dsf.symbols[name]
	return v, ok
}

// Names returns the sorted names of all symbols defined in this frame.
func (dsf *DynamicScopeFrame[T]) Names() []string {
	names := make([]string, 0, len(dsf.symbols))
	for name := range dsf.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScopeFrameTree can be treated as a stack during evaluation, thus we'll be
// building a tree from scopes which are pushed and popped to/from the stack.
//
// The bottom of the stack is the global frame, which is never popped.
//
type ScopeFrameTree[T any] struct {
	ScopeBase *DynamicScopeFrame[T]
	ScopeTOS  *DynamicScopeFrame[T]
}

// NewScopeFrameTree creates a scope tree with a global frame.
func NewScopeFrameTree[T any]() *ScopeFrameTree[T] {
	global := makeScopeFrame[T]("#global", nil)
	return &ScopeFrameTree[T]{
		ScopeBase: global,
		ScopeTOS:  global,
	}
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeFrameTree[T]) Current() *DynamicScopeFrame[T] {
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global symbols.
func (scst *ScopeFrameTree[T]) Globals() *DynamicScopeFrame[T] {
	return scst.ScopeBase
}

// Depth returns the number of frames above the global frame.
func (scst *ScopeFrameTree[T]) Depth() int {
	d := 0
	for sc := scst.ScopeTOS; sc != scst.ScopeBase; sc = sc.Parent {
		d++
	}
	return d
}

// PushNewFrame pushes a scope onto the stack of scopes. A scope is
// constructed, including a symbol table for variables.
func (scst *ScopeFrameTree[T]) PushNewFrame(name string) *DynamicScopeFrame[T] {
	newsc := makeScopeFrame(name, scst.ScopeTOS)
	scst.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopFrame pops the top-most (recent) scope. Variables defined in the
// scope are dropped.
func (scst *ScopeFrameTree[T]) PopFrame() (*DynamicScopeFrame[T], error) {
	if scst.ScopeTOS == scst.ScopeBase {
		return nil, ErrGlobalFrame
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = sc.Parent
	return sc, nil
}

// Define creates or overwrites a variable in the current scope, possibly
// shadowing a variable of the same name in an outer scope.
func (scst *ScopeFrameTree[T]) Define(name string, v T) {
	tracer().P("var", name).Debugf("define in scope [%s]", scst.ScopeTOS.Name)
	scst.ScopeTOS.symbols[name] = v
}

// Set assigns a value to a variable in the innermost scope defining it.
// Variables not defined anywhere are created in global scope.
func (scst *ScopeFrameTree[T]) Set(name string, v T) *DynamicScopeFrame[T] {
	_, sc, ok := scst.Resolve(name)
	if !ok {
		sc = scst.ScopeBase
	}
	tracer().P("var", name).Debugf("set in scope [%s]", sc.Name)
	sc.symbols[name] = v
	return sc
}

// Resolve finds a variable, starting in the current scope and walking
// outwards. It returns the variable's value and the defining scope.
func (scst *ScopeFrameTree[T]) Resolve(name string) (T, *DynamicScopeFrame[T], bool) {
	for sc := scst.ScopeTOS; sc != nil; sc = sc.Parent {
		if v, ok := sc.symbols[name]; ok {
			return v, sc, true
		}
	}
	var zero T
	return zero, nil, false
}
