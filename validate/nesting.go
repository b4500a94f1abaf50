package validate

import "github.com/emirpasic/gods/stacks/arraystack"

// nesting tracks parentheses during validation: the overall nesting depth
// and, for every function call with an open argument list, the number of
// parentheses opened since the call (including the call's own).
type nesting struct {
	depth  int
	levels *arraystack.Stack // stack of int
}

func newNesting() *nesting {
	return &nesting{levels: arraystack.New()}
}

func (c *nesting) enterFnArgs() {
	c.depth++
	c.levels.Push(1)
}

func (c *nesting) leftParen() {
	c.depth++
	if n, ok := c.levels.Pop(); ok {
		c.levels.Push(n.(int) + 1)
	}
}

// rightParen closes a parenthesis. It returns false if there is no open one.
func (c *nesting) rightParen() bool {
	if c.depth == 0 {
		return false
	}
	c.depth--
	if n, ok := c.levels.Pop(); ok && n.(int) > 1 {
		c.levels.Push(n.(int) - 1)
	}
	return true
}

// allowArgSeparator is a predicate: are we directly within the argument list
// of a function call?
func (c *nesting) allowArgSeparator() bool {
	n, ok := c.levels.Peek()
	return ok && n.(int) == 1
}
