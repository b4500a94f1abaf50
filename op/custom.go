package op

// Custom is an operator defined at runtime, e.g. from a configuration or a
// script. Operators with Args == 1 are prefix operators.
type Custom struct {
	Name      string
	Prec      uint
	LeftAssoc bool
	Args      int
}

// Precedence is part of interface yard.Operator.
func (c Custom) Precedence() uint { return c.Prec }

// IsLeftAssociative is part of interface yard.Operator.
func (c Custom) IsLeftAssociative() bool { return c.LeftAssoc }

// Arity returns the number of operands, defaulting to 2.
func (c Custom) Arity() int {
	if c.Args <= 0 {
		return 2
	}
	return c.Args
}

func (c Custom) String() string { return c.Name }

// Check interface assignability
var _ Operator = Custom{}
var _ Operator = Math(0)
var _ Operator = Logic(0)
