package yard

// Operator has to be implemented by every operator type used with ToPostfix.
//
// Precedence is a caller-defined order over natural numbers: higher values
// bind tighter. Operators of equal precedence are grouped according to
// their associativity.
//
// Closed operator sets are best modelled as enum-like types. For operator
// sets determined at runtime, clients may use Operator itself (or an interface
// embedding it) as type parameter O and mix different implementations.
type Operator interface {
	Precedence() uint
	IsLeftAssociative() bool
}

// yields reports whether operator o2, pending on the stack, has to be emitted
// before o1 is pushed.
func yields(o1, o2 Operator) bool {
	p1, p2 := o1.Precedence(), o2.Precedence()
	return p2 > p1 || (p1 == p2 && o1.IsLeftAssociative())
}
