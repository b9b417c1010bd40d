package internal

// Value is a closed, fully evaluated term: a boxed integer or a closure.
// The calculus is untyped, so adding term kinds (booleans, pairs, ...)
// means adding variants here.
type Value interface {
	isValue()
}

type IntValue struct {
	N int32
}

type ClosureValue struct {
	Fn Closure
}

// Closure is an opaque host callable: the calculus borrows Go's own
// closures for abstraction (higher-order abstract syntax), so there is no
// variable-binding term form. Applying a closure to one (possibly
// unevaluated) argument ref yields one result ref; currying is a closure
// whose result is another closure value.
type Closure func(arg *Ref) *Ref

func (*IntValue) isValue()     {}
func (*ClosureValue) isValue() {}
