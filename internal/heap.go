package internal

import "fmt"

// Node is the contents of one mutable heap cell: either an unevaluated
// application of two refs, or an already evaluated Value.
type Node interface {
	isNode()
}

// AppNode is the unevaluated state: "apply Func to Arg".
type AppNode struct {
	Func *Ref
	Arg  *Ref
}

// ValueNode is the terminal state. Force never transitions a cell back.
type ValueNode struct {
	Value Value
}

func (*AppNode) isNode()   {}
func (*ValueNode) isNode() {}

// Ref is a shared handle to one heap cell. Copying a *Ref aliases the
// cell, which is what implements sharing: once Force overwrites the cell,
// every alias observes the value. The Go garbage collector stands in for
// reference counting, so cells (cyclic ones included) are reclaimed when
// unreachable.
//
// Cells are single-threaded state. Overwrite and Force must not run
// concurrently or reentrantly on the same cell; this is a precondition of
// the embedding, not a checked condition.
type Ref struct {
	node Node
}

func newRef(node Node) *Ref {
	stats.Allocs++
	return &Ref{node: node}
}

// Int allocates an evaluated integer cell.
func Int(n int32) *Ref {
	return newRef(&ValueNode{Value: &IntValue{N: n}})
}

// Lam allocates an evaluated closure cell.
func Lam(f Closure) *Ref {
	return newRef(&ValueNode{Value: &ClosureValue{Fn: f}})
}

// App allocates an unevaluated application cell. Nothing is evaluated;
// building an application is free.
func App(f, arg *Ref) *Ref {
	return newRef(&AppNode{Func: f, Arg: arg})
}

// Read returns a snapshot of the cell's current tag and contents.
func (r *Ref) Read() Node {
	return r.node
}

// Overwrite replaces the cell contents in place; every alias of the cell
// observes the new contents on its next Read. This is the memoization
// primitive used by Force.
func (r *Ref) Overwrite(node Node) {
	stats.Overwrites++
	r.node = node
}

func (r *Ref) expectValue() Value {
	v, ok := r.node.(*ValueNode)
	if !ok {
		panic(fmt.Errorf("not a value: unevaluated application"))
	}
	return v.Value
}

// ExpectInt reads the cell, which must already be an evaluated integer.
func (r *Ref) ExpectInt() int32 {
	v, ok := r.expectValue().(*IntValue)
	if !ok {
		panic(fmt.Errorf("expected integer, got %T", r.expectValue()))
	}
	return v.N
}

// ExpectClosure reads the cell, which must already be an evaluated closure.
func (r *Ref) ExpectClosure() Closure {
	v, ok := r.expectValue().(*ClosureValue)
	if !ok {
		panic(fmt.Errorf("expected closure, got %T", r.expectValue()))
	}
	return v.Fn
}
