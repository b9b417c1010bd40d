package main

// First-order rendition of the call-by-need engine. Instead of borrowing
// Go closures for abstraction, terms are explicit data with named
// variables, a closure pairs a body with its defining environment, and
// call-by-need comes from mutable thunk cells shared through the
// environment. Strictly more portable than the HOAS embedding; same
// sharing semantics.

import "fmt"

type Term interface {
	isTerm()
}

type LitTerm struct {
	N int32
}

type VarTerm struct {
	Name string
}

type LamTerm struct {
	Param string
	Body  Term
}

type AppTerm struct {
	Func Term
	Arg  Term
}

type Op2Term struct {
	Op Operator
	A  Term
	B  Term
}

type Operator struct {
	Name string
	Func func(a, b int32) int32
}

func (*LitTerm) isTerm() {}
func (*VarTerm) isTerm() {}
func (*LamTerm) isTerm() {}
func (*AppTerm) isTerm() {}
func (*Op2Term) isTerm() {}

func Lit(n int32) *LitTerm { return &LitTerm{N: n} }

func V(name string) *VarTerm { return &VarTerm{Name: name} }

func Lam(param string, body Term) *LamTerm {
	return &LamTerm{Param: param, Body: body}
}

func App(f, arg Term) *AppTerm {
	return &AppTerm{Func: f, Arg: arg}
}

func Op2(op Operator, a, b Term) *Op2Term {
	return &Op2Term{Op: op, A: a, B: b}
}

var Add = Operator{
	Name: "Add",
	Func: func(a, b int32) int32 { return a + b },
}

type Value interface {
	isValue()
}

type IntValue struct {
	N int32
}

type CloValue struct {
	Param string
	Body  Term
	Env   *Env
}

func (*IntValue) isValue() {}
func (*CloValue) isValue() {}

// Env is an immutable chain of bindings; extending it never disturbs a
// closure that captured an earlier chain.
type Env struct {
	Name string
	Cell *Thunk
	Next *Env
}

func (env *Env) bind(name string, cell *Thunk) *Env {
	return &Env{Name: name, Cell: cell, Next: env}
}

func (env *Env) lookup(name string) *Thunk {
	for e := env; e != nil; e = e.Next {
		if e.Name == name {
			return e.Cell
		}
	}
	panic(fmt.Errorf("unbound variable: %s", name))
}

// Thunk is the mutable heap cell: a suspended term with its environment
// until forced, then a value forever. Every variable occurrence bound to
// the cell shares it, so forcing once memoizes for all uses.
type Thunk struct {
	term Term
	env  *Env
	val  Value
}

func suspend(term Term, env *Env) *Thunk {
	return &Thunk{term: term, env: env}
}

func (th *Thunk) force() Value {
	if th.val == nil {
		th.val = eval(th.term, th.env)
		// Release the suspension for the garbage collector.
		th.term = nil
		th.env = nil
	}
	return th.val
}

func eval(t Term, env *Env) Value {
	switch t := t.(type) {
	case *LitTerm:
		return &IntValue{N: t.N}
	case *VarTerm:
		return env.lookup(t.Name).force()
	case *LamTerm:
		return &CloValue{Param: t.Param, Body: t.Body, Env: env}
	case *AppTerm:
		fn, ok := eval(t.Func, env).(*CloValue)
		if !ok {
			panic(fmt.Errorf("expected closure in function position of %s", render(t)))
		}
		// The argument is suspended, not evaluated: call-by-need.
		return eval(fn.Body, fn.Env.bind(fn.Param, suspend(t.Arg, env)))
	case *Op2Term:
		a := evalInt(t.A, env)
		b := evalInt(t.B, env)
		return &IntValue{N: t.Op.Func(a, b)}
	}
	panic(fmt.Errorf("unknown term %T", t))
}

func evalInt(t Term, env *Env) int32 {
	v := eval(t, env)
	i, ok := v.(*IntValue)
	if !ok {
		panic(fmt.Errorf("expected integer, got %T", v))
	}
	return i.N
}

func render(t Term) string {
	switch t := t.(type) {
	case *LitTerm:
		return fmt.Sprintf("%d", t.N)
	case *VarTerm:
		return t.Name
	case *LamTerm:
		return fmt.Sprintf("(lam %s %s)", t.Param, render(t.Body))
	case *AppTerm:
		return fmt.Sprintf("(%s %s)", render(t.Func), render(t.Arg))
	case *Op2Term:
		return fmt.Sprintf("(op2 %s %s %s)", t.Op.Name, render(t.A), render(t.B))
	}
	return fmt.Sprintf("<%T>", t)
}

func renderValue(v Value) string {
	switch v := v.(type) {
	case *IntValue:
		return fmt.Sprintf("%d", v.N)
	case *CloValue:
		return fmt.Sprintf("(lam %s %s)", v.Param, render(v.Body))
	}
	return fmt.Sprintf("<%T>", v)
}

var sep = ""

func runMain(x Term) {
	fmt.Print(sep)
	sep = "\n"
	fmt.Println("input: ", render(x))
	fmt.Println("output:", renderValue(eval(x, nil)))
}

func main() {
	// (λx.x) 5
	runMain(App(Lam("x", V("x")), Lit(5)))

	// fst 5 6
	fst := Lam("x", Lam("y", V("x")))
	runMain(App(App(fst, Lit(5)), Lit(6)))

	// snd 5 6
	snd := Lam("x", Lam("y", V("y")))
	runMain(App(App(snd, Lit(5)), Lit(6)))

	// (λx. x + x) (1 + 2): the argument thunk is shared and forced once.
	runMain(App(Lam("x", Op2(Add, V("x"), V("x"))), Op2(Add, Lit(1), Lit(2))))
}
