package main

// Demonstration programs for the call-by-need engine. Terms are built
// programmatically; there is no surface syntax.

import (
	"fmt"

	need "github.com/brandonbloom/MyGoNeed/internal"
)

var sep = ""

func runMain(name string, build func() *need.Ref) {
	fmt.Print(sep)
	sep = "\n"
	need.ResetStats()
	t := build()
	fmt.Printf("%s\n  input:  ", name)
	need.DumpRef(t)
	t.Force()
	fmt.Print("  output: ")
	need.DumpRef(t)
	st := need.ReadStats()
	fmt.Printf("  allocs=%d reductions=%d overwrites=%d\n", st.Allocs, st.Reductions, st.Overwrites)
}

func main() {
	runMain("identity", func() *need.Ref {
		// (λx.x) 5
		id := need.Lam(func(x *need.Ref) *need.Ref { return x })
		return need.App(id, need.Int(5))
	})

	runMain("fst 5 6", func() *need.Ref {
		// fst = λx.λy.x
		fst := need.Lam2(func(x, y *need.Ref) *need.Ref { return x })
		return need.App(need.App(fst, need.Int(5)), need.Int(6))
	})

	runMain("snd 5 6", func() *need.Ref {
		// snd = λx.λy.y
		snd := need.Lam2(func(x, y *need.Ref) *need.Ref { return y })
		return need.App(need.App(snd, need.Int(5)), need.Int(6))
	})

	runMain("curried triple", func() *need.Ref {
		// (λa.λb.λc.a) 1 2 3
		first := need.Lam3(func(a, b, c *need.Ref) *need.Ref { return a })
		return need.App(need.App(need.App(first, need.Int(1)), need.Int(2)), need.Int(3))
	})

	runMain("inc (inc 10), shared inc", func() *need.Ref {
		inc := need.Inc()
		// incTwice = λn. inc (inc n)
		incTwice := need.Lam(func(n *need.Ref) *need.Ref {
			return need.App(inc, need.App(inc, n))
		})
		return need.App(incTwice, need.Int(10))
	})

	runMain("add x x with a shared argument", func() *need.Ref {
		// Both operands alias one cell; it is forced once.
		shared := need.App(need.Inc(), need.Int(20))
		return need.App(need.App(need.Add(), shared), shared)
	})
}
