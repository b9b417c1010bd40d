package internal

import "testing"

func TestNodeCountSharedGraph(t *testing.T) {
	// shared is one cell no matter how many edges point at it.
	shared := App(Inc(), Int(1))
	top := App(App(Add(), shared), shared)

	// top, inner app, add closure, shared app, inc closure, literal.
	if got := NodeCount(top); got != 6 {
		t.Fatalf("reachable cells = %d, want 6", got)
	}

	// Forcing collapses the whole graph into one evaluated cell.
	if got := ForceInt(top); got != 4 {
		t.Fatalf("forced value = %d, want 4", got)
	}
	if got := NodeCount(top); got != 1 {
		t.Fatalf("reachable cells after force = %d, want 1", got)
	}
}

func TestWalkTerminatesOnCycle(t *testing.T) {
	cell := App(Int(1), Int(2))
	cell.Overwrite(&AppNode{Func: cell, Arg: cell})
	if got := NodeCount(cell); got != 1 {
		t.Fatalf("cyclic cell census = %d, want 1", got)
	}
}
