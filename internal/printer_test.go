package internal

import (
	"bytes"
	"testing"
)

func render(r *Ref) string {
	var buf bytes.Buffer
	NewPrinter(&buf).Print(r)
	return buf.String()
}

func TestPrintLeavesAndApplications(t *testing.T) {
	if got := render(Int(7)); got != "7" {
		t.Fatalf("int: got %q", got)
	}
	id := Lam(func(x *Ref) *Ref { return x })
	if got := render(id); got != "<closure>" {
		t.Fatalf("closure: got %q", got)
	}
	if got := render(App(id, Int(7))); got != "(app <closure> 7)" {
		t.Fatalf("application: got %q", got)
	}
}

func TestPrintSharedCells(t *testing.T) {
	shared := Int(4)
	pair := Lam2(func(x, y *Ref) *Ref { return x })
	top := App(App(pair, shared), shared)
	got := render(top)
	want := "(app (app <closure> #1=4) #1)"
	if got != want {
		t.Fatalf("shared graph: got %q, want %q", got, want)
	}
}

func TestPrintCyclicGraphTerminates(t *testing.T) {
	cell := App(Int(1), Int(2))
	cell.Overwrite(&AppNode{Func: cell, Arg: cell})
	got := render(cell)
	want := "#1=(app #1 #1)"
	if got != want {
		t.Fatalf("cyclic graph: got %q, want %q", got, want)
	}
}
