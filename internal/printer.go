package internal

import (
	"fmt"
	"io"
	"os"
)

// Printer renders a heap graph in s-expression form. Cells referenced more
// than once are printed as "#n=..." at their first occurrence and "#n"
// afterwards, so sharing (and the effect of memoizing overwrites) is
// visible in the output.
type Printer struct {
	w       io.Writer
	shared  map[*Ref]int // labels for multiply-referenced cells
	printed map[*Ref]bool
	counter int
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		shared:  map[*Ref]int{},
		printed: map[*Ref]bool{},
	}
}

func DumpRef(r *Ref) {
	printer := NewPrinter(os.Stdout)
	printer.Print(r)
	fmt.Println()
}

func (printer *Printer) Print(r *Ref) {
	printer.mark(r, map[*Ref]int{})
	printer.print(r)
}

// mark counts in-degrees; a cell reached a second time gets a label.
// Recursion descends only on the first arrival, which also terminates
// cyclic graphs.
func (printer *Printer) mark(r *Ref, degree map[*Ref]int) {
	degree[r]++
	if degree[r] == 2 {
		printer.counter++
		printer.shared[r] = printer.counter
	}
	if degree[r] > 1 {
		return
	}
	if app, ok := r.Read().(*AppNode); ok {
		printer.mark(app.Func, degree)
		printer.mark(app.Arg, degree)
	}
}

func (printer *Printer) printf(format string, v ...interface{}) {
	_, _ = fmt.Fprintf(printer.w, format, v...)
}

func (printer *Printer) print(r *Ref) {
	if id, ok := printer.shared[r]; ok {
		if printer.printed[r] {
			printer.printf("#%d", id)
			return
		}
		printer.printed[r] = true
		printer.printf("#%d=", id)
	}
	switch node := r.Read().(type) {
	case *AppNode:
		printer.printf("(app ")
		printer.print(node.Func)
		printer.printf(" ")
		printer.print(node.Arg)
		printer.printf(")")
	case *ValueNode:
		switch v := node.Value.(type) {
		case *IntValue:
			printer.printf("%d", v.N)
		case *ClosureValue:
			printer.printf("<closure>")
		default:
			printer.printf("<%v>", v)
		}
	}
}
