package internal

import "fmt"

// Force drives the cell from Application to Evaluated, recursively.
//
//	(f arg)
//	------------------- App
//	force f
//	f must be a closure
//	force (f arg)
//	overwrite in place
//
// The argument is left unforced when the closure is applied; forcing it
// here would turn the strategy into call-by-value. Because the closure
// receives the arg ref itself, every use of the parameter inside the body
// aliases one cell, so forcing it once memoizes for all uses.
//
// The final overwrite, rather than returning the result ref, is what makes
// this call-by-need instead of call-by-name: aliases of r established
// before the call observe the value without recomputation.
func (r *Ref) Force() {
	app, ok := r.node.(*AppNode)
	if !ok {
		// Already a value. Idempotent.
		return
	}
	if Trace {
		fmt.Println("forcing:")
		DumpRef(r)
	}
	app.Func.Force()
	fn := app.Func.ExpectClosure()
	result := fn(app.Arg)
	result.Force()
	stats.Reductions++
	r.Overwrite(result.Read())
	if Trace {
		fmt.Println("forced:")
		DumpRef(r)
	}
}

// ForceInt forces r to completion and unboxes the integer result.
func ForceInt(r *Ref) int32 {
	r.Force()
	return r.ExpectInt()
}
