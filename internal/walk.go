package internal

// Walk visits every cell reachable from r through application edges,
// pre-order, each cell at most once, so shared and cyclic graphs are safe.
// Closures are opaque; their captured refs are not reachable this way.
func Walk(r *Ref, visit func(*Ref)) {
	seen := make(map[*Ref]bool)
	var walk func(*Ref)
	walk = func(r *Ref) {
		if seen[r] {
			return
		}
		seen[r] = true
		visit(r)
		if app, ok := r.Read().(*AppNode); ok {
			walk(app.Func)
			walk(app.Arg)
		}
	}
	walk(r)
}

// NodeCount reports the number of distinct cells reachable from r.
func NodeCount(r *Ref) int {
	n := 0
	Walk(r, func(*Ref) { n++ })
	return n
}
