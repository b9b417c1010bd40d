package internal

// Trace, when set, prints each application before and after it is forced.
var Trace bool

// Stats counts heap activity since the last ResetStats. Plain counters:
// the engine is single-threaded by contract.
type Stats struct {
	Allocs     int64 // cells allocated by Int, Lam, and App
	Reductions int64 // applications reduced by Force
	Overwrites int64 // in-place cell updates, redundant ones included
}

var stats Stats

func ReadStats() Stats {
	return stats
}

func ResetStats() {
	stats = Stats{}
}
