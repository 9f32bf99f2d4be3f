package dfa

// detectSink scans non-accepting states for the first whose every
// transition targets itself (spec.md §4.7), recording it as d.sink.
func detectSink(d *DFA) {
	d.sink = -1
	for q := int32(0); q < d.numStates; q++ {
		if d.final[q] {
			continue
		}
		if isSelfLoop(d, q) {
			d.sink = q
			return
		}
	}
}

func isSelfLoop(d *DFA, q int32) bool {
	row := d.trans[q]
	for _, target := range row {
		if target != q {
			return false
		}
	}
	return true
}
