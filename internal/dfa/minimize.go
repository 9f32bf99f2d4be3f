package dfa

// Minimize applies partition-refinement minimization (spec.md §4.6,
// Hopcroft-style but not required to hit the O(n log n) bound): start from
// the two-block partition {Q\F, F}, then repeatedly split any block whose
// members disagree on which block some symbol's transition lands in, until
// no block splits further. The final blocks become the minimized DFA's
// states.
func Minimize(d *DFA) *DFA {
	partition := initialPartition(d)
	for {
		next, changed := refine(d, partition)
		partition = next
		if !changed {
			break
		}
	}
	return rebuild(d, partition)
}

// initialPartition assigns every state a block id: 0 for non-accepting
// states, 1 for accepting states.
func initialPartition(d *DFA) []int32 {
	block := make([]int32, d.numStates)
	for q := int32(0); q < d.numStates; q++ {
		if d.final[q] {
			block[q] = 1
		} else {
			block[q] = 0
		}
	}
	return block
}

// refine splits every block into maximal equivalence classes under the
// current partition: two states in the same block stay together only if,
// for every symbol, their successors' blocks agree. Returns the refined
// partition and whether anything changed.
func refine(d *DFA, block []int32) ([]int32, bool) {
	type signature string

	sigOf := func(q int32) signature {
		buf := make([]byte, 0, d.numCols*4+4)
		row := d.trans[q]
		for _, target := range row {
			b := block[target]
			buf = append(buf, byte(b>>24), byte(b>>16), byte(b>>8), byte(b))
		}
		return signature(buf)
	}

	// Group states by (old block, signature) to find the new, finer blocks.
	next := make([]int32, d.numStates)
	nextBlockCount := int32(0)
	changed := false

	// Process in old-block order so block numbering stays deterministic and
	// stable across iterations.
	maxOld := int32(0)
	for _, b := range block {
		if b > maxOld {
			maxOld = b
		}
	}
	for old := int32(0); old <= maxOld; old++ {
		sigs := map[signature]int32{}
		for q := int32(0); q < d.numStates; q++ {
			if block[q] != old {
				continue
			}
			s := sigOf(q)
			id, ok := sigs[s]
			if !ok {
				id = nextBlockCount
				sigs[s] = id
				nextBlockCount++
			}
			next[q] = id
		}
		if len(sigs) > 1 {
			changed = true
		}
	}

	return next, changed
}

// rebuild constructs the minimized DFA from the final partition: one state
// per block, transitions inherited from any member (well-defined since
// refine only stops once all members of a block agree).
func rebuild(d *DFA, block []int32) *DFA {
	numBlocks := int32(0)
	for _, b := range block {
		if b+1 > numBlocks {
			numBlocks = b + 1
		}
	}

	// q0 must be block index 0 (spec.md §3): swap whichever block the start
	// state landed in with block 0.
	startBlock := block[d.start]
	if startBlock != 0 {
		for q := range block {
			switch block[q] {
			case 0:
				block[q] = startBlock
			case startBlock:
				block[q] = 0
			}
		}
	}

	// Representative state for each block.
	rep := make([]int32, numBlocks)
	seen := make([]bool, numBlocks)
	for q := int32(0); q < d.numStates; q++ {
		b := block[q]
		if !seen[b] {
			seen[b] = true
			rep[b] = q
		}
	}

	trans := make([][]int32, numBlocks)
	final := map[int32]bool{}
	for b := int32(0); b < numBlocks; b++ {
		q := rep[b]
		row := make([]int32, d.numCols)
		for i, target := range d.trans[q] {
			row[i] = block[target]
		}
		trans[b] = row
		if d.final[q] {
			final[b] = true
		}
	}

	out := &DFA{
		numStates: numBlocks,
		alphabet:  d.alphabet,
		trans:     trans,
		class:     d.class,
		numCols:   d.numCols,
		start:     block[d.start],
		final:     final,
		sink:      -1,
	}
	detectSink(out)
	return out
}
