package dfa

import (
	"sort"

	"github.com/coregx/refa/internal/intconv"
	"github.com/coregx/refa/internal/nfa"
	"github.com/coregx/refa/internal/rerr"
	"github.com/coregx/refa/internal/stateset"
)

// Limits bounds subset construction's state blow-up (spec.md §5).
type Limits struct {
	MaxDFAStates int
}

// FromNFA runs subset construction over n's alphabet (spec.md §4.5): the
// frontier starts at {q0}, macro-states are indexed in first-discovery
// order (so {q0} always gets index 0), and δ is total — the empty
// macro-state becomes an ordinary dead state whose every transition targets
// itself, giving subset construction its own built-in sink.
func FromNFA(n *nfa.NFA, limits Limits) (*DFA, error) {
	alphabet, class := columnTable(n)

	type macro = string // canonical key: sorted state IDs, each packed as 4 bytes plus ','

	keyOf := func(states []int32) macro {
		sorted := append([]int32(nil), states...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		buf := make([]byte, 0, len(sorted)*5)
		for _, s := range sorted {
			buf = append(buf, byte(s>>24), byte(s>>16), byte(s>>8), byte(s), ',')
		}
		return macro(buf)
	}

	indexOf := map[macro]int32{}
	var members [][]int32

	startKey := keyOf([]int32{n.Start()})
	indexOf[startKey] = 0
	members = append(members, []int32{n.Start()})

	trans := [][]int32{}
	frontier := []int32{0}

	for len(frontier) > 0 {
		m := frontier[0]
		frontier = frontier[1:]

		row := make([]int32, len(alphabet))
		for i, a := range alphabet {
			target := unionStep(n, members[m], a)
			key := keyOf(target)
			idx, ok := indexOf[key]
			if !ok {
				idx = intconv.ToInt32(len(members))
				if limits.MaxDFAStates > 0 && int(idx) >= limits.MaxDFAStates {
					return nil, &rerr.ResourceError{
						Limit: limits.MaxDFAStates,
						Msg:   "subset construction exceeded state limit",
					}
				}
				indexOf[key] = idx
				members = append(members, target)
				frontier = append(frontier, idx)
			}
			row[i] = idx
		}
		for int(m) >= len(trans) {
			trans = append(trans, nil)
		}
		trans[m] = row
	}

	final := map[int32]bool{}
	for idx, states := range members {
		for _, s := range states {
			if n.IsFinal(s) {
				final[int32(idx)] = true
				break
			}
		}
	}

	return &DFA{
		numStates: int32(len(members)),
		alphabet:  alphabet,
		trans:     trans,
		class:     class,
		numCols:   len(alphabet),
		start:     0,
		final:     final,
		sink:      -1,
	}, nil
}

// columnTable derives the subset-construction column layout from n's
// byte-class partition (internal/nfa's alphabet-compression utility): every
// observed symbol gets its own class there, so this just walks byte classes
// in ascending order to assign each one a column, leaving unobserved bytes
// mapped to no column (class -1, i.e. outside Σ). Using nfa.Classes here
// rather than re-deriving columns from n.Alphabet() directly means a future
// nfa.Classes that genuinely merges equivalent symbols (not just isolates
// observed ones) shrinks DFA transition tables for free.
func columnTable(n *nfa.NFA) ([]byte, [256]int16) {
	bc := nfa.Classes(n)
	observed := n.Alphabet()

	var alphabet []byte
	var class [256]int16
	for i := range class {
		class[i] = -1
	}

	col := map[byte]int16{} // byte-class ID -> column index
	for b := 0; b < 256; b++ {
		if !observed[byte(b)] {
			continue
		}
		classID := bc.Get(byte(b))
		idx, ok := col[classID]
		if !ok {
			idx = int16(len(alphabet))
			col[classID] = idx
			alphabet = append(alphabet, byte(b))
		}
		class[b] = idx
	}
	return alphabet, class
}

// unionStep computes ⋃ δ(s,a) over states. The target IDs are bounded by
// n.NumStates(), so a stateset.Set gives O(1) membership testing during the
// union the same way epsilonClosure uses one for ε-closure DFS (internal/nfa's
// closure.go).
func unionStep(n *nfa.NFA, states []int32, a byte) []int32 {
	seen := stateset.New(int(n.NumStates()))
	for _, s := range states {
		for _, t := range n.Step(s, a) {
			seen.Insert(t)
		}
	}
	return append([]int32(nil), seen.Members()...)
}
