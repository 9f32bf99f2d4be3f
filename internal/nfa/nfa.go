// Package nfa implements ε-elimination (spec.md §4.4): it turns an ε-NFA
// into an equivalent NFA with no ε-moves, over the alphabet of symbols
// actually observed in the source automaton's transitions.
//
// nfa also carries two small utilities: ByteClasses/ByteClassSet
// (byte-class tables; internal/dfa lays out its transition-table columns
// from Classes, one column per observed symbol) and the CompileError error shape (internal/enfa
// and internal/dfa reuse the same structured-error style).
package nfa

// NFA is (Q, Σ, δ, q0, F) with no ε-moves (spec.md §3). States are
// renumbered 0..N-1 after pruning states unreachable from q0.
type NFA struct {
	numStates int32
	trans     []map[byte][]int32 // trans[q][a] = deduplicated target set, in discovery order
	start     int32
	final     map[int32]bool
	alphabet  map[byte]bool
}

// NumStates returns the number of (reachable) states.
func (n *NFA) NumStates() int32 { return n.numStates }

// Start returns q0.
func (n *NFA) Start() int32 { return n.start }

// IsFinal reports whether q is an accepting state.
func (n *NFA) IsFinal(q int32) bool { return n.final[q] }

// Alphabet returns the set of symbols observed in any transition.
func (n *NFA) Alphabet() map[byte]bool { return n.alphabet }

// Step returns δ(q, a), the (possibly empty, possibly multi-state) target set.
func (n *NFA) Step(q int32, a byte) []int32 {
	if int(q) >= len(n.trans) {
		return nil
	}
	return n.trans[q][a]
}
