// Package enfa implements Thompson-style ε-NFA construction from a syntax
// tree (spec.md §4.3). States are integers allocated from 0 in creation
// order; a single accept state terminates every compiled fragment.
package enfa

import "github.com/coregx/refa/internal/intconv"

// SymTrans is one non-ε transition: on Sym, move to Target.
type SymTrans struct {
	Sym    byte
	Target int32
}

// state holds one ε-NFA state's outgoing transitions.
type state struct {
	trans []SymTrans
	eps   []int32
}

// ENFA is the ε-NFA produced by Build: (Q, Σ∪{ε}, δ, q0, qf).
type ENFA struct {
	states []state
	Start  int32
	Accept int32
}

func newENFA() *ENFA {
	return &ENFA{}
}

func (e *ENFA) newState() int32 {
	id := intconv.ToInt32(len(e.states))
	e.states = append(e.states, state{})
	return id
}

func (e *ENFA) addSymbol(from int32, sym byte, to int32) {
	e.states[from].trans = append(e.states[from].trans, SymTrans{Sym: sym, Target: to})
}

func (e *ENFA) addEps(from, to int32) {
	e.states[from].eps = append(e.states[from].eps, to)
}

// NumStates returns the number of allocated states.
func (e *ENFA) NumStates() int {
	return len(e.states)
}

// SymbolTransitions returns the (symbol, target) pairs leaving state q.
func (e *ENFA) SymbolTransitions(q int32) []SymTrans {
	return e.states[q].trans
}

// EpsilonTargets returns the states reachable from q via a single ε-edge.
func (e *ENFA) EpsilonTargets(q int32) []int32 {
	return e.states[q].eps
}
