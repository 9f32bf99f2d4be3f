package nfa

import (
	"github.com/coregx/refa/internal/enfa"
	"github.com/coregx/refa/internal/stateset"
)

// FromENFA eliminates ε-moves (spec.md §4.4): it computes the ε-closure of
// every ε-NFA state by DFS over ε-edges, derives δ'(q,a) = ⋃ E(δ(E(q),a)),
// and finally prunes states unreachable from q0.
func FromENFA(e *enfa.ENFA) *NFA {
	n := e.NumStates()
	closures := make([][]int32, n)
	for q := int32(0); q < int32(n); q++ {
		closures[q] = epsilonClosure(e, q)
	}

	alphabet := map[byte]bool{}
	for q := int32(0); q < int32(n); q++ {
		for _, t := range e.SymbolTransitions(q) {
			alphabet[t.Sym] = true
		}
	}

	finalRaw := map[int32]bool{}
	for q := int32(0); q < int32(n); q++ {
		if inClosure(closures[q], e.Accept) {
			finalRaw[q] = true
		}
	}

	trans := make([]map[byte][]int32, n)
	for q := int32(0); q < int32(n); q++ {
		targets := map[byte]*stateset.Set{}
		for _, p := range closures[q] {
			for _, t := range e.SymbolTransitions(p) {
				set, ok := targets[t.Sym]
				if !ok {
					set = stateset.New(n)
					targets[t.Sym] = set
				}
				for _, r := range closures[t.Target] {
					set.Insert(r)
				}
			}
		}
		if len(targets) == 0 {
			continue
		}
		m := make(map[byte][]int32, len(targets))
		for sym, set := range targets {
			if set.Len() == 0 {
				continue
			}
			members := append([]int32(nil), set.Members()...)
			m[sym] = members
		}
		if len(m) > 0 {
			trans[q] = m
		}
	}

	return prune(&NFA{
		numStates: int32(n),
		trans:     trans,
		start:     e.Start,
		final:     finalRaw,
		alphabet:  alphabet,
	})
}

func epsilonClosure(e *enfa.ENFA, q int32) []int32 {
	visited := stateset.New(e.NumStates())
	stack := []int32{q}
	visited.Insert(q)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range e.EpsilonTargets(cur) {
			if !visited.Contains(next) {
				visited.Insert(next)
				stack = append(stack, next)
			}
		}
	}
	return visited.Members()
}

func inClosure(closure []int32, q int32) bool {
	for _, s := range closure {
		if s == q {
			return true
		}
	}
	return false
}

// prune removes states unreachable from q0 via δ', renumbering the
// survivors to a contiguous 0..k-1 range (spec.md §4.4).
func prune(n *NFA) *NFA {
	reachable := stateset.New(int(n.numStates))
	order := []int32{n.start}
	reachable.Insert(n.start)
	for i := 0; i < len(order); i++ {
		q := order[i]
		if int(q) >= len(n.trans) || n.trans[q] == nil {
			continue
		}
		for _, targets := range n.trans[q] {
			for _, t := range targets {
				if !reachable.Contains(t) {
					reachable.Insert(t)
					order = append(order, t)
				}
			}
		}
	}

	remap := make(map[int32]int32, len(order))
	for newID, oldID := range order {
		remap[oldID] = int32(newID)
	}

	newTrans := make([]map[byte][]int32, len(order))
	newFinal := map[int32]bool{}
	for newID, oldID := range order {
		if n.final[oldID] {
			newFinal[int32(newID)] = true
		}
		old := n.trans[oldID]
		if old == nil {
			continue
		}
		m := make(map[byte][]int32, len(old))
		for sym, targets := range old {
			remapped := make([]int32, len(targets))
			for i, t := range targets {
				remapped[i] = remap[t]
			}
			m[sym] = remapped
		}
		newTrans[newID] = m
	}

	return &NFA{
		numStates: int32(len(order)),
		trans:     newTrans,
		start:     0,
		final:     newFinal,
		alphabet:  n.alphabet,
	}
}
