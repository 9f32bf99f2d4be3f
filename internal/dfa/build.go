package dfa

import "github.com/coregx/refa/internal/nfa"

// Build runs the full DFA stage of the compile pipeline (spec.md §4.5-§4.7):
// subset construction, then minimization, then sink detection.
func Build(n *nfa.NFA, limits Limits) (*DFA, error) {
	d, err := FromNFA(n, limits)
	if err != nil {
		return nil, err
	}
	return Minimize(d), nil
}
