package nfa

import (
	"testing"

	"github.com/coregx/refa/internal/enfa"
	"github.com/coregx/refa/internal/parsetree"
	"github.com/coregx/refa/internal/token"
)

func build(t *testing.T, pattern string) *NFA {
	t.Helper()
	toks, err := token.Lex(pattern)
	if err != nil {
		t.Fatalf("Lex(%q): %v", pattern, err)
	}
	tree, err := parsetree.Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	e, err := enfa.Build(tree, enfa.Limits{MaxExactProduct: 1000})
	if err != nil {
		t.Fatalf("enfa.Build(%q): %v", pattern, err)
	}
	return FromENFA(e)
}

// accepts runs n as a (possibly nondeterministic) NFA over s.
func accepts(n *NFA, s string) bool {
	cur := map[int32]bool{n.Start(): true}
	for i := 0; i < len(s); i++ {
		b := s[i]
		next := map[int32]bool{}
		for q := range cur {
			for _, t := range n.Step(q, b) {
				next[t] = true
			}
		}
		cur = next
	}
	for q := range cur {
		if n.IsFinal(q) {
			return true
		}
	}
	return false
}

func TestFromENFAAcceptance(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"a", []string{"a"}, []string{"", "aa", "b"}},
		{"a|b", []string{"a", "b"}, []string{"ab", "c"}},
		{"a*b", []string{"b", "ab", "aaab"}, []string{"a", ""}},
		{"(ab)+", []string{"ab", "abab", "ababab"}, []string{"a", "aba", ""}},
		{"a{2,3}", []string{"aa", "aaa"}, []string{"a", "aaaa"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := build(t, tt.pattern)
			for _, s := range tt.accept {
				if !accepts(n, s) {
					t.Errorf("pattern %q: expected to accept %q", tt.pattern, s)
				}
			}
			for _, s := range tt.reject {
				if accepts(n, s) {
					t.Errorf("pattern %q: expected to reject %q", tt.pattern, s)
				}
			}
		})
	}
}

func TestFromENFANoEpsilons(t *testing.T) {
	// There is no direct way to observe ε-edges on NFA (they don't exist in
	// its type), so this checks the structural guarantee indirectly: every
	// state reachable from q0 appears in the pruned, contiguous numbering.
	n := build(t, "a*b|c+")
	if n.Start() != 0 {
		t.Errorf("Start() = %d, want 0 (pruning always keeps q0 at index 0)", n.Start())
	}
	if n.NumStates() <= 0 {
		t.Errorf("NumStates() = %d, want > 0", n.NumStates())
	}
}

func TestFromENFAAlphabet(t *testing.T) {
	n := build(t, "a|b")
	alpha := n.Alphabet()
	if !alpha['a'] || !alpha['b'] {
		t.Errorf("Alphabet() = %v, want a and b present", alpha)
	}
	if alpha['c'] {
		t.Errorf("Alphabet() unexpectedly contains 'c'")
	}
}
