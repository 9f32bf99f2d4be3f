package parsetree

import (
	"testing"

	"github.com/coregx/refa/internal/token"
)

func mustLex(t *testing.T, pattern string) []token.Token {
	t.Helper()
	toks, err := token.Lex(pattern)
	if err != nil {
		t.Fatalf("Lex(%q): %v", pattern, err)
	}
	return toks
}

// soleChild returns the single child of n, which must be a one-child
// Concatenation: the collapsing rule keeps that wrapper around an atom that
// carries a quantifier.
func soleChild(t *testing.T, n *Node) *Node {
	t.Helper()
	if n.Kind != KindConcatenation || len(n.Children) != 1 {
		t.Fatalf("got %+v, want 1-child Concatenation wrapping the quantified atom", n)
	}
	return n.Children[0]
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		check   func(t *testing.T, n *Node)
	}{
		{
			name:    "single literal collapses to a Symbol leaf",
			pattern: "a",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindSymbol || n.Ch != 'a' {
					t.Fatalf("got %+v, want Symbol('a')", n)
				}
			},
		},
		{
			name:    "concatenation of literals",
			pattern: "abc",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindConcatenation || len(n.Children) != 3 {
					t.Fatalf("got %+v, want 3-child Concatenation", n)
				}
			},
		},
		{
			name:    "alternative of two branches",
			pattern: "a|b",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindAlternative || len(n.Children) != 2 {
					t.Fatalf("got %+v, want 2-branch Alternative", n)
				}
			},
		},
		{
			name:    "empty alternative branch",
			pattern: "|",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindAlternative || len(n.Children) != 2 {
					t.Fatalf("got %+v, want 2-branch Alternative with empty concats", n)
				}
				for _, c := range n.Children {
					if c.Kind != KindConcatenation || len(c.Children) != 0 {
						t.Errorf("branch = %+v, want empty Concatenation", c)
					}
				}
			},
		},
		{
			name:    "star quantifier",
			pattern: "a*",
			check: func(t *testing.T, n *Node) {
				if q := soleChild(t, n).Quant; q.Kind != QuantStar {
					t.Fatalf("got quant %+v, want QuantStar", q)
				}
			},
		},
		{
			name:    "question mark is EXACT(0,1)",
			pattern: "a?",
			check: func(t *testing.T, n *Node) {
				if q := soleChild(t, n).Quant; q.Kind != QuantExact || q.Min != 0 || q.Max != 1 {
					t.Fatalf("got quant %+v, want EXACT(0,1)", q)
				}
			},
		},
		{
			name:    "exact range quantifier",
			pattern: "a{2,5}",
			check: func(t *testing.T, n *Node) {
				if n.Quant.Kind != QuantExact || n.Quant.Min != 2 || n.Quant.Max != 5 {
					t.Fatalf("got quant %+v, want EXACT(2,5)", n.Quant)
				}
			},
		},
		{
			name:    "exact single-count quantifier",
			pattern: "a{3}",
			check: func(t *testing.T, n *Node) {
				if q := soleChild(t, n).Quant; q.Kind != QuantExact || q.Min != 3 || q.Max != 3 {
					t.Fatalf("got quant %+v, want EXACT(3,3)", q)
				}
			},
		},
		{
			name:    "group with alternation inside",
			pattern: "(a|b)c",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindConcatenation || len(n.Children) != 2 {
					t.Fatalf("got %+v, want 2-child Concatenation", n)
				}
				if n.Children[0].Kind != KindAlternative {
					t.Errorf("first child = %+v, want Alternative", n.Children[0])
				}
			},
		},
		{
			name:    "character set expands to an Alternative of Symbols",
			pattern: "[ac]",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindAlternative || len(n.Children) != 2 {
					t.Fatalf("got %+v, want 2-branch Alternative", n)
				}
			},
		},
		{
			name:    "character range expands every member",
			pattern: "[a-c]",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindAlternative || len(n.Children) != 3 {
					t.Fatalf("got %+v, want 3-branch Alternative (a,b,c)", n)
				}
			},
		},
		{
			name:    "leading dash in a set is literal",
			pattern: "[-a]",
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindAlternative || len(n.Children) != 2 {
					t.Fatalf("got %+v, want 2-branch Alternative", n)
				}
				if n.Children[0].Ch != '-' {
					t.Errorf("first branch = %+v, want Symbol('-')", n.Children[0])
				}
			},
		},
		{
			name:    "special escape class inside a set",
			pattern: `[\d]`,
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindSpecialSymbol || n.Code != 'd' {
					t.Fatalf("got %+v, want SpecialSymbol('d')", n)
				}
			},
		},
		{
			name:    "dot inside a set is literal",
			pattern: `[.]`,
			check: func(t *testing.T, n *Node) {
				if n.Kind != KindSymbol || n.Ch != '.' {
					t.Fatalf("got %+v, want Symbol('.')", n)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(mustLex(t, tt.pattern))
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.pattern, err)
			}
			tt.check(t, n)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"reversed quantifier range", "a{5,2}"},
		{"reversed character range", "[c-a]"},
		{"empty character range (equal endpoints rejected as reversed)", "[a-a]"},
		{"empty character set", "[]"},
		{"malformed quantifier missing digits", "a{}"},
		{"malformed quantifier missing close brace", "a{2"},
		{"structural token inside a set", "[a(b)]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := mustLex(t, tt.pattern)
			if _, err := Parse(toks); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.pattern)
			}
		})
	}
}

func TestQuantifierHelpers(t *testing.T) {
	if None.Kind != QuantNone {
		t.Errorf("None.Kind = %v, want QuantNone", None.Kind)
	}
	opt := Optional()
	if opt.Kind != QuantExact || opt.Min != 0 || opt.Max != 1 {
		t.Errorf("Optional() = %+v, want EXACT(0,1)", opt)
	}
}

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		k    NodeKind
		want string
	}{
		{KindSymbol, "Symbol"},
		{KindSpecialSymbol, "SpecialSymbol"},
		{KindConcatenation, "Concatenation"},
		{KindAlternative, "Alternative"},
		{NodeKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("NodeKind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
