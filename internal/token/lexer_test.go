package token

import "testing"

func TestLex(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Token
	}{
		{
			name:    "plain literal",
			pattern: "abc",
			want: []Token{
				{Symbol: 'a', Kind: Normal, Index: 0},
				{Symbol: 'b', Kind: Normal, Index: 1},
				{Symbol: 'c', Kind: Normal, Index: 2},
			},
		},
		{
			name:    "structural metacharacters",
			pattern: "(a|b)+",
			want: []Token{
				{Symbol: '(', Kind: Structural, Index: 0},
				{Symbol: 'a', Kind: Normal, Index: 1},
				{Symbol: '|', Kind: Structural, Index: 2},
				{Symbol: 'b', Kind: Normal, Index: 3},
				{Symbol: ')', Kind: Structural, Index: 4},
				{Symbol: '+', Kind: Structural, Index: 5},
			},
		},
		{
			name:    "dot is special, not structural",
			pattern: ".",
			want:    []Token{{Symbol: '.', Kind: Special, Index: 0}},
		},
		{
			name:    "escape classes",
			pattern: `\d\D\w\W\s\S`,
			want: []Token{
				{Symbol: 'd', Kind: Special, Index: 0},
				{Symbol: 'D', Kind: Special, Index: 2},
				{Symbol: 'w', Kind: Special, Index: 4},
				{Symbol: 'W', Kind: Special, Index: 6},
				{Symbol: 's', Kind: Special, Index: 8},
				{Symbol: 'S', Kind: Special, Index: 10},
			},
		},
		{
			name:    "escaped metacharacter becomes normal",
			pattern: `\.\(\)`,
			want: []Token{
				{Symbol: '.', Kind: Normal, Index: 0},
				{Symbol: '(', Kind: Normal, Index: 2},
				{Symbol: ')', Kind: Normal, Index: 4},
			},
		},
		{
			name:    "escaped newline and tab",
			pattern: `\n\t`,
			want: []Token{
				{Symbol: '\n', Kind: Normal, Index: 0},
				{Symbol: '\t', Kind: Normal, Index: 2},
			},
		},
		{
			name:    "hex escape",
			pattern: `\x41`,
			want:    []Token{{Symbol: 'A', Kind: Normal, Index: 0}},
		},
		{
			name:    "null escape",
			pattern: `\0`,
			want:    []Token{{Symbol: 0, Kind: Normal, Index: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lex(tt.pattern)
			if err != nil {
				t.Fatalf("Lex(%q) returned error: %v", tt.pattern, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Lex(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"trailing backslash", `a\`},
		{"unknown escape", `\q`},
		{"incomplete hex escape", `\x4`},
		{"non-hex digit in hex escape", `\xZZ`},
		{"unmatched close paren", `a)`},
		{"unmatched open paren", `(a`},
		{"unmatched close bracket", `a]`},
		{"unmatched open bracket", `[a`},
		{"mismatched nesting", `(a]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Lex(tt.pattern); err == nil {
				t.Errorf("Lex(%q) succeeded, want error", tt.pattern)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		k    Kind
		want string
	}{
		{Normal, "NORMAL"},
		{Special, "SPECIAL"},
		{Structural, "TOKEN"},
		{Kind(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.k, got, tt.want)
		}
	}
}
