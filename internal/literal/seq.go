// Package literal represents literal byte sequences extracted from a
// pattern's syntax tree, for use as a prefilter ahead of the DFA (spec.md
// §4.9's literal-acceleration note): if a pattern requires a fixed literal
// substring anywhere in a match, absence of that literal in the input text
// rules out a match without running the automaton at all.
package literal

import (
	"bytes"
	"sort"
)

// Literal is a concrete byte sequence that may appear in matches. Complete
// reports whether the literal alone constitutes an entire match (true) or
// is only a required prefix/substring of one (false).
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral builds a Literal from b and a completeness flag.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the literal's length in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

func (l Literal) String() string {
	complete := "false"
	if l.Complete {
		complete = "true"
	}
	return "literal{" + string(l.Bytes) + ", complete=" + complete + "}"
}

// Seq is a set of alternative literals, e.g. extracted from an alternation
// like "foo|bar|baz".
type Seq struct {
	literals []Literal
}

// NewSeq builds a Seq from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Clone deep-copies the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		b := make([]byte, len(lit.Bytes))
		copy(b, lit.Bytes)
		cloned[i] = Literal{Bytes: b, Complete: lit.Complete}
	}
	return &Seq{literals: cloned}
}

// Minimize drops literals that are redundant for prefix matching: if a
// shorter literal S is a prefix of L, any occurrence of L also contains S,
// so L adds nothing as a filter and is dropped.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	sort.Slice(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})
	kept := make([]Literal, 0, len(s.literals))
	for _, current := range s.literals {
		redundant := false
		for _, k := range kept {
			if isPrefix(k.Bytes, current.Bytes) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, current)
		}
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest prefix shared by every literal,
// or an empty slice if the sequence is empty or has no common prefix.
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		prefix = commonPrefix(prefix, lit.Bytes)
		if len(prefix) == 0 {
			return []byte{}
		}
	}
	result := make([]byte, len(prefix))
	copy(result, prefix)
	return result
}

// LongestCommonSuffix returns the longest suffix shared by every literal.
func (s *Seq) LongestCommonSuffix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	suffix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		suffix = commonSuffix(suffix, lit.Bytes)
		if len(suffix) == 0 {
			return []byte{}
		}
	}
	result := make([]byte, len(suffix))
	copy(result, suffix)
	return result
}

func isPrefix(prefix, s []byte) bool {
	if len(prefix) > len(s) {
		return false
	}
	return bytes.Equal(prefix, s[:len(prefix)])
}

func commonPrefix(a, b []byte) []byte {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:minLen]
}

func commonSuffix(a, b []byte) []byte {
	aLen, bLen := len(a), len(b)
	minLen := aLen
	if bLen < minLen {
		minLen = bLen
	}
	for i := 0; i < minLen; i++ {
		if a[aLen-1-i] != b[bLen-1-i] {
			if i == 0 {
				return []byte{}
			}
			return a[aLen-i:]
		}
	}
	return a[aLen-minLen:]
}
