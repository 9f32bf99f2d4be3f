package refa

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/coregx/refa/internal/dfa"
)

// container is the on-wire shape of a packed Regex: the source pattern
// (kept for String() and re-display, not re-parsed on Unpack) plus the
// compiled DFA's raw snapshot (spec.md §6).
type container struct {
	Pattern string
	DFA     dfa.Raw
}

// Pack serializes the compiled automaton with encoding/gob, skipping the
// compile pipeline entirely on the matching side of a later Unpack.
func (r *Regex) Pack() ([]byte, error) {
	c := container{Pattern: r.pattern, DFA: r.dfa.Export()}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&c); err != nil {
		return nil, fmt.Errorf("refa: pack %q: %w", r.pattern, err)
	}
	return buf.Bytes(), nil
}

// Unpack reconstructs a Regex from bytes produced by Pack. The result
// matches identically to the original but carries no prefilter: literal
// extraction runs over the syntax tree, which Pack does not preserve.
func Unpack(data []byte) (*Regex, error) {
	var c container
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&c); err != nil {
		return nil, fmt.Errorf("refa: unpack: %w", err)
	}
	return &Regex{pattern: c.Pattern, dfa: dfa.FromRaw(c.DFA)}, nil
}
