// Package dfa builds a deterministic automaton from an ε-free NFA (spec.md
// §4.5-§4.7): subset construction, Hopcroft-style partition-refinement
// minimization, and sink-state detection.
package dfa

// DFA is (Q, Σ, δ, q0, F, sink?) (spec.md §3). δ is total on Σ: every state
// has exactly one transition per symbol in Σ, including the dead state that
// subset construction produces for the empty macro-state.
type DFA struct {
	numStates int32
	alphabet  []byte      // Σ, the symbols observed in the source NFA
	trans     [][]int32   // trans[q][classOf(a)] = δ(q,a)
	class     [256]int16  // byte -> column index into trans[q], -1 if outside Σ
	numCols   int
	start     int32
	final     map[int32]bool
	sink      int32 // -1 if none
}

// NumStates returns |Q|.
func (d *DFA) NumStates() int32 { return d.numStates }

// Start returns q0, always 0.
func (d *DFA) Start() int32 { return d.start }

// IsFinal reports whether q is in F.
func (d *DFA) IsFinal(q int32) bool { return d.final[q] }

// HasSink reports whether a sink state was detected.
func (d *DFA) HasSink() bool { return d.sink >= 0 }

// Sink returns the sink state index, or -1 if none exists.
func (d *DFA) Sink() int32 { return d.sink }

// Alphabet returns the symbols Σ the DFA was built over.
func (d *DFA) Alphabet() []byte { return d.alphabet }

// InAlphabet reports whether b was observed while compiling the pattern.
// Matching rejects bytes outside Σ immediately (spec.md §4.8).
func (d *DFA) InAlphabet(b byte) bool {
	return d.classIndex(b) >= 0
}

// classIndex returns the column index for byte b, or -1 if b was never
// assigned a class (i.e. it's outside Σ).
func (d *DFA) classIndex(b byte) int {
	return int(d.class[b])
}

// Step returns δ(q, a). Callers must check InAlphabet(a) first; Step panics
// on an out-of-alphabet byte since that's a matching-loop bug, not bad input.
func (d *DFA) Step(q int32, a byte) int32 {
	idx := d.classIndex(a)
	if idx < 0 {
		panic("refa/dfa: Step called with out-of-alphabet byte")
	}
	return d.trans[q][idx]
}

// Raw is a serializable snapshot of (Q, Σ, δ, q0, F, sink?), for
// encoding/gob round-tripping (spec.md §6).
type Raw struct {
	NumStates int32
	Alphabet  []byte
	Trans     [][]int32
	Start     int32
	Final     []int32
	Sink      int32
}

// Export snapshots d into its serializable form.
func (d *DFA) Export() Raw {
	final := make([]int32, 0, len(d.final))
	for q := range d.final {
		final = append(final, q)
	}
	return Raw{
		NumStates: d.numStates,
		Alphabet:  append([]byte(nil), d.alphabet...),
		Trans:     d.trans,
		Start:     d.start,
		Final:     final,
		Sink:      d.sink,
	}
}

// FromRaw rebuilds a DFA from a snapshot produced by Export.
func FromRaw(raw Raw) *DFA {
	var class [256]int16
	for i := range class {
		class[i] = -1
	}
	for i, a := range raw.Alphabet {
		class[a] = int16(i)
	}

	final := map[int32]bool{}
	for _, q := range raw.Final {
		final[q] = true
	}

	return &DFA{
		numStates: raw.NumStates,
		alphabet:  raw.Alphabet,
		trans:     raw.Trans,
		class:     class,
		numCols:   len(raw.Alphabet),
		start:     raw.Start,
		final:     final,
		sink:      raw.Sink,
	}
}
