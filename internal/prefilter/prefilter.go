// Package prefilter finds candidate match positions from literals extracted
// by internal/literal, ahead of running the compiled DFA. A prefilter never
// changes what counts as a match: it only skips positions the DFA could not
// possibly accept at, so Find's result is always re-verified by the caller's
// DFA run.
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/refa/internal/literal"
)

// Prefilter locates the next byte offset at or after start where a
// necessary literal occurs.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start, or
	// -1 if no candidate occurs in haystack[start:].
	Find(haystack []byte, start int) int

	// HeapBytes reports the prefilter's heap footprint, for diagnostics.
	HeapBytes() int
}

// Build selects the cheapest effective prefilter for seq, or nil if seq has
// no literals worth filtering on.
func Build(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return &byteFilter{needle: lit.Bytes[0]}
		}
		return &substringFilter{needle: append([]byte(nil), lit.Bytes...)}
	}

	// Multiple literals: an existence prefilter over all of them at once,
	// via Aho-Corasick rather than a sequential scan per literal.
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &multiFilter{auto: auto}
}

type byteFilter struct {
	needle byte
}

func (f *byteFilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.IndexByte(haystack[start:], f.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (f *byteFilter) HeapBytes() int { return 0 }

type substringFilter struct {
	needle []byte
}

func (f *substringFilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], f.needle)
	if idx == -1 {
		return -1
	}
	return start + idx
}

func (f *substringFilter) HeapBytes() int { return len(f.needle) }

type multiFilter struct {
	auto *ahocorasick.Automaton
}

func (f *multiFilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := f.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

func (f *multiFilter) HeapBytes() int { return 0 }
