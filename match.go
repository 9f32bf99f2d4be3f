package refa

// Match is one matched span, returned by full_match, prefix_match
// ("Match"), search, and find_all (spec.md §4.8), together with a
// back-reference to the compiled Regex that produced it (spec.md §6).
type Match struct {
	re         *Regex
	text       []byte
	start, end int
}

// newMatch builds a Match over text[start:end], produced by re.
func newMatch(re *Regex, text []byte, start, end int) Match {
	return Match{re: re, text: text, start: start, end: end}
}

// Start returns the match's starting byte offset.
func (m Match) Start() int { return m.start }

// End returns the match's ending byte offset (exclusive).
func (m Match) End() int { return m.end }

// Bytes returns the matched substring.
func (m Match) Bytes() []byte { return m.text[m.start:m.end] }

// String returns the matched substring as a string.
func (m Match) String() string { return string(m.Bytes()) }

// Len returns the match's length in bytes.
func (m Match) Len() int { return m.end - m.start }

// Regex returns the compiled pattern that produced m.
func (m Match) Regex() *Regex { return m.re }

// Equal reports whether m and other reference the same underlying text and
// cover the same span (spec.md §6: "two matches compare equal iff their
// text-reference and span are equal").
func (m Match) Equal(other Match) bool {
	return sameText(m.text, other.text) && m.start == other.start && m.end == other.end
}

// sameText reports whether a and b are backed by the same underlying array,
// i.e. the same source text reference rather than merely equal contents.
func sameText(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
