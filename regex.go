// Package refa compiles a pattern into a deterministic finite automaton and
// exposes four matching operations against it: full_match, prefix_match
// ("Match"), search, and find_all (spec.md §4.8). The value is in the
// compile pipeline — lexer, recursive-descent parser, Thompson-style
// ε-NFA construction, ε-elimination, subset construction, and
// partition-refinement minimization — rather than in the matching loop,
// which is a thin dispatcher over the compiled DFA.
//
// No capturing groups, no backreferences, no anchors, no lookaround, no
// lazy quantifiers. The alphabet is 8-bit ASCII (0-127), with a couple of
// constructs extending one byte further for implementation reasons
// documented on the internal/enfa package.
package refa

import (
	"github.com/coregx/refa/internal/dfa"
	"github.com/coregx/refa/internal/enfa"
	"github.com/coregx/refa/internal/literal"
	"github.com/coregx/refa/internal/nfa"
	"github.com/coregx/refa/internal/parsetree"
	"github.com/coregx/refa/internal/prefilter"
	"github.com/coregx/refa/internal/token"
)

// Regex is a compiled regular expression. Once built it is immutable and
// safe for concurrent use.
type Regex struct {
	pattern   string
	dfa       *dfa.DFA
	prefilter *prefilter.Tracker // nil if no literal prefix could be extracted
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile compiles pattern and panics on error. Intended for patterns
// known to be valid at init time.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("refa: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern, enforcing config's resource bounds at
// the ε-NFA and DFA construction stages (spec.md §5).
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	toks, err := token.Lex(pattern)
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	tree, err := parsetree.Parse(toks)
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	e, err := enfa.Build(tree, enfa.Limits{MaxExactProduct: config.MaxExactProduct})
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	n := nfa.FromENFA(e)

	d, err := dfa.Build(n, dfa.Limits{MaxDFAStates: config.MaxDFAStates})
	if err != nil {
		return nil, &nfa.CompileError{Pattern: pattern, Err: err}
	}

	extractor := literal.New(literal.DefaultExtractorConfig())
	prefixes := extractor.ExtractPrefixes(tree)
	pf := prefilter.Build(prefixes)

	return &Regex{pattern: pattern, dfa: d, prefilter: prefilter.NewTracker(pf)}, nil
}

// String returns the source pattern.
func (r *Regex) String() string {
	return r.pattern
}

// FullMatch reports whether text, in its entirety, matches the pattern
// (spec.md §4.8's full_match).
func (r *Regex) FullMatch(text []byte) (Match, bool) {
	state := r.dfa.Start()
	for _, b := range text {
		if !r.dfa.InAlphabet(b) {
			return Match{}, false
		}
		state = r.dfa.Step(state, b)
		if r.dfa.HasSink() && state == r.dfa.Sink() {
			return Match{}, false
		}
	}
	if r.dfa.IsFinal(state) {
		return newMatch(r, text, 0, len(text)), true
	}
	return Match{}, false
}

// Match reports the longest accepting prefix of text (spec.md §4.8's
// prefix_match). It anchors at the start of text but not at the end.
func (r *Regex) Match(text []byte) (Match, bool) {
	hasAccept := r.dfa.IsFinal(r.dfa.Start())
	k := -1

	state := r.dfa.Start()
	for i := 0; i < len(text); i++ {
		b := text[i]
		if !r.dfa.InAlphabet(b) {
			break
		}
		next := r.dfa.Step(state, b)
		if r.dfa.HasSink() && next == r.dfa.Sink() {
			break
		}
		state = next
		if r.dfa.IsFinal(state) {
			k = i
			hasAccept = true
		}
	}

	if !hasAccept {
		return Match{}, false
	}
	return newMatch(r, text, 0, k+1), true
}

// runner is one DFA copy in the parallel search ensemble (spec.md §4.8):
// started at start, its last recorded accept index (hasLast/last), and its
// current state. dead marks a runner that hit sink or an out-of-alphabet
// byte while holding a recorded accept: it no longer advances, but is kept
// around (rather than dropped) so FindAll still reports it once the scan
// ends.
type runner struct {
	start   int
	hasLast bool
	last    int
	state   int32
	dead    bool
}

// Search returns the first (leftmost) match of the pattern anywhere in
// text (spec.md §4.8's search). It is a parallel ensemble of DFA copies,
// one spawned at every input index. As soon as one runner reaches an
// accepting state, every runner started after it is discarded; the
// accepting runner keeps advancing and is reported when it hits sink, an
// out-of-alphabet byte, or the end of text (greedy-earliest, not
// leftmost-longest: see spec.md §9).
func (r *Regex) Search(text []byte) (m Match, ok bool) {
	hasCandidate := r.prefilter != nil && r.prefilter.IsActive()
	if hasCandidate && r.prefilter.Find(text, 0) == -1 {
		return Match{}, false
	}
	defer func() {
		if ok && hasCandidate {
			r.prefilter.ConfirmMatch()
		}
	}()

	var automatons []runner
	for i := 0; i < len(text); i++ {
		b := text[i]

		if r.dfa.IsFinal(r.dfa.Start()) {
			automatons = append(automatons, runner{start: i, hasLast: true, last: i - 1, state: r.dfa.Start()})
		} else {
			automatons = append(automatons, runner{start: i, state: r.dfa.Start()})
		}

		var next []runner
		inAlphabet := r.dfa.InAlphabet(b)
		for _, a := range automatons {
			if !inAlphabet {
				if a.hasLast {
					return newMatch(r, text, a.start, a.last+1), true
				}
				continue
			}
			ns := r.dfa.Step(a.state, b)
			switch {
			case r.dfa.IsFinal(ns):
				next = append(next, runner{start: a.start, hasLast: true, last: i, state: ns})
				// A runner just became accepting: younger runners spawned
				// after it are dropped from the ensemble for good
				// (spec.md §9's greedy-earliest quirk).
				goto advance
			case !(r.dfa.HasSink() && ns == r.dfa.Sink()):
				next = append(next, runner{start: a.start, hasLast: a.hasLast, last: a.last, state: ns})
			case a.hasLast:
				return newMatch(r, text, a.start, a.last+1), true
			}
		}
	advance:
		automatons = next
	}

	if len(automatons) > 0 {
		a := automatons[0]
		if !a.hasLast {
			return Match{}, false
		}
		return newMatch(r, text, a.start, a.last+1), true
	}
	return Match{}, false
}

// FindAll returns every maximal match of the pattern in text (spec.md
// §4.8's find_all): the same runner ensemble as Search, but a runner that
// dies with a recorded accept is kept as an inert placeholder (rather than
// discarded) so it is still reported once the scan reaches the end, and no
// runner return stops the scan early. Matches may be adjacent, and may be
// empty when the start state is accepting.
func (r *Regex) FindAll(text []byte) (out []Match) {
	hasCandidate := r.prefilter != nil && r.prefilter.IsActive()
	if hasCandidate && r.prefilter.Find(text, 0) == -1 {
		return nil
	}
	defer func() {
		if len(out) > 0 && hasCandidate {
			r.prefilter.ConfirmMatch()
		}
	}()

	var automatons []runner
	for i := 0; i < len(text); i++ {
		b := text[i]

		if r.dfa.IsFinal(r.dfa.Start()) {
			automatons = append(automatons, runner{start: i, hasLast: true, last: i - 1, state: r.dfa.Start()})
		} else {
			automatons = append(automatons, runner{start: i, state: r.dfa.Start()})
		}

		var next []runner
		inAlphabet := r.dfa.InAlphabet(b)
		for _, a := range automatons {
			if a.dead {
				next = append(next, a)
				continue
			}
			if !inAlphabet {
				if a.hasLast {
					next = append(next, runner{start: a.start, hasLast: true, last: a.last, dead: true})
				}
				continue
			}
			ns := r.dfa.Step(a.state, b)
			switch {
			case r.dfa.IsFinal(ns):
				next = append(next, runner{start: a.start, hasLast: true, last: i, state: ns})
				goto advance
			case !(r.dfa.HasSink() && ns == r.dfa.Sink()):
				next = append(next, runner{start: a.start, hasLast: a.hasLast, last: a.last, state: ns})
			case a.hasLast:
				next = append(next, runner{start: a.start, hasLast: true, last: a.last, dead: true})
			}
		}
	advance:
		automatons = next
	}

	for _, a := range automatons {
		if a.hasLast {
			out = append(out, newMatch(r, text, a.start, a.last+1))
		}
	}
	return out
}
