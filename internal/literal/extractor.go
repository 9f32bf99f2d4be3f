package literal

import "github.com/coregx/refa/internal/parsetree"

// ExtractorConfig bounds literal extraction so that pathological patterns
// (wide alternations, large repeat counts) can't blow up memory while
// building a prefilter.
type ExtractorConfig struct {
	// MaxLiterals caps how many alternative literals ExtractPrefixes keeps
	// before giving up and reporting "unconstrained".
	MaxLiterals int

	// MaxLiteralLen caps an individual literal's length.
	MaxLiteralLen int
}

// DefaultExtractorConfig returns the default bounds: 64 literals, 64 bytes
// each — generous for realistic patterns, cheap to build a prefilter from.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 64}
}

// Extractor derives literal sequences from a compiled syntax tree, for use
// as a prefilter ahead of the DFA.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor with the given bounds.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// frag is the extraction state for one subtree: a candidate set of literal
// prefixes built so far, and whether the subtree can also match with zero
// of those bytes consumed (in which case a concatenation must keep looking
// at the next sibling for anything mandatory).
type frag struct {
	seq         *Seq
	mayBeEmpty  bool
	unconstrain bool // true once limits were exceeded; seq is meaningless
}

// ExtractPrefixes returns literals one of which appears in every match of
// node, or nil if no such constraint exists (e.g. the pattern can start with
// any byte, or extraction gave up past the configured limits). Optional
// leading atoms are skipped, so a literal starts the match only when no
// optional atom precedes it ("a?b" yields "b").
func (ex *Extractor) ExtractPrefixes(node *parsetree.Node) *Seq {
	f := ex.walk(node)
	if f.unconstrain || f.mayBeEmpty || f.seq.IsEmpty() {
		return nil
	}
	return f.seq
}

func (ex *Extractor) walk(node *parsetree.Node) frag {
	skippable := node.Quant.Kind == parsetree.QuantStar ||
		(node.Quant.Kind == parsetree.QuantExact && node.Quant.Min == 0)
	if skippable {
		// The whole node is skippable (STAR, '?', or EXACT{0,n}): nothing
		// about its content is guaranteed present. PLUS is excluded here
		// even though its zero-value Min field also reads 0: a '+' always
		// requires at least one occurrence of its body.
		return frag{mayBeEmpty: true}
	}

	switch node.Kind {
	case parsetree.KindSymbol:
		return frag{seq: NewSeq(NewLiteral([]byte{node.Ch}, true))}

	case parsetree.KindSpecialSymbol:
		// A byte class (\d, \w, ".") isn't a fixed literal; extraction
		// can't narrow it further without duplicating the class tables
		// enfa already owns, so it's reported as unconstrained.
		return frag{unconstrain: true}

	case parsetree.KindConcatenation:
		return ex.walkConcat(node)

	case parsetree.KindAlternative:
		return ex.walkAlternative(node)

	default:
		return frag{unconstrain: true}
	}
}

func (ex *Extractor) walkConcat(node *parsetree.Node) frag {
	acc := frag{seq: NewSeq(NewLiteral(nil, true))}
	started := false // whether a mandatory child has contributed to acc yet
	for _, child := range node.Children {
		next := ex.walk(child)

		if next.unconstrain || next.mayBeEmpty {
			if started {
				// Either this child can't be narrowed to a literal, or it
				// can contribute zero bytes: from here on the next byte's
				// position relative to acc is no longer fixed, so the
				// guaranteed prefix stops growing.
				return acc
			}
			if next.unconstrain {
				return frag{unconstrain: true}
			}
			// Optional and nothing accumulated yet: it contributes
			// nothing, keep scanning for the first mandatory atom.
			continue
		}

		merged := crossProduct(acc.seq, next.seq, ex.config)
		if merged == nil {
			if started {
				return acc
			}
			return frag{unconstrain: true}
		}
		acc.seq = merged
		started = true
		// child is mandatory and contiguous with everything accumulated so
		// far: keep scanning in case the run of mandatory atoms continues.
	}
	if !started {
		acc.mayBeEmpty = true
	}
	return acc
}

func (ex *Extractor) walkAlternative(node *parsetree.Node) frag {
	var all []Literal
	anyEmpty := false
	for _, child := range node.Children {
		f := ex.walk(child)
		if f.unconstrain {
			return frag{unconstrain: true}
		}
		if f.mayBeEmpty {
			anyEmpty = true
		}
		for i := 0; i < f.seq.Len(); i++ {
			all = append(all, f.seq.Get(i))
			if len(all) > ex.config.MaxLiterals {
				return frag{unconstrain: true}
			}
		}
	}
	return frag{seq: NewSeq(all...), mayBeEmpty: anyEmpty}
}

// crossProduct concatenates every literal in a with every literal in b,
// the way a regex like "(foo|bar)(baz|qux)" needs the cross product of its
// two alternations. Returns nil if the result would exceed the configured
// limits.
func crossProduct(a, b *Seq, config ExtractorConfig) *Seq {
	if a.IsEmpty() || b.IsEmpty() {
		return a
	}
	if a.Len()*b.Len() > config.MaxLiterals {
		return nil
	}
	out := make([]Literal, 0, a.Len()*b.Len())
	for i := 0; i < a.Len(); i++ {
		for j := 0; j < b.Len(); j++ {
			la, lb := a.Get(i), b.Get(j)
			combined := make([]byte, 0, len(la.Bytes)+len(lb.Bytes))
			combined = append(combined, la.Bytes...)
			combined = append(combined, lb.Bytes...)
			if len(combined) > config.MaxLiteralLen {
				return nil
			}
			out = append(out, NewLiteral(combined, la.Complete && lb.Complete))
		}
	}
	return NewSeq(out...)
}
