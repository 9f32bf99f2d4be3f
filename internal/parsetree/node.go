// Package parsetree defines the regex syntax tree (spec.md §3, §4.2) and the
// recursive-descent parser that builds it from a token sequence.
package parsetree

// NodeKind tags the four syntax-tree variants spec.md §3 allows.
type NodeKind int

const (
	KindSymbol NodeKind = iota
	KindSpecialSymbol
	KindConcatenation
	KindAlternative
)

func (k NodeKind) String() string {
	switch k {
	case KindSymbol:
		return "Symbol"
	case KindSpecialSymbol:
		return "SpecialSymbol"
	case KindConcatenation:
		return "Concatenation"
	case KindAlternative:
		return "Alternative"
	default:
		return "Unknown"
	}
}

// QuantKind names the four quantifier states: absent, star, plus, or an exact
// {m,n} range (the '?' shorthand is represented as Exact{0,1}).
type QuantKind int

const (
	QuantNone QuantKind = iota
	QuantStar
	QuantPlus
	QuantExact
)

// Quantifier is the repetition specifier attached to every node. Min/Max are
// meaningful only when Kind is QuantExact.
type Quantifier struct {
	Kind     QuantKind
	Min, Max int
}

// None is the absent quantifier, the zero value of Quantifier.
var None = Quantifier{Kind: QuantNone}

// Optional returns the quantifier for '?', represented as EXACT(0,1).
func Optional() Quantifier {
	return Quantifier{Kind: QuantExact, Min: 0, Max: 1}
}

// Node is a syntax-tree node. Exactly one of its per-kind fields is meaningful,
// selected by Kind; every node carries one Quant slot regardless of kind.
type Node struct {
	Kind NodeKind

	Ch   byte // KindSymbol: the literal character to match.
	Code byte // KindSpecialSymbol: one of '.', 'd','D','w','W','s','S'.

	Children []*Node // KindConcatenation / KindAlternative.

	Quant Quantifier
}

// Symbol builds a KindSymbol leaf.
func Symbol(ch byte) *Node {
	return &Node{Kind: KindSymbol, Ch: ch}
}

// SpecialSymbol builds a KindSpecialSymbol leaf.
func SpecialSymbol(code byte) *Node {
	return &Node{Kind: KindSpecialSymbol, Code: code}
}

// Concat builds a KindConcatenation node, applying the single-child collapsing
// rule from spec.md §3/§4.2: a Concatenation of exactly one unquantified child
// is replaced by that child.
func Concat(children []*Node) *Node {
	if len(children) == 1 && children[0].Quant.Kind == QuantNone {
		return children[0]
	}
	return &Node{Kind: KindConcatenation, Children: children}
}

// Alt builds a KindAlternative node, applying the same collapsing rule as Concat.
func Alt(children []*Node) *Node {
	if len(children) == 1 && children[0].Quant.Kind == QuantNone {
		return children[0]
	}
	return &Node{Kind: KindAlternative, Children: children}
}
