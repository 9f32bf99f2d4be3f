package enfa

import (
	"github.com/coregx/refa/internal/parsetree"
	"github.com/coregx/refa/internal/rerr"
)

// MaxExactProduct bounds the EXACT(m,n) state-blowup guard (spec.md §5):
// compiling {m,n} is rejected once n * (number of leaf atoms in the body)
// exceeds this limit.
type Limits struct {
	MaxExactProduct int
}

// Build compiles a syntax tree into an ε-NFA via Thompson-style construction
// (spec.md §4.3). The construction walks the tree once, threading a "current
// start state" through each node the way original_source/regex/automata.py's
// _build_enfa does: the caller supplies the state a node's fragment should
// begin at, and the node returns the state its fragment ends at. Quantifiers
// are applied by wrapping whatever base fragment the node's kind builds.
func Build(root *parsetree.Node, limits Limits) (*ENFA, error) {
	e := newENFA()
	start := e.newState()
	end, err := e.build(root, start, limits)
	if err != nil {
		return nil, err
	}
	e.Start = start
	e.Accept = end
	return e, nil
}

func (e *ENFA) build(node *parsetree.Node, start int32, limits Limits) (int32, error) {
	switch {
	case node.Quant.Kind == parsetree.QuantExact && !isOptional(node.Quant):
		return e.buildExactRange(node, start, limits)

	case node.Quant.Kind != parsetree.QuantNone:
		prevStart := start
		bodyStart := e.newState()
		bodyEnd, err := e.buildBase(node, bodyStart, limits)
		if err != nil {
			return 0, err
		}
		return e.wrapOperator(prevStart, bodyStart, bodyEnd, node.Quant), nil

	default:
		return e.buildBase(node, start, limits)
	}
}

func isOptional(q parsetree.Quantifier) bool {
	return q.Kind == parsetree.QuantExact && q.Min == 0 && q.Max == 1
}

// buildBase builds the fragment for node's kind alone, ignoring any
// quantifier attached to node (the caller has already accounted for it).
func (e *ENFA) buildBase(node *parsetree.Node, start int32, limits Limits) (int32, error) {
	switch node.Kind {
	case parsetree.KindSymbol:
		t := e.newState()
		e.addSymbol(start, node.Ch, t)
		return t, nil

	case parsetree.KindSpecialSymbol:
		t := e.newState()
		if err := addClassTransitions(e, start, t, node.Code); err != nil {
			return 0, err
		}
		return t, nil

	case parsetree.KindConcatenation:
		cur := start
		for _, child := range node.Children {
			next, err := e.build(child, cur, limits)
			if err != nil {
				return 0, err
			}
			cur = next
		}
		return cur, nil

	case parsetree.KindAlternative:
		end := e.newState()
		for _, child := range node.Children {
			branchStart := e.newState()
			e.addEps(start, branchStart)
			branchEnd, err := e.build(child, branchStart, limits)
			if err != nil {
				return 0, err
			}
			e.addEps(branchEnd, end)
		}
		return end, nil

	default:
		panic("refa: internal error: unknown node kind")
	}
}

// wrapOperator applies STAR, PLUS, or the '?' shorthand (EXACT(0,1)) to a
// body fragment [bodyStart, bodyEnd) entered from prevStart (spec.md §4.3).
func (e *ENFA) wrapOperator(prevStart, bodyStart, bodyEnd int32, q parsetree.Quantifier) int32 {
	e.addEps(prevStart, bodyStart)
	after := e.newState()
	e.addEps(bodyEnd, after)

	if q.Kind != parsetree.QuantExact { // STAR or PLUS loop back; '?' does not.
		e.addEps(bodyEnd, bodyStart)
	}
	if q.Kind == parsetree.QuantStar || isOptional(q) { // STAR and '?' may skip the body.
		e.addEps(prevStart, after)
	}
	return after
}

// buildExactRange builds EXACT(m,n) as n independent copies in series,
// wiring an ε-edge from the tail of every copy i>=m (and the final copy) to
// a single shared exit (spec.md §4.3).
func (e *ENFA) buildExactRange(node *parsetree.Node, start int32, limits Limits) (int32, error) {
	m, n := node.Quant.Min, node.Quant.Max
	if limits.MaxExactProduct > 0 {
		atoms := countAtoms(node)
		if n*atoms > limits.MaxExactProduct {
			return 0, &rerr.ResourceError{
				Limit: limits.MaxExactProduct,
				Msg:   "EXACT{m,n} expansion too large",
			}
		}
	}

	end := e.newState()
	prevEnd := start
	for i := 0; i < n; i++ {
		if i >= m {
			e.addEps(prevEnd, end)
		}
		next, err := e.buildBase(node, prevEnd, limits)
		if err != nil {
			return 0, err
		}
		prevEnd = next
	}
	e.addEps(prevEnd, end)
	return end, nil
}

// countAtoms counts the Symbol/SpecialSymbol leaves in node's subtree,
// ignoring quantifiers — a cheap proxy for how many states one copy of the
// EXACT body will allocate, used only to bound the resource check above.
func countAtoms(node *parsetree.Node) int {
	switch node.Kind {
	case parsetree.KindSymbol, parsetree.KindSpecialSymbol:
		return 1
	default:
		total := 0
		for _, c := range node.Children {
			total += countAtoms(c)
		}
		if total == 0 {
			return 1
		}
		return total
	}
}
