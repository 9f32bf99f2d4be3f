package parsetree

import (
	"errors"
	"fmt"

	"github.com/coregx/refa/internal/token"
)

// Sentinel errors identifying the category of a parse failure, so callers
// can errors.Is past the source-index context that ParsingError/ValueError
// add.
var (
	ErrUnexpectedToken        = errors.New("unexpected token")
	ErrUnterminatedGroup      = errors.New("unterminated group")
	ErrUnterminatedCharSet    = errors.New("unterminated character set")
	ErrEmptyCharSet           = errors.New("empty character set")
	ErrForbiddenToken         = errors.New("forbidden token inside character set")
	ErrMalformedQuantifier    = errors.New("malformed quantifier")
	ErrInvalidQuantifierRange = errors.New("quantifier range has min > max")
	ErrInvalidCharRange       = errors.New("character range is empty or reversed")
)

// ParsingError reports a malformed token stream, annotated with the source
// index of the offending token (spec.md §4.2, §7).
type ParsingError struct {
	Index int
	Msg   string
	Err   error // one of the Err* sentinels above
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("refa: parse error at index %d: %s", e.Index, e.Msg)
}

func (e *ParsingError) Unwrap() error {
	return e.Err
}

// ValueError reports a semantic range error: {m,n} with m>n, or a-b with
// ord(a) >= ord(b) inside a bracket expression.
type ValueError struct {
	Msg string
	Err error // one of the Err* sentinels above
}

func (e *ValueError) Error() string {
	return "refa: " + e.Msg
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// cursor walks a token slice with single-step rewind, per spec.md §9's
// "iterator-with-rollback" note.
type cursor struct {
	toks []token.Token
	pos  int
}

func (c *cursor) atEnd() bool { return c.pos >= len(c.toks) }

func (c *cursor) peek() (token.Token, bool) {
	if c.atEnd() {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) next() (token.Token, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

func (c *cursor) rewind() { c.pos-- }

// endIndex returns the source index to report for an error at end-of-input.
func (c *cursor) endIndex() int {
	if len(c.toks) == 0 {
		return 0
	}
	return c.toks[len(c.toks)-1].Index + 1
}

// Parse builds the syntax tree for a full token stream. The entry point
// treats the stream as if wrapped in an implicit top-level group, i.e. it is
// exactly the "concat ('|' concat)*" production with no surrounding parens.
func Parse(toks []token.Token) (*Node, error) {
	c := &cursor{toks: toks}
	n, err := parseAlternative(c)
	if err != nil {
		return nil, err
	}
	if !c.atEnd() {
		t, _ := c.peek()
		return nil, &ParsingError{Index: t.Index, Msg: fmt.Sprintf("unexpected %q", t.Symbol), Err: ErrUnexpectedToken}
	}
	return n, nil
}

// parseAlternative parses concat ('|' concat)*, stopping at ')' or end of
// input. A bare '|' with nothing on one side yields an empty concatenation
// (spec.md §8 example 5: pattern "|" matches the empty string).
func parseAlternative(c *cursor) (*Node, error) {
	var branches []*Node

	first, err := parseConcat(c)
	if err != nil {
		return nil, err
	}
	branches = append(branches, first)

	for {
		t, ok := c.peek()
		if !ok || t.Kind != token.Structural || t.Symbol != '|' {
			break
		}
		c.next()
		branch, err := parseConcat(c)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	return Alt(branches), nil
}

// parseConcat parses a run of atoms, stopping at '|', ')', or end of input.
func parseConcat(c *cursor) (*Node, error) {
	var children []*Node
	for {
		t, ok := c.peek()
		if !ok {
			break
		}
		if t.Kind == token.Structural && (t.Symbol == '|' || t.Symbol == ')') {
			break
		}
		atom, err := parseAtom(c)
		if err != nil {
			return nil, err
		}
		children = append(children, atom)
	}
	return Concat(children), nil
}

// parseAtom parses one NORMAL/SPECIAL/group/altset atom and an optional
// trailing quantifier.
func parseAtom(c *cursor) (*Node, error) {
	t, ok := c.next()
	if !ok {
		return nil, &ParsingError{Index: c.endIndex(), Msg: "expected atom, found end of input", Err: ErrUnexpectedToken}
	}

	var n *Node
	switch {
	case t.Kind == token.Normal:
		n = Symbol(t.Symbol)
	case t.Kind == token.Special:
		n = SpecialSymbol(t.Symbol)
	case t.Kind == token.Structural && t.Symbol == '(':
		group, err := parseGroup(c, t.Index)
		if err != nil {
			return nil, err
		}
		n = group
	case t.Kind == token.Structural && t.Symbol == '[':
		set, err := parseCharSet(c, t.Index)
		if err != nil {
			return nil, err
		}
		n = set
	default:
		return nil, &ParsingError{Index: t.Index, Msg: fmt.Sprintf("unexpected token %q", t.Symbol), Err: ErrUnexpectedToken}
	}

	q, err := parseQuantifier(c)
	if err != nil {
		return nil, err
	}
	n.Quant = q
	return n, nil
}

// parseGroup parses '(' concat ('|' concat)* ')'; openIndex is the index of
// the already-consumed '(' for error annotation.
func parseGroup(c *cursor, openIndex int) (*Node, error) {
	body, err := parseAlternative(c)
	if err != nil {
		return nil, err
	}
	t, ok := c.next()
	if !ok || t.Kind != token.Structural || t.Symbol != ')' {
		return nil, &ParsingError{Index: openIndex, Msg: "unterminated group", Err: ErrUnterminatedGroup}
	}
	return body, nil
}

// parseQuantifier parses an optional '*' '+' '?' or '{m[,n]}' suffix.
func parseQuantifier(c *cursor) (Quantifier, error) {
	t, ok := c.peek()
	if !ok || t.Kind != token.Structural {
		return None, nil
	}
	switch t.Symbol {
	case '*':
		c.next()
		return Quantifier{Kind: QuantStar}, nil
	case '+':
		c.next()
		return Quantifier{Kind: QuantPlus}, nil
	case '?':
		c.next()
		return Optional(), nil
	case '{':
		c.next()
		return parseExactQuantifier(c, t.Index)
	default:
		return None, nil
	}
}

// parseExactQuantifier parses the body of '{m}' or '{m,n}' after '{' has
// already been consumed.
func parseExactQuantifier(c *cursor, openIndex int) (Quantifier, error) {
	m, ok := parseDigits(c)
	if !ok {
		return None, &ParsingError{Index: openIndex, Msg: "malformed quantifier: expected digits after '{'", Err: ErrMalformedQuantifier}
	}

	n := m
	if t, ok := c.peek(); ok && t.Kind == token.Normal && t.Symbol == ',' {
		c.next()
		nn, ok := parseDigits(c)
		if !ok {
			return None, &ParsingError{Index: openIndex, Msg: "malformed quantifier: expected digits after ','", Err: ErrMalformedQuantifier}
		}
		n = nn
	}

	t, ok := c.next()
	if !ok || t.Kind != token.Structural || t.Symbol != '}' {
		return None, &ParsingError{Index: openIndex, Msg: "malformed quantifier: expected '}'", Err: ErrMalformedQuantifier}
	}

	if m > n {
		return None, &ValueError{Msg: fmt.Sprintf("quantifier {%d,%d}: m > n", m, n), Err: ErrInvalidQuantifierRange}
	}
	return Quantifier{Kind: QuantExact, Min: m, Max: n}, nil
}

// parseDigits greedily consumes NORMAL '0'-'9' tokens and returns the decimal
// value. ok is false if no digit was found.
func parseDigits(c *cursor) (int, bool) {
	n := 0
	found := false
	for {
		t, ok := c.peek()
		if !ok || t.Kind != token.Normal || t.Symbol < '0' || t.Symbol > '9' {
			break
		}
		c.next()
		n = n*10 + int(t.Symbol-'0')
		found = true
	}
	return n, found
}

// parseCharSet parses '[' item+ ']'; openIndex is the index of the already
// consumed '[' for error annotation. Items are NORMAL, SPECIAL, or a NORMAL
// '-' NORMAL range; structural metacharacters other than ']' are forbidden
// inside a set (spec.md §4.2).
func parseCharSet(c *cursor, openIndex int) (*Node, error) {
	var items []*Node
	first := true

	for {
		t, ok := c.peek()
		if !ok {
			return nil, &ParsingError{Index: openIndex, Msg: "unterminated character set", Err: ErrUnterminatedCharSet}
		}
		if t.Kind == token.Structural && t.Symbol == ']' {
			if first {
				return nil, &ParsingError{Index: t.Index, Msg: "empty character set", Err: ErrEmptyCharSet}
			}
			c.next()
			break
		}

		if t.Kind == token.Structural {
			return nil, &ParsingError{Index: t.Index, Msg: fmt.Sprintf("forbidden token %q inside character set", t.Symbol), Err: ErrForbiddenToken}
		}

		c.next()
		first = false

		if t.Kind == token.Special {
			if t.Symbol == '.' {
				// Bare '.' lexes to SPECIAL context-free, but inside a set
				// it is a literal character (spec.md §4.2).
				items = append(items, Symbol('.'))
			} else {
				items = append(items, SpecialSymbol(t.Symbol))
			}
			continue
		}

		// t.Kind == token.Normal: either a literal, or the start of a NORMAL
		// '-' NORMAL range. A '-' at the start of the set, or right after a
		// SPECIAL item, is a literal '-' (already handled by falling through
		// here since we only special-case '-' once we've seen a preceding
		// NORMAL to pair it with).
		if t.Symbol == '-' {
			items = append(items, Symbol('-'))
			continue
		}

		nt, ok := c.peek()
		if ok && nt.Kind == token.Normal && nt.Symbol == '-' {
			// Lookahead for the second endpoint; if none follows, '-' and
			// whatever comes after are literal.
			save := c.pos
			c.next() // consume '-'
			endTok, ok2 := c.peek()
			if ok2 && endTok.Kind == token.Normal && endTok.Symbol != '-' {
				c.next()
				if endTok.Symbol <= t.Symbol {
					return nil, &ValueError{Msg: fmt.Sprintf("character range %q-%q is empty or reversed", t.Symbol, endTok.Symbol), Err: ErrInvalidCharRange}
				}
				items = append(items, Symbol(t.Symbol))
				for ch := t.Symbol + 1; ; ch++ {
					items = append(items, Symbol(ch))
					if ch == endTok.Symbol {
						break
					}
				}
				continue
			}
			c.pos = save
		}

		items = append(items, Symbol(t.Symbol))
	}

	return Alt(items), nil
}
