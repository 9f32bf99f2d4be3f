package enfa

// addClassTransitions adds a transition from->to for every byte the special
// symbol code matches (spec.md §4.3). The construction order for 'D' and 'W'
// deliberately mirrors original_source/regex/automata.py: add the full range
// first, then remove the complement, rather than enumerating the negated set
// directly. That order is what produces the documented extension to byte 128
// (spec.md §9) as a natural consequence instead of a special case.
func addClassTransitions(e *ENFA, from, to int32, code byte) error {
	switch code {
	case '.':
		addRange(e, from, to, 0, 127)
		removeByte(e, from, '\n')

	case 'd':
		addRange(e, from, to, '0', '9')

	case 'D':
		addRange(e, from, to, 0, 128) // extends one past ASCII, per spec.md §9.
		removeRange(e, from, '0', '9')

	case 'w':
		addRange(e, from, to, 'A', 'Z')
		addRange(e, from, to, 'a', 'z')
		addRange(e, from, to, '0', '9')
		e.addSymbol(from, '_', to)

	case 'W':
		addRange(e, from, to, 0, 47)
		addRange(e, from, to, 58, 64)
		addRange(e, from, to, 91, 96)
		addRange(e, from, to, 123, 128) // extends one past ASCII, per spec.md §9.
		removeByte(e, from, '_')        // remove by the (state, '_') transition specifically.

	case 's':
		for _, b := range whitespaceBytes {
			e.addSymbol(from, b, to)
		}

	case 'S':
		for b := 0; b < 128; b++ {
			if !isWhitespace(byte(b)) {
				e.addSymbol(from, byte(b), to)
			}
		}

	default:
		return &UnknownClassError{Code: code}
	}
	return nil
}

var whitespaceBytes = []byte{32, 9, 11, 10, 13, 12} // SP, TAB, VT, LF, CR, FF

func isWhitespace(b byte) bool {
	for _, w := range whitespaceBytes {
		if b == w {
			return true
		}
	}
	return false
}

// addRange adds from-to transitions for every byte in [lo, hi] inclusive.
func addRange(e *ENFA, from, to int32, lo, hi int) {
	for b := lo; b <= hi; b++ {
		e.addSymbol(from, byte(b), to)
	}
}

// removeRange deletes any from-transitions on bytes in [lo, hi] inclusive.
func removeRange(e *ENFA, from int32, lo, hi int) {
	for b := lo; b <= hi; b++ {
		removeByte(e, from, byte(b))
	}
}

// removeByte deletes the from-transition on exactly byte b, if one exists.
// This operates on the (state, byte) transition directly, per spec.md §9's
// note on how '\W' must remove '_'.
func removeByte(e *ENFA, from int32, b byte) {
	trans := e.states[from].trans
	out := trans[:0]
	for _, t := range trans {
		if t.Sym != b {
			out = append(out, t)
		}
	}
	e.states[from].trans = out
}

// UnknownClassError reports an internal invariant violation: a SpecialSymbol
// node carrying a code outside {'.','d','D','w','W','s','S'}. The parser
// never produces one, so this should be unreachable.
type UnknownClassError struct {
	Code byte
}

func (e *UnknownClassError) Error() string {
	return "refa: internal error: unknown special symbol code " + string(e.Code)
}
