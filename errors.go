package refa

import (
	"github.com/coregx/refa/internal/nfa"
	"github.com/coregx/refa/internal/parsetree"
	"github.com/coregx/refa/internal/rerr"
	"github.com/coregx/refa/internal/token"
)

// LexError is returned for malformed input at the tokenizer stage: a
// trailing backslash, an unknown escape, or unbalanced brackets/parens.
type LexError = token.Error

// ParsingError is returned for a malformed token stream the parser can't
// make a syntax tree from.
type ParsingError = parsetree.ParsingError

// ValueError is returned for a semantically invalid but well-formed
// construct: {m,n} with m>n, or a reversed/empty bracket range.
type ValueError = parsetree.ValueError

// ResourceError is returned when compiling a pattern would exceed a
// configured resource bound (Config.MaxExactProduct, Config.MaxDFAStates).
type ResourceError = rerr.ResourceError

// CompileError wraps any of the above with the source pattern that
// triggered it. Compile and CompileWithConfig always return this type on
// failure; use errors.As to recover the underlying LexError, ParsingError,
// ValueError, or ResourceError.
type CompileError = nfa.CompileError

// Sentinel errors identifying the category of a lex or parse failure,
// re-exported so callers can errors.Is(err, refa.ErrUnbalancedBrackets)
// without reaching into internal packages. Every LexError/ParsingError/
// ValueError wraps exactly one of these.
var (
	ErrTrailingBackslash  = token.ErrTrailingBackslash
	ErrUnknownEscape      = token.ErrUnknownEscape
	ErrUnbalancedBrackets = token.ErrUnbalancedBrackets

	ErrUnexpectedToken        = parsetree.ErrUnexpectedToken
	ErrUnterminatedGroup      = parsetree.ErrUnterminatedGroup
	ErrUnterminatedCharSet    = parsetree.ErrUnterminatedCharSet
	ErrEmptyCharSet           = parsetree.ErrEmptyCharSet
	ErrForbiddenToken         = parsetree.ErrForbiddenToken
	ErrMalformedQuantifier    = parsetree.ErrMalformedQuantifier
	ErrInvalidQuantifierRange = parsetree.ErrInvalidQuantifierRange
	ErrInvalidCharRange       = parsetree.ErrInvalidCharRange
)
