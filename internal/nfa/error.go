package nfa

import "fmt"

// CompileError wraps a failure encountered anywhere in the lex/parse/build
// pipeline with the source pattern that caused it, so callers see the
// pattern even when the underlying error type (token.Error, parsetree's
// ParsingError/ValueError, rerr.ResourceError) doesn't carry one itself.
type CompileError struct {
	Pattern string
	Err     error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("refa: compiling %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
