// Package rerr holds the one error type shared by more than one compile
// stage (enfa's EXACT-expansion check and dfa's state-count check both raise
// a resource-bound failure), so both can construct it without an import
// cycle through the root package.
package rerr

import "fmt"

// ResourceError reports that a pattern was rejected because compiling it
// would exceed an implementation-defined resource bound (spec.md §5, §7.4).
type ResourceError struct {
	Msg   string
	Limit int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("refa: resource limit exceeded (limit=%d): %s", e.Limit, e.Msg)
}
