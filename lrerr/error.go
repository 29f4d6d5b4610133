// Package lrerr holds the small typed-error shapes shared by the
// grammar-adjacent packages: a row-carrying SpecError wrapping an
// underlying cause, and an accumulating SpecErrors list.
package lrerr

import "fmt"

// SpecError wraps a lower-level error with the source row it was
// found on. Row == 0 means no position information is available.
type SpecError struct {
	Cause error
	Row   int
}

func (e *SpecError) Error() string {
	if e.Row == 0 {
		return fmt.Sprintf("error: %v", e.Cause)
	}
	return fmt.Sprintf("%v: error: %v", e.Row, e.Cause)
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

// SpecErrors accumulates more than one SpecError, the way a textual
// grammar or config reader keeps scanning after the first bad line
// instead of aborting.
type SpecErrors []*SpecError

func (es SpecErrors) Error() string {
	if len(es) == 1 {
		return es[0].Error()
	}
	s := fmt.Sprintf("%d errors:", len(es))
	for _, e := range es {
		s += "\n  " + e.Error()
	}
	return s
}
