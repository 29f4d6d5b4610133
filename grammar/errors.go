package grammar

import "fmt"

// GrammarError reports a structural problem with a grammar definition
// detected at construction time: (when a non-terminal hint list is
// supplied to New) a name that looks like it was meant to be a
// non-terminal but is never defined as an LHS, a grammar passed to
// NewTable that uses the reserved FakeStart name, or a TableDump passed
// to LoadTable that references a production index out of range.
type GrammarError struct {
	Message string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("grammar error: %s", e.Message)
}

func newGrammarError(format string, args ...interface{}) *GrammarError {
	return &GrammarError{Message: fmt.Sprintf(format, args...)}
}
