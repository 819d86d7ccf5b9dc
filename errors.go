package peg

import (
	"fmt"
)

var (
	errorCornerCase         = errorf("this corner case should never be reached")
	errorNilMainPattern     = errorf("the root rule is nil")
	errorRestoreBelowCommit = errorf("restore target is below the committed window boundary")
	errorDepthExceeded      = errorf("maximum recursion depth exceeded")
	errorUndefinedRule      = errorf("rule is matched before it was defined")
	errorRedefinedRule      = errorf("rule was already defined")

	errorRepetitionBounds = func(min, max int) error {
		return errorf("invalid repetition bounds: min=%d, max=%d", min, max)
	}
)

// pegError is the concrete error type returned for grammar configuration
// and internal invariant failures. Parse failure itself is never reported
// through an error: it is a false Result.Matched.
type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "peg: " + err.value
}
