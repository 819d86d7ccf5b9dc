package peg

import "fmt"

// AndPredicate succeeds iff pat matches, consuming no input either way
// (the cursor is always restored).
func AndPredicate[E any](pat Pattern[E]) Pattern[E] {
	return &patternPredicate[E]{not: false, pat: pat}
}

// NotPredicate succeeds iff pat fails to match, consuming no input
// either way.
func NotPredicate[E any](pat Pattern[E]) Pattern[E] {
	return &patternPredicate[E]{not: true, pat: pat}
}

type patternPredicate[E any] struct {
	not bool
	pat Pattern[E]
}

func (pat *patternPredicate[E]) match(ctx *Context[E]) (bool, error) {
	snap := ctx.Snap()
	ok, err := pat.pat.match(ctx)
	if err != nil {
		return false, err
	}
	if err := ctx.Restore(snap); err != nil {
		return false, err
	}
	if pat.not {
		ok = !ok
	}
	return ok, nil
}

func (pat *patternPredicate[E]) String() string {
	if pat.not {
		return fmt.Sprintf("!%s", pat.pat)
	}
	return fmt.Sprintf("&%s", pat.pat)
}
