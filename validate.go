package peg

import "fmt"

// Validate matches pat, then calls fn with the matched span's elements.
// If fn returns false, the match is rejected and the cursor restored —
// unlike a predicate, Validate still consumes input when fn accepts.
func Validate[E any](fn func([]E) bool, pat Pattern[E]) Pattern[E] {
	if fn == nil {
		return pat
	}
	return &patternValidate[E]{fn: fn, pat: pat}
}

type patternValidate[E any] struct {
	fn  func([]E) bool
	pat Pattern[E]
}

func (pat *patternValidate[E]) match(ctx *Context[E]) (bool, error) {
	snap := ctx.Snap()
	ok, err := pat.pat.match(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	span := make([]E, 0, int(ctx.Position()-snap.pos))
	for p := snap.pos; p < ctx.Position(); p++ {
		e, ok := ctx.src.At(p)
		if !ok {
			return false, errorCornerCase
		}
		span = append(span, e)
	}

	if !pat.fn(span) {
		if err := ctx.Restore(snap); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (pat *patternValidate[E]) String() string {
	return fmt.Sprintf("validate(%s)", pat.pat)
}
