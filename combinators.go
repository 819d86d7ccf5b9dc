package peg

import (
	"fmt"
	"strings"
)

// Sequence matches every sub-pattern in order, failing — and restoring
// the cursor to where the sequence started — the instant one of them
// fails.
func Sequence[E any](pats ...Pattern[E]) Pattern[E] {
	if len(pats) == 0 {
		return Empty[E]()
	}
	return &patternSequence[E]{pats: pats}
}

type patternSequence[E any] struct {
	pats []Pattern[E]
}

func (pat *patternSequence[E]) match(ctx *Context[E]) (bool, error) {
	snap := ctx.Snap()
	for _, sub := range pat.pats {
		ok, err := sub.match(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			if err := ctx.Restore(snap); err != nil {
				return false, err
			}
			return false, nil
		}
	}
	return true, nil
}

func (pat *patternSequence[E]) String() string {
	strs := make([]string, len(pat.pats))
	for i, sub := range pat.pats {
		strs[i] = fmt.Sprint(sub)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " "))
}

// Choice tries each alternative in order, committing to the first that
// matches. When an alternative fails and a CutPoint has fired in the
// enclosing rule invocation's cut frame (inside that alternative or
// earlier in the same rule), the remaining alternatives are not tried and
// the whole Choice fails. A CutPoint inside a nested Rule marks only that
// rule's own frame.
func Choice[E any](alts ...Pattern[E]) Pattern[E] {
	if len(alts) == 0 {
		return neverMatch[E]{}
	}
	return &patternChoice[E]{alts: alts}
}

type patternChoice[E any] struct {
	alts []Pattern[E]
}

func (pat *patternChoice[E]) match(ctx *Context[E]) (bool, error) {
	snap := ctx.Snap()
	for _, alt := range pat.alts {
		ok, err := alt.match(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		if err := ctx.Restore(snap); err != nil {
			return false, err
		}
		if ctx.cutTriggered() {
			return false, nil
		}
	}
	return false, nil
}

func (pat *patternChoice[E]) String() string {
	strs := make([]string, len(pat.alts))
	for i, alt := range pat.alts {
		strs[i] = fmt.Sprint(alt)
	}
	return fmt.Sprintf("(%s)", strings.Join(strs, " | "))
}

type neverMatch[E any] struct{}

func (neverMatch[E]) match(ctx *Context[E]) (bool, error) { return false, nil }
func (neverMatch[E]) String() string                      { return "never()" }

// Repeat matches pat between min and max times (inclusive), greedily. A
// negative max means unbounded. Repeat never fails to make progress
// forever: it stops as soon as an iteration fails, consumes no input, or
// the max count is reached, whichever comes first.
func Repeat[E any](min, max int, pat Pattern[E]) Pattern[E] {
	if min < 0 || (max >= 0 && min > max) {
		return failingPattern[E]{errorRepetitionBounds(min, max)}
	}
	return &patternRepeat[E]{min: min, max: max, pat: pat}
}

// ZeroOrMore matches pat zero or more times.
func ZeroOrMore[E any](pat Pattern[E]) Pattern[E] {
	return Repeat(0, -1, pat)
}

// OneOrMore matches pat one or more times.
func OneOrMore[E any](pat Pattern[E]) Pattern[E] {
	return Repeat(1, -1, pat)
}

// Optional matches pat zero or one times.
func Optional[E any](pat Pattern[E]) Pattern[E] {
	return Repeat(0, 1, pat)
}

// NTimes matches pat exactly n times.
func NTimes[E any](n int, pat Pattern[E]) Pattern[E] {
	return Repeat(n, n, pat)
}

type patternRepeat[E any] struct {
	min, max int
	pat      Pattern[E]
}

func (pat *patternRepeat[E]) match(ctx *Context[E]) (bool, error) {
	snap := ctx.Snap()
	count := 0
	for pat.max < 0 || count < pat.max {
		before := ctx.Position()
		ok, err := pat.pat.match(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			break
		}
		count++
		if ctx.Position() == before {
			// No progress: stop rather than loop forever, even though
			// another iteration would technically "match".
			break
		}
	}
	if count < pat.min {
		if err := ctx.Restore(snap); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (pat *patternRepeat[E]) String() string {
	switch {
	case pat.min == 0 && pat.max < 0:
		return fmt.Sprintf("%s*", pat.pat)
	case pat.min == 1 && pat.max < 0:
		return fmt.Sprintf("%s+", pat.pat)
	case pat.min == 0 && pat.max == 1:
		return fmt.Sprintf("%s?", pat.pat)
	case pat.min == pat.max:
		return fmt.Sprintf("%s<%d>", pat.pat, pat.min)
	default:
		return fmt.Sprintf("%s<%d..%d>", pat.pat, pat.min, pat.max)
	}
}

type failingPattern[E any] struct {
	err error
}

func (p failingPattern[E]) match(ctx *Context[E]) (bool, error) {
	return false, p.err
}

func (p failingPattern[E]) String() string {
	return fmt.Sprintf("invalid(%s)", p.err)
}

// Joined matches one or more item separated by sep.
func Joined[E any](item, sep Pattern[E]) Pattern[E] {
	return Sequence(item, ZeroOrMore(Sequence(sep, item)))
}

// SeparatedBy matches zero or more item separated by sep.
func SeparatedBy[E any](item, sep Pattern[E]) Pattern[E] {
	return Optional(Joined(item, sep))
}
