package peg

import "fmt"

// Rule is a named, possibly self-referential expression. It is the unit
// the recursion-tolerant evaluator operates on: every Rule invocation is
// memoized by (rule, start position), and a Rule whose body calls back
// into itself at the same position it started from — directly or through
// any number of intermediate rules — is resolved by the grow-the-seed
// algorithm rather than overflowing the call stack.
//
// A Rule is constructed in two steps so that recursive and mutually
// recursive grammars can be built: NewRule returns a handle other rules
// may already reference, and Define attaches the body afterwards.
type Rule[E any] struct {
	name   string
	body   Pattern[E]
	action func(ctx *Context[E], start, end Pos) error
}

// NewRule creates a named rule with no body yet. name is used only for
// diagnostics (String, error messages).
func NewRule[E any](name string) *Rule[E] {
	return &Rule[E]{name: name}
}

// Define attaches the rule's body. It must be called exactly once, before
// the rule is ever matched.
func (r *Rule[E]) Define(body Pattern[E]) *Rule[E] {
	if r.body != nil {
		panic(fmt.Errorf("%s: %w", r.String(), errorRedefinedRule))
	}
	r.body = body
	return r
}

// SetAction attaches a semantic action, invoked at most once per
// successful match of this rule, after the match is fully resolved. The
// action must not advance the cursor or touch the memo table; its only
// legitimate side effects are on data outside the Context.
func (r *Rule[E]) SetAction(action func(ctx *Context[E], start, end Pos) error) *Rule[E] {
	r.action = action
	return r
}

func (r *Rule[E]) match(ctx *Context[E]) (bool, error) {
	if r.body == nil {
		return false, errorUndefinedRule
	}

	start := ctx.Position()

	if state := ctx.ruleState(start, r); state != nil {
		// Either a plain memo hit, or a left-recursive re-entry into a
		// rule still mid-evaluation at this exact position: in the
		// latter case state.Matched is whatever the seed has grown to
		// so far (false until a base case has been found once).
		if state.Matched {
			ctx.SetPosition(state.End)
			return true, nil
		}
		return false, nil
	}

	if err := ctx.enterRule(); err != nil {
		return false, err
	}
	defer ctx.leaveRule()

	state := &RuleState{Evaluating: true}
	ctx.setRuleState(start, r, state)
	ctx.enterCutFrame()

	ok, err := r.body.match(ctx)
	if err != nil {
		ctx.leaveCutFrame()
		return false, err
	}
	if !ok {
		state.Evaluating = false
		ctx.leaveCutFrame()
		return false, nil
	}

	state.Matched = true
	state.End = ctx.Position()

	// Grow the seed: keep re-evaluating the body from start as long as
	// each attempt makes more progress than the last. A left-recursive
	// reference hitting the memo cell above now sees the latest seed and
	// can extend it; a non-left-recursive body simply reproduces the same
	// end position and the loop stops after one confirming iteration.
	for {
		ctx.SetPosition(start)
		ok, err = r.body.match(ctx)
		if err != nil {
			state.Evaluating = false
			ctx.leaveCutFrame()
			return false, err
		}
		if !ok {
			break
		}
		end := ctx.Position()
		if end <= state.End {
			break
		}
		state.End = end
	}

	state.Evaluating = false
	ctx.SetPosition(state.End)
	ctx.leaveCutFrame()

	if r.action != nil {
		if err := r.action(ctx, start, state.End); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *Rule[E]) String() string {
	if r.name == "" {
		return "rule(?)"
	}
	return fmt.Sprintf("rule(%s)", r.name)
}
