package peg

import (
	"cmp"
	"fmt"
)

// Terminal matches exactly one element equal to v.
func Terminal[E comparable](v E) Pattern[E] {
	return &patternTerminal[E]{value: v}
}

type patternTerminal[E comparable] struct {
	value E
}

func (pat *patternTerminal[E]) match(ctx *Context[E]) (bool, error) {
	e, ok := ctx.Peek()
	if !ok || e != pat.value {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

func (pat *patternTerminal[E]) String() string {
	return fmt.Sprintf("terminal(%v)", pat.value)
}

// TerminalSet matches exactly one element equal to any of vs.
func TerminalSet[E comparable](vs ...E) Pattern[E] {
	set := make(map[E]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return &patternTerminalSet[E]{values: vs, set: set}
}

type patternTerminalSet[E comparable] struct {
	values []E
	set    map[E]struct{}
}

func (pat *patternTerminalSet[E]) match(ctx *Context[E]) (bool, error) {
	e, ok := ctx.Peek()
	if !ok {
		return false, nil
	}
	if _, in := pat.set[e]; !in {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

func (pat *patternTerminalSet[E]) String() string {
	return fmt.Sprintf("terminal_set(%v)", pat.values)
}

// TerminalRange matches exactly one element e with lo <= e <= hi.
func TerminalRange[E cmp.Ordered](lo, hi E) Pattern[E] {
	return &patternTerminalRange[E]{lo: lo, hi: hi}
}

type patternTerminalRange[E cmp.Ordered] struct {
	lo, hi E
}

func (pat *patternTerminalRange[E]) match(ctx *Context[E]) (bool, error) {
	e, ok := ctx.Peek()
	if !ok || e < pat.lo || e > pat.hi {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

func (pat *patternTerminalRange[E]) String() string {
	return fmt.Sprintf("terminal_range(%v..%v)", pat.lo, pat.hi)
}

// TerminalFunc matches exactly one element satisfying pred.
func TerminalFunc[E any](name string, pred func(E) bool) Pattern[E] {
	return &patternTerminalFunc[E]{name: name, pred: pred}
}

type patternTerminalFunc[E any] struct {
	name string
	pred func(E) bool
}

func (pat *patternTerminalFunc[E]) match(ctx *Context[E]) (bool, error) {
	e, ok := ctx.Peek()
	if !ok || !pat.pred(e) {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

func (pat *patternTerminalFunc[E]) String() string {
	if pat.name == "" {
		return "terminal_func(...)"
	}
	return fmt.Sprintf("terminal_func(%s)", pat.name)
}

// Any matches any single element, failing only at end of input.
func Any[E any]() Pattern[E] {
	return &patternAny[E]{}
}

type patternAny[E any] struct{}

func (pat *patternAny[E]) match(ctx *Context[E]) (bool, error) {
	if ctx.AtEnd() {
		return false, nil
	}
	ctx.Advance(1)
	return true, nil
}

func (pat *patternAny[E]) String() string {
	return "any()"
}

// Literal matches the exact element sequence seq, as one terminal
// sequence rather than len(seq) independent terminals.
func Literal[E comparable](seq ...E) Pattern[E] {
	return &patternLiteral[E]{seq: seq}
}

type patternLiteral[E comparable] struct {
	seq []E
}

func (pat *patternLiteral[E]) match(ctx *Context[E]) (bool, error) {
	snap := ctx.Snap()
	for _, want := range pat.seq {
		e, ok := ctx.Peek()
		if !ok || e != want {
			if err := ctx.Restore(snap); err != nil {
				return false, err
			}
			return false, nil
		}
		ctx.Advance(1)
	}
	return true, nil
}

func (pat *patternLiteral[E]) String() string {
	return fmt.Sprintf("terminal_seq(%v)", pat.seq)
}

// LiteralSet matches the longest of several element sequences (seqs) that
// is a prefix of the remaining input; the order in which seqs are given
// does not matter. It is backed by a prefix tree
// keyed on fixed-width groups of elements, the same technique the teacher
// repo used for its string-only equivalent.
func LiteralSet[E cmp.Ordered](seqs ...[]E) Pattern[E] {
	sorted := make([][]E, len(seqs))
	copy(sorted, seqs)
	sortSeqs(sorted)
	return &patternLiteralSet[E]{tree: buildPrefixTree(sorted)}
}

type patternLiteralSet[E cmp.Ordered] struct {
	tree prefixTree[E]
}

func (pat *patternLiteralSet[E]) match(ctx *Context[E]) (bool, error) {
	n, ok := pat.tree.search(func(i int) (E, bool) {
		return ctx.src.At(ctx.pos + Pos(i))
	})
	if !ok {
		return false, nil
	}
	ctx.Advance(n)
	return true, nil
}

func (pat *patternLiteralSet[E]) String() string {
	return "literal_set(...)"
}

// Empty always matches, consuming no input.
func Empty[E any]() Pattern[E] {
	return patternEmpty[E]{}
}

type patternEmpty[E any] struct{}

func (patternEmpty[E]) match(ctx *Context[E]) (bool, error) {
	return true, nil
}

func (patternEmpty[E]) String() string {
	return "empty()"
}

// CutPoint always matches, consuming no input, and commits the enclosing
// rule invocation: once evaluation passes a CutPoint, backtracking into
// earlier ordered-choice alternatives within that rule is no longer
// permitted, and the engine's committed window boundary may advance past
// this position once the rule returns.
func CutPoint[E any]() Pattern[E] {
	return patternCut[E]{}
}

type patternCut[E any] struct{}

func (patternCut[E]) match(ctx *Context[E]) (bool, error) {
	ctx.setCut()
	return true, nil
}

func (patternCut[E]) String() string {
	return "cut_point()"
}
