// Package peg implements a Parsing Expression Grammar engine generic over
// the element type being recognized — runes, bytes or any other
// comparable token. Matching is greedy and deterministic: an ordered
// choice always tries its alternatives in order and commits to the first
// one that matches, and a repetition always consumes as much as it can.
//
// Unlike a plain recursive-descent PEG implementation, rules are
// recursion-tolerant: a Rule may reference itself, directly or through
// any number of intermediate rules, at the same position it started
// matching from. Such left recursion is resolved with Warth's
// grow-the-seed algorithm, backed by a (rule, position) memo table that
// also gives every rule invocation packrat-style linear time bounds.
//
// Overlook of primitives
//
// Single-element primitives:
//
//	Terminal(v), TerminalSet(v...), TerminalRange(lo, hi)
//	TerminalFunc(name, pred), Any()
//
// Multi-element primitives:
//
//	Literal(seq...), LiteralSet(seq...)
//	Empty(), CutPoint()
//
// Combinators:
//
//	Sequence(pat...), Choice(pat...)
//	Repeat(min, max, pat), ZeroOrMore(pat), OneOrMore(pat)
//	Optional(pat), NTimes(n, pat)
//	Joined(item, sep), SeparatedBy(item, sep)
//	AndPredicate(pat), NotPredicate(pat)
//	Validate(fn, pat)
//
// Rules:
//
//	NewRule(name), (*Rule).Define(body), (*Rule).SetAction(fn)
//
// Overlook of sources and the driver
//
// Source is the element-addressable input abstraction: SliceSource and
// StringSource hold everything in memory, FileSource reads a file through
// two fixed-size buffers, reloading whichever one doesn't already cover
// the requested position.
//
// Parse drives a root Rule against a Source and reports whether it
// matched, how far it got, and whether it reached the end of input.
//
// Common mistakes
//
// Greedy repetition:
//
// A greedy Repeat can starve what follows it. ZeroOrMore(TerminalRange('0',
// '9')) followed by Terminal('5') never lets the '5' match, since the
// digit repetition already consumed it. Guard the boundary instead, e.g.
// with a NotPredicate, or restructure the grammar so the ambiguity cannot
// arise.
//
// Unreachable alternatives:
//
// Choice(Literal('a'), Literal('a', 'b')) can never take its second
// alternative: ordered choice commits to the first match, so a longer
// alternative must be tried before a shorter overlapping prefix of it.
//
// Left recursion without progress:
//
// A rule whose every recursive path fails to consume input before
// recursing back into itself at the same position (mutual left recursion
// through Empty-equivalent rules) does not loop forever: the recursive
// re-entry hits its own memo cell mid-evaluation and immediately reports
// the current seed, so the grow-seed loop still terminates in O(1), just
// with a seed that never grows past Empty's match. MaxDepth instead
// guards the unrelated case of ordinary, progress-making recursion nested
// too deeply for the host stack — it has nothing to do with left
// recursion, which memoization already resolves on its own.
package peg // import "github.com/hucsmn/pego"
