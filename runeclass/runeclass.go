// Package runeclass builds single-rune Patterns out of Unicode category,
// script and property names, the way the teacher's own rune.go built its
// "U" ranges constructor — generalized here to the new generic
// Terminal/TerminalFunc primitives instead of a rune-only pattern node.
package runeclass

import (
	"fmt"
	"strings"
	"unicode"

	peg "github.com/hucsmn/pego"
)

// Class returns a Pattern matching exactly one rune that belongs to at
// least one "plain" name in names (or, when only "-" names are given,
// any rune) and to none of the names prefixed with "-". Names
// are resolved the same way IsValidName resolves them. Class panics if
// any name is undefined — grammar configuration errors are reported
// loudly at construction time, never silently accepted.
//
// Calling Class with no names returns a Pattern that never matches.
func Class(names ...string) peg.Pattern[rune] {
	var includes, excludes []string
	for _, name := range names {
		if rest, ok := strings.CutPrefix(name, "-"); ok {
			excludes = append(excludes, rest)
		} else {
			includes = append(includes, name)
		}
	}

	includeRanges, err := resolveAll(includes)
	if err != nil {
		panic(err)
	}
	excludeRanges, err := resolveAll(excludes)
	if err != nil {
		panic(err)
	}

	return peg.TerminalFunc(describe(includes, excludes), func(r rune) bool {
		if len(includes) > 0 && !unicode.In(r, includeRanges...) {
			return false
		}
		if len(excludes) > 0 && unicode.In(r, excludeRanges...) {
			return false
		}
		return len(includes) > 0 || len(excludes) > 0
	})
}

func describe(includes, excludes []string) string {
	switch {
	case len(includes) == 0 && len(excludes) == 0:
		return "class()"
	case len(excludes) == 0:
		return fmt.Sprintf("class(%s)", strings.Join(includes, "+"))
	case len(includes) == 0:
		return fmt.Sprintf("class(-%s)", strings.Join(excludes, "-"))
	default:
		return fmt.Sprintf("class(%s-%s)", strings.Join(includes, "+"), strings.Join(excludes, "-"))
	}
}

func resolveAll(names []string) ([]*unicode.RangeTable, error) {
	var ranges []*unicode.RangeTable
	for _, name := range names {
		rs, ok := lookup(name)
		if !ok {
			return nil, errorUndefinedClass(name)
		}
		ranges = append(ranges, rs...)
	}
	return ranges, nil
}

// IsValidName reports whether name resolves to a known Unicode class:
// one of the short aliases below, a unicode.Properties entry (e.g.
// "White_Space"), a unicode.Scripts entry (e.g. "Greek") or a
// unicode.Categories entry (e.g. "Nd").
func IsValidName(name string) bool {
	_, ok := lookup(name)
	return ok
}

var aliases = map[string][]*unicode.RangeTable{
	"Upper":     {unicode.Lu},
	"Lower":     {unicode.Ll},
	"Title":     {unicode.Lt},
	"Letter":    {unicode.L},
	"Mark":      {unicode.M},
	"Number":    {unicode.N},
	"Digit":     {unicode.Nd},
	"Punct":     {unicode.P},
	"Symbol":    {unicode.S},
	"Separator": {unicode.Z},
	"Other":     {unicode.C},
	"Control":   {unicode.Cc},
	"Graphic":   unicode.GraphicRanges,
	"Print":     unicode.PrintRanges,
}

func lookup(name string) ([]*unicode.RangeTable, bool) {
	if rs, ok := aliases[name]; ok {
		return rs, true
	}
	if r, ok := unicode.Properties[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	if r, ok := unicode.Scripts[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	if r, ok := unicode.Categories[name]; ok {
		return []*unicode.RangeTable{r}, true
	}
	return nil, false
}

func errorUndefinedClass(name string) error {
	return fmt.Errorf("runeclass: class name %q undefined", name)
}

// Common classes, built eagerly the way the teacher's package-level
// Whitespace/Digit/Letter vars were.
var (
	Whitespace    = Class("White_Space")
	NotWhitespace = Class("-White_Space")
	Digit         = Class("Digit")
	Letter        = Class("Letter")
	Lower         = Class("Lower")
	Upper         = Class("Upper")
	Title         = Class("Title")
	LetterDigit   = Class("Letter", "Digit")
	Control       = Class("Control")
	NotControl    = Class("-Control")
	Printable     = Class("Print")
	NotPrintable  = Class("-Print")
	Graphic       = Class("Graphic")
	NotGraphic    = Class("-Graphic")
)
