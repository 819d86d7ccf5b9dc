// Package literals builds common lexical-literal grammars (numbers,
// identifiers, quoted strings, whitespace) over rune input, the way the
// teacher's pegutil package built them over its string-only Pattern type.
// Every grammar here is plain composition of peg's exported primitives
// and combinators — no new Pattern variant is introduced.
package literals

import (
	"math"
	"strconv"
	"strings"

	peg "github.com/hucsmn/pego"
	"github.com/hucsmn/pego/runeclass"
)

// Digits.
var (
	OctDigit = peg.TerminalRange[rune]('0', '7')
	DecDigit = peg.TerminalRange[rune]('0', '9')
	HexDigit = peg.Choice[rune](
		peg.TerminalRange[rune]('0', '9'),
		peg.TerminalRange[rune]('a', 'f'),
		peg.TerminalRange[rune]('A', 'F'))
)

// Bare (unsigned, no sign, no separators) integer literals.
var (
	DecInteger = peg.OneOrMore(DecDigit)
	HexInteger = peg.OneOrMore(HexDigit)
	OctInteger = peg.OneOrMore(OctDigit)

	DecUint8  = DecIntegerBetween(0, math.MaxUint8)
	DecUint16 = DecIntegerBetween(0, math.MaxUint16)
	DecUint32 = DecIntegerBetween(0, math.MaxUint32)

	HexUint8  = HexIntegerBetween(0, math.MaxUint8)
	HexUint16 = HexIntegerBetween(0, math.MaxUint16)
	HexUint32 = HexIntegerBetween(0, math.MaxUint32)
)

// Integer is a C-style integer literal: hex (0x...), octal (0...) or
// decimal, in that preference order.
var Integer = peg.Choice[rune](
	peg.Sequence[rune](peg.LiteralSet[rune]([]rune("0x"), []rune("0X")), HexInteger),
	peg.Sequence[rune](peg.Literal[rune]('0'), OctInteger),
	DecInteger,
)

// Decimal is a decimal-point number with optional digits before the
// point and at least one digit after it, or a bare integer.
var Decimal = peg.Choice[rune](
	peg.Sequence[rune](
		peg.ZeroOrMore(DecDigit),
		peg.Literal[rune]('.'),
		peg.OneOrMore(DecDigit)),
	DecInteger,
)

// Float additionally allows a C-style exponent suffix.
var Float = peg.Sequence[rune](
	Decimal,
	peg.Optional(peg.Sequence[rune](
		peg.TerminalSet[rune]('e', 'E'),
		peg.Optional(peg.TerminalSet[rune]('+', '-')),
		DecInteger)),
)

// Number accepts a hex/octal integer or a Float, hex and octal taking
// priority to keep "0x1" from being read as the decimal literal "0"
// followed by garbage.
var Number = peg.Choice[rune](
	peg.Sequence[rune](peg.LiteralSet[rune]([]rune("0x"), []rune("0X")), HexInteger),
	Float,
)

// Identifier matches a C-style identifier: a letter or underscore,
// followed by any run of letters, digits or underscores.
var Identifier = peg.Sequence[rune](
	peg.Choice[rune](runeclass.Letter, peg.Literal[rune]('_')),
	peg.ZeroOrMore(peg.Choice[rune](runeclass.LetterDigit, peg.Literal[rune]('_'))),
)

// Spaces and newlines.
var (
	AnySpaces = peg.ZeroOrMore(runeclass.Whitespace)
	Spaces    = peg.OneOrMore(runeclass.Whitespace)
	Newline   = peg.Choice[rune](peg.Literal[rune]('\r', '\n'), peg.TerminalSet[rune]('\r', '\n'))
)

// String matches a double-quoted string literal with Go/C-style escape
// sequences: \uXXXX, \UXXXXXXXX, \xXX, \NNN (octal), single-character
// escapes, and any other character but the closing quote or a bare
// newline.
var String = peg.Sequence[rune](
	peg.Literal[rune]('"'),
	peg.ZeroOrMore(peg.Choice[rune](
		peg.Sequence[rune](peg.Literal[rune]('\\', 'U'), peg.NTimes(8, HexDigit)),
		peg.Sequence[rune](peg.Literal[rune]('\\', 'u'), peg.NTimes(4, HexDigit)),
		peg.Sequence[rune](peg.Literal[rune]('\\', 'x'), peg.NTimes(2, HexDigit)),
		peg.Sequence[rune](peg.Literal[rune]('\\'), peg.NTimes(3, OctDigit)),
		peg.Sequence[rune](peg.Literal[rune]('\\'), peg.TerminalSet[rune]('a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '\'', '"')),
		peg.TerminalFunc("string-char", func(r rune) bool { return r != '"' && r != '\n' && r != '\\' }),
	)),
	peg.Literal[rune]('"'),
)

// IntegerBetween matches an Integer literal whose value falls in [m, n].
func IntegerBetween(m, n uint64) peg.Pattern[rune] {
	return peg.Validate(betweenValidator(m, n, parseIntegerValue), Integer)
}

// DecIntegerBetween matches a DecInteger literal whose value falls in
// [m, n].
func DecIntegerBetween(m, n uint64) peg.Pattern[rune] {
	return peg.Validate(betweenValidator(m, n, base(10)), DecInteger)
}

// HexIntegerBetween matches a HexInteger literal whose value falls in
// [m, n].
func HexIntegerBetween(m, n uint64) peg.Pattern[rune] {
	return peg.Validate(betweenValidator(m, n, base(16)), HexInteger)
}

// OctIntegerBetween matches an OctInteger literal whose value falls in
// [m, n].
func OctIntegerBetween(m, n uint64) peg.Pattern[rune] {
	return peg.Validate(betweenValidator(m, n, base(8)), OctInteger)
}

func base(b int) func(string) (uint64, bool) {
	return func(s string) (uint64, bool) {
		x, err := strconv.ParseUint(s, b, 64)
		return x, err == nil
	}
}

func parseIntegerValue(s string) (uint64, bool) {
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		return base(16)(s[2:])
	case strings.HasPrefix(s, "0") && len(s) > 1:
		return base(8)(s)
	default:
		return base(10)(s)
	}
}

func betweenValidator(m, n uint64, parse func(string) (uint64, bool)) func([]rune) bool {
	if m > n {
		m, n = n, m
	}
	return func(span []rune) bool {
		x, ok := parse(string(span))
		return ok && x >= m && x <= n
	}
}
