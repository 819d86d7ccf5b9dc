package peg

import "testing"

func TestSequence(t *testing.T) {
	pat := Sequence[byte](Terminal[byte]('a'), Terminal[byte]('b'), Terminal[byte]('c'))
	data := []matchTestData{
		{"", false, 0, pat},
		{"ab", false, 0, pat},
		{"abc", true, 3, pat},
		{"abd", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestSequenceEmpty(t *testing.T) {
	runMatchTestData(t, matchTestData{"", true, 0, Sequence[byte]()})
}

func TestChoice(t *testing.T) {
	pat := Choice[byte](Literal[byte]('a', 'a'), Literal[byte]('a'), Literal[byte]('b'))
	data := []matchTestData{
		{"", false, 0, pat},
		{"aa", true, 2, pat},
		{"a", true, 1, pat},
		{"b", true, 1, pat},
		{"c", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestChoiceEmpty(t *testing.T) {
	runMatchTestData(t, matchTestData{"x", false, 0, Choice[byte]()})
}

func TestZeroOrMore(t *testing.T) {
	pat := ZeroOrMore(Terminal[byte]('a'))
	data := []matchTestData{
		{"", true, 0, pat},
		{"a", true, 1, pat},
		{"aaab", true, 3, pat},
		{"b", true, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestOneOrMore(t *testing.T) {
	pat := OneOrMore(Terminal[byte]('a'))
	data := []matchTestData{
		{"", false, 0, pat},
		{"a", true, 1, pat},
		{"aaab", true, 3, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestOptional(t *testing.T) {
	pat := Optional(Terminal[byte]('a'))
	data := []matchTestData{
		{"", true, 0, pat},
		{"a", true, 1, pat},
		{"b", true, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestNTimes(t *testing.T) {
	pat := NTimes(3, Terminal[byte]('a'))
	data := []matchTestData{
		{"aa", false, 0, pat},
		{"aaa", true, 3, pat},
		{"aaaa", true, 3, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestRepeatRange(t *testing.T) {
	pat := Repeat(2, 4, Terminal[byte]('a'))
	data := []matchTestData{
		{"", false, 0, pat},
		{"a", false, 0, pat},
		{"aa", true, 2, pat},
		{"aaaa", true, 4, pat},
		{"aaaaaa", true, 4, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestRepeatInvalidBounds(t *testing.T) {
	ctx := newContext[byte](StringSource("aaa"), defaultConfig)
	pat := Repeat[byte](3, 1, Terminal[byte]('a'))
	_, err := pat.match(ctx)
	if err == nil {
		t.Errorf("expected an error for repetition bounds min=3 max=1, got none")
	}
}

// Repeat never loops forever over a sub-pattern that matches without
// consuming input.
func TestRepeatNoProgressTerminates(t *testing.T) {
	pat := ZeroOrMore[byte](Empty[byte]())
	runMatchTestData(t, matchTestData{"abc", true, 0, pat})
}

func TestJoined(t *testing.T) {
	pat := Joined(Terminal[byte]('a'), Terminal[byte](','))
	data := []matchTestData{
		{"", false, 0, pat},
		{"a", true, 1, pat},
		{"a,a,a", true, 5, pat},
		{"a,a,", true, 3, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestSeparatedBy(t *testing.T) {
	pat := SeparatedBy(Terminal[byte]('a'), Terminal[byte](','))
	data := []matchTestData{
		{"", true, 0, pat},
		{"a,a", true, 3, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}
