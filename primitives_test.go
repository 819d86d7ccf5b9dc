package peg

import "testing"

func TestTerminal(t *testing.T) {
	data := []matchTestData{
		{"", false, 0, Terminal[byte]('A')},
		{"A", true, 1, Terminal[byte]('A')},
		{"B", false, 0, Terminal[byte]('A')},
		{"AA", true, 1, Terminal[byte]('A')},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestTerminalSet(t *testing.T) {
	pat := TerminalSet[byte]('A', 'B', 'C')
	data := []matchTestData{
		{"", false, 0, pat},
		{"A", true, 1, pat},
		{"C", true, 1, pat},
		{"D", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestTerminalRange(t *testing.T) {
	pat := TerminalRange[byte]('0', '9')
	data := []matchTestData{
		{"", false, 0, pat},
		{"0", true, 1, pat},
		{"9", true, 1, pat},
		{"a", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestTerminalFunc(t *testing.T) {
	isDigit := TerminalFunc[byte]("digit", func(b byte) bool { return b >= '0' && b <= '9' })
	data := []matchTestData{
		{"", false, 0, isDigit},
		{"7", true, 1, isDigit},
		{"x", false, 0, isDigit},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestAny(t *testing.T) {
	pat := Any[byte]()
	data := []matchTestData{
		{"", false, 0, pat},
		{"x", true, 1, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestLiteral(t *testing.T) {
	pat := Literal[byte]('a', 'b', 'c')
	data := []matchTestData{
		{"", false, 0, pat},
		{"ab", false, 0, pat},
		{"abc", true, 3, pat},
		{"abd", false, 0, pat},
		{"abcd", true, 3, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestLiteralSet(t *testing.T) {
	pat := LiteralSet[byte]([]byte("a"), []byte("ab"), []byte("abc"))
	data := []matchTestData{
		{"", false, 0, pat},
		{"a", true, 1, pat},
		{"ab", true, 2, pat},
		{"abc", true, 3, pat},
		{"abcd", true, 3, pat},
		{"b", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestEmpty(t *testing.T) {
	pat := Empty[byte]()
	data := []matchTestData{
		{"", true, 0, pat},
		{"x", true, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}
