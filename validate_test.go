package peg

import "testing"

func TestValidate(t *testing.T) {
	evenDigits := Validate(func(span []byte) bool {
		return len(span)%2 == 0
	}, OneOrMore(TerminalRange[byte]('0', '9')))

	data := []matchTestData{
		{"123", false, 0, evenDigits},
		{"1234", true, 4, evenDigits},
		{"", false, 0, evenDigits},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestValidateRestoresCursorOnRejection(t *testing.T) {
	ctx := newContext[byte](StringSource("123"), defaultConfig)
	rejectAll := Validate(func([]byte) bool { return false }, OneOrMore(TerminalRange[byte]('0', '9')))
	ok, err := rejectAll.match(ctx)
	if err != nil || ok {
		t.Fatalf("expected rejection, got ok=%v err=%v", ok, err)
	}
	if ctx.Position() != 0 {
		t.Errorf("Validate left cursor at %d after rejecting, want 0", ctx.Position())
	}
}
