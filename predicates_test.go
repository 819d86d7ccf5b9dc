package peg

import "testing"

func TestAndPredicate(t *testing.T) {
	pat := Sequence[byte](AndPredicate[byte](Terminal[byte]('a')), Terminal[byte]('a'))
	data := []matchTestData{
		{"a", true, 1, pat},
		{"b", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

func TestNotPredicate(t *testing.T) {
	pat := Sequence[byte](NotPredicate[byte](Terminal[byte]('a')), Any[byte]())
	data := []matchTestData{
		{"b", true, 1, pat},
		{"a", false, 0, pat},
	}
	for _, d := range data {
		runMatchTestData(t, d)
	}
}

// And/Not predicates consume nothing even when they succeed.
func TestPredicatesConsumeNothing(t *testing.T) {
	ctx := newContext[byte](StringSource("abc"), defaultConfig)
	ok, err := AndPredicate[byte](Literal[byte]('a', 'b')).match(ctx)
	if err != nil || !ok {
		t.Fatalf("expected AndPredicate to succeed, got ok=%v err=%v", ok, err)
	}
	if ctx.Position() != 0 {
		t.Errorf("AndPredicate advanced the cursor to %d, want 0", ctx.Position())
	}
}
