package peg

import "testing"

// matchTestData exercises a single Pattern directly against a string,
// bypassing the Rule/driver layer — useful for table-driven primitive and
// combinator tests the way the teacher's own pattern tests worked.
type matchTestData struct {
	text string
	ok   bool
	n    int
	pat  Pattern[byte]
}

func runMatchTestData(t *testing.T, data matchTestData) {
	t.Helper()
	ctx := newContext[byte](StringSource(data.text), defaultConfig)
	ok, err := data.pat.match(ctx)
	if err != nil {
		t.Errorf("UNEXPECTED ERROR %q occurred when matching %s against %q", err, data.pat, data.text)
		return
	}
	if ok != data.ok {
		t.Errorf("RESULT MISMATCH: match(%s, %q) => %v != %v", data.pat, data.text, ok, data.ok)
		return
	}
	if ok && int(ctx.Position()) != data.n {
		t.Errorf("RESULT MISMATCH: match(%s, %q) consumed %d != %d", data.pat, data.text, ctx.Position(), data.n)
	}
}
