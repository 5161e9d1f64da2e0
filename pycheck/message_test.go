package pycheck

import "testing"

func TestRender(t *testing.T) {
	d := Check("print(")[0]

	if got := Render(d, nil); got != "unbalanced parentheses, off by +1" {
		t.Fatalf("got %q", got)
	}

	got := Render(d, map[string]string{
		"unbalancedParentheses": "{count} unbalanced on line {line}",
	})
	if got != "+1 unbalanced on line 1" {
		t.Fatalf("got %q", got)
	}

	got = Render(d, map[string]string{
		"unbalancedParentheses": "python: {message}",
	})
	if got != "python: unbalanced parentheses, off by +1" {
		t.Fatalf("got %q", got)
	}

	// an override for another kind leaves this one on the default
	got = Render(d, map[string]string{
		"unbalancedBraces": "ignored",
	})
	if got != d.Message {
		t.Fatalf("got %q", got)
	}
}

func TestNegativeCountRendering(t *testing.T) {
	d := Check("print))")[0]
	if got := Render(d, nil); got != "unbalanced parentheses, off by -2" {
		t.Fatalf("got %q", got)
	}
}
