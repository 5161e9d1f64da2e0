package pycheck

import "strings"

// checkBalance keeps a running count per delimiter pair over the whole
// text, string literals included, so brackets inside strings mis-count.
// A nonzero end balance becomes one diagnostic per pair, attributed to
// the last line.
func checkBalance(code string) []Diagnostic {
	var parens, brackets, braces int
	for i := 0; i < len(code); i++ {
		switch code[i] {
		case '(':
			parens++
		case ')':
			parens--
		case '[':
			brackets++
		case ']':
			brackets--
		case '{':
			braces++
		case '}':
			braces--
		}
	}

	line := lastLine(code)
	var diagnostics []Diagnostic
	for _, balance := range []struct {
		kind  Kind
		count int
	}{
		{KindUnbalancedParens, parens},
		{KindUnbalancedBrackets, brackets},
		{KindUnbalancedBraces, braces},
	} {
		if balance.count == 0 {
			continue
		}
		diagnostics = append(diagnostics, newDiagnostic(line, balance.kind, balance.count))
	}
	return diagnostics
}

// lastLine numbers the final content line, not the empty line a trailing
// newline would split off.
func lastLine(code string) int {
	n := strings.Count(code, "\n") + 1
	if strings.HasSuffix(code, "\n") {
		n--
	}
	if n < 1 {
		n = 1
	}
	return n
}
