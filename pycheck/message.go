package pycheck

import (
	"strconv"
	"strings"
)

var defaultTemplates = map[Kind]string{
	KindIndentation:        "line {line} is not indented under the block opened above it",
	KindUnbalancedParens:   "unbalanced parentheses, off by {count}",
	KindUnbalancedBrackets: "unbalanced brackets, off by {count}",
	KindUnbalancedBraces:   "unbalanced braces, off by {count}",
	KindMissingMusic:       "music is used without import music",
	KindMissingRadio:       "radio is used without import radio",
}

func newDiagnostic(line int, kind Kind, count int) Diagnostic {
	d := Diagnostic{
		Line:  line,
		Kind:  kind,
		Count: count,
	}
	d.Message = d.expand(defaultTemplates[kind])
	return d
}

func (d Diagnostic) expand(template string) string {
	s := strings.ReplaceAll(template, "{line}", strconv.Itoa(d.Line))
	s = strings.ReplaceAll(s, "{count}", formatCount(d.Count))
	return s
}

// imbalances read better signed, +1 not 1
func formatCount(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Render produces the user-facing message. Overrides map a diagnostic
// kind to a replacement template, which may use {line}, {count} and
// {message}, the last expanding to the default English text. Kinds
// without an override keep the default.
func Render(d Diagnostic, overrides map[string]string) string {
	template, ok := overrides[string(d.Kind)]
	if !ok {
		return d.Message
	}
	return strings.ReplaceAll(d.expand(template), "{message}", d.Message)
}
