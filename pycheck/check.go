// Package pycheck runs line-based sanity checks over MicroPython source:
// delimiter balance, indentation after a colon, and missing music/radio
// imports. It is not a parser. The checks are cheap heuristics surfaced
// as warnings before code goes onto a device, and both false positives
// and false negatives are accepted.
package pycheck

type Kind string

const (
	KindIndentation        Kind = "indentationError"
	KindUnbalancedParens   Kind = "unbalancedParentheses"
	KindUnbalancedBrackets Kind = "unbalancedBrackets"
	KindUnbalancedBraces   Kind = "unbalancedBraces"
	KindMissingMusic       Kind = "missingImportMusic"
	KindMissingRadio       Kind = "missingImportRadio"
)

// Diagnostic is one finding. Line starts at 1. Count carries the signed
// imbalance for the delimiter kinds and is zero otherwise. Message is the
// English rendering, Render applies caller overrides on top.
type Diagnostic struct {
	Line    int
	Kind    Kind
	Count   int
	Message string
}

// Check never fails: malformed input yields diagnostics, not errors, and
// well-formed input yields none.
func Check(code string) []Diagnostic {
	var diagnostics []Diagnostic
	diagnostics = append(diagnostics, checkIndentation(code)...)
	diagnostics = append(diagnostics, checkBalance(code)...)
	diagnostics = append(diagnostics, checkImports(code)...)
	return diagnostics
}
