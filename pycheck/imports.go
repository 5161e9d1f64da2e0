package pycheck

import "strings"

// checkImports flags music. and radio. usage with no matching import.
// The microbit wildcard import counts as covering both.
func checkImports(code string) []Diagnostic {
	hasWildcard := strings.Contains(code, "from microbit import *")
	var diagnostics []Diagnostic
	if strings.Contains(code, "music.") &&
		!strings.Contains(code, "import music") && !hasWildcard {
		diagnostics = append(diagnostics, newDiagnostic(1, KindMissingMusic, 0))
	}
	if strings.Contains(code, "radio.") &&
		!strings.Contains(code, "import radio") && !hasWildcard {
		diagnostics = append(diagnostics, newDiagnostic(1, KindMissingRadio, 0))
	}
	return diagnostics
}
