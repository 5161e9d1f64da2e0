package pycheck

import "strings"

// same-level keywords that legally follow a colon line without indenting
var continuationKeywords = []string{"elif", "else", "except", "finally"}

func continuesBlock(trimmed string) bool {
	for _, keyword := range continuationKeywords {
		if !strings.HasPrefix(trimmed, keyword) {
			continue
		}
		rest := trimmed[len(keyword):]
		if rest == "" || rest[0] == ':' || rest[0] == ' ' || rest[0] == '(' {
			return true
		}
	}
	return false
}

func isComment(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#")
}

func indentWidth(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// checkIndentation flags a line that fails to indent past its predecessor
// when the predecessor opens a block with a colon. Blank lines and
// comments are never flagged, and a blank or comment predecessor
// suppresses the check for the line after it.
func checkIndentation(code string) []Diagnostic {
	lines := strings.Split(code, "\n")
	var diagnostics []Diagnostic
	for i := 1; i < len(lines); i++ {
		prev := strings.TrimSpace(lines[i-1])
		if !strings.HasSuffix(prev, ":") || isComment(prev) {
			continue
		}
		current := strings.TrimSpace(lines[i])
		if current == "" || isComment(current) || continuesBlock(current) {
			continue
		}
		if indentWidth(lines[i]) <= indentWidth(lines[i-1]) {
			diagnostics = append(diagnostics, newDiagnostic(i+1, KindIndentation, 0))
		}
	}
	return diagnostics
}
