package makecode

import "strings"

func normalize(c *conversion) {
	text := strings.ReplaceAll(c.text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = expandIndent(line)
	}
	c.text = strings.TrimSpace(strings.Join(lines, "\n"))
}

// expandIndent rewrites leading tabs to 4-space units, leaving tabs inside
// the line body alone.
func expandIndent(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	indent := line[:i]
	if !strings.Contains(indent, "\t") {
		return line
	}
	return strings.ReplaceAll(indent, "\t", "    ") + line[i:]
}

func indentOf(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
