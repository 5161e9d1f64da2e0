package makecode

import (
	"regexp"
	"strings"
)

var blankRunPattern = regexp.MustCompile(`\n{3,}`)

func cleanupWhitespace(c *conversion) {
	c.text = blankRunPattern.ReplaceAllString(c.text, "\n\n")
}

func finalize(c *conversion) {
	c.text = strings.TrimRight(c.text, "\n") + "\n"
}
