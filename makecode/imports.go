package makecode

import "strings"

const wildcardImport = "from microbit import *"

// synthesizeImports runs before the API rewrites, so the conditions test
// the MakeCode-form text. A second conversion finds nothing left to add.
func synthesizeImports(c *conversion) {
	text := c.text
	if !strings.Contains(text, wildcardImport) {
		text = wildcardImport + "\n" + text
	}

	var extra []string
	usesRadioValues := strings.Contains(text, "send_value(") ||
		strings.Contains(text, "receive_value(")
	if usesRadioValues && !strings.Contains(text, "import struct") {
		extra = append(extra, "import struct")
	}
	if strings.Contains(text, "music.") && !strings.Contains(text, "import music") {
		extra = append(extra, "import music")
	}
	if strings.Contains(text, "radio.") && !strings.Contains(text, "import radio") {
		extra = append(extra, "import radio")
	}
	if len(extra) > 0 {
		text = strings.Replace(
			text,
			wildcardImport,
			wildcardImport+"\n"+strings.Join(extra, "\n"),
			1,
		)
	}

	c.text = text
}
