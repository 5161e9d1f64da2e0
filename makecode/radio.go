package makecode

import (
	"regexp"
	"strings"
)

var (
	sendValuePattern = regexp.MustCompile(`radio\.send_value\([^,]*,\s*([^)]+)\)`)
	setGroupPattern  = regexp.MustCompile(`radio\.set_group\(([^)]+)\)`)
)

func rewriteRadio(c *conversion) {
	text := c.text

	text = strings.ReplaceAll(text, "radio.send_string(", "radio.send(")
	text = strings.ReplaceAll(text, "radio.receive_string()", "radio.receive()")

	// MakeCode value packets carry a name and a number, MicroPython radio
	// only sends bytes. The name is dropped and the number goes over the
	// air as a single signed byte.
	text = sendValuePattern.ReplaceAllString(text, `radio.send(struct.pack("<b", $1))`)
	text = strings.ReplaceAll(text,
		"radio.receive_value()",
		`struct.unpack("<b", radio.receive_bytes() or b"\x00")[0]`,
	)

	text = setGroupPattern.ReplaceAllString(text, "radio.config(group=$1)")

	c.text = text
}
