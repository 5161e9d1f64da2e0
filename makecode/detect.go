package makecode

import "strings"

// markers only ever appear in MakeCode exports, so a substring test is a
// safe gate. Missing a marker just means the source is treated as plain
// MicroPython and only gains an import header.
var markers = []string{
	"basic.",
	"IconNames.",
	"basic.forever",
	"input.on_",
	"pins.analog_pitch",
}

func IsMakeCode(src string) bool {
	for _, marker := range markers {
		if strings.Contains(src, marker) {
			return true
		}
	}
	return false
}
