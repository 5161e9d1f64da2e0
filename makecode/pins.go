package makecode

import (
	"regexp"
	"strings"
)

// MakeCode uses DigitalPin or AnalogPin enum names depending on the block,
// the target pin object is the same either way.
var (
	digitalWritePattern = regexp.MustCompile(`pins\.digital_write_pin\((?:DigitalPin|AnalogPin)\.P(\d+),\s*`)
	digitalReadPattern  = regexp.MustCompile(`pins\.digital_read_pin\((?:DigitalPin|AnalogPin)\.P(\d+)\)`)
	analogWritePattern  = regexp.MustCompile(`pins\.analog_write_pin\((?:AnalogPin|DigitalPin)\.P(\d+),\s*`)
	analogReadPattern   = regexp.MustCompile(`pins\.analog_read_pin\((?:AnalogPin|DigitalPin)\.P(\d+)\)`)

	analogPitchPattern = regexp.MustCompile(`pins\.analog_pitch\(\s*([\w.]+)\s*,\s*([^)]+)\)`)
	pinNumberPattern   = regexp.MustCompile(`^\d+$`)
)

func rewritePins(c *conversion) {
	text := c.text

	text = digitalWritePattern.ReplaceAllString(text, "pin$1.write_digital(")
	text = digitalReadPattern.ReplaceAllString(text, "pin$1.read_digital()")
	text = analogWritePattern.ReplaceAllString(text, "pin$1.write_analog(")
	text = analogReadPattern.ReplaceAllString(text, "pin$1.read_analog()")

	text = expandAnalogPitch(text)

	c.text = text
}

// expandAnalogPitch replaces each analog_pitch line with a PWM period set
// plus a 50% duty write, both at the line's own indentation. MicroPython's
// tone API only drives the speaker, so the pin has to be driven directly.
func expandAnalogPitch(text string) string {
	if !strings.Contains(text, "pins.analog_pitch(") {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		match := analogPitchPattern.FindStringSubmatch(line)
		if match == nil {
			out = append(out, line)
			continue
		}
		indent := indentOf(line)
		pin := strings.TrimSpace(match[1])
		freq := strings.TrimSpace(match[2])
		if pinNumberPattern.MatchString(pin) {
			pin = "pin" + pin
		}
		// a non-numeric pin argument is assumed to hold a pin object
		out = append(out,
			indent+pin+".set_analog_period_microseconds(int(1000000 / "+freq+"))",
			indent+pin+".write_analog(512)",
		)
	}
	return strings.Join(out, "\n")
}
