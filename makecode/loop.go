package makecode

import (
	"regexp"
	"strings"
)

// gestureNames maps MakeCode gesture identifiers to the strings
// accelerometer.was_gesture accepts.
var gestureNames = map[string]string{
	"Shake":      "shake",
	"LogoUp":     "up",
	"LogoDown":   "down",
	"ScreenUp":   "face up",
	"ScreenDown": "face down",
	"TiltLeft":   "left",
	"TiltRight":  "right",
	"FreeFall":   "freefall",
	"ThreeG":     "3g",
	"SixG":       "6g",
	"EightG":     "8g",
}

func gestureName(name string) string {
	if mapped, ok := gestureNames[name]; ok {
		return mapped
	}
	return strings.ToLower(name)
}

func (t Trigger) check() string {
	switch t.Kind {
	case TriggerButtonA:
		return "button_a.was_pressed()"
	case TriggerButtonB:
		return "button_b.was_pressed()"
	case TriggerGesture:
		return `accelerometer.was_gesture("` + gestureName(t.Gesture) + `")`
	case TriggerLogo:
		return "pin_logo.is_touched()"
	}
	return ""
}

// integrateLoop turns the collected registrations back into code: polling
// checks inside the first while True: found in the text, or a synthesized
// loop when there is none. First textual match is the documented heuristic,
// nothing tries to prove it is the real main loop.
func integrateLoop(c *conversion) {
	if len(c.handlers) == 0 && c.forever == "" {
		return
	}

	lines := strings.Split(c.text, "\n")

	loopAt := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "while True:" {
			loopAt = i
			break
		}
	}

	switch {
	case loopAt >= 0:
		c.text = injectIntoLoop(lines, loopAt, c.handlers, c.forever)
	case len(c.handlers) > 0:
		c.text = appendLoop(lines, c.handlers, c.forever)
	default:
		c.text = synthesizeAfterDef(lines, c.forever)
	}
}

func injectIntoLoop(lines []string, loopAt int, handlers []HandlerBinding, forever string) string {
	loopIndent := indentOf(lines[loopAt])
	bodyIndent := loopIndent + "    "
	for i := loopAt + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if indent := indentOf(lines[i]); len(indent) > len(loopIndent) {
			bodyIndent = indent
		}
		break
	}

	inserted := make([]string, 0, len(handlers)*2+1)
	for _, handler := range handlers {
		inserted = append(inserted,
			bodyIndent+"if "+handler.Trigger.check()+":",
			bodyIndent+"    "+handler.Function+"()",
		)
	}
	if forever != "" {
		inserted = append(inserted, bodyIndent+forever+"()")
	}

	out := make([]string, 0, len(lines)+len(inserted))
	out = append(out, lines[:loopAt+1]...)
	out = append(out, inserted...)
	out = append(out, lines[loopAt+1:]...)
	return strings.Join(out, "\n")
}

func appendLoop(lines []string, handlers []HandlerBinding, forever string) string {
	if forever == "" && hasDef(lines, "on_forever") {
		// the conventional MakeCode handler name, defined but never
		// registered, still gets driven
		forever = "on_forever"
	}
	lines = append(blankBefore(lines), loopLines("", handlers, forever)...)
	return strings.Join(lines, "\n")
}

// blankBefore ensures exactly one blank line separates the synthesized
// loop from whatever precedes it. Stripped registrations can leave any
// number of trailing blanks, and a stable separator keeps a second
// conversion from touching the text again.
func blankBefore(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 {
		lines = append(lines, "")
	}
	return lines
}

func synthesizeAfterDef(lines []string, forever string) string {
	defPrefix := regexp.MustCompile(`^(\s*)def\s+` + regexp.QuoteMeta(forever) + `\s*\(`)

	defAt := -1
	defIndent := ""
	for i, line := range lines {
		if match := defPrefix.FindStringSubmatch(line); match != nil {
			defAt = i
			defIndent = match[1]
			break
		}
	}
	if defAt < 0 {
		// registered but never defined, park the driver at the end
		lines = append(blankBefore(lines), loopLines("", nil, forever)...)
		return strings.Join(lines, "\n")
	}

	insertAt := len(lines)
	for i := defAt + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if len(indentOf(lines[i])) <= len(defIndent) {
			insertAt = i
			break
		}
	}

	loop := loopLines(defIndent, nil, forever)
	out := blankBefore(append([]string{}, lines[:insertAt]...))
	out = append(out, loop...)
	out = append(out, lines[insertAt:]...)
	return strings.Join(out, "\n")
}

func loopLines(indent string, handlers []HandlerBinding, forever string) []string {
	lines := []string{indent + "while True:"}
	for _, handler := range handlers {
		lines = append(lines,
			indent+"    if "+handler.Trigger.check()+":",
			indent+"        "+handler.Function+"()",
		)
	}
	if forever != "" {
		lines = append(lines, indent+"    "+forever+"()")
	}
	lines = append(lines, indent+"    sleep(10)")
	return lines
}

func hasDef(lines []string, name string) bool {
	pattern := regexp.MustCompile(`^\s*def\s+` + regexp.QuoteMeta(name) + `\s*\(`)
	for _, line := range lines {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
