package makecode

import "regexp"

type TriggerKind uint8

const (
	TriggerButtonA TriggerKind = iota
	TriggerButtonB
	TriggerGesture
	TriggerLogo
)

// Trigger identifies what fires a collected handler. Gesture holds the
// MakeCode identifier as scanned, mapping happens at render time.
type Trigger struct {
	Kind    TriggerKind
	Gesture string
}

type HandlerBinding struct {
	Trigger  Trigger
	Function string
}

var (
	foreverPattern   = regexp.MustCompile(`basic\.forever\((\w+)\)`)
	onButtonPattern  = regexp.MustCompile(`input\.on_button_pressed\(Button\.([AB]),\s*(\w+)\)`)
	onGesturePattern = regexp.MustCompile(`input\.on_gesture\(Gesture\.(\w+),\s*(\w+)\)`)
	onLogoPattern    = regexp.MustCompile(`input\.on_logo_event\([\w.]+,\s*(\w+)\)`)
)

// collectHandlers strips every registration call and records what it
// registered. Stripping can leave blank lines, the cleanup stage collapses
// them. Button.AB registrations have no polling equivalent and stay in the
// text untouched.
func collectHandlers(c *conversion) {
	text := c.text

	text = foreverPattern.ReplaceAllStringFunc(text, func(call string) string {
		name := foreverPattern.FindStringSubmatch(call)[1]
		if c.forever == "" {
			c.forever = name
		}
		return ""
	})

	text = onButtonPattern.ReplaceAllStringFunc(text, func(call string) string {
		match := onButtonPattern.FindStringSubmatch(call)
		kind := TriggerButtonA
		if match[1] == "B" {
			kind = TriggerButtonB
		}
		c.handlers = append(c.handlers, HandlerBinding{
			Trigger:  Trigger{Kind: kind},
			Function: match[2],
		})
		return ""
	})

	text = onGesturePattern.ReplaceAllStringFunc(text, func(call string) string {
		match := onGesturePattern.FindStringSubmatch(call)
		c.handlers = append(c.handlers, HandlerBinding{
			Trigger: Trigger{
				Kind:    TriggerGesture,
				Gesture: match[1],
			},
			Function: match[2],
		})
		return ""
	})

	text = onLogoPattern.ReplaceAllStringFunc(text, func(call string) string {
		name := onLogoPattern.FindStringSubmatch(call)[1]
		c.handlers = append(c.handlers, HandlerBinding{
			Trigger:  Trigger{Kind: TriggerLogo},
			Function: name,
		})
		return ""
	})

	c.text = text
}
