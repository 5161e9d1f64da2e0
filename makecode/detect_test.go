package makecode

import "testing"

func TestIsMakeCode(t *testing.T) {
	for _, c := range []struct {
		src  string
		want bool
	}{
		{"basic.show_icon(IconNames.Heart)", true},
		{"basic.pause(100)", true},
		{"basic.forever(on_forever)", true},
		{"input.on_button_pressed(Button.A, foo)", true},
		{"pins.analog_pitch(0, 440)", true},
		{"x = IconNames.Heart", true},
		{"display.scroll('hi')", false},
		{"from microbit import *\nsleep(10)", false},
		{"", false},
		{"input.is_pressed()", false},
	} {
		if got := IsMakeCode(c.src); got != c.want {
			t.Fatalf("IsMakeCode(%q) = %v, want %v", c.src, got, c.want)
		}
	}
}

func TestConvertedOutputNotDetected(t *testing.T) {
	out := Convert(`basic.show_icon(IconNames.Heart)
input.on_button_pressed(Button.A, foo)
pins.analog_pitch(0, 440)`)
	if IsMakeCode(out) {
		t.Fatalf("converted output still detected as MakeCode:\n%s", out)
	}
}
