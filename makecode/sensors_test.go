package makecode

import (
	"strings"
	"testing"
)

func TestRewriteSensors(t *testing.T) {
	for _, c := range []struct {
		src  string
		want string
	}{
		{"if input.button_is_pressed(Button.A):", "if button_a.is_pressed():"},
		{"if input.button_is_pressed(Button.B):", "if button_b.is_pressed():"},
		{"x = input.acceleration(Dimension.X)", "x = accelerometer.get_x()"},
		{"y = input.acceleration(Dimension.Y)", "y = accelerometer.get_y()"},
		{"z = input.acceleration(Dimension.Z)", "z = accelerometer.get_z()"},
		{"h = input.compass_heading()", "h = compass.heading()"},
		{"input.calibrate_compass()", "compass.calibrate()"},
		{"t = input.temperature()", "t = temperature()"},
	} {
		out := Convert(c.src)
		if !strings.Contains(out, c.want) {
			t.Fatalf("converting %q: want %q in:\n%s", c.src, c.want, out)
		}
	}
}
