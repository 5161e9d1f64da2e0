package makecode

import "strings"

func rewriteSensors(c *conversion) {
	text := c.text

	text = strings.ReplaceAll(text, "input.button_is_pressed(Button.A)", "button_a.is_pressed()")
	text = strings.ReplaceAll(text, "input.button_is_pressed(Button.B)", "button_b.is_pressed()")

	text = strings.ReplaceAll(text, "input.acceleration(Dimension.X)", "accelerometer.get_x()")
	text = strings.ReplaceAll(text, "input.acceleration(Dimension.Y)", "accelerometer.get_y()")
	text = strings.ReplaceAll(text, "input.acceleration(Dimension.Z)", "accelerometer.get_z()")

	text = strings.ReplaceAll(text, "input.compass_heading()", "compass.heading()")
	text = strings.ReplaceAll(text, "input.calibrate_compass()", "compass.calibrate()")

	// temperature is a plain function in microbit python
	text = strings.ReplaceAll(text, "input.temperature()", "temperature()")

	c.text = text
}
