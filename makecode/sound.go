package makecode

import "strings"

func rewriteSound(c *conversion) {
	text := c.text
	text = strings.ReplaceAll(text, "music.play_tone(", "music.pitch(")
	text = strings.ReplaceAll(text, "music.stop_all_sounds()", "music.stop()")
	c.text = text
}
