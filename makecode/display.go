package makecode

import (
	"regexp"
	"strings"
)

// iconImages maps MakeCode icon identifiers to microbit Image constants.
// EigthNote is MakeCode's own spelling.
var iconImages = map[string]string{
	"Heart":        "HEART",
	"SmallHeart":   "HEART_SMALL",
	"Yes":          "YES",
	"No":           "NO",
	"Happy":        "HAPPY",
	"Sad":          "SAD",
	"Confused":     "CONFUSED",
	"Angry":        "ANGRY",
	"Asleep":       "ASLEEP",
	"Surprised":    "SURPRISED",
	"Silly":        "SILLY",
	"Fabulous":     "FABULOUS",
	"Meh":          "MEH",
	"TShirt":       "TSHIRT",
	"Rollerskate":  "ROLLERSKATE",
	"Duck":         "DUCK",
	"House":        "HOUSE",
	"Tortoise":     "TORTOISE",
	"Butterfly":    "BUTTERFLY",
	"StickFigure":  "STICKFIGURE",
	"Ghost":        "GHOST",
	"Sword":        "SWORD",
	"Giraffe":      "GIRAFFE",
	"Skull":        "SKULL",
	"Umbrella":     "UMBRELLA",
	"Snake":        "SNAKE",
	"Rabbit":       "RABBIT",
	"Cow":          "COW",
	"QuarterNote":  "MUSIC_CROTCHET",
	"EigthNote":    "MUSIC_QUAVER",
	"Pitchfork":    "PITCHFORK",
	"Target":       "TARGET",
	"Triangle":     "TRIANGLE",
	"LeftTriangle": "TRIANGLE_LEFT",
	"Chessboard":   "CHESSBOARD",
	"Diamond":      "DIAMOND",
	"SmallDiamond": "DIAMOND_SMALL",
	"Square":       "SQUARE",
	"SmallSquare":  "SQUARE_SMALL",
	"Scissors":     "SCISSORS",
}

// iconImage is total: identifiers outside the table come back uppercased,
// best effort over failure.
func iconImage(name string) string {
	if image, ok := iconImages[name]; ok {
		return image
	}
	return strings.ToUpper(name)
}

var (
	showIconPattern   = regexp.MustCompile(`basic\.show_icon\(IconNames\.(\w+)\)`)
	showNumberPattern = regexp.MustCompile(`basic\.show_number\((.*)\)`)
)

func rewriteDisplay(c *conversion) {
	text := c.text

	text = showIconPattern.ReplaceAllStringFunc(text, func(call string) string {
		name := showIconPattern.FindStringSubmatch(call)[1]
		return "display.show(Image." + iconImage(name) + ")"
	})
	text = strings.ReplaceAll(text, "basic.clear_screen()", "display.clear()")
	text = strings.ReplaceAll(text, "basic.show_string(", "display.scroll(")
	// greedy to the last paren on the line, so nested calls survive
	text = showNumberPattern.ReplaceAllString(text, "display.scroll(str($1))")
	text = strings.ReplaceAll(text, "basic.show(", "display.show(")
	text = strings.ReplaceAll(text, "basic.clear(", "display.clear(")
	text = strings.ReplaceAll(text, "basic.pause(", "sleep(")

	c.text = text
}
