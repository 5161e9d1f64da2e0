package makecode

import (
	"strings"
	"testing"
)

func TestIconImage(t *testing.T) {
	for _, c := range []struct {
		name string
		want string
	}{
		{"Heart", "HEART"},
		{"SmallHeart", "HEART_SMALL"},
		{"LeftTriangle", "TRIANGLE_LEFT"},
		{"QuarterNote", "MUSIC_CROTCHET"},
		{"EigthNote", "MUSIC_QUAVER"},
		{"SmallDiamond", "DIAMOND_SMALL"},
		{"SmallSquare", "SQUARE_SMALL"},
		{"TShirt", "TSHIRT"},
		// outside the table, uppercased as is
		{"Sparkle", "SPARKLE"},
		{"whatever", "WHATEVER"},
	} {
		if got := iconImage(c.name); got != c.want {
			t.Fatalf("iconImage(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestIconFallbackTotality(t *testing.T) {
	// IconNames never survives conversion, mapped or not
	for _, name := range []string{"Heart", "Sparkle", "X", "SomeFutureIcon"} {
		out := Convert("basic.show_icon(IconNames." + name + ")")
		if strings.Contains(out, "IconNames.") {
			t.Fatalf("IconNames left in output for %q:\n%s", name, out)
		}
		if !strings.Contains(out, "display.show(Image."+iconImage(name)+")") {
			t.Fatalf("no image constant for %q:\n%s", name, out)
		}
	}
}

func TestRewriteDisplay(t *testing.T) {
	for _, c := range []struct {
		src  string
		want string
	}{
		{"basic.clear_screen()", "display.clear()"},
		{"basic.show_string(\"hi\")", "display.scroll(\"hi\")"},
		{"basic.show_number(42)", "display.scroll(str(42))"},
		{"basic.show_number(input.temperature())", "display.scroll(str(temperature()))"},
		{"basic.pause(100)", "sleep(100)"},
		{"basic.show(Image.HEART)", "display.show(Image.HEART)"},
		{"basic.clear()", "display.clear()"},
	} {
		out := Convert(c.src)
		if !strings.Contains(out, c.want) {
			t.Fatalf("converting %q: want %q in:\n%s", c.src, c.want, out)
		}
	}
}
