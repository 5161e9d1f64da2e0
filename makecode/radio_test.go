package makecode

import (
	"strings"
	"testing"
)

func TestRewriteSoundAndRadio(t *testing.T) {
	for _, c := range []struct {
		src  string
		want string
	}{
		{"music.play_tone(262, 500)", "music.pitch(262, 500)"},
		{"music.stop_all_sounds()", "music.stop()"},
		{"radio.send_string(\"hi\")", "radio.send(\"hi\")"},
		{"s = radio.receive_string()", "s = radio.receive()"},
		{"radio.set_group(4)", "radio.config(group=4)"},
		{"radio.send_value(\"temp\", 25)", `radio.send(struct.pack("<b", 25))`},
		{"x = radio.receive_value()", `x = struct.unpack("<b", radio.receive_bytes() or b"\x00")[0]`},
	} {
		out := Convert(c.src)
		if !strings.Contains(out, c.want) {
			t.Fatalf("converting %q: want %q in:\n%s", c.src, c.want, out)
		}
	}
}

func TestImportSynthesis(t *testing.T) {
	out := Convert(`radio.set_group(1)
radio.send_value("t", 9)
music.play_tone(262, 500)`)
	want := `from microbit import *
import struct
import music
import radio
radio.config(group=1)
radio.send(struct.pack("<b", 9))
music.pitch(262, 500)
`
	if out != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestImportSynthesisRespectsExisting(t *testing.T) {
	out := Convert(`from microbit import *
import radio
radio.send_string("hi")`)
	if n := strings.Count(out, "import radio"); n != 1 {
		t.Fatalf("got %d radio imports:\n%s", n, out)
	}
	if n := strings.Count(out, "from microbit import *"); n != 1 {
		t.Fatalf("got %d wildcard imports:\n%s", n, out)
	}
}

func TestNoImportsWhenUnused(t *testing.T) {
	out := Convert("basic.show_icon(IconNames.Heart)")
	for _, line := range []string{"import struct", "import music", "import radio"} {
		if strings.Contains(out, line) {
			t.Fatalf("unexpected %q in:\n%s", line, out)
		}
	}
}
