package pycheck

import "testing"

func TestBalance(t *testing.T) {
	for _, c := range []struct {
		code string
		kind Kind
		line int
		n    int
	}{
		{"print(", KindUnbalancedParens, 1, 1},
		{"print))", KindUnbalancedParens, 1, -2},
		{"x = 1]", KindUnbalancedBrackets, 1, -1},
		{"d = {1, 2", KindUnbalancedBraces, 1, 1},
		{"x = foo(\ny = 2", KindUnbalancedParens, 2, 1},
	} {
		diagnostics := Check(c.code)
		if len(diagnostics) != 1 {
			t.Fatalf("checking %q: got %d diagnostics, want 1", c.code, len(diagnostics))
		}
		d := diagnostics[0]
		if d.Kind != c.kind || d.Line != c.line || d.Count != c.n {
			t.Fatalf("checking %q: got %+v", c.code, d)
		}
	}
}

func TestBalancePerKind(t *testing.T) {
	diagnostics := Check("x = [(1, 2")
	if len(diagnostics) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(diagnostics))
	}
	if diagnostics[0].Kind != KindUnbalancedParens || diagnostics[0].Count != 1 {
		t.Fatalf("got %+v", diagnostics[0])
	}
	if diagnostics[1].Kind != KindUnbalancedBrackets || diagnostics[1].Count != 1 {
		t.Fatalf("got %+v", diagnostics[1])
	}
}

func TestIndentation(t *testing.T) {
	for _, c := range []struct {
		code  string
		lines []int
	}{
		{"if x:\nprint(1)", []int{2}},
		{"def f():\n    pass", nil},
		{"def f():\n    if x:\n    pass", []int{3}},
		{"try:\nexcept ValueError:\n    pass", nil},
		{"while True:\n\n    go()", nil},
		{"if x:\n    # setup\n    y = 1", nil},
	} {
		diagnostics := Check(c.code)
		if len(diagnostics) != len(c.lines) {
			t.Fatalf("checking %q: got %+v, want lines %v", c.code, diagnostics, c.lines)
		}
		for i, line := range c.lines {
			if diagnostics[i].Kind != KindIndentation || diagnostics[i].Line != line {
				t.Fatalf("checking %q: got %+v, want line %d", c.code, diagnostics[i], line)
			}
		}
	}
}

func TestMissingImports(t *testing.T) {
	diagnostics := Check("radio.send('hi')")
	if len(diagnostics) != 1 {
		t.Fatalf("got %+v, want one diagnostic", diagnostics)
	}
	if d := diagnostics[0]; d.Kind != KindMissingRadio || d.Line != 1 {
		t.Fatalf("got %+v", d)
	}

	if diagnostics := Check("import radio\nradio.send('hi')"); len(diagnostics) != 0 {
		t.Fatalf("explicit import still flagged: %+v", diagnostics)
	}
	if diagnostics := Check("from microbit import *\nmusic.pitch(440, 500)"); len(diagnostics) != 0 {
		t.Fatalf("wildcard import still flagged: %+v", diagnostics)
	}

	diagnostics = Check("music.pitch(440, 500)\nradio.send('x')")
	if len(diagnostics) != 2 {
		t.Fatalf("got %+v, want music and radio diagnostics", diagnostics)
	}
	if diagnostics[0].Kind != KindMissingMusic || diagnostics[1].Kind != KindMissingRadio {
		t.Fatalf("got %+v", diagnostics)
	}
}

func TestCleanInput(t *testing.T) {
	for _, code := range []string{
		"",
		"from microbit import *\ndisplay.scroll('hi')\n",
		`from microbit import *
import radio

def tick():
    display.show(Image.HEART)

while True:
    tick()
    sleep(10)
`,
	} {
		if diagnostics := Check(code); len(diagnostics) != 0 {
			t.Fatalf("checking %q: got %+v, want none", code, diagnostics)
		}
	}
}
