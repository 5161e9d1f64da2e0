// Package makecode rewrites MakeCode-exported Python into MicroPython for
// the BBC micro:bit. The transform is regex and line oriented on purpose:
// it tolerates the slightly malformed sources the block editor produces,
// and it never fails, worst case leaving unrecognized code untouched.
package makecode

import "slices"

type conversion struct {
	text     string
	handlers []HandlerBinding
	forever  string
}

type stage struct {
	name string
	run  func(*conversion)
}

var stages = []stage{
	{"normalize", normalize},
	{"imports", synthesizeImports},
	{"display", rewriteDisplay},
	{"sensors", rewriteSensors},
	{"pins", rewritePins},
	{"sound", rewriteSound},
	{"radio", rewriteRadio},
	{"handlers", collectHandlers},
	{"cleanup", cleanupWhitespace},
	{"loop", integrateLoop},
	{"finalize", finalize},
}

func Convert(src string) string {
	c := &conversion{
		text: src,
	}
	for _, stage := range stages {
		stage.run(c)
	}
	return c.text
}

type Snapshot struct {
	Stage    string
	Text     string
	Handlers []HandlerBinding
	Forever  string
}

// Trace is Convert plus a per-stage record of the pipeline state.
func Trace(src string) (string, []Snapshot) {
	c := &conversion{
		text: src,
	}
	snapshots := make([]Snapshot, 0, len(stages))
	for _, stage := range stages {
		stage.run(c)
		snapshots = append(snapshots, Snapshot{
			Stage:    stage.name,
			Text:     c.text,
			Handlers: slices.Clone(c.handlers),
			Forever:  c.forever,
		})
	}
	return c.text, snapshots
}
