package main

import (
	"fmt"
	"io"
	"os"

	"github.com/LibrEduc/ubit/cmds"
	"github.com/LibrEduc/ubit/modes"
	"github.com/LibrEduc/ubit/pycheck"
	"github.com/LibrEduc/ubit/sources"
	"github.com/LibrEduc/ubit/ubitconfigs"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

type Module struct {
	dscope.Module
	Sources sources.Module
	Configs ubitconfigs.Module
}

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		provider sources.Provider,
		files sources.Files,
		messages ubitconfigs.Messages,
	) {

		type input struct {
			path    string
			content []byte
		}
		var inputs []input

		if len(files) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
			content, err := io.ReadAll(os.Stdin)
			ce(err)
			inputs = append(inputs, input{
				path:    "stdin",
				content: content,
			})
		} else {
			for info, err := range provider.IterFiles() {
				ce(err)
				inputs = append(inputs, input{
					path:    info.Path,
					content: info.Content,
				})
			}
		}

		numFindings := 0
		for _, in := range inputs {
			for _, d := range pycheck.Check(string(in.content)) {
				fmt.Printf("%s:%d: %s\n", in.path, d.Line, pycheck.Render(d, messages))
				numFindings++
			}
		}
		if numFindings > 0 {
			os.Exit(1)
		}
	})
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
