package main

import (
	"context"
	"os"

	"github.com/LibrEduc/ubit/cmds"
	"github.com/LibrEduc/ubit/modes"
	"github.com/reusee/dscope"
)

var (
	dryFlag   = cmds.Switch("-dry")
	checkFlag = cmds.Switch("-check")
	rawFlag   = cmds.Switch("-raw")
	debugFlag = cmds.Switch("-debug")
)

func main() {
	cmds.Execute(os.Args[1:])

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		ce(run(context.Background()))
	})
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
