package main

import (
	"github.com/LibrEduc/ubit/debugs"
	"github.com/LibrEduc/ubit/sources"
	"github.com/LibrEduc/ubit/targets"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Sources sources.Module
	Targets targets.Module
	Debugs  debugs.Module
}
