package debugs

import (
	"github.com/LibrEduc/ubit/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
