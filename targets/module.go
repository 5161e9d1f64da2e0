package targets

import (
	"github.com/LibrEduc/ubit/logs"
	"github.com/LibrEduc/ubit/ubitconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Configs ubitconfigs.Module
	Logs    logs.Module
}
