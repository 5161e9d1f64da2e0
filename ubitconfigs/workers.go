package ubitconfigs

import (
	"runtime"

	"github.com/LibrEduc/ubit/cmds"
	"github.com/LibrEduc/ubit/configs"
	"github.com/LibrEduc/ubit/vars"
)

type MaxWorkers int

var maxWorkersFlag = cmds.Var[int]("-workers")

func (Module) MaxWorkers(
	loader configs.Loader,
) MaxWorkers {
	n := vars.FirstNonZero(
		*maxWorkersFlag,
		configs.First[int](loader, "max_workers"),
		runtime.GOMAXPROCS(0),
	)
	if n < 1 {
		n = 1
	}
	return MaxWorkers(n)
}
