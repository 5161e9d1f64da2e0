package ubitconfigs

import (
	"github.com/LibrEduc/ubit/cmds"
	"github.com/LibrEduc/ubit/configs"
	"github.com/LibrEduc/ubit/vars"
)

// OutputName is the file name the flashing side expects inside the
// firmware image. MicroPython only runs main.py, other names will not
// boot, so the default stands unless someone knows better.
type OutputName string

var outputNameFlag = cmds.Var[string]("-output-name")

func (Module) OutputName(
	loader configs.Loader,
) OutputName {
	return vars.FirstNonZero(
		OutputName(*outputNameFlag),
		configs.First[OutputName](loader, "output_name"),
		OutputName("main.py"),
	)
}

type OutputDir string

var outputDirFlag = cmds.Var[string]("-out")

func (Module) OutputDir(
	loader configs.Loader,
) OutputDir {
	return vars.FirstNonZero(
		OutputDir(*outputDirFlag),
		configs.First[OutputDir](loader, "output_dir"),
		OutputDir("."),
	)
}
