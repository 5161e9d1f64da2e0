package sources

import (
	"path/filepath"

	"github.com/LibrEduc/ubit/cmds"
)

var provideFileNamesFlag []string

func init() {
	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern, take it as a literal path
			provideFileNamesFlag = append(provideFileNamesFlag, pattern)
		} else {
			provideFileNamesFlag = append(provideFileNamesFlag, paths...)
		}
	}).Desc("convert files matching the specified pattern. if any, use these files instead of the current working directory"))
}

type Files []string

func (Module) Files() Files {
	return Files(provideFileNamesFlag)
}
