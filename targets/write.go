// Package targets writes converted programs where the flashing side
// picks them up: a main.py in the output directory, unless configured
// otherwise.
package targets

import (
	"os"
	"path/filepath"

	"github.com/LibrEduc/ubit/logs"
	"github.com/LibrEduc/ubit/ubitconfigs"
)

type WriteProgram func(text string) (path string, err error)

func (Module) WriteProgram(
	outputDir ubitconfigs.OutputDir,
	outputName ubitconfigs.OutputName,
	logger logs.Logger,
) WriteProgram {
	return func(text string) (string, error) {
		dir := string(outputDir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
		path := filepath.Join(dir, string(outputName))

		// atomic write
		tmp := path + ".tmp"
		if err := os.WriteFile(tmp, []byte(text), 0644); err != nil {
			return "", err
		}
		if err := os.Rename(tmp, path); err != nil {
			return "", err
		}

		logger.Info("program written",
			"path", path,
			"bytes", len(text),
		)
		return path, nil
	}
}
