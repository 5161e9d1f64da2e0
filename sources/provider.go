// Package sources finds the program files a conversion run works on:
// explicit -file arguments when given, otherwise a walk of the working
// directory filtered down to Python text files.
package sources

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/LibrEduc/ubit/logs"
	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/dscope"
)

type Provider struct {
	FileNameOK dscope.Inject[FileNameOK]
	NameMatch  dscope.Inject[NameMatch]
	Logger     dscope.Inject[logs.Logger]
	Files      dscope.Inject[Files]
}

func (p Provider) RootPaths() ([]string, error) {
	if files := p.Files(); len(files) > 0 {
		return []string(files), nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return []string{
		dir,
	}, nil
}

type FileInfo struct {
	Path     string
	Content  []byte
	MimeType string
}

func (p Provider) IterFiles() iter.Seq2[FileInfo, error] {
	return func(yield func(FileInfo, error) bool) {
		queue, err := p.RootPaths()
		if err != nil {
			yield(FileInfo{}, err)
			return
		}

		handlePath := func(path string) (stop bool, err error) {
			baseName := filepath.Base(path)

			// ignore hidden files
			if baseName != "." && strings.HasPrefix(baseName, ".") {
				return false, nil
			}

			file, err := os.Open(path)
			if err != nil {
				return false, err
			}
			defer file.Close()

			stat, err := file.Stat()
			if err != nil {
				return false, err
			}

			if stat.IsDir() {
				// queue dir files
				entries, err := file.ReadDir(0)
				if err != nil {
					return false, err
				}
				for _, entry := range entries {
					queue = append(queue, filepath.Join(path, entry.Name()))
				}

			} else {
				// plain file

				// filter
				if !p.FileNameOK()(path) {
					return false, nil
				}
				if !p.NameMatch()(path) {
					return false, nil
				}

				content, err := io.ReadAll(file)
				if err != nil {
					return false, err
				}

				// binary-looking files never go through the converter
				mtype := mimetype.Detect(content)
				isText := false
				for t := mtype; t != nil; t = t.Parent() {
					if t.Is("text/plain") {
						isText = true
						break
					}
				}
				if !isText {
					p.Logger().Debug("skip non-text file",
						"path", path,
						"mime type", mtype.String(),
					)
					return false, nil
				}

				if !yield(FileInfo{
					Path:     path,
					Content:  content,
					MimeType: mtype.String(),
				}, nil) {
					return true, nil
				}

			}

			return false, nil
		}

		for len(queue) > 0 {
			path := queue[0]
			queue = queue[1:]
			if stop, err := handlePath(path); err != nil {
				yield(FileInfo{}, err)
				return
			} else if stop {
				break
			}
		}

	}
}

func (Module) Provider(
	inject dscope.InjectStruct,
) (ret Provider) {
	inject(&ret)
	return
}
