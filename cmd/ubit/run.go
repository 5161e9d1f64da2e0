package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/LibrEduc/ubit/debugs"
	"github.com/LibrEduc/ubit/logs"
	"github.com/LibrEduc/ubit/makecode"
	"github.com/LibrEduc/ubit/pycheck"
	"github.com/LibrEduc/ubit/sources"
	"github.com/LibrEduc/ubit/syncs"
	"github.com/LibrEduc/ubit/targets"
	"github.com/LibrEduc/ubit/ubitconfigs"
	"golang.org/x/term"
)

type Run func(ctx context.Context) error

type converted struct {
	Source    string
	MakeCode  bool
	Text      string
	Snapshots []makecode.Snapshot
	Findings  []pycheck.Diagnostic
}

func (Module) Run(
	provider sources.Provider,
	files sources.Files,
	write targets.WriteProgram,
	maxWorkers ubitconfigs.MaxWorkers,
	messages ubitconfigs.Messages,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context) error {
		ctx, _ = newSpan(ctx, "")

		inputs, err := gatherInputs(provider, files)
		if err != nil {
			return logs.WrapSpan(ctx, err)
		}
		if len(inputs) == 0 {
			return fmt.Errorf("no sources to convert")
		}

		results := make([]converted, len(inputs))
		semaphore := syncs.NewSemaphore(int(maxWorkers))
		var wg sync.WaitGroup
		for i, info := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				semaphore.Acquire()
				defer semaphore.Release()

				ctx, _ := newSpan(ctx, "")
				result := converted{
					Source: info.Path,
				}
				src := string(info.Content)
				result.MakeCode = makecode.IsMakeCode(src)
				switch {
				case *rawFlag:
					result.Text = src
				case *debugFlag:
					result.Text, result.Snapshots = makecode.Trace(src)
				default:
					result.Text = makecode.Convert(src)
				}
				if *checkFlag {
					result.Findings = pycheck.Check(result.Text)
				}
				logger.InfoContext(ctx, "converted",
					"source", info.Path,
					"makecode", result.MakeCode,
					"bytes", len(result.Text),
				)
				results[i] = result
			}()
		}
		wg.Wait()

		// findings never block the write, they are user feedback only
		for _, result := range results {
			for _, finding := range result.Findings {
				logger.Warn("check finding",
					"source", result.Source,
					"line", finding.Line,
					"message", pycheck.Render(finding, messages),
				)
			}
		}

		if *debugFlag {
			tap(ctx, "conversion", tapGlobals(results))
		}

		if *dryFlag {
			for _, result := range results {
				os.Stdout.WriteString(result.Text)
			}
			return nil
		}

		if len(results) != 1 {
			return fmt.Errorf("writing needs exactly one source, got %d (use -dry to print)", len(results))
		}
		if _, err := write(results[0].Text); err != nil {
			return logs.WrapSpan(ctx, err)
		}
		return nil
	}
}

func gatherInputs(provider sources.Provider, files sources.Files) ([]sources.FileInfo, error) {
	// piped input wins when no files are named
	if len(files) == 0 && !term.IsTerminal(int(os.Stdin.Fd())) {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []sources.FileInfo{{
			Path:    "stdin",
			Content: content,
		}}, nil
	}

	var inputs []sources.FileInfo
	for info, err := range provider.IterFiles() {
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, info)
	}
	return inputs, nil
}

func tapGlobals(results []converted) map[string]any {
	texts := make(map[string]string)
	snapshots := make(map[string][]makecode.Snapshot)
	for _, result := range results {
		texts[result.Source] = result.Text
		snapshots[result.Source] = result.Snapshots
	}
	return map[string]any{
		"texts":       texts,
		"snapshots":   snapshots,
		"convert":     makecode.Convert,
		"is_makecode": makecode.IsMakeCode,
	}
}
