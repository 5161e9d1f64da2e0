package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/LibrEduc/ubit/logs"
	"github.com/LibrEduc/ubit/modes"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Tap func(ctx context.Context, what string, globals map[string]any)

// Tap records a named point in the program where state is exposed for
// inspection. In development mode it opens a starlark repl over the
// globals; in production it logs the tap at debug level and returns.
func (Module) Tap(
	logger logs.Logger,
	mode modes.Mode,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		if mode != modes.ModeDevelopment {
			logger.DebugContext(ctx, "tap: "+what,
				"globals", slices.Collect(maps.Keys(globals)),
			)
			return
		}

		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Collect(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict)
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, mappings)
	}
}
