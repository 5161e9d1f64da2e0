package ubitconfigs

import (
	"github.com/LibrEduc/ubit/configs"
)

// Messages carries template overrides for checker diagnostics, keyed by
// diagnostic kind. Templates may use {line}, {count} and {message}.
type Messages map[string]string

func (Module) Messages(
	loader configs.Loader,
) Messages {
	// merged across config files, earlier files win per key
	merged := make(Messages)
	for m := range configs.All[Messages](loader, "messages") {
		for kind, template := range m {
			if _, ok := merged[kind]; !ok {
				merged[kind] = template
			}
		}
	}
	return merged
}
