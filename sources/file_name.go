package sources

import (
	"regexp"
	"strings"

	"github.com/LibrEduc/ubit/cmds"
	"github.com/LibrEduc/ubit/configs"
	"github.com/LibrEduc/ubit/vars"
)

type FileNameOK func(name string) bool

// only Python sources are conversion candidates when walking a directory
func (Module) FileNameOK() FileNameOK {
	return func(name string) bool {
		return strings.HasSuffix(strings.ToLower(name), ".py")
	}
}

type NameMatch func(string) bool

func (Module) NameMatch(
	match Match,
) NameMatch {
	if match == "" {
		return func(string) bool {
			return true
		}
	}
	re := regexp.MustCompile(string(match))
	return func(path string) bool {
		return re.MatchString(path)
	}
}

var matchFlag = cmds.Var[string]("-match")

type Match string

func (Module) Match(
	loader configs.Loader,
) Match {
	return vars.FirstNonZero(
		Match(*matchFlag),
		configs.First[Match](loader, "match"),
	)
}
