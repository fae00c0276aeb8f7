package bfconfigs

import (
	"os"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type ShowStats bool

var statsFlag, statsFlagSet = cmds.Switch("stats", "print instrumentation summary to stderr")

// ShowStats resolves in order: stats / !stats, TAIBF_STATS, config file.
func (Module) ShowStats(
	loader configs.Loader,
) ShowStats {
	if *statsFlagSet {
		return ShowStats(*statsFlag)
	}
	if v, ok := os.LookupEnv("TAIBF_STATS"); ok {
		return ShowStats(vars.StrToBool(v))
	}
	return ShowStats(configs.First[bool](loader, "stats"))
}
