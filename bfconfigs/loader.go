package bfconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"taibf.cue",
	".taibf.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	collect := func(dir string) {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		collect(workingDir)
	}

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, schema)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		collect(configDir)
	}

	// system wide dir
	collect("/etc")

	return configs.NewLoader(paths, schema)
}
