package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const defaultConfigFile = ".texfmt.toml"

// projectConfig holds per-project formatting defaults, read from a
// .texfmt.toml file. Command-line flags override it.
type projectConfig struct {
	Indent int  `toml:"indent"`
	Tabs   bool `toml:"tabs"`
}

// loadProjectConfig reads path, or the default config file in the working
// directory when path is empty. A missing default file is not an error; an
// explicitly named file must exist.
func loadProjectConfig(path string) (projectConfig, error) {
	pc := projectConfig{Indent: 4}

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	meta, err := toml.DecodeFile(path, &pc)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return pc, nil
		}
		return pc, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unknown config keys in %s: %v\n", path, undecoded)
	}
	if pc.Indent <= 0 {
		pc.Indent = 4
	}
	return pc, nil
}
