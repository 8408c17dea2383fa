package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is chef's optional TOML configuration file, read from ./chef.toml
// unless --config points elsewhere. Every field has a sensible zero-value
// default so a missing file is not an error.
type Config struct {
	MaxSousChefDepth int    `toml:"max_sous_chef_depth"`
	Format           string `toml:"format"`
}

const defaultConfigPath = "chef.toml"

// LoadConfig reads path (or defaultConfigPath if empty). A missing default
// file is not an error; a missing explicit --config path is.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
