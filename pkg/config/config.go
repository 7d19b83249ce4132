// Package config loads the optional .shortstage.toml tool configuration.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/evanmartell/shortstage/pkg/errors"
	"github.com/evanmartell/shortstage/pkg/logging"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Config holds the user-tunable settings from .shortstage.toml.
// Command-line flags take precedence over file values.
type Config struct {
	// Root overrides the default target root directory
	Root string `toml:"root"`

	// NoColor disables styled terminal output
	NoColor bool `toml:"no_color"`
}

// Load reads and parses the configuration file at the given path.
// A missing file is not an error and yields the zero configuration.
func Load(filesystem types.FS, path string) (Config, error) {
	log := logging.GetLogger("config")

	var cfg Config

	data, err := filesystem.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No configuration file found, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	log.Debug().Str("path", path).Msg("Loaded configuration file")
	return cfg, nil
}
