// Package config loads safecracker's ambient settings from an optional
// safecracker.toml. Only the knobs around the solve are configurable
// (input path, verbosity, color); the counting behavior itself is fixed.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/DmarshalTU/safecracker/pkg/errors"
	"github.com/DmarshalTU/safecracker/pkg/inputfile"
	"github.com/DmarshalTU/safecracker/pkg/logging"
)

// FileName is the configuration file safecracker looks for, first in the
// working directory and then under the XDG config directory.
const FileName = "safecracker.toml"

// Config holds the ambient settings for a run.
type Config struct {
	Input     string `toml:"input"`
	Verbosity int    `toml:"verbosity"`
	NoColor   bool   `toml:"no_color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Input: inputfile.DefaultName}
}

// Load reads the configuration file if one exists. A missing file is not an
// error; the defaults are returned. An unreadable or unparseable file is a
// CONFIG_LOAD / CONFIG_PARSE coded error.
func Load() (Config, error) {
	cfg := Default()

	path, found, err := locate()
	if err != nil {
		return cfg, err
	}
	if !found {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "reading %q", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "parsing %q", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("Config loaded")
	return cfg, nil
}

// locate finds the config file, preferring the working directory over the
// XDG config directory.
func locate() (path string, found bool, err error) {
	if _, statErr := os.Stat(FileName); statErr == nil {
		return FileName, true, nil
	} else if !os.IsNotExist(statErr) {
		return "", false, errors.Wrapf(statErr, errors.ErrConfigLoad, "checking %q", FileName)
	}

	xdgPath, searchErr := xdg.SearchConfigFile(filepath.Join("safecracker", FileName))
	if searchErr != nil {
		// No config anywhere; run on defaults.
		return "", false, nil
	}
	return xdgPath, true, nil
}
