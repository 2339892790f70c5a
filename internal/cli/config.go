package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is probed in the working directory when --config is not
// given. Its absence is not an error; the built-in defaults apply.
const defaultConfigFile = "ogimage.toml"

// Config holds optional overrides loaded from a TOML file. Flags set on the
// command line win over config values.
type Config struct {
	OutputDir string `toml:"output_dir"` // where PNGs are written
	Brand     string `toml:"brand"`      // watermark text
	Force     bool   `toml:"force"`      // always re-render, ignore manifest
	Addr      string `toml:"addr"`       // preview server listen address
}

// loadConfig reads a config file. When explicit is false, a missing file
// yields the zero Config; when the user named the file themselves, missing
// is an error.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
