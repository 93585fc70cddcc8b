package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is looked up in the working directory when no
// --config flag is given.
const defaultConfigFile = "solvent.toml"

// Config carries the optional solvent.toml settings: where puzzle
// inputs live and which solver runs when the command line names none.
type Config struct {
	Inputs string `toml:"inputs"` // directory of dayNN.txt files
	Day    int    `toml:"day"`    // default day for `run`
	Part   int    `toml:"part"`   // default part for `run`
}

// loadConfig reads the TOML file at path. A missing file is not an
// error: the zero Config applies. An explicit path that cannot be read
// or parsed is reported.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cli: reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cli: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// inputPath maps a day to its conventional input file under the
// configured inputs directory, e.g. inputs/day05.txt.
func (c Config) inputPath(day int) string {
	dir := c.Inputs
	if dir == "" {
		dir = "inputs"
	}
	return filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
}
