package gol

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the presentation settings of a run.
type Config struct {
	LiveMarker rune          `toml:"-" yaml:"-" json:"-"`
	DeadMarker rune          `toml:"-" yaml:"-" json:"-"`
	Live       string        `toml:"live" yaml:"live" json:"live"`
	Dead       string        `toml:"dead" yaml:"dead" json:"dead"`
	Separator  string        `toml:"separator" yaml:"separator" json:"separator"`
	Seed       int64         `toml:"seed" yaml:"seed" json:"seed"`
	FrameDelay time.Duration `toml:"frame_delay" yaml:"frame_delay" json:"frame_delay"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		LiveMarker: 'X',
		DeadMarker: ' ',
		Live:       "X",
		Dead:       " ",
		Separator:  "-------------",
		Seed:       1,
		FrameDelay: 100 * time.Millisecond,
	}
}

// LoadConfig loads configuration from a .toml, .yaml, .yml or .json file.
// Fields missing from the file keep their default values.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	case ".json":
		err = json.Unmarshal(data, &config)
	default:
		return config, fmt.Errorf("config %s: unsupported format %q", filename, ext)
	}
	if err != nil {
		return config, fmt.Errorf("config %s: %w", filename, err)
	}
	return config, config.resolveMarkers()
}

// resolveMarkers copies the single-character marker strings into their rune fields.
func (c *Config) resolveMarkers() error {
	live, dead := []rune(c.Live), []rune(c.Dead)
	if len(live) != 1 || len(dead) != 1 {
		return fmt.Errorf("markers must be single characters, got live %q dead %q", c.Live, c.Dead)
	}
	if live[0] == dead[0] {
		return fmt.Errorf("live and dead markers are both %q", c.Live)
	}
	c.LiveMarker, c.DeadMarker = live[0], dead[0]
	return nil
}
