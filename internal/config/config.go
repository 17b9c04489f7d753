// Package config loads pulsesim run configurations.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is a run configuration, usually read from a YAML file:
//
//	input: circuit.txt
//	entry: broadcaster
//	presses: 1000
//	sink: rx
//	watch: [xl, ln, xp, gp]
//	max_presses: 100000
//	log_level: info
//
// An empty Watch list means the watched modules are derived from Sink.
type Config struct {
	Input      string   `yaml:"input" json:"input"`
	Entry      string   `yaml:"entry" json:"entry"`
	Presses    int      `yaml:"presses" json:"presses"`
	Sink       string   `yaml:"sink" json:"sink"`
	Watch      []string `yaml:"watch" json:"watch"`
	MaxPresses int      `yaml:"max_presses" json:"max_presses"`
	LogLevel   string   `yaml:"log_level" json:"log_level"`
	LogJSON    bool     `yaml:"log_json" json:"log_json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Entry:      pulsesim.DefaultEntry,
		Presses:    pulsesim.DefaultPresses,
		Sink:       pulsesim.DefaultSink,
		MaxPresses: pulsesim.DefaultMaxPresses,
		LogLevel:   "info",
	}
}

// Load reads the configuration file at path over the defaults. The file is
// parsed as JSON if its extension is .json, YAML otherwise. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch {
	case c.Presses <= 0:
		return errors.Errorf("presses must be positive, got %d", c.Presses)
	case c.MaxPresses <= 0:
		return errors.Errorf("max_presses must be positive, got %d", c.MaxPresses)
	case c.Entry == "":
		return errors.New("entry must not be empty")
	}
	return nil
}
