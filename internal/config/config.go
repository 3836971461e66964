// Package config loads solver tuning defaults from a YAML file via viper,
// falling back to evolution.DefaultConfig() when no file is given.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/craftsim/craftsolve/evolution"
)

// SolverConfig is the on-disk shape of a tuning file; zero-valued fields
// fall back to evolution.DefaultConfig()'s values after merge.
type SolverConfig struct {
	Population           int     `yaml:"population" mapstructure:"population"`
	Generations           int     `yaml:"generations" mapstructure:"generations"`
	ElitismRate           float64 `yaml:"elitism_rate" mapstructure:"elitism_rate"`
	MaxStagnationCounter  int     `yaml:"max_stagnation_counter" mapstructure:"max_stagnation_counter"`
	RandomSeed            int64   `yaml:"random_seed" mapstructure:"random_seed"`
}

// Load reads a YAML tuning file via viper, matching the FromYaml pattern
// from the wider example pack (vp.New / SetConfigFile / ReadInConfig /
// Unmarshal into a struct, then a strict yaml.v3 round-trip of the
// fields), and merges it over evolution.DefaultConfig().
func Load(path string) (evolution.Config, error) {
	cfg := evolution.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return cfg, err
	}

	raw := &SolverConfig{}
	if err := vp.Unmarshal(raw); err != nil {
		return cfg, err
	}

	encoded, err := yaml.Marshal(raw)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(encoded, raw); err != nil {
		return cfg, err
	}

	if raw.Population > 0 {
		cfg.PopulationSize = raw.Population
	}
	if raw.Generations > 0 {
		cfg.MaxGenerations = raw.Generations
	}
	if raw.ElitismRate > 0 {
		cfg.ElitismRate = raw.ElitismRate
	}
	if raw.MaxStagnationCounter > 0 {
		cfg.MaxStagnationCounter = raw.MaxStagnationCounter
	}
	if raw.RandomSeed != 0 {
		cfg.RandomSeed = raw.RandomSeed
	}

	return cfg, nil
}
