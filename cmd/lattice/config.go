package main

import (
	"os"

	"github.com/osuushi/lattice"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is read from an optional YAML file. Keys that are left out keep their
// defaults.
type Config struct {
	Outer    lattice.OuterTriangle `yaml:"outer"`
	Additive []lattice.Point       `yaml:"additive"`
}

func defaultConfig() Config {
	return Config{
		Outer:    lattice.DefaultOuterTriangle(),
		Additive: lattice.DefaultAdditiveVertices(),
	}
}

func loadConfig(path string) (Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}
