package main

import (
	"bytes"
	"io"
	"os"

	"github.com/sirkon/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".hiergrade.yaml"

// Config of a hiergrade run.
type Config struct {
	Format OutputFormat `yaml:"format"`

	// Quiet disables trace echo.
	Quiet bool `yaml:"quiet"`

	// Report is a path to write the YAML verdict into.
	Report string `yaml:"report"`
}

func defaultConfig() Config {
	return Config{
		Format: OutputFormatText,
	}
}

// loadConfig reads config from path. A missing file is not an error unless
// the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, errors.Wrap(err, "read config file")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			// Empty config.
			return cfg, nil
		}

		return cfg, errors.Wrapf(err, "decode config file %s", path)
	}

	return cfg, nil
}
