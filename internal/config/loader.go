package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	configPathEnv     = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"
)

// Load builds the configuration from env-default tags, an optional YAML
// file and the environment, in increasing priority, then validates it.
// The file is taken from $CONFIG_PATH; without it ./config.yaml is used when
// present. A CONFIG_PATH that points at nothing is an error.
func Load() (*Config, error) {
	path := os.Getenv(configPathEnv)
	required := path != ""
	if !required {
		path = defaultConfigPath
	}

	cfg, err := read(path, required)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return cfg, nil
}

func read(path string, required bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		// ReadConfig applies the environment on top of the file.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: open %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
