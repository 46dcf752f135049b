package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
}

type Players struct {
	X string `yaml:"x" env:"TTT_PLAYER_X" env-default:"player-1"`
	O string `yaml:"o" env:"TTT_PLAYER_O" env-default:"player-2"`
}

// Load - reads the config file at path, falling back to environment variables and defaults when it does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
