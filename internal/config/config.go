package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment and the drill runner.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Runner contains all drill runner related configurations
	Runner struct {
		// Seed seeds the random source used by the random drill; 0 keeps the
		// process-wide random seeding
		Seed uint64 `env:"RUNNER_SEED" env-default:"0" yaml:"seed"`
	} `yaml:"runner"`
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing file is not an error; configuration is then read from the
// environment alone so the CLI runs without any config file present.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
