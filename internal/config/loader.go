package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigFile = "./config.yaml"

// LoadFile builds the configuration from defaults, an optional YAML file and
// the environment, in increasing priority.
//
// An empty path means $CONFIG_PATH, then ./config.yaml. A file named by the
// caller or by $CONFIG_PATH must exist; ./config.yaml may be absent.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	required := path != ""
	if !required {
		path = defaultConfigFile
	}

	var cfg Config
	err := cleanenv.ReadConfig(path, &cfg)
	switch {
	case err == nil:
	case !required && errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
