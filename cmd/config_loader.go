package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileSchema is the on-disk YAML config. All fields are optional;
// flags always win over config values.
type configFileSchema struct {
	Theme   string `yaml:"theme"`
	KeyMode string `yaml:"key_mode"`
	NoColor *bool  `yaml:"no_color"`
}

// configEnvVar overrides the default config location.
const configEnvVar = "JX_CONFIG"

// resolveConfigPath returns the config path to try and whether it was named
// explicitly (flag or env). Explicit paths must exist; the default location
// is allowed to be absent.
func resolveConfigPath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv(configEnvVar); env != "" {
		return env, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, ".config", "jx", "config.yaml"), false
}

// loadConfigFile reads and parses the resolved config file. A missing file
// at the default location is not an error; a missing explicit path or a
// malformed file is.
func loadConfigFile(flagValue string) (configFileSchema, error) {
	var cfg configFileSchema

	path, explicit := resolveConfigPath(flagValue)
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
