package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/webns/errors"
)

// EnvPrefix prefixes environment overrides, e.g. WEBNSGEN_GENERATE_SEED.
const EnvPrefix = "WEBNSGEN"

// Load finds webnsgen.toml by walking up from the working directory and reads
// it with environment overrides applied.
func Load() (*Config, error) {
	path := findProjectConfig()
	if path == "" {
		return nil, errors.WithHint(
			errors.Newf("no %s found in the working directory or its parents", FileName),
			"run `webnsgen init` or pass --config")
	}
	return LoadFromFile(path)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	config, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config from %s", configPath)
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve config path")
	}
	config.Path = abs
	return config, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// newViper initializes Viper with environment binding and defaults
func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)
	return v
}

// findProjectConfig searches for webnsgen.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, stop searching
			break
		}
		dir = parent
	}

	return ""
}
