package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/webns/errors"
)

const header = "# webnsgen configuration. Paths are relative to this file.\n\n"

// Save writes the configuration as TOML. An existing file is only replaced
// when overwrite is set.
func Save(path string, config *Config, overwrite bool) error {
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "refusing to save invalid config")
	}

	if _, err := os.Stat(path); err == nil && !overwrite {
		return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
