// Package commands implements the webnsgen subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/logger"
	"github.com/teranos/webns/symgen"
)

// ConfigPath is set by the --config flag.
var ConfigPath string

func loadConfig() (*config.Config, error) {
	if ConfigPath != "" {
		return config.LoadFromFile(ConfigPath)
	}
	return config.Load()
}

func newGenerator() (*symgen.Generator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger.Logger.Debugw("Loaded config", logger.FieldConfig, cfg.Path)
	return symgen.New(cfg)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
