package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
)

var showFormat string

// ShowCmd prints the effective configuration
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print the configuration after defaults and WEBNSGEN_* environment overrides.

Examples:
  webnsgen show
  webnsgen show --format yaml
  WEBNSGEN_GENERATE_SEED=7 webnsgen show --format json`,
	RunE: runShow,
}

func init() {
	ShowCmd.Flags().StringVar(&showFormat, "format", "toml", "Output format: toml, json, yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return renderConfig(cmd.OutOrStdout(), cfg, showFormat)
}

func renderConfig(w io.Writer, cfg *config.Config, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml":
		data, err = yaml.Marshal(cfg)
	case "toml":
		data, err = toml.Marshal(cfg)
	default:
		return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to marshal config to %s", format)
	}

	if format != "json" {
		fmt.Fprintf(w, "# %s\n", cfg.Path)
	}
	_, err = w.Write(data)
	return err
}
