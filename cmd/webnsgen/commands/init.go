package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/webns/config"
)

var initForce bool

// InitCmd writes a default configuration
var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default webnsgen.toml",
	Long: `Write a webnsgen.toml declaring the HTML5 and SVG namespaces, to the path
given by --config or to the working directory.`,
	RunE: runInit,
}

func init() {
	InitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := ConfigPath
	if path == "" {
		path = config.FileName
	}
	if err := config.Save(path, config.Default(), initForce); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", path)
	return nil
}
