package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/webns/logger"
	"github.com/teranos/webns/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show webnsgen version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if logger.JSONOutput {
			return writeJSON(cmd.OutOrStdout(), info)
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
		fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
		return nil
	},
}
