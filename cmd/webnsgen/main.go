// Command webnsgen generates the static symbol tables of package vocab.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/webns/cmd/webnsgen/commands"
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/logger"
)

var rootCmd = &cobra.Command{
	Use:   "webnsgen",
	Short: "Generate perfect-hash symbol tables for web vocabularies",
	Long: `webnsgen reads the vocabulary definition files listed in webnsgen.toml and
generates the attribute/element arrays, perfect hash indexes and named
values of package vocab.

Running webnsgen without a subcommand generates and writes the files.

Examples:
  webnsgen                      # Generate using ./webnsgen.toml (searched upwards)
  webnsgen -c path/to/webnsgen.toml
  webnsgen check                # Exit non-zero if generated files are stale
  webnsgen watch                # Regenerate on every definition change
  webnsgen stats                # Table sizes and hash statistics
  webnsgen init                 # Write a default webnsgen.toml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	RunE: commands.RunGenerate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&commands.ConfigPath, "config", "c", "", "Path to webnsgen.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit logs and command output as JSON")

	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.StatsCmd)
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.ShowCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		if details := errors.FlattenDetails(err); details != "" {
			fmt.Fprintln(os.Stderr, details)
		}
		os.Exit(1)
	}
}
