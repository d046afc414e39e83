package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/webns/logger"
)

// CheckCmd checks if generated files are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated files are up to date",
	Long: `Generate in memory and compare with the files on disk without writing.

Exit codes:
  0 - Generated files are up to date
  1 - Files are stale or missing, or generation failed

Examples:
  webnsgen check
  go run ./cmd/webnsgen check     # in CI`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	check, err := gen.Check(gen.Config().Root())
	if err != nil {
		return err
	}

	if logger.JSONOutput {
		if err := writeJSON(cmd.OutOrStdout(), check); err != nil {
			return err
		}
		return check.Err()
	}

	if check.UpToDate {
		pterm.Success.Println("Generated files are up to date")
		return nil
	}
	for _, p := range check.Stale {
		pterm.Warning.Printfln("stale: %s", p)
	}
	for _, p := range check.Missing {
		pterm.Warning.Printfln("missing: %s", p)
	}
	return check.Err()
}
