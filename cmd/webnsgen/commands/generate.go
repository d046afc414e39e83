package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/webns/logger"
	"github.com/teranos/webns/symgen"
)

type generateOutput struct {
	Digest  string   `json:"digest"`
	Files   []string `json:"files"`
	Written []string `json:"written"`
}

// RunGenerate generates and writes every file. It backs the root command.
func RunGenerate(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	result, err := gen.Generate()
	if err != nil {
		return err
	}
	written, err := result.WriteFiles(gen.Config().Root())
	if err != nil {
		return err
	}

	if logger.JSONOutput {
		out := generateOutput{Digest: symgen.FormatDigest(result.Digest), Written: written}
		for _, f := range result.Files {
			out.Files = append(out.Files, f.Path)
		}
		if out.Written == nil {
			out.Written = []string{}
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	for _, p := range written {
		pterm.Info.Printfln("wrote %s", p)
	}
	pterm.Success.Printfln("%d files generated, %d changed", len(result.Files), len(written))
	return nil
}
