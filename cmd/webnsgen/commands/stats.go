package commands

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/logger"
	"github.com/teranos/webns/phf"
	"github.com/teranos/webns/symgen"
)

// StatsCmd prints table statistics
var StatsCmd = &cobra.Command{
	Use:   "stats [namespace...]",
	Short: "Show per-namespace table sizes and perfect hash statistics",
	Long: `Show per-namespace table sizes and perfect hash statistics.

With arguments, only the named namespaces are shown. Names match
case-insensitively.`,
	RunE:  runStats,
}

type statsOutput struct {
	Digest     string                  `json:"digest"`
	Namespaces []symgen.NamespaceStats `json:"namespaces"`
}

func runStats(cmd *cobra.Command, args []string) error {
	gen, err := newGenerator()
	if err != nil {
		return err
	}
	vocab, err := gen.Load()
	if err != nil {
		return err
	}
	result, err := gen.Render(vocab)
	if err != nil {
		return err
	}

	stats, err := selectStats(result.Stats, args)
	if err != nil {
		return err
	}

	if logger.JSONOutput {
		return writeJSON(cmd.OutOrStdout(), statsOutput{
			Digest:     symgen.FormatDigest(result.Digest),
			Namespaces: stats,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(statsTable(stats)).Render(); err != nil {
		return err
	}
	pterm.Info.Printfln("vocabulary digest %s", symgen.FormatDigest(result.Digest))
	return nil
}

// selectStats keeps the stats of the named namespaces, in argument order.
// No names selects everything.
func selectStats(stats []symgen.NamespaceStats, names []string) ([]symgen.NamespaceStats, error) {
	if len(names) == 0 {
		return stats, nil
	}
	selected := make([]symgen.NamespaceStats, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(stats, func(s symgen.NamespaceStats) bool {
			return strings.EqualFold(s.Namespace, name)
		})
		if i < 0 {
			known := make([]string, len(stats))
			for j, s := range stats {
				known[j] = s.Namespace
			}
			return nil, errors.WithHintf(
				errors.Wrapf(errors.ErrUnknownNamespace, "%q", name),
				"configured namespaces: %s", strings.Join(known, ", "))
		}
		selected = append(selected, stats[i])
	}
	return selected, nil
}

func statsTable(stats []symgen.NamespaceStats) pterm.TableData {
	data := pterm.TableData{{"Namespace", "Package", "Attributes", "Elements", "Index", "Buckets", "Attempts", "Seed"}}
	for _, s := range stats {
		for _, idx := range []struct {
			name  string
			stats phf.BuildStats
		}{
			{"attribute names", s.AttrNames},
			{"properties", s.AttrProps},
			{"element names", s.ElementNames},
		} {
			data = append(data, []string{
				s.Namespace,
				s.Package,
				strconv.Itoa(s.Attributes),
				strconv.Itoa(s.Elements),
				idx.name,
				strconv.Itoa(idx.stats.Buckets),
				strconv.Itoa(idx.stats.Attempts),
				fmt.Sprintf("%#x", idx.stats.Seed),
			})
		}
	}
	return data
}
