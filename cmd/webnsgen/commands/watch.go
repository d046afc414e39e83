package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/symgen"
)

var watchDebounce time.Duration

// WatchCmd regenerates on every change
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever a definition file or the config changes",
	Long: `Generate once, then watch webnsgen.toml and every definition file it lists.
Changes are debounced; a change that leaves the vocabulary identical writes
nothing. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().DurationVar(&watchDebounce, "debounce", symgen.DefaultDebounce, "Wait this long for file events to settle")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := ConfigPath
	if path == "" {
		// Resolve once so the watcher keeps following the same file.
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path = cfg.Path
	}

	w, err := symgen.NewWatcher(path, watchDebounce)
	if err != nil {
		return err
	}
	w.OnGenerate(func(result *symgen.Result, written []string) {
		pterm.Success.Printfln("regenerated %d files (digest %s)", len(written), symgen.FormatDigest(result.Digest))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printfln("watching %s", filepath.Dir(path))
	if err := w.Run(ctx); err != nil {
		return errors.Wrap(err, "watch failed")
	}
	return nil
}
