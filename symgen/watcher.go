package symgen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/logger"
)

// DefaultDebounce is how long the watcher waits for a burst of file events
// to settle before regenerating.
const DefaultDebounce = 300 * time.Millisecond

// GenerateCallback is called after each regeneration with the result and the
// files that were rewritten.
type GenerateCallback func(result *Result, written []string)

// Watcher regenerates whenever the configuration or a definition file
// changes. Regeneration is skipped when the vocabulary and generation
// settings are unchanged, so touching a file without editing it writes
// nothing.
type Watcher struct {
	configPath string
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	logger     *zap.SugaredLogger

	// Owned by the Run goroutine.
	files     map[string]bool
	dirs      map[string]bool
	timer     *time.Timer
	lastKey   uint64
	haveKey   bool
	callbacks []GenerateCallback

	fire chan struct{}
}

// NewWatcher creates a watcher for the configuration at configPath.
func NewWatcher(configPath string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve config path")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		configPath: abs,
		watcher:    fw,
		debounce:   debounce,
		logger:     logger.ComponentLogger("symgen.watch"),
		files:      make(map[string]bool),
		dirs:       make(map[string]bool),
		fire:       make(chan struct{}, 1),
	}, nil
}

// OnGenerate registers a callback. It must be called before Run.
func (w *Watcher) OnGenerate(cb GenerateCallback) {
	w.callbacks = append(w.callbacks, cb)
}

// Run generates once and then after every relevant change until ctx is
// done. Generation failures are logged and do not stop the watcher; a
// configuration that cannot be loaded at startup does.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	cfg, err := config.LoadFromFile(w.configPath)
	if err != nil {
		return err
	}
	if err := w.watch(cfg); err != nil {
		return err
	}
	w.regenerate(cfg)

	for {
		select {
		case <-ctx.Done():
			if w.timer != nil {
				w.timer.Stop()
			}
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debugw("Detected change",
				logger.FieldFile, event.Name,
				"op", event.Op.String())
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", logger.FieldError, err)

		case <-w.fire:
			cfg, err := config.LoadFromFile(w.configPath)
			if err != nil {
				w.logger.Errorw("Config reload failed", logger.FieldError, err)
				continue
			}
			if err := w.watch(cfg); err != nil {
				w.logger.Errorw("Failed to watch definition files", logger.FieldError, err)
			}
			w.regenerate(cfg)
		}
	}
}

// watch records the files that matter and watches their directories;
// editors often replace a file instead of writing it in place.
func (w *Watcher) watch(cfg *config.Config) error {
	files := map[string]bool{w.configPath: true}
	for _, ns := range cfg.Namespaces {
		p, err := filepath.Abs(cfg.Resolve(ns.Source))
		if err != nil {
			return errors.Wrapf(err, "failed to resolve %s", ns.Source)
		}
		files[p] = true
	}
	w.files = files

	for f := range files {
		dir := filepath.Dir(f)
		if w.dirs[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "failed to watch %s", dir)
		}
		w.dirs[dir] = true
	}
	return nil
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}

// schedule debounces rapid file changes.
func (w *Watcher) schedule() {
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.fire <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) regenerate(cfg *config.Config) {
	gen, err := New(cfg)
	if err != nil {
		w.logger.Errorw("Generation failed", logger.FieldError, err)
		return
	}
	vocab, err := gen.Load()
	if err != nil {
		w.logger.Errorw("Generation failed", logger.FieldError, err)
		return
	}

	key := generationKey(vocab, cfg)
	if w.haveKey && key == w.lastKey {
		w.logger.Debugw("Vocabulary unchanged, skipping",
			logger.FieldDigest, FormatDigest(vocab.Digest()))
		return
	}

	result, err := gen.Render(vocab)
	if err != nil {
		w.logger.Errorw("Generation failed", logger.FieldError, err)
		return
	}
	written, err := result.WriteFiles(cfg.Root())
	if err != nil {
		w.logger.Errorw("Failed to write generated files", logger.FieldError, err)
		return
	}
	w.lastKey, w.haveKey = key, true

	w.logger.Infow("Regenerated",
		logger.FieldDigest, FormatDigest(result.Digest),
		logger.FieldCount, len(written))
	for _, cb := range w.callbacks {
		cb(result, written)
	}
}

// generationKey covers everything Render reads.
func generationKey(vocab *Vocabulary, cfg *config.Config) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%x|%+v", vocab.Digest(), cfg.Generate))
}
