package symgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generation struct {
	result  *Result
	written []string
}

func startWatcher(t *testing.T, configPath string) <-chan generation {
	t.Helper()
	w, err := NewWatcher(configPath, 20*time.Millisecond)
	require.NoError(t, err)

	events := make(chan generation, 8)
	w.OnGenerate(func(result *Result, written []string) {
		events <- generation{result, written}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})
	return events
}

func waitGeneration(t *testing.T, events <-chan generation) generation {
	t.Helper()
	select {
	case g := <-events:
		return g
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for regeneration")
		return generation{}
	}
}

func TestWatcher_RegeneratesOnChange(t *testing.T) {
	cfg := writeFixture(t)
	events := startWatcher(t, cfg.Path)

	initial := waitGeneration(t, events)
	assert.Len(t, initial.written, 3)
	_, err := os.Stat(filepath.Join(cfg.Root(), "out", "vocab", "zz_generated_m.go"))
	require.NoError(t, err)

	defs := fixtureDefs() + "\n[[attributes]]\nname = \"id\"\nproperty = \"id\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root(), "defs", "m.toml"), []byte(defs), 0o644))

	next := waitGeneration(t, events)
	assert.NotEqual(t, initial.result.Digest, next.result.Digest)
	assert.ElementsMatch(t, []string{"out/vocab/zz_generated_m.go", "out/vocab/m/zz_generated_symbols.go"}, next.written)
	assert.Equal(t, 9, next.result.Stats[0].Attributes)
}

func TestWatcher_SkipsUnchangedVocabulary(t *testing.T) {
	cfg := writeFixture(t)
	events := startWatcher(t, cfg.Path)
	waitGeneration(t, events)

	// Rewriting identical content is an event but not a change.
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root(), "defs", "m.toml"), []byte(fixtureDefs()), 0o644))

	select {
	case g := <-events:
		t.Fatalf("unexpected regeneration writing %v", g.written)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_IgnoresUnrelatedFiles(t *testing.T) {
	cfg := writeFixture(t)
	events := startWatcher(t, cfg.Path)
	waitGeneration(t, events)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root(), "defs", "notes.txt"), []byte("x"), 0o644))

	select {
	case g := <-events:
		t.Fatalf("unexpected regeneration writing %v", g.written)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_ConfigChange(t *testing.T) {
	cfg := writeFixture(t)
	events := startWatcher(t, cfg.Path)
	first := waitGeneration(t, events)

	data, err := os.ReadFile(cfg.Path)
	require.NoError(t, err)
	updated := strings.Replace(string(data), "seed = 1", "seed = 2", 1)
	require.NoError(t, os.WriteFile(cfg.Path, []byte(updated), 0o644))

	next := waitGeneration(t, events)
	assert.Equal(t, first.result.Digest, next.result.Digest, "definitions did not change")
	assert.Equal(t, []string{"out/vocab/zz_generated_m.go"}, next.written)
}

func TestNewWatcher_StartupFailure(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), "missing.toml"), 0)
	require.NoError(t, err)
	assert.Error(t, w.Run(context.Background()))
}
