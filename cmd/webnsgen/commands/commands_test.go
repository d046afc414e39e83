package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/symgen"
)

// setupProject runs init in a temp dir and copies the real definition files
// next to the new config.
func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	ConfigPath = filepath.Join(dir, config.FileName)
	t.Cleanup(func() { ConfigPath = "" })

	require.NoError(t, runInit(&cobra.Command{}, nil))

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vocab", "data"), 0o755))
	for _, name := range []string{"html5.toml", "svg.yaml"} {
		data, err := os.ReadFile(filepath.Join("..", "..", "..", "vocab", "data", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "vocab", "data", name), data, 0o644))
	}
	return dir
}

func TestInit_RefusesOverwrite(t *testing.T) {
	setupProject(t)
	err := runInit(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestGenerateThenCheck(t *testing.T) {
	dir := setupProject(t)

	err := runCheck(&cobra.Command{}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsStaleError(err))

	require.NoError(t, RunGenerate(&cobra.Command{}, nil))
	_, err = os.Stat(filepath.Join(dir, "vocab", "html5", "zz_generated_symbols.go"))
	require.NoError(t, err)

	require.NoError(t, runCheck(&cobra.Command{}, nil))
}

func TestGeneratedProjectMatchesRepository(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, RunGenerate(&cobra.Command{}, nil))

	// The default config is the repository's config, so a fresh project
	// generates byte-identical files.
	for _, p := range []string{
		"vocab/zz_generated_namespaces.go",
		"vocab/zz_generated_html5.go",
		"vocab/svg/zz_generated_symbols.go",
	} {
		want, err := os.ReadFile(filepath.Join("..", "..", "..", filepath.FromSlash(p)))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), p)
	}
}

func TestRenderConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Path = "/project/webnsgen.toml"

	var buf bytes.Buffer
	require.NoError(t, renderConfig(&buf, cfg, "json"))
	var decoded config.Config
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cfg.Generate, decoded.Generate)
	assert.Equal(t, cfg.Namespaces, decoded.Namespaces)

	buf.Reset()
	require.NoError(t, renderConfig(&buf, cfg, "yaml"))
	assert.Contains(t, buf.String(), "# /project/webnsgen.toml\n")
	var fromYAML config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, cfg.Namespaces, fromYAML.Namespaces)

	buf.Reset()
	require.NoError(t, renderConfig(&buf, cfg, "toml"))
	assert.Contains(t, buf.String(), "[[namespaces]]")
	assert.Contains(t, buf.String(), "github.com/teranos/webns/vocab")

	assert.Error(t, renderConfig(&buf, cfg, "xml"))
}

func TestStatsTable(t *testing.T) {
	data := statsTable([]symgen.NamespaceStats{
		{Namespace: "HTML5", Package: "html5", Attributes: 3, Elements: 2},
	})
	require.Len(t, data, 4)
	assert.Equal(t, "Namespace", data[0][0])
	assert.Equal(t, []string{"HTML5", "html5", "3", "2", "attribute names", "0", "0", "0x0"}, data[1])
	assert.Equal(t, "element names", data[3][4])
}

func TestSelectStats(t *testing.T) {
	stats := []symgen.NamespaceStats{
		{Namespace: "HTML5", Package: "html5"},
		{Namespace: "SVG", Package: "svg"},
	}

	all, err := selectStats(stats, nil)
	require.NoError(t, err)
	assert.Equal(t, stats, all)

	picked, err := selectStats(stats, []string{"svg", "Html5"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	assert.Equal(t, "SVG", picked[0].Namespace)
	assert.Equal(t, "HTML5", picked[1].Namespace)

	_, err = selectStats(stats, []string{"MathML"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownNamespace))
	assert.Contains(t, err.Error(), `"MathML"`)
	assert.Equal(t, []string{"configured namespaces: HTML5, SVG"}, errors.GetAllHints(err))
}
