package symgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
)

const fixtureConfig = `
[generate]
vocab_dir = "out/vocab"
vocab_import = "example.com/fixture/out/vocab"
seed = 1

[[namespaces]]
name = "M"
package = "m"
source = "defs/m.toml"
`

// fixtureDefs puts "class" at id 7 with property "class_name".
func fixtureDefs() string {
	var sb strings.Builder
	sb.WriteString("format = \"1.0\"\n")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&sb, "\n[[attributes]]\nname = \"attr-%d\"\nproperty = \"attr%d\"\n", i, i)
	}
	sb.WriteString("\n[[attributes]]\nname = \"class\"\nproperty = \"class_name\"\ntype = 0x1\n")
	sb.WriteString("\n[[tags]]\nname = \"div\"\n\n[[tags]]\nname = \"br\"\nvoid = true\n")
	return sb.String()
}

func writeFixture(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "defs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "defs", "m.toml"), []byte(fixtureDefs()), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(fixtureConfig), 0o644))

	cfg, err := config.LoadFromFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	return cfg
}

func generate(t *testing.T, cfg *config.Config) *Result {
	t.Helper()
	g, err := New(cfg)
	require.NoError(t, err)
	result, err := g.Generate()
	require.NoError(t, err)
	return result
}

func TestGenerate_Files(t *testing.T) {
	result := generate(t, writeFixture(t))

	var paths []string
	for _, f := range result.Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"out/vocab/zz_generated_m.go",
		"out/vocab/m/zz_generated_symbols.go",
		"out/vocab/zz_generated_namespaces.go",
	}, paths)

	require.Len(t, result.Stats, 1)
	assert.Equal(t, 8, result.Stats[0].Attributes)
	assert.Equal(t, 2, result.Stats[0].Elements)
	assert.Equal(t, result.Vocabulary.Digest(), result.Digest)
}

func TestGenerate_TablesFile(t *testing.T) {
	result := generate(t, writeFixture(t))
	f, ok := result.File("out/vocab/zz_generated_m.go")
	require.True(t, ok)
	src := string(f.Content)

	assert.True(t, strings.HasPrefix(src, "// Code generated by webnsgen from defs/m.toml. DO NOT EDIT.\n\npackage vocab\n"))
	assert.Contains(t, src, `import "github.com/teranos/webns/phf"`)
	assert.Contains(t, src, "var mAttrs = [...]AttrDef{\n")
	assert.Contains(t, src, "\t{M, \"class\", \"class_name\", 0x1},\n")
	assert.Contains(t, src, "\t{M, \"attr-0\", \"attr0\", 0x0},\n")
	assert.Contains(t, src, "\t{M, \"br\", true},\n")
	assert.Contains(t, src, "var mAttrNameDisps = [...]uint32{")
	assert.Contains(t, src, "var mElementNameValues = [...]uint32{")
	assert.Contains(t, src, "\tns:           M,\n")
	assert.Contains(t, src, "attrProps:    phf.Map{Seed: ")

	// Exactly one record per definition.
	assert.Equal(t, 8, strings.Count(src, "\t{M, \"")-2)
}

func TestGenerate_SymbolsFile(t *testing.T) {
	result := generate(t, writeFixture(t))
	f, ok := result.File("out/vocab/m/zz_generated_symbols.go")
	require.True(t, ok)
	src := string(f.Content)

	assert.Contains(t, src, "package m\n")
	assert.Contains(t, src, `import "example.com/fixture/out/vocab"`)
	assert.Contains(t, src, "var table = vocab.M.Table()\n")
	assert.Contains(t, src, "// CLASS is the M \"class\" attribute.\nvar CLASS = table.Symbol(7)\n")
	assert.Contains(t, src, "var ATTR_0 = table.Symbol(0)\n")
	assert.Contains(t, src, "// TAG_BR is the M <br> element.\nvar TAG_BR = table.Element(1)\n")
}

func TestGenerate_NamespacesFile(t *testing.T) {
	result := generate(t, writeFixture(t))
	f, ok := result.File("out/vocab/zz_generated_namespaces.go")
	require.True(t, ok)
	src := string(f.Content)

	assert.Contains(t, src, "\tM Namespace = 1 + iota\n")
	assert.Contains(t, src, "var allNamespaces = [...]Namespace{M}\n")
	assert.Contains(t, src, "\tcase M:\n\t\treturn &mTable\n")
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := writeFixture(t)
	first := generate(t, cfg)
	for i := 0; i < 3; i++ {
		again := generate(t, cfg)
		require.Equal(t, len(first.Files), len(again.Files))
		for j := range first.Files {
			assert.Equal(t, string(first.Files[j].Content), string(again.Files[j].Content), first.Files[j].Path)
		}
	}
}

func TestGenerate_SeedChangesTables(t *testing.T) {
	cfg := writeFixture(t)
	a := generate(t, cfg)
	cfg.Generate.Seed = 2
	b := generate(t, cfg)

	fa, _ := a.File("out/vocab/zz_generated_m.go")
	fb, _ := b.File("out/vocab/zz_generated_m.go")
	assert.NotEqual(t, string(fa.Content), string(fb.Content))

	sa, _ := a.File("out/vocab/m/zz_generated_symbols.go")
	sb, _ := b.File("out/vocab/m/zz_generated_symbols.go")
	assert.Equal(t, string(sa.Content), string(sb.Content), "named values depend only on ids")
}

func TestGenerate_IdentifierCollision(t *testing.T) {
	cfg := writeFixture(t)
	defs := fixtureDefs() + "\n[[attributes]]\nname = \"attr_0\"\nproperty = \"other\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Root(), "defs", "m.toml"), []byte(defs), 0o644))

	g, err := New(cfg)
	require.NoError(t, err)
	_, err = g.Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrIdentifierCollision))
	assert.Contains(t, err.Error(), "ATTR_0")
}

func TestGenerate_ReservedNamespaceName(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		clashes string
	}{
		{"exported name", func(c *config.Config) { c.Namespaces[0].Name = "Symbol" }, "vocab.Symbol"},
		{"table variable", func(c *config.Config) { c.Namespaces[0].Package = "namespace" }, "vocab.namespaceTable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeFixture(t)
			tt.mutate(cfg)

			g, err := New(cfg)
			require.NoError(t, err)
			result, err := g.Generate()
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, errors.ErrIdentifierCollision))
			assert.Contains(t, err.Error(), tt.clashes)
			assert.NotEmpty(t, errors.GetAllHints(err))
		})
	}
}

func TestTableIdentsMatchEmittedTables(t *testing.T) {
	result := generate(t, writeFixture(t))
	f, ok := result.File("out/vocab/zz_generated_m.go")
	require.True(t, ok)
	src := string(f.Content)

	idents := tableIdents("m")
	assert.Equal(t, len(idents), strings.Count(src, "\nvar "))
	for _, id := range idents {
		assert.Contains(t, src, "\nvar "+id+" = ")
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := writeFixture(t)
	cfg.Namespaces = nil
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestWriteFilesAndCheck(t *testing.T) {
	cfg := writeFixture(t)
	root := cfg.Root()
	g, err := New(cfg)
	require.NoError(t, err)

	check, err := g.Check(root)
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	assert.Len(t, check.Missing, 3)
	require.Error(t, check.Err())
	assert.True(t, errors.IsStaleError(check.Err()))

	result, err := g.Generate()
	require.NoError(t, err)
	written, err := result.WriteFiles(root)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	check, err = g.Check(root)
	require.NoError(t, err)
	assert.True(t, check.UpToDate)
	assert.NoError(t, check.Err())

	// Unchanged files are not rewritten.
	written, err = result.WriteFiles(root)
	require.NoError(t, err)
	assert.Empty(t, written)

	// A definition change makes the tables and the named values stale.
	defs := fixtureDefs() + "\n[[attributes]]\nname = \"id\"\nproperty = \"id\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "defs", "m.toml"), []byte(defs), 0o644))
	check, err = g.Check(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"out/vocab/zz_generated_m.go", "out/vocab/m/zz_generated_symbols.go"}, check.Stale)
	assert.Empty(t, check.Missing)
	assert.Contains(t, errors.FlattenDetails(check.Err()), "stale: out/vocab/zz_generated_m.go")
}

func TestCheckedInFilesAreCurrent(t *testing.T) {
	cfg, err := config.LoadFromFile(filepath.Join("..", config.FileName))
	require.NoError(t, err)
	g, err := New(cfg)
	require.NoError(t, err)

	check, err := g.Check(cfg.Root())
	require.NoError(t, err)
	assert.True(t, check.UpToDate, "stale: %v missing: %v; run go generate ./vocab", check.Stale, check.Missing)
}
