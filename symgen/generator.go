// Package symgen generates the static symbol tables of package vocab from
// the vocabulary definition files.
//
// Generation runs four steps per namespace: load and validate the
// definitions, emit the attribute and element arrays, build and emit the
// perfect hash indexes, and emit one named value per attribute and element in
// the namespace's own package. A final file declares the Namespace enum that
// ties the tables together.
package symgen

import (
	"bytes"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/logger"
	"github.com/teranos/webns/phf"
)

// File is one generated source file. Path is slash-separated and relative to
// the configuration root.
type File struct {
	Path    string
	Content []byte
}

// NamespaceStats describes the tables generated for one namespace.
type NamespaceStats struct {
	Namespace    string         `json:"namespace"`
	Package      string         `json:"package"`
	Attributes   int            `json:"attributes"`
	Elements     int            `json:"elements"`
	AttrNames    phf.BuildStats `json:"attr_names"`
	AttrProps    phf.BuildStats `json:"attr_props"`
	ElementNames phf.BuildStats `json:"element_names"`
}

// Result holds everything one generation run produced.
type Result struct {
	Files      []File
	Stats      []NamespaceStats
	Vocabulary *Vocabulary
	// Digest is Vocabulary.Digest().
	Digest uint64
}

// Generator turns a configuration into generated files.
type Generator struct {
	cfg    *config.Config
	loader *Loader
	logger *zap.SugaredLogger
}

// New returns a generator for cfg.
func New(cfg *config.Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	loader, err := NewLoader(cfg.Generate.FormatConstraint)
	if err != nil {
		return nil, err
	}
	return &Generator{
		cfg:    cfg,
		loader: loader,
		logger: logger.ComponentLogger("symgen"),
	}, nil
}

// Config returns the generator's configuration.
func (g *Generator) Config() *config.Config {
	return g.cfg
}

// Load reads the vocabulary without generating anything.
func (g *Generator) Load() (*Vocabulary, error) {
	return g.loader.Load(g.cfg)
}

// Generate loads the vocabulary and renders every output file in memory.
// Output depends only on the definition files and the configuration.
func (g *Generator) Generate() (*Result, error) {
	start := time.Now()

	vocab, err := g.Load()
	if err != nil {
		return nil, err
	}
	result, err := g.Render(vocab)
	if err != nil {
		return nil, err
	}

	g.logger.Infow("Generated symbol tables",
		logger.FieldCount, len(result.Files),
		logger.FieldDigest, FormatDigest(result.Digest),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return result, nil
}

// Render generates files for an already loaded vocabulary.
func (g *Generator) Render(vocab *Vocabulary) (*Result, error) {
	if err := checkNamespaceNames(vocab); err != nil {
		return nil, err
	}

	vocabDir := g.cfg.Generate.VocabDir
	vocabImport := g.cfg.Generate.VocabImport
	vocabPkg := path.Base(vocabImport)

	result := &Result{Vocabulary: vocab, Digest: vocab.Digest()}

	for _, ns := range vocab.Namespaces {
		nsLogger := logger.ChildLogger(g.logger, logger.FieldNamespace, ns.Name)

		tables, err := BuildTables(ns, g.cfg.Generate.Seed)
		if err != nil {
			return nil, err
		}
		idents, err := Idents(ns)
		if err != nil {
			return nil, err
		}

		tablesFile, err := format(path.Join(vocabDir, "zz_generated_"+ns.Package+".go"), EmitTables(ns, tables, vocabPkg))
		if err != nil {
			return nil, err
		}
		symbolsFile, err := format(path.Join(vocabDir, ns.Package, "zz_generated_symbols.go"), EmitSymbols(ns, idents, vocabImport))
		if err != nil {
			return nil, err
		}
		result.Files = append(result.Files, tablesFile, symbolsFile)

		stats := NamespaceStats{
			Namespace:    ns.Name,
			Package:      ns.Package,
			Attributes:   len(ns.Attributes),
			Elements:     len(ns.Tags),
			AttrNames:    tables.AttrNamesStats,
			AttrProps:    tables.AttrPropsStats,
			ElementNames: tables.ElementNamesStats,
		}
		result.Stats = append(result.Stats, stats)

		nsLogger.Debugw("Built tables",
			logger.FieldAttributes, stats.Attributes,
			logger.FieldElements, stats.Elements,
			logger.FieldSeed, tables.AttrNames.Seed,
			logger.FieldAttempts, stats.AttrNames.Attempts+stats.AttrProps.Attempts+stats.ElementNames.Attempts,
		)
	}

	nsFile, err := format(path.Join(vocabDir, "zz_generated_namespaces.go"), EmitNamespaces(vocab, vocabPkg))
	if err != nil {
		return nil, err
	}
	result.Files = append(result.Files, nsFile)

	return result, nil
}

// reservedNames are the package-level identifiers of package vocab that
// generated declarations must not redeclare. The lowercase ones are declared
// by the hand-written files and by zz_generated_namespaces.go.
var reservedNames = map[string]bool{
	"AttrDef":         true,
	"AttrType":        true,
	"BuildMaps":       true,
	"Element":         true,
	"ElementDef":      true,
	"HashFold":        true,
	"Maps":            true,
	"Namespace":       true,
	"NamespaceByName": true,
	"Namespaces":      true,
	"NewSymbolTable":  true,
	"Symbol":          true,
	"SymbolTable":     true,

	"allNamespaces":   true,
	"attributeByName": true,
	"checkUnique":     true,
	"elementByName":   true,
	"namespaceName":   true,
	"namespaceTable":  true,
	"phf":             true,
}

// checkNamespaceNames rejects namespace constants and table variables that
// would redeclare an identifier of package vocab or of another namespace.
func checkNamespaceNames(vocab *Vocabulary) error {
	declared := make(map[string]string)
	for _, ns := range vocab.Namespaces {
		idents := append([]string{ns.Name}, tableIdents(ns.Package)...)
		for _, id := range idents {
			if reservedNames[id] {
				return errors.WithHint(
					errors.Wrapf(errors.ErrIdentifierCollision, "namespace %s (package %s) declares %s, which clashes with vocab.%s", ns.Name, ns.Package, id, id),
					"choose another namespace name or package in the config")
			}
			if other, dup := declared[id]; dup {
				return errors.WithHint(
					errors.Wrapf(errors.ErrIdentifierCollision, "namespaces %s and %s both declare vocab.%s", other, ns.Name, id),
					"choose another namespace name or package in the config")
			}
			declared[id] = ns.Name
		}
	}
	return nil
}

// format runs generated source through the same formatter as goimports so
// that the checked-in files are what gofmt would produce.
func format(name, src string) (File, error) {
	out, err := imports.Process(name, []byte(src), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return File{}, errors.Wrapf(err, "generated %s does not parse", name)
	}
	return File{Path: name, Content: out}, nil
}

// WriteFiles writes every file under root, skipping files whose content is
// already current. It returns the paths actually written.
func (r *Result) WriteFiles(root string) ([]string, error) {
	var written []string
	for _, f := range r.Files {
		target := filepath.Join(root, filepath.FromSlash(f.Path))
		if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, f.Content) {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, errors.Wrapf(err, "failed to create %s", filepath.Dir(target))
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return written, errors.Wrapf(err, "failed to write %s", target)
		}
		written = append(written, f.Path)
	}
	return written, nil
}

// File returns the generated file with the given path.
func (r *Result) File(p string) (File, bool) {
	for _, f := range r.Files {
		if f.Path == p {
			return f, true
		}
	}
	return File{}, false
}
