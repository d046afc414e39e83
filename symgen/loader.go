package symgen

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/teranos/webns/config"
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/foldcase"
	"github.com/teranos/webns/logger"
)

// definitionFile is the on-disk shape of one namespace's definitions.
//
//	format = "1.0"
//
//	[[tags]]
//	name = "br"
//	void = true
//
//	[[attributes]]
//	name = "accept-charset"
//	property = "acceptCharset"
//	type = 0x1
type definitionFile struct {
	Format     string           `toml:"format" yaml:"format"`
	Tags       []tagEntry       `toml:"tags" yaml:"tags"`
	Attributes []attributeEntry `toml:"attributes" yaml:"attributes"`
}

type tagEntry struct {
	Name string `toml:"name" yaml:"name"`
	Void bool   `toml:"void" yaml:"void"`
}

type attributeEntry struct {
	Name     string `toml:"name" yaml:"name"`
	Property string `toml:"property" yaml:"property"`
	Type     uint32 `toml:"type" yaml:"type"`
}

// Loader reads and validates definition files.
type Loader struct {
	constraint *semver.Constraints
	logger     *zap.SugaredLogger
}

// NewLoader returns a loader accepting definition files whose format version
// satisfies formatConstraint, e.g. "^1.0".
func NewLoader(formatConstraint string) (*Loader, error) {
	c, err := semver.NewConstraint(formatConstraint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid format constraint %q", formatConstraint)
	}
	return &Loader{
		constraint: c,
		logger:     logger.ComponentLogger("symgen.loader"),
	}, nil
}

// Load reads every namespace the configuration declares.
func (l *Loader) Load(cfg *config.Config) (*Vocabulary, error) {
	vocab := &Vocabulary{Namespaces: make([]*Namespace, 0, len(cfg.Namespaces))}
	for _, nc := range cfg.Namespaces {
		ns, err := l.LoadFile(nc, cfg.Resolve(nc.Source))
		if err != nil {
			return nil, err
		}
		vocab.Namespaces = append(vocab.Namespaces, ns)
	}
	return vocab, nil
}

// LoadFile reads the definitions of one namespace from path.
func (l *Loader) LoadFile(nc config.NamespaceConfig, path string) (*Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read definitions for %s", nc.Name)
	}
	ns, err := l.Parse(nc, filepath.Ext(path), data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	l.logger.Debugw("Loaded definitions",
		logger.FieldNamespace, ns.Name,
		logger.FieldFile, path,
		logger.FieldAttributes, len(ns.Attributes),
		logger.FieldElements, len(ns.Tags),
	)
	return ns, nil
}

// Parse decodes and validates definitions encoded as ext (".toml", ".yaml"
// or ".yml").
func (l *Loader) Parse(nc config.NamespaceConfig, ext string, data []byte) (*Namespace, error) {
	file, err := decode(ext, data)
	if err != nil {
		return nil, err
	}

	version, err := l.checkFormat(file.Format)
	if err != nil {
		return nil, err
	}

	ns := &Namespace{
		Name:       nc.Name,
		Package:    nc.Package,
		Source:     nc.Source,
		Format:     version,
		Attributes: make([]Attribute, len(file.Attributes)),
		Tags:       make([]Tag, len(file.Tags)),
	}
	for i, a := range file.Attributes {
		ns.Attributes[i] = Attribute{ID: uint32(i), Name: a.Name, Property: a.Property, Type: a.Type}
	}
	for i, t := range file.Tags {
		ns.Tags[i] = Tag{ID: uint32(i), Name: t.Name, Void: t.Void}
	}

	if err := validate(ns); err != nil {
		return nil, err
	}
	return ns, nil
}

func decode(ext string, data []byte) (*definitionFile, error) {
	var file definitionFile
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &file)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidDefinition, err.Error())
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.Wrapf(errors.ErrInvalidDefinition, "unknown keys %s", strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&file); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrInvalidDefinition, err.Error())
		}
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "no decoder for %q files", ext),
			"definition files must end in .toml, .yaml or .yml")
	}
	return &file, nil
}

func (l *Loader) checkFormat(format string) (*semver.Version, error) {
	if format == "" {
		return nil, errors.WithHint(
			errors.Wrap(errors.ErrUnsupportedFormat, "missing format version"),
			`declare the version the file is written against, e.g. format = "1.0"`)
	}
	v, err := semver.NewVersion(format)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "format %q: %v", format, err)
	}
	if !l.constraint.Check(v) {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedFormat, "format %s does not satisfy %s", v, l.constraint),
			"this webnsgen reads formats matching %s", l.constraint)
	}
	return v, nil
}

// validate enforces the uniqueness rules lookups depend on: folded attribute
// names, exact properties and folded tag names each identify one definition.
func validate(ns *Namespace) error {
	names := make(map[string]int, len(ns.Attributes))
	props := make(map[string]int, len(ns.Attributes))
	for i, a := range ns.Attributes {
		if err := checkName("attribute", i, a.Name); err != nil {
			return err
		}
		if a.Property == "" {
			return errors.Wrapf(errors.ErrInvalidDefinition, "attribute %q (#%d) has no property", a.Name, i)
		}
		if err := checkName("property of "+a.Name, i, a.Property); err != nil {
			return err
		}

		folded := foldcase.Fold(a.Name)
		if j, dup := names[folded]; dup {
			return errors.WithHint(
				errors.Wrapf(errors.ErrDuplicateName, "attribute %q (#%d) and %q (#%d) are equal ignoring case",
					ns.Attributes[j].Name, j, a.Name, i),
				"attribute names match case-insensitively; remove one of them")
		}
		names[folded] = i

		if j, dup := props[a.Property]; dup {
			return errors.WithHint(
				errors.Wrapf(errors.ErrDuplicateProperty, "attributes %q (#%d) and %q (#%d) both map to property %q",
					ns.Attributes[j].Name, j, a.Name, i, a.Property),
				"every attribute needs its own property")
		}
		props[a.Property] = i
	}

	tags := make(map[string]int, len(ns.Tags))
	for i, t := range ns.Tags {
		if err := checkName("tag", i, t.Name); err != nil {
			return err
		}
		folded := foldcase.Fold(t.Name)
		if j, dup := tags[folded]; dup {
			return errors.WithHint(
				errors.Wrapf(errors.ErrDuplicateName, "tag %q (#%d) and %q (#%d) are equal ignoring case",
					ns.Tags[j].Name, j, t.Name, i),
				"tag names match case-insensitively; remove one of them")
		}
		tags[folded] = i
	}
	return nil
}

// checkName rejects names that could never appear as a markup name.
func checkName(kind string, i int, name string) error {
	if name == "" {
		return errors.Wrapf(errors.ErrInvalidDefinition, "%s #%d has an empty name", kind, i)
	}
	for j := 0; j < len(name); j++ {
		c := name[j]
		if c <= ' ' || c == 0x7f || strings.IndexByte(`"'>/=\`, c) >= 0 {
			return errors.Wrapf(errors.ErrInvalidDefinition, "%s %q (#%d) contains %q", kind, name, i, c)
		}
	}
	return nil
}
