package config

import (
	"go/token"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/foldcase"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Generate.VocabDir == "" {
		return errors.New("generate.vocab_dir cannot be empty")
	}
	if c.Generate.VocabImport == "" {
		return errors.New("generate.vocab_import cannot be empty")
	}
	if _, err := semver.NewConstraint(c.Generate.FormatConstraint); err != nil {
		return errors.Wrapf(err, "generate.format_constraint %q is not a semver constraint", c.Generate.FormatConstraint)
	}

	if len(c.Namespaces) == 0 {
		return errors.WithHint(errors.New("no namespaces configured"),
			"add a [[namespaces]] table with name, package and source")
	}
	if len(c.Namespaces) > 255 {
		return errors.Newf("%d namespaces configured, at most 255 are supported", len(c.Namespaces))
	}

	names := make(map[string]int, len(c.Namespaces))
	packages := make(map[string]int, len(c.Namespaces))
	for i, ns := range c.Namespaces {
		if !token.IsIdentifier(ns.Name) || !token.IsExported(ns.Name) {
			return errors.Newf("namespaces[%d].name %q must be an exported Go identifier", i, ns.Name)
		}
		folded := foldcase.Fold(ns.Name)
		if j, dup := names[folded]; dup {
			return errors.Newf("namespaces[%d].name %q duplicates namespaces[%d].name %q", i, ns.Name, j, c.Namespaces[j].Name)
		}
		names[folded] = i

		if !validPackageName(ns.Package) {
			return errors.Newf("namespaces[%d].package %q must be a lowercase Go package name", i, ns.Package)
		}
		if j, dup := packages[ns.Package]; dup {
			return errors.Newf("namespaces[%d].package %q is already used by namespaces[%d]", i, ns.Package, j)
		}
		packages[ns.Package] = i

		if ns.Source == "" {
			return errors.Newf("namespaces[%d].source cannot be empty", i)
		}
	}

	return nil
}

func validPackageName(name string) bool {
	if !token.IsIdentifier(name) || name == "_" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}
