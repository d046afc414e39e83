// Package config holds the webnsgen configuration: which namespaces exist,
// where their definition files live and where generated code goes.
package config

import "path/filepath"

// FileName is the project configuration file searched for by Load.
const FileName = "webnsgen.toml"

// Config represents the generator configuration
type Config struct {
	Generate   GenerateConfig    `mapstructure:"generate" toml:"generate" json:"generate" yaml:"generate"`
	Namespaces []NamespaceConfig `mapstructure:"namespaces" toml:"namespaces" json:"namespaces" yaml:"namespaces"`

	// Path is the file the configuration was read from. Relative paths in the
	// configuration resolve against its directory.
	Path string `mapstructure:"-" toml:"-" json:"-" yaml:"-"`
}

// GenerateConfig configures code generation
type GenerateConfig struct {
	// VocabDir is the directory of the vocab package, relative to the config.
	VocabDir string `mapstructure:"vocab_dir" toml:"vocab_dir" json:"vocab_dir" yaml:"vocab_dir"`
	// VocabImport is the import path of the vocab package.
	VocabImport string `mapstructure:"vocab_import" toml:"vocab_import" json:"vocab_import" yaml:"vocab_import"`
	// Seed is the first perfect hash seed tried.
	Seed uint64 `mapstructure:"seed" toml:"seed" json:"seed" yaml:"seed"`
	// FormatConstraint is the semver constraint definition files must satisfy.
	FormatConstraint string `mapstructure:"format_constraint" toml:"format_constraint" json:"format_constraint" yaml:"format_constraint"`
}

// NamespaceConfig declares one markup namespace
type NamespaceConfig struct {
	// Name is the Go identifier of the Namespace constant, e.g. "HTML5".
	Name string `mapstructure:"name" toml:"name" json:"name" yaml:"name"`
	// Package receives the named symbols, e.g. "html5".
	Package string `mapstructure:"package" toml:"package" json:"package" yaml:"package"`
	// Source is the definition file, relative to the config.
	Source string `mapstructure:"source" toml:"source" json:"source" yaml:"source"`
}

// Root returns the directory relative paths resolve against.
func (c *Config) Root() string {
	if c.Path == "" {
		return "."
	}
	return filepath.Dir(c.Path)
}

// Resolve turns a configuration-relative path into a usable one.
func (c *Config) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root(), path)
}

// Namespace returns the namespace configuration with the given name.
func (c *Config) Namespace(name string) (NamespaceConfig, bool) {
	for _, ns := range c.Namespaces {
		if ns.Name == name {
			return ns, true
		}
	}
	return NamespaceConfig{}, false
}
