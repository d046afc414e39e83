package config

import (
	"github.com/spf13/viper"
)

// Default values shared by SetDefaults and Default.
const (
	DefaultVocabDir         = "vocab"
	DefaultVocabImport      = "github.com/teranos/webns/vocab"
	DefaultSeed             = 0x5eed
	DefaultFormatConstraint = "^1.0"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("generate.vocab_dir", DefaultVocabDir)
	v.SetDefault("generate.vocab_import", DefaultVocabImport)
	v.SetDefault("generate.seed", DefaultSeed)
	v.SetDefault("generate.format_constraint", DefaultFormatConstraint)
}

// Default returns the configuration written by `webnsgen init`.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			VocabDir:         DefaultVocabDir,
			VocabImport:      DefaultVocabImport,
			Seed:             DefaultSeed,
			FormatConstraint: DefaultFormatConstraint,
		},
		Namespaces: []NamespaceConfig{
			{Name: "HTML5", Package: "html5", Source: "vocab/data/html5.toml"},
			{Name: "SVG", Package: "svg", Source: "vocab/data/svg.yaml"},
		},
	}
}
