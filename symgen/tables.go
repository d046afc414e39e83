package symgen

import (
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/foldcase"
	"github.com/teranos/webns/phf"
)

// Tables are the perfect hash indexes of one namespace.
type Tables struct {
	AttrNames    phf.Map
	AttrProps    phf.Map
	ElementNames phf.Map

	AttrNamesStats    phf.BuildStats
	AttrPropsStats    phf.BuildStats
	ElementNamesStats phf.BuildStats
}

// foldHash is the name index hash; vocab.HashFold wraps the same function.
var foldHash phf.HashFunc = foldcase.Hash[string]

// BuildTables builds the three indexes of ns starting from seed and verifies
// that every key probes back to its own id.
func BuildTables(ns *Namespace, seed uint64) (*Tables, error) {
	names := make([]string, len(ns.Attributes))
	props := make([]string, len(ns.Attributes))
	for i, a := range ns.Attributes {
		names[i] = a.Name
		props[i] = a.Property
	}
	tags := make([]string, len(ns.Tags))
	for i, t := range ns.Tags {
		tags[i] = t.Name
	}

	var t Tables
	var err error
	if t.AttrNames, t.AttrNamesStats, err = phf.Build(names, foldHash, seed); err != nil {
		return nil, errors.Wrapf(err, "%s attribute names", ns.Name)
	}
	if t.AttrProps, t.AttrPropsStats, err = phf.Build(props, phf.HashString, seed); err != nil {
		return nil, errors.Wrapf(err, "%s attribute properties", ns.Name)
	}
	if t.ElementNames, t.ElementNamesStats, err = phf.Build(tags, foldHash, seed); err != nil {
		return nil, errors.Wrapf(err, "%s tag names", ns.Name)
	}

	if err := selfCheck(&t.AttrNames, names, foldHash, true); err != nil {
		return nil, errors.Wrapf(err, "%s attribute names", ns.Name)
	}
	if err := selfCheck(&t.AttrProps, props, phf.HashString, false); err != nil {
		return nil, errors.Wrapf(err, "%s attribute properties", ns.Name)
	}
	if err := selfCheck(&t.ElementNames, tags, foldHash, true); err != nil {
		return nil, errors.Wrapf(err, "%s tag names", ns.Name)
	}
	return &t, nil
}

// selfCheck probes every key the way a lookup would. Folded maps are also
// probed with the uppercased key.
func selfCheck(m *phf.Map, keys []string, hash phf.HashFunc, folded bool) error {
	if m.Len() != len(keys) {
		return errors.AssertionFailedf("map holds %d values for %d keys", m.Len(), len(keys))
	}
	for i, k := range keys {
		probes := []string{k}
		if folded {
			probes = append(probes, upper(k))
		}
		for _, p := range probes {
			got, ok := m.Index(hash(m.Seed, p))
			if !ok || got != uint32(i) {
				return errors.AssertionFailedf("key %q (#%d) probes to %d", p, i, got)
			}
		}
	}
	return nil
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
