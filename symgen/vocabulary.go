package symgen

import (
	"encoding/binary"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
)

// Attribute is one loaded attribute definition. ID is its position in the
// definition file.
type Attribute struct {
	ID       uint32
	Name     string
	Property string
	Type     uint32
}

// Tag is one loaded element definition.
type Tag struct {
	ID   uint32
	Name string
	Void bool
}

// Namespace is the validated content of one definition file.
type Namespace struct {
	// Name is the Go identifier of the Namespace constant, e.g. "HTML5".
	Name string
	// Package is the package receiving the named symbols, e.g. "html5".
	Package string
	// Source is the definition file as configured.
	Source string
	// Format is the version the file declared.
	Format *semver.Version

	Attributes []Attribute
	Tags       []Tag
}

// Vocabulary is every configured namespace in declaration order. Namespace
// discriminants are assigned from this order starting at 1.
type Vocabulary struct {
	Namespaces []*Namespace
}

// Namespace returns the namespace with the given name.
func (v *Vocabulary) Namespace(name string) *Namespace {
	for _, ns := range v.Namespaces {
		if ns.Name == name {
			return ns
		}
	}
	return nil
}

// Digest fingerprints everything generation reads from the vocabulary.
// Two vocabularies with the same digest produce the same generated code for
// the same configuration.
func (v *Vocabulary) Digest() uint64 {
	d := xxhash.New()
	var num [8]byte
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(num[:], uint64(len(s)))
		_, _ = d.Write(num[:])
		_, _ = d.WriteString(s)
	}
	writeUint := func(n uint64) {
		binary.LittleEndian.PutUint64(num[:], n)
		_, _ = d.Write(num[:])
	}

	writeUint(uint64(len(v.Namespaces)))
	for _, ns := range v.Namespaces {
		writeString(ns.Name)
		writeString(ns.Package)
		writeString(ns.Source)
		writeUint(uint64(len(ns.Attributes)))
		for _, a := range ns.Attributes {
			writeString(a.Name)
			writeString(a.Property)
			writeUint(uint64(a.Type))
		}
		writeUint(uint64(len(ns.Tags)))
		for _, t := range ns.Tags {
			writeString(t.Name)
			if t.Void {
				writeUint(1)
			} else {
				writeUint(0)
			}
		}
	}
	return d.Sum64()
}
