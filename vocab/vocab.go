// Package vocab resolves markup vocabulary names to static definitions.
//
// Every Namespace owns one immutable SymbolTable holding its attribute and
// element definitions plus minimal perfect hash indexes over them. The tables
// for the configured namespaces are generated by cmd/webnsgen from the files
// in vocab/data and compiled into this package, so lookups never allocate,
// never lock and never fail with an error: an unknown name simply resolves to
// ok == false.
//
//	sym, ok := vocab.HTML5.ResolveAttributeByName("CLASS")
//	if ok {
//	    fmt.Println(sym.Property()) // className
//	}
//
// Attribute and element names match ASCII case-insensitively (see package
// foldcase); properties match exactly.
package vocab

//go:generate go run ../cmd/webnsgen --config ../webnsgen.toml

// AttrType is an opaque bitset describing the values an attribute accepts.
// Its encoding belongs to the vocabulary data; this package only stores it.
type AttrType uint32

// AttrDef is the static definition of one attribute in one namespace.
type AttrDef struct {
	Namespace Namespace
	// Name is the markup-facing spelling, e.g. "accept-charset".
	Name string
	// Property is the name the attribute maps to internally, e.g. "acceptCharset".
	Property string
	Type     AttrType
}

// ElementDef is the static definition of one element in one namespace.
type ElementDef struct {
	Namespace Namespace
	Name      string
	// Void elements have no content and no end tag.
	Void bool
}
