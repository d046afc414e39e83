// Package svg exposes the SVG vocabulary as named values, generated from
// vocab/data/svg.yaml. Attribute type bits follow package html5.
package svg

import "github.com/teranos/webns/vocab"

// Table returns the SVG symbol table.
func Table() *vocab.SymbolTable {
	return table
}

// AttributeByName resolves an SVG attribute name, ignoring ASCII case.
func AttributeByName(name string) (vocab.Symbol, bool) {
	return table.AttributeByName(name)
}

// AttributeByProperty resolves an exact SVG property name.
func AttributeByProperty(property string) (vocab.Symbol, bool) {
	return table.AttributeByProperty(property)
}

// ElementByName resolves an SVG tag name, ignoring ASCII case.
func ElementByName(name string) (vocab.Element, bool) {
	return table.ElementByName(name)
}
