// Package html5 exposes the HTML5 vocabulary as named values.
//
// Every attribute has a package-level Symbol named after it (CLASS,
// ACCEPT_CHARSET, HTTP_EQUIV) and every element an Element prefixed with
// TAG_ (TAG_DIV, TAG_BR). They are generated from vocab/data/html5.toml and
// compare equal to the values the lookups below return:
//
//	sym, _ := html5.AttributeByName("Class")
//	sym == html5.CLASS // true
package html5

import "github.com/teranos/webns/vocab"

// Attribute type bits used by vocab/data/html5.toml.
const (
	TypeString vocab.AttrType = 1 << iota
	TypeBoolean
	TypeNumber
	TypeURL
	TypeEnumerated
	TypeSpaceSeparated
	TypeCommaSeparated
	TypeScript
	TypeIDRef
	TypeCSS
)

// Table returns the HTML5 symbol table.
func Table() *vocab.SymbolTable {
	return table
}

// AttributeByName resolves an HTML5 attribute name, ignoring ASCII case.
func AttributeByName(name string) (vocab.Symbol, bool) {
	return table.AttributeByName(name)
}

// AttributeByProperty resolves an exact HTML5 property name.
func AttributeByProperty(property string) (vocab.Symbol, bool) {
	return table.AttributeByProperty(property)
}

// ElementByName resolves an HTML5 tag name, ignoring ASCII case.
func ElementByName(name string) (vocab.Element, bool) {
	return table.ElementByName(name)
}

// IsBoolean reports whether the attribute is a boolean attribute, whose
// presence alone means true.
func IsBoolean(sym vocab.Symbol) bool {
	return sym.Namespace() == vocab.HTML5 && sym.Type()&TypeBoolean != 0
}

// IsEventHandler reports whether the attribute holds script, like onclick.
func IsEventHandler(sym vocab.Symbol) bool {
	return sym.Namespace() == vocab.HTML5 && sym.Type()&TypeScript != 0
}
