package vocab

import (
	"strconv"

	"github.com/teranos/webns/foldcase"
)

// Namespace is one markup dialect. The set of namespaces is closed and
// generated; the zero Namespace is invalid and owns no table.
type Namespace uint8

// Table returns the namespace's symbol table, or nil for an invalid namespace.
func (ns Namespace) Table() *SymbolTable {
	return namespaceTable(ns)
}

// Valid reports whether ns is one of the generated namespaces.
func (ns Namespace) Valid() bool {
	return namespaceTable(ns) != nil
}

func (ns Namespace) String() string {
	if name := namespaceName(ns); name != "" {
		return name
	}
	return "Namespace(" + strconv.Itoa(int(ns)) + ")"
}

// ResolveElementByName resolves an element name in this namespace.
func (ns Namespace) ResolveElementByName(name string) (Element, bool) {
	return namespaceTable(ns).ElementByName(name)
}

// ResolveAttributeByName resolves an attribute name in this namespace,
// ignoring ASCII case.
func (ns Namespace) ResolveAttributeByName(name string) (Symbol, bool) {
	return namespaceTable(ns).AttributeByName(name)
}

// ResolveAttributeByProperty resolves an exact property name in this
// namespace.
func (ns Namespace) ResolveAttributeByProperty(property string) (Symbol, bool) {
	return namespaceTable(ns).AttributeByProperty(property)
}

// Namespaces returns all generated namespaces in declaration order.
func Namespaces() []Namespace {
	out := make([]Namespace, len(allNamespaces))
	copy(out, allNamespaces[:])
	return out
}

// NamespaceByName returns the namespace with the given name, ignoring ASCII
// case.
func NamespaceByName(name string) (Namespace, bool) {
	for _, ns := range allNamespaces {
		if foldcase.Equal(namespaceName(ns), name) {
			return ns, true
		}
	}
	return 0, false
}
