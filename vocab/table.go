package vocab

import (
	"github.com/teranos/webns/errors"
	"github.com/teranos/webns/foldcase"
	"github.com/teranos/webns/phf"
)

// SymbolTable is the immutable set of definitions for one namespace.
//
// Every value stored in the three maps is a valid index into attrs or
// elements, and ids are positions in the source definition lists. Nothing
// reachable from a SymbolTable is modified after construction, which is what
// lets lookups read it concurrently without synchronization.
type SymbolTable struct {
	ns           Namespace
	attrs        []AttrDef
	elements     []ElementDef
	attrNames    phf.Map
	attrProps    phf.Map
	elementNames phf.Map
}

// Maps are the perfect hash indexes of a SymbolTable.
type Maps struct {
	// AttrNames is keyed by folded attribute name.
	AttrNames phf.Map
	// AttrProps is keyed by exact property.
	AttrProps phf.Map
	// ElementNames is keyed by folded element name.
	ElementNames phf.Map
}

// HashFold is the hash used for name indexes.
func HashFold(seed uint64, key string) uint64 {
	return foldcase.Hash(seed, key)
}

// BuildMaps builds the perfect hash indexes for attrs and elems, in id order.
// The compiled tables are built by webnsgen with the same hashes and seeds, so
// BuildMaps reproduces them given the seed they record.
func BuildMaps(attrs []AttrDef, elems []ElementDef, seed uint64) (Maps, error) {
	names := make([]string, len(attrs))
	props := make([]string, len(attrs))
	for i, a := range attrs {
		names[i] = a.Name
		props[i] = a.Property
	}
	tags := make([]string, len(elems))
	for i, e := range elems {
		tags[i] = e.Name
	}

	var maps Maps
	var err error
	if maps.AttrNames, _, err = phf.Build(names, HashFold, seed); err != nil {
		return Maps{}, errors.Wrap(err, "attribute name index")
	}
	if maps.AttrProps, _, err = phf.Build(props, phf.HashString, seed); err != nil {
		return Maps{}, errors.Wrap(err, "attribute property index")
	}
	if maps.ElementNames, _, err = phf.Build(tags, HashFold, seed); err != nil {
		return Maps{}, errors.Wrap(err, "element name index")
	}
	return maps, nil
}

// NewSymbolTable builds a table from definition lists. Ids are positions in
// attrs and elems. It fails if two attribute or element names are equal under
// ASCII case folding or two properties are equal.
//
// Generated namespaces do not go through here; their tables are compiled in.
func NewSymbolTable(ns Namespace, attrs []AttrDef, elems []ElementDef, seed uint64) (*SymbolTable, error) {
	if err := checkUnique(attrs, elems); err != nil {
		return nil, err
	}
	maps, err := BuildMaps(attrs, elems, seed)
	if err != nil {
		return nil, err
	}

	t := &SymbolTable{
		ns:           ns,
		attrs:        make([]AttrDef, len(attrs)),
		elements:     make([]ElementDef, len(elems)),
		attrNames:    maps.AttrNames,
		attrProps:    maps.AttrProps,
		elementNames: maps.ElementNames,
	}
	copy(t.attrs, attrs)
	copy(t.elements, elems)
	for i := range t.attrs {
		t.attrs[i].Namespace = ns
	}
	for i := range t.elements {
		t.elements[i].Namespace = ns
	}
	return t, nil
}

func checkUnique(attrs []AttrDef, elems []ElementDef) error {
	names := make(map[string]int, len(attrs))
	props := make(map[string]int, len(attrs))
	for i, a := range attrs {
		folded := foldcase.Fold(a.Name)
		if j, dup := names[folded]; dup {
			return errors.Wrapf(errors.ErrDuplicateName, "attribute %q (#%d) and %q (#%d)", attrs[j].Name, j, a.Name, i)
		}
		names[folded] = i
		if j, dup := props[a.Property]; dup {
			return errors.Wrapf(errors.ErrDuplicateProperty, "property %q of %q (#%d) and %q (#%d)", a.Property, attrs[j].Name, j, a.Name, i)
		}
		props[a.Property] = i
	}
	tags := make(map[string]int, len(elems))
	for i, e := range elems {
		folded := foldcase.Fold(e.Name)
		if j, dup := tags[folded]; dup {
			return errors.Wrapf(errors.ErrDuplicateName, "element %q (#%d) and %q (#%d)", elems[j].Name, j, e.Name, i)
		}
		tags[folded] = i
	}
	return nil
}

// Namespace returns the namespace the table belongs to.
func (t *SymbolTable) Namespace() Namespace {
	return t.ns
}

// NumAttributes returns the number of attribute definitions.
func (t *SymbolTable) NumAttributes() int {
	return len(t.attrs)
}

// NumElements returns the number of element definitions.
func (t *SymbolTable) NumElements() int {
	return len(t.elements)
}

// Symbol returns the attribute with the given id. It panics if id is out of
// range; generated code is the only caller with hard-coded ids.
func (t *SymbolTable) Symbol(id uint32) Symbol {
	if int(id) >= len(t.attrs) {
		panic(errors.AssertionFailedf("attribute id %d out of range for %s (%d attributes)", id, t.ns, len(t.attrs)))
	}
	return Symbol{table: t, id: id}
}

// Element returns the element with the given id. It panics if id is out of
// range.
func (t *SymbolTable) Element(id uint32) Element {
	if int(id) >= len(t.elements) {
		panic(errors.AssertionFailedf("element id %d out of range for %s (%d elements)", id, t.ns, len(t.elements)))
	}
	return Element{table: t, id: id}
}

// Symbols returns every attribute in id order.
func (t *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, len(t.attrs))
	for i := range out {
		out[i] = Symbol{table: t, id: uint32(i)}
	}
	return out
}

// Elements returns every element in id order.
func (t *SymbolTable) Elements() []Element {
	out := make([]Element, len(t.elements))
	for i := range out {
		out[i] = Element{table: t, id: uint32(i)}
	}
	return out
}

// AttributeByName resolves an attribute name, ignoring ASCII case.
func (t *SymbolTable) AttributeByName(name string) (Symbol, bool) {
	return attributeByName(t, name)
}

// AttributeByNameBytes is AttributeByName for a byte slice. name is only read
// during the call and is not converted to a string.
func (t *SymbolTable) AttributeByNameBytes(name []byte) (Symbol, bool) {
	return attributeByName(t, name)
}

// AttributeByProperty resolves an exact property name.
func (t *SymbolTable) AttributeByProperty(property string) (Symbol, bool) {
	if t == nil {
		return Symbol{}, false
	}
	id, ok := t.attrProps.Index(phf.Hash(t.attrProps.Seed, property))
	if !ok || t.attrs[id].Property != property {
		return Symbol{}, false
	}
	return Symbol{table: t, id: id}, true
}

// ElementByName resolves an element name, ignoring ASCII case.
func (t *SymbolTable) ElementByName(name string) (Element, bool) {
	return elementByName(t, name)
}

// ElementByNameBytes is ElementByName for a byte slice.
func (t *SymbolTable) ElementByNameBytes(name []byte) (Element, bool) {
	return elementByName(t, name)
}

// The probes below hash and compare the caller's key in place. The maps only
// yield an id; the key is checked against the stored definition because a
// perfect hash sends unknown keys to arbitrary slots.

func attributeByName[T ~string | ~[]byte](t *SymbolTable, name T) (Symbol, bool) {
	if t == nil {
		return Symbol{}, false
	}
	id, ok := t.attrNames.Index(foldcase.Hash(t.attrNames.Seed, name))
	if !ok || !foldcase.Equal(t.attrs[id].Name, name) {
		return Symbol{}, false
	}
	return Symbol{table: t, id: id}, true
}

func elementByName[T ~string | ~[]byte](t *SymbolTable, name T) (Element, bool) {
	if t == nil {
		return Element{}, false
	}
	id, ok := t.elementNames.Index(foldcase.Hash(t.elementNames.Seed, name))
	if !ok || !foldcase.Equal(t.elements[id].Name, name) {
		return Element{}, false
	}
	return Element{table: t, id: id}, true
}
