package vocab

// Symbol identifies one attribute of one namespace's table.
//
// Symbols are small values compared with ==: two Symbols are equal exactly
// when they refer to the same table and the same id. No string comparison is
// involved, so the "style" attribute of HTML5 and the "style" attribute of SVG
// are different Symbols. The zero Symbol refers to nothing.
type Symbol struct {
	table *SymbolTable
	id    uint32
}

// IsZero reports whether s is the zero Symbol.
func (s Symbol) IsZero() bool {
	return s.table == nil
}

// ID returns the attribute's position in its namespace's definition list.
func (s Symbol) ID() uint32 {
	return s.id
}

// Definition returns the attribute's static definition. The zero Symbol
// returns the zero AttrDef.
func (s Symbol) Definition() AttrDef {
	if s.table == nil {
		return AttrDef{}
	}
	return s.table.attrs[s.id]
}

// Namespace returns the namespace the attribute belongs to.
func (s Symbol) Namespace() Namespace {
	if s.table == nil {
		return 0
	}
	return s.table.ns
}

// Name returns the markup spelling of the attribute.
func (s Symbol) Name() string {
	return s.Definition().Name
}

// Property returns the property the attribute maps to.
func (s Symbol) Property() string {
	return s.Definition().Property
}

// Type returns the attribute's type flags.
func (s Symbol) Type() AttrType {
	return s.Definition().Type
}

func (s Symbol) String() string {
	if s.table == nil {
		return "<nil>"
	}
	return s.table.ns.String() + ":" + s.Name()
}

// Element identifies one element of one namespace's table. Like Symbol it is
// compared by identity.
type Element struct {
	table *SymbolTable
	id    uint32
}

// IsZero reports whether e is the zero Element.
func (e Element) IsZero() bool {
	return e.table == nil
}

// ID returns the element's position in its namespace's tag list.
func (e Element) ID() uint32 {
	return e.id
}

// Definition returns the element's static definition.
func (e Element) Definition() ElementDef {
	if e.table == nil {
		return ElementDef{}
	}
	return e.table.elements[e.id]
}

// Namespace returns the namespace the element belongs to.
func (e Element) Namespace() Namespace {
	if e.table == nil {
		return 0
	}
	return e.table.ns
}

// Name returns the tag name.
func (e Element) Name() string {
	return e.Definition().Name
}

// IsVoid reports whether the element is a void element.
func (e Element) IsVoid() bool {
	return e.Definition().Void
}

func (e Element) String() string {
	if e.table == nil {
		return "<nil>"
	}
	return e.table.ns.String() + ":<" + e.Name() + ">"
}
