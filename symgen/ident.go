package symgen

import (
	"go/token"
	"strings"

	"github.com/teranos/webns/errors"
)

// ElementPrefix prefixes element identifiers so that an element and an
// attribute with the same name (e.g. "style") get distinct names.
const ElementPrefix = "TAG_"

// ConstIdent converts a markup name to the identifier of its named value:
// ASCII letters are uppercased, digits kept, and every run of other bytes
// becomes a single underscore ("accept-charset" -> "ACCEPT_CHARSET",
// "xlink:href" -> "XLINK_HREF").
func ConstIdent(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	sep := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			if !sep {
				sb.WriteByte('_')
				sep = true
			}
			continue
		}
		sb.WriteByte(c)
		sep = false
	}
	return sb.String()
}

// Ident is a named value to emit.
type Ident struct {
	Name    string // Go identifier
	Element bool
	ID      uint32
	Source  string // markup name it was derived from
}

// Idents computes the identifiers of every attribute and tag in ns and
// fails if two of them normalize to the same identifier or one is not an
// exported Go identifier.
func Idents(ns *Namespace) ([]Ident, error) {
	idents := make([]Ident, 0, len(ns.Attributes)+len(ns.Tags))
	for _, a := range ns.Attributes {
		idents = append(idents, Ident{Name: ConstIdent(a.Name), ID: a.ID, Source: a.Name})
	}
	for _, t := range ns.Tags {
		idents = append(idents, Ident{Name: ElementPrefix + ConstIdent(t.Name), Element: true, ID: t.ID, Source: t.Name})
	}

	seen := make(map[string]int, len(idents))
	for i, id := range idents {
		if !token.IsIdentifier(id.Name) || !token.IsExported(id.Name) {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrIdentifierCollision, "%s %s: %q does not yield an exported identifier (got %q)",
					ns.Name, id.kind(), id.Source, id.Name),
				"names must start with an ASCII letter")
		}
		if j, dup := seen[id.Name]; dup {
			prev := idents[j]
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrIdentifierCollision, "%s %s %q (#%d) and %s %q (#%d) both become %s",
					ns.Name, prev.kind(), prev.Source, prev.ID, id.kind(), id.Source, id.ID, id.Name),
				"identifiers uppercase the name and replace other characters with '_'; rename one of the entries")
		}
		seen[id.Name] = i
	}
	return idents, nil
}

func (id Ident) kind() string {
	if id.Element {
		return "tag"
	}
	return "attribute"
}
