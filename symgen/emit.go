package symgen

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/teranos/webns/phf"
)

const generatedBy = "webnsgen"

// phfImport is the import path generated tables use for phf.Map.
var phfImport = reflect.TypeOf(phf.Map{}).PkgPath()

func writeHeader(sb *strings.Builder, source, pkg string) {
	if source == "" {
		fmt.Fprintf(sb, "// Code generated by %s. DO NOT EDIT.\n\n", generatedBy)
	} else {
		fmt.Fprintf(sb, "// Code generated by %s from %s. DO NOT EDIT.\n\n", generatedBy, source)
	}
	fmt.Fprintf(sb, "package %s\n", pkg)
}

// EmitNamespaces writes the Namespace enum of package vocab. Discriminants
// start at 1 in declaration order; the zero Namespace stays invalid.
func EmitNamespaces(v *Vocabulary, vocabPkg string) string {
	var sb strings.Builder
	writeHeader(&sb, "", vocabPkg)

	if len(v.Namespaces) > 0 {
		sb.WriteString("\nconst (\n")
		for i, ns := range v.Namespaces {
			fmt.Fprintf(&sb, "\t// %s is the namespace defined by %s.\n", ns.Name, ns.Source)
			if i == 0 {
				fmt.Fprintf(&sb, "\t%s Namespace = 1 + iota\n", ns.Name)
			} else {
				fmt.Fprintf(&sb, "\t%s\n", ns.Name)
			}
		}
		sb.WriteString(")\n")
	}

	names := make([]string, len(v.Namespaces))
	for i, ns := range v.Namespaces {
		names[i] = ns.Name
	}
	fmt.Fprintf(&sb, "\nvar allNamespaces = [...]Namespace{%s}\n", strings.Join(names, ", "))

	sb.WriteString("\nfunc namespaceName(ns Namespace) string {\n")
	if len(v.Namespaces) > 0 {
		sb.WriteString("\tswitch ns {\n")
		for _, ns := range v.Namespaces {
			fmt.Fprintf(&sb, "\tcase %s:\n\t\treturn %s\n", ns.Name, strconv.Quote(ns.Name))
		}
		sb.WriteString("\t}\n")
	}
	sb.WriteString("\treturn \"\"\n}\n")

	sb.WriteString("\nfunc namespaceTable(ns Namespace) *SymbolTable {\n")
	if len(v.Namespaces) > 0 {
		sb.WriteString("\tswitch ns {\n")
		for _, ns := range v.Namespaces {
			fmt.Fprintf(&sb, "\tcase %s:\n\t\treturn &%sTable\n", ns.Name, ns.Package)
		}
		sb.WriteString("\t}\n")
	}
	sb.WriteString("\treturn nil\n}\n")

	return sb.String()
}

// EmitTables writes the symbol arrays and perfect hash tables of ns into
// package vocab.
func EmitTables(ns *Namespace, t *Tables, vocabPkg string) string {
	var sb strings.Builder
	writeHeader(&sb, ns.Source, vocabPkg)
	fmt.Fprintf(&sb, "\nimport %s\n", strconv.Quote(phfImport))

	p := ns.Package

	fmt.Fprintf(&sb, "\n// %sAttrs holds the %s attribute definitions in id order.\n", p, ns.Name)
	fmt.Fprintf(&sb, "var %sAttrs = [...]AttrDef{", p)
	if len(ns.Attributes) > 0 {
		sb.WriteString("\n")
		for _, a := range ns.Attributes {
			fmt.Fprintf(&sb, "\t{%s, %s, %s, %#x},\n", ns.Name, strconv.Quote(a.Name), strconv.Quote(a.Property), a.Type)
		}
	}
	sb.WriteString("}\n")

	fmt.Fprintf(&sb, "\n// %sElements holds the %s element definitions in id order.\n", p, ns.Name)
	fmt.Fprintf(&sb, "var %sElements = [...]ElementDef{", p)
	if len(ns.Tags) > 0 {
		sb.WriteString("\n")
		for _, tag := range ns.Tags {
			fmt.Fprintf(&sb, "\t{%s, %s, %t},\n", ns.Name, strconv.Quote(tag.Name), tag.Void)
		}
	}
	sb.WriteString("}\n")

	writeMap(&sb, p+"AttrName", &t.AttrNames)
	writeMap(&sb, p+"AttrProp", &t.AttrProps)
	writeMap(&sb, p+"ElementName", &t.ElementNames)

	fmt.Fprintf(&sb, "\nvar %sTable = SymbolTable{\n", p)
	fmt.Fprintf(&sb, "\tns:           %s,\n", ns.Name)
	fmt.Fprintf(&sb, "\tattrs:        %sAttrs[:],\n", p)
	fmt.Fprintf(&sb, "\telements:     %sElements[:],\n", p)
	fmt.Fprintf(&sb, "\tattrNames:    %s,\n", mapLiteral(p+"AttrName", &t.AttrNames))
	fmt.Fprintf(&sb, "\tattrProps:    %s,\n", mapLiteral(p+"AttrProp", &t.AttrProps))
	fmt.Fprintf(&sb, "\telementNames: %s,\n", mapLiteral(p+"ElementName", &t.ElementNames))
	sb.WriteString("}\n")

	return sb.String()
}

// tableIdents lists the package-level identifiers EmitTables declares in
// package vocab for a namespace package.
func tableIdents(pkg string) []string {
	idents := []string{pkg + "Attrs", pkg + "Elements", pkg + "Table"}
	for _, m := range []string{"AttrName", "AttrProp", "ElementName"} {
		idents = append(idents, pkg+m+"Disps", pkg+m+"Values")
	}
	return idents
}

func writeMap(sb *strings.Builder, name string, m *phf.Map) {
	fmt.Fprintf(sb, "\nvar %sDisps = [...]uint32{", name)
	writeNumbers(sb, m.Disps, "0x%08x")
	fmt.Fprintf(sb, "\nvar %sValues = [...]uint32{", name)
	writeNumbers(sb, m.Values, "%d")
}

const numbersPerLine = 8

func writeNumbers(sb *strings.Builder, nums []uint32, format string) {
	for i, n := range nums {
		switch {
		case i%numbersPerLine == 0:
			sb.WriteString("\n\t")
		default:
			sb.WriteString(" ")
		}
		fmt.Fprintf(sb, format+",", n)
	}
	if len(nums) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString("}\n")
}

func mapLiteral(name string, m *phf.Map) string {
	return fmt.Sprintf("phf.Map{Seed: %#x, Disps: %sDisps[:], Values: %sValues[:]}", m.Seed, name, name)
}

// EmitSymbols writes the named values of ns into its own package.
func EmitSymbols(ns *Namespace, idents []Ident, vocabImport string) string {
	var sb strings.Builder
	writeHeader(&sb, ns.Source, ns.Package)
	fmt.Fprintf(&sb, "\nimport %s\n", strconv.Quote(vocabImport))

	vocabPkg := vocabImport[strings.LastIndex(vocabImport, "/")+1:]
	fmt.Fprintf(&sb, "\n// table is the %s symbol table.\n", ns.Name)
	fmt.Fprintf(&sb, "var table = %s.%s.Table()\n", vocabPkg, ns.Name)

	for _, id := range idents {
		if id.Element {
			fmt.Fprintf(&sb, "\n// %s is the %s <%s> element.\n", id.Name, ns.Name, id.Source)
			fmt.Fprintf(&sb, "var %s = table.Element(%d)\n", id.Name, id.ID)
		} else {
			fmt.Fprintf(&sb, "\n// %s is the %s %s attribute.\n", id.Name, ns.Name, strconv.Quote(id.Source))
			fmt.Fprintf(&sb, "var %s = table.Symbol(%d)\n", id.Name, id.ID)
		}
	}
	return sb.String()
}
