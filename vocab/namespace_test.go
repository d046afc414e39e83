package vocab

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapCase flips the case of every ASCII letter.
func swapCase(s string) string {
	b := []byte(s)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 32
		case c >= 'A' && c <= 'Z':
			b[i] = c + 32
		}
	}
	return string(b)
}

func TestNamespaces(t *testing.T) {
	assert.Equal(t, []Namespace{HTML5, SVG}, Namespaces())
	assert.Equal(t, Namespace(1), HTML5)
	assert.Equal(t, "HTML5", HTML5.String())
	assert.Equal(t, "SVG", SVG.String())
	assert.Equal(t, "Namespace(0)", Namespace(0).String())

	for _, ns := range Namespaces() {
		assert.True(t, ns.Valid())
		require.NotNil(t, ns.Table())
		assert.Equal(t, ns, ns.Table().Namespace())
	}
	assert.False(t, Namespace(0).Valid())
	assert.Nil(t, Namespace(99).Table())

	ns, ok := NamespaceByName("svg")
	require.True(t, ok)
	assert.Equal(t, SVG, ns)
	_, ok = NamespaceByName("MathML")
	assert.False(t, ok)
}

func TestNamespaces_ReturnsCopy(t *testing.T) {
	all := Namespaces()
	all[0] = 0
	assert.Equal(t, HTML5, Namespaces()[0])
}

func TestGeneratedTables_Completeness(t *testing.T) {
	for _, ns := range Namespaces() {
		t.Run(ns.String(), func(t *testing.T) {
			table := ns.Table()
			require.NotZero(t, table.NumAttributes())
			require.NotZero(t, table.NumElements())

			for i, sym := range table.Symbols() {
				assert.Equal(t, uint32(i), sym.ID())
				def := sym.Definition()
				assert.Equal(t, ns, def.Namespace)

				for _, spelling := range []string{def.Name, strings.ToUpper(def.Name), swapCase(def.Name)} {
					got, ok := ns.ResolveAttributeByName(spelling)
					require.True(t, ok, "%s %q", ns, spelling)
					assert.Equal(t, sym, got)

					got, ok = table.AttributeByNameBytes([]byte(spelling))
					require.True(t, ok)
					assert.Equal(t, sym, got)
				}

				got, ok := ns.ResolveAttributeByProperty(def.Property)
				require.True(t, ok, "%s property %q", ns, def.Property)
				assert.Equal(t, sym, got)
			}

			for i, el := range table.Elements() {
				assert.Equal(t, uint32(i), el.ID())
				for _, spelling := range []string{el.Name(), strings.ToUpper(el.Name()), swapCase(el.Name())} {
					got, ok := ns.ResolveElementByName(spelling)
					require.True(t, ok, "%s <%s>", ns, spelling)
					assert.Equal(t, el, got)
				}
			}
		})
	}
}

func TestGeneratedTables_RejectsUnknown(t *testing.T) {
	unknown := []string{
		"",
		"classx",
		"clas",
		"class ",
		"CLASSNAME",
		"clasś",
		"ｃlass", // fullwidth c
		"data-foo",
	}
	for _, ns := range Namespaces() {
		for _, name := range unknown {
			_, ok := ns.ResolveAttributeByName(name)
			assert.False(t, ok, "%s %q", ns, name)
			_, ok = ns.ResolveElementByName(name)
			assert.False(t, ok, "%s <%q>", ns, name)
		}
	}
}

func TestGeneratedTables_PropertiesAreExact(t *testing.T) {
	sym, ok := HTML5.ResolveAttributeByProperty("className")
	require.True(t, ok)
	assert.Equal(t, "class", sym.Name())

	for _, p := range []string{"classname", "CLASSNAME", "ClassName", "class"} {
		_, ok := HTML5.ResolveAttributeByProperty(p)
		assert.False(t, ok, p)
	}
}

func TestGeneratedTables_HTML5(t *testing.T) {
	tests := []struct {
		name     string
		property string
	}{
		{"class", "className"},
		{"for", "htmlFor"},
		{"accept-charset", "acceptCharset"},
		{"http-equiv", "httpEquiv"},
		{"tabindex", "tabIndex"},
		{"readonly", "readOnly"},
	}
	for _, tt := range tests {
		sym, ok := HTML5.ResolveAttributeByName(tt.name)
		require.True(t, ok, tt.name)
		assert.Equal(t, tt.property, sym.Property())
	}

	for tag, void := range map[string]bool{"br": true, "IMG": true, "input": true, "div": false, "Template": false} {
		el, ok := HTML5.ResolveElementByName(tag)
		require.True(t, ok, tag)
		assert.Equal(t, void, el.IsVoid(), tag)
	}
}

func TestSymbolIdentity_AcrossNamespaces(t *testing.T) {
	htmlStyle, ok := HTML5.ResolveAttributeByName("style")
	require.True(t, ok)
	svgStyle, ok := SVG.ResolveAttributeByName("style")
	require.True(t, ok)

	assert.Equal(t, htmlStyle.Name(), svgStyle.Name())
	assert.NotEqual(t, htmlStyle, svgStyle)
	assert.Equal(t, "HTML5:style", htmlStyle.String())
	assert.Equal(t, "SVG:style", svgStyle.String())

	// Symbols work as map keys by identity.
	seen := map[Symbol]string{htmlStyle: "html", svgStyle: "svg"}
	assert.Len(t, seen, 2)

	// SVG names differ in case from HTML conventions but fold the same way.
	viewBox, ok := SVG.ResolveAttributeByName("VIEWBOX")
	require.True(t, ok)
	assert.Equal(t, "viewBox", viewBox.Name())
	_, ok = HTML5.ResolveAttributeByName("viewbox")
	assert.False(t, ok)
}

func TestInvalidNamespace_ResolvesNothing(t *testing.T) {
	_, ok := Namespace(0).ResolveAttributeByName("class")
	assert.False(t, ok)
	_, ok = Namespace(77).ResolveElementByName("div")
	assert.False(t, ok)
	_, ok = Namespace(77).ResolveAttributeByProperty("className")
	assert.False(t, ok)
}

func TestGeneratedTables_ConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				for _, ns := range Namespaces() {
					for _, sym := range ns.Table().Symbols() {
						got, ok := ns.ResolveAttributeByName(sym.Name())
						if !ok || got != sym {
							t.Errorf("%s: lookup of %q failed", ns, sym.Name())
							return
						}
					}
				}
			}
		}()
	}
	wg.Wait()
}

func TestGeneratedLookups_DoNotAllocate(t *testing.T) {
	key := []byte("Accept-Charset")
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = HTML5.ResolveAttributeByName("CLASS")
		_, _ = HTML5.ResolveAttributeByProperty("htmlFor")
		_, _ = HTML5.Table().AttributeByNameBytes(key)
		_, _ = SVG.ResolveElementByName("clippath")
	})
	assert.Zero(t, allocs)
}
