package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/webns/vocab"
	"github.com/teranos/webns/vocab/html5"
)

func TestNamedSymbols(t *testing.T) {
	assert.Equal(t, "xlink:href", XLINK_HREF.Name())
	assert.Equal(t, "xlinkHref", XLINK_HREF.Property())
	assert.Equal(t, "viewBox", VIEWBOX.Name())
	assert.Equal(t, "strokeWidth", STROKE_WIDTH.Property())
	assert.Equal(t, vocab.SVG, X1.Namespace())

	sym, ok := AttributeByName("XLINK:HREF")
	require.True(t, ok)
	assert.Equal(t, XLINK_HREF, sym)

	sym, ok = AttributeByProperty("clipPath")
	require.True(t, ok)
	assert.Equal(t, CLIP_PATH, sym)
}

func TestNamedElements(t *testing.T) {
	el, ok := ElementByName("clippath")
	require.True(t, ok)
	assert.Equal(t, TAG_CLIPPATH, el)
	assert.Equal(t, "clipPath", el.Name())
	assert.False(t, TAG_PATH.IsVoid())
}

func TestIdentityAcrossNamespaces(t *testing.T) {
	assert.NotEqual(t, html5.STYLE, STYLE)
	assert.NotEqual(t, html5.CLASS, CLASS)
	assert.Equal(t, html5.CLASS.Property(), CLASS.Property())
	assert.NotEqual(t, html5.TAG_A, TAG_A)

	assert.Same(t, vocab.SVG.Table(), Table())
}
