package foldcase

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"class", "class", true},
		{"class", "CLASS", true},
		{"accept-charset", "Accept-Charset", true},
		{"viewBox", "viewbox", true},
		{"xml:lang", "XML:LANG", true},
		{"", "", true},
		{"class", "classx", false},
		{"class", "clas", false},
		{"a-b", "a_b", false},
		// '@' (0x40) and '`' (0x60) differ by 0x20 but are not letters
		{"@", "`", false},
		{"[", "{", false},
		// Non-ASCII bytes compare exactly, even where Unicode folding would match
		{"é", "É", false},
		{"k", "K", false},
		{"straße", "STRAßE", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.a, []byte(tt.b)))
			assert.Equal(t, tt.want, Key(tt.a).Equal(Key(tt.b)))
			assert.Equal(t, tt.want, Key(tt.a).Compare(Key(tt.b)) == 0)
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	names := []string{"class", "accept-charset", "viewBox", "xml:lang", "data-x", "ARIA-LABEL", "é"}
	for _, seed := range []uint64{0, 1, 0xdeadbeef} {
		for _, n := range names {
			variants := []string{n, strings.ToUpper(n), strings.ToLower(n), mixCase(n)}
			for _, v := range variants {
				if !Equal(n, v) {
					continue
				}
				assert.Equal(t, Hash(seed, n), Hash(seed, v), "seed %d: %q vs %q", seed, n, v)
				assert.Equal(t, Hash(seed, n), Hash(seed, []byte(v)))
				assert.Equal(t, Key(n).Hash(seed), Key(v).Hash(seed))
			}
		}
	}
}

func TestHashSeparatesNonASCIICase(t *testing.T) {
	assert.NotEqual(t, Hash(0, "é"), Hash(0, "É"))
}

func TestHashMatchesPlainFNVForLowercase(t *testing.T) {
	// FNV-1a 64 of "a" with a zero seed is a well-known vector.
	assert.Equal(t, uint64(0xaf63dc4c8601ec8c), Hash(0, "a"))
	assert.Equal(t, uint64(0xaf63dc4c8601ec8c), Hash(0, "A"))
	assert.Equal(t, uint64(0xcbf29ce484222325), Hash(0, ""))
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, Compare("Class", "cLASS"))
	assert.Equal(t, -1, Compare("abc", "ABD"))
	assert.Equal(t, 1, Compare("abd", "ABC"))
	assert.Equal(t, -1, Compare("ab", "ABC"))
	assert.Equal(t, 1, Compare("abc", "AB"))
	// 'Z' folds to 'z' which sorts after '_'
	assert.Equal(t, 1, Compare("Z", "_"))

	keys := []Key{"Title", "class", "ID", "accept", "Style"}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	assert.Equal(t, []Key{"accept", "class", "ID", "Style", "Title"}, keys)
}

func TestFold(t *testing.T) {
	assert.Equal(t, "accept-charset", Fold("Accept-Charset"))
	assert.Equal(t, "class", Fold("class"))
	assert.Equal(t, "class", Fold([]byte("CLASS")))
	assert.Equal(t, "éclair", Fold("éCLAIR"))
	assert.Equal(t, "É", Fold("É"))
	assert.Equal(t, "viewbox", Key("viewBox").Fold())
	assert.Equal(t, "viewBox", Key("viewBox").String())
}

func TestHasUpper(t *testing.T) {
	assert.True(t, HasUpper("viewBox"))
	assert.False(t, HasUpper("view-box"))
	assert.False(t, HasUpper("É"))
	assert.True(t, HasUpper([]byte("ID")))
}

func TestLower(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		want := b
		if b >= 'A' && b <= 'Z' {
			want = b + 32
		}
		assert.Equal(t, want, Lower(b), "byte %#x", c)
	}
}

func TestEqualDoesNotAllocate(t *testing.T) {
	q := []byte("ACCEPT-CHARSET")
	allocs := testing.AllocsPerRun(100, func() {
		_ = Equal("accept-charset", q)
		_ = Hash(7, q)
	})
	assert.Zero(t, allocs)
}

func mixCase(s string) string {
	b := []byte(s)
	for i := range b {
		if i%2 == 0 && b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 32
		}
	}
	return string(b)
}
