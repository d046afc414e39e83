package phf

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/webns/errors"
)

// =============================================================================
// Test helpers
// =============================================================================

func numberedKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	return keys
}

// =============================================================================
// Build tests
// =============================================================================

func TestBuildMapsEveryKeyToItsIndex(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5, 6, 31, 150, 1000} {
		t.Run(fmt.Sprintf("%d keys", n), func(t *testing.T) {
			keys := numberedKeys(n)
			m, stats, err := Build(keys, HashString, 0x5eed)
			require.NoError(t, err)

			assert.Equal(t, n, m.Len(), "map must be minimal")
			assert.Equal(t, (n+Lambda-1)/Lambda, len(m.Disps))
			assert.Equal(t, n, stats.Keys)
			assert.GreaterOrEqual(t, stats.Attempts, 1)
			assert.Equal(t, m.Seed, stats.Seed)

			seen := make(map[uint32]bool, n)
			for i, k := range keys {
				v, ok := m.Index(Hash(m.Seed, k))
				require.True(t, ok)
				assert.Equal(t, uint32(i), v, "key %q", k)
				seen[v] = true
			}
			assert.Len(t, seen, n, "values must be a permutation of ids")
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	keys := []string{"class", "id", "style", "title", "lang", "dir", "hidden", "tabindex"}
	a, _, err := Build(keys, HashString, 42)
	require.NoError(t, err)
	b, _, err := Build(keys, HashString, 42)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildEmpty(t *testing.T) {
	m, stats, err := Build(nil, HashString, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, uint64(9), m.Seed)
	assert.Equal(t, 0, stats.Keys)

	_, ok := m.Index(Hash(m.Seed, "anything"))
	assert.False(t, ok)

	var zero Map
	_, ok = zero.Index(0)
	assert.False(t, ok)
}

func TestBuildFailsOnDuplicateKeys(t *testing.T) {
	_, _, err := Build([]string{"class", "id", "class"}, HashString, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPerfectHash))
	assert.NotEmpty(t, errors.GetAllHints(err))
	assert.Contains(t, err.Error(), `keys "class", "class" hash identically`)
	assert.NotContains(t, err.Error(), `"id"`)
}

func TestBuildNamesEveryInseparableGroup(t *testing.T) {
	byLength := func(seed uint64, key string) uint64 { return seed + uint64(len(key)) }
	_, _, err := Build([]string{"a", "bb", "c", "dd", "eee"}, byLength, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `keys "a", "c" hash identically`)
	assert.Equal(t, []string{`also identical: "bb", "dd"`}, errors.GetAllDetails(err))
}

func TestBuildFailsWhenHashCannotSeparateKeys(t *testing.T) {
	constant := func(seed uint64, key string) uint64 { return seed }
	_, _, err := Build([]string{"a", "b"}, constant, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPerfectHash))
	assert.Contains(t, err.Error(), "2 keys")
	assert.Contains(t, err.Error(), `keys "a", "b" hash identically`)
}

func TestBuildRejectsTooManyKeys(t *testing.T) {
	keys := make([]string, MaxKeys+1)
	_, _, err := Build(keys, HashString, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrPerfectHash))
}

// =============================================================================
// Lookup tests
// =============================================================================

func TestIndexOfUnknownKeyStillReturnsASlot(t *testing.T) {
	keys := []string{"class", "id", "style"}
	m, _, err := Build(keys, HashString, 3)
	require.NoError(t, err)

	// An unknown key lands somewhere; callers reject it by comparing keys.
	v, ok := m.Index(Hash(m.Seed, "classx"))
	require.True(t, ok)
	assert.Less(t, v, uint32(len(keys)))
	assert.NotEqual(t, "classx", keys[v])
}

func TestHash(t *testing.T) {
	assert.Equal(t, uint64(0xaf63dc4c8601ec8c), Hash(0, "a"))
	assert.NotEqual(t, Hash(0, "a"), Hash(0, "A"))
	assert.Equal(t, Hash(11, "class"), Hash(11, []byte("class")))
	assert.NotEqual(t, Hash(1, "class"), Hash(2, "class"))
	assert.Equal(t, Hash(5, "x"), HashString(5, "x"))
}

func TestSplitSpreadsBits(t *testing.T) {
	a := Split(Hash(0, "class"))
	b := Split(Hash(0, "clasS"))
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.F1, a.F2)
}

func TestNextSeed(t *testing.T) {
	s := uint64(0)
	seen := map[uint64]bool{}
	for i := 0; i < MaxAttempts; i++ {
		assert.False(t, seen[s])
		seen[s] = true
		s = NextSeed(s)
	}
}

func TestIndexDoesNotAllocate(t *testing.T) {
	m, _, err := Build(numberedKeys(64), HashString, 7)
	require.NoError(t, err)
	q := []byte("key-17")
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = m.Index(Hash(m.Seed, q))
	})
	assert.Zero(t, allocs)
}
