// Package phf implements minimal perfect hash maps over fixed key sets.
//
// A Map is built once, by Build, for exactly N known keys and maps each of
// them to a distinct slot in [0, N). Probing is O(1) with no collision chains.
// A key outside the known set still lands on some slot, so Index never tells
// a caller that a key is absent: the caller must compare the probed key
// against the record the returned value identifies.
//
// The construction is hash-and-displace (CHD): keys are grouped into buckets
// by one hash, and each bucket is assigned a displacement pair that scatters
// its keys into free slots using two further hashes.
package phf

// FNV-1a 64-bit parameters.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// HashFunc hashes a key under a seed. Both sides of a map (Build and the
// caller of Index) must use the same function.
type HashFunc func(seed uint64, key string) uint64

// Hashes are the three 32-bit values derived from one key hash: G selects the
// bucket, F1 and F2 are scaled by the bucket's displacement.
type Hashes struct {
	G  uint32
	F1 uint32
	F2 uint32
}

// Hash returns the seeded FNV-1a 64-bit hash of key, byte for byte.
func Hash[T ~string | ~[]byte](seed uint64, key T) uint64 {
	h := uint64(offset64) ^ seed
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return h
}

// HashString is Hash specialised to strings, usable as a HashFunc.
func HashString(seed uint64, key string) uint64 {
	return Hash(seed, key)
}

// Split derives the bucket and displacement hashes from a 64-bit key hash.
func Split(h uint64) Hashes {
	h = fmix64(h)
	h2 := fmix64(h ^ 0x9e3779b97f4a7c15)
	return Hashes{
		G:  uint32(h >> 32),
		F1: uint32(h),
		F2: uint32(h2),
	}
}

// fmix64 is the murmur3 finalizer.
func fmix64(h uint64) uint64 {
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	h *= 0xc4ceb9fe1a85ec53
	h ^= h >> 33
	return h
}

func displace(f1, f2, d1, d2 uint32) uint32 {
	return d2 + f1*d1 + f2
}

// Map is an immutable minimal perfect hash map from a key hash to a uint32
// value. The zero Map is empty.
//
// Disps holds one packed displacement pair (d1<<16 | d2) per bucket. Values
// holds exactly one value per known key.
type Map struct {
	Seed   uint64
	Disps  []uint32
	Values []uint32
}

// Len returns the number of keys the map was built for.
func (m *Map) Len() int {
	return len(m.Values)
}

// Index returns the value in the slot that a key with hash h maps to. h must
// be computed with m.Seed. The result is only meaningful for known keys; ok is
// false only when the map is empty.
func (m *Map) Index(h uint64) (value uint32, ok bool) {
	if len(m.Values) == 0 || len(m.Disps) == 0 {
		return 0, false
	}
	hs := Split(h)
	d := m.Disps[hs.G%uint32(len(m.Disps))]
	slot := displace(hs.F1, hs.F2, d>>16, d&0xffff) % uint32(len(m.Values))
	return m.Values[slot], true
}
