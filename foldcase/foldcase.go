// Package foldcase implements ASCII case-insensitive string keys.
//
// Markup attribute and tag names match "ASCII case-insensitively": only the
// bytes 'A'..'Z' are treated as their lowercase counterparts. Every other byte,
// including each byte of a multi-byte UTF-8 sequence, must match exactly. This
// is deliberately narrower than strings.EqualFold, which applies Unicode simple
// folding (so "K" would match the Kelvin sign).
//
// Equal, Compare and Hash agree: keys that are Equal always Compare as 0 and
// always produce the same Hash for the same seed. The perfect-hash tables built
// by the generator use this Hash, so both sides fold with one rule.
package foldcase

// FNV-1a 64-bit parameters. phf.Hash uses the same ones, so for keys without
// uppercase ASCII the two hashes coincide.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Key is a string compared, ordered and hashed under ASCII case folding.
type Key string

// Equal reports whether k and other are equal under ASCII case folding.
func (k Key) Equal(other Key) bool {
	return Equal(string(k), other)
}

// Compare orders keys by their folded bytes. It returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	return Compare(string(k), other)
}

// Hash returns the seeded FNV-1a hash of the folded key.
func (k Key) Hash(seed uint64) uint64 {
	return Hash(seed, k)
}

// Fold returns the lowercase canonical spelling of the key.
func (k Key) Fold() string {
	return Fold(k)
}

// String returns the key as written.
func (k Key) String() string {
	return string(k)
}

// Lower maps 'A'..'Z' to 'a'..'z' and leaves every other byte alone.
func Lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Equal reports whether a and b are equal under ASCII case folding.
// b may be a string or a byte slice; neither is copied.
func Equal[T ~string | ~[]byte](a string, b T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] && Lower(a[i]) != Lower(b[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b by their folded bytes. It returns -1, 0 or +1.
func Compare[T ~string | ~[]byte](a string, b T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		ca, cb := Lower(a[i]), Lower(b[i])
		if ca < cb {
			return -1
		}
		if ca > cb {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Hash returns the seeded FNV-1a 64-bit hash of the folded key without
// allocating.
func Hash[T ~string | ~[]byte](seed uint64, key T) uint64 {
	h := uint64(offset64) ^ seed
	for i := 0; i < len(key); i++ {
		h ^= uint64(Lower(key[i]))
		h *= prime64
	}
	return h
}

// Fold returns key with 'A'..'Z' lowered. It only allocates when key contains
// an uppercase ASCII letter or is a byte slice.
func Fold[T ~string | ~[]byte](key T) string {
	i := 0
	for ; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' {
			break
		}
	}
	if i == len(key) {
		return string(key)
	}
	buf := make([]byte, len(key))
	for j := 0; j < len(key); j++ {
		buf[j] = Lower(key[j])
	}
	return string(buf)
}

// HasUpper reports whether key contains an uppercase ASCII letter.
func HasUpper[T ~string | ~[]byte](key T) bool {
	for i := 0; i < len(key); i++ {
		if key[i] >= 'A' && key[i] <= 'Z' {
			return true
		}
	}
	return false
}
