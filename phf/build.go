package phf

import (
	"sort"
	"strconv"
	"strings"

	"github.com/teranos/webns/errors"
)

const (
	// Lambda is the average number of keys per bucket.
	Lambda = 5

	// MaxAttempts bounds how many seeds Build tries before giving up.
	MaxAttempts = 64

	// MaxKeys is the largest key set a Map can index; displacements are
	// packed into 16 bits each.
	MaxKeys = 1 << 16
)

// BuildStats describes how a Map was found.
type BuildStats struct {
	Keys     int    `json:"keys"`
	Buckets  int    `json:"buckets"`
	Attempts int    `json:"attempts"`
	Seed     uint64 `json:"seed"`
}

// NextSeed advances the deterministic seed sequence Build walks through when a
// seed fails.
func NextSeed(seed uint64) uint64 {
	return seed*6364136223846793005 + 1442695040888963407
}

// Build constructs a minimal perfect hash map for keys, assigning keys[i] the
// value i. Keys must be distinct under the equivalence hash respects; if two
// keys always collide no seed can separate them and Build fails with
// errors.ErrPerfectHash after MaxAttempts seeds.
func Build(keys []string, hash HashFunc, seed uint64) (Map, BuildStats, error) {
	n := len(keys)
	if n == 0 {
		return Map{Seed: seed}, BuildStats{Seed: seed}, nil
	}
	if n > MaxKeys {
		return Map{}, BuildStats{}, errors.Wrapf(errors.ErrPerfectHash,
			"%d keys exceed the %d key limit", n, MaxKeys)
	}

	first, last := seed, seed
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		if m, ok := try(keys, hash, seed); ok {
			return m, BuildStats{
				Keys:     n,
				Buckets:  len(m.Disps),
				Attempts: attempt,
				Seed:     seed,
			}, nil
		}
		last, seed = seed, NextSeed(seed)
	}

	err := errors.Wrapf(errors.ErrPerfectHash,
		"no displacement found for %d keys after %d seeds starting at %#x", n, MaxAttempts, first)
	groups := collisions(keys, hash, last)
	if len(groups) == 0 {
		return Map{}, BuildStats{}, errors.WithHint(err,
			"the key set is too dense for this seed sequence; try another seed")
	}
	err = errors.WithMessagef(err, "keys %s hash identically under seed %#x", quoteAll(groups[0]), last)
	for _, g := range groups[1:] {
		err = errors.WithDetailf(err, "also identical: %s", quoteAll(g))
	}
	return Map{}, BuildStats{}, errors.WithHint(err,
		"the key set probably contains two keys that are equal under the lookup's folding rule")
}

// collisions groups the keys whose full 64-bit hashes are equal under seed,
// in key order. No displacement can ever separate such keys.
func collisions(keys []string, hash HashFunc, seed uint64) [][]string {
	byHash := make(map[uint64][]string, len(keys))
	var order []uint64
	for _, k := range keys {
		h := hash(seed, k)
		if len(byHash[h]) == 1 {
			order = append(order, h)
		}
		byHash[h] = append(byHash[h], k)
	}
	groups := make([][]string, len(order))
	for i, h := range order {
		groups[i] = byHash[h]
	}
	return groups
}

func quoteAll(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = strconv.Quote(k)
	}
	return strings.Join(quoted, ", ")
}

func try(keys []string, hash HashFunc, seed uint64) (Map, bool) {
	n := uint32(len(keys))
	numBuckets := (n + Lambda - 1) / Lambda

	hashes := make([]Hashes, n)
	buckets := make([][]uint32, numBuckets)
	for i, k := range keys {
		hs := Split(hash(seed, k))
		hashes[i] = hs
		b := hs.G % numBuckets
		buckets[b] = append(buckets[b], uint32(i))
	}

	order := make([]uint32, numBuckets)
	for i := range order {
		order[i] = uint32(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(buckets[order[i]]) > len(buckets[order[j]])
	})

	disps := make([]uint32, numBuckets)
	values := make([]uint32, n)
	taken := make([]bool, n)
	slots := make([]uint32, 0, Lambda*2)

	for _, b := range order {
		bucket := buckets[b]
		if len(bucket) == 0 {
			break
		}
		placed := false
	search:
		for d1 := uint32(0); d1 < n; d1++ {
			for d2 := uint32(0); d2 < n; d2++ {
				if !place(bucket, hashes, taken, d1, d2, &slots) {
					continue
				}
				for i, k := range bucket {
					taken[slots[i]] = true
					values[slots[i]] = k
				}
				disps[b] = d1<<16 | d2
				placed = true
				break search
			}
		}
		if !placed {
			return Map{}, false
		}
	}

	return Map{Seed: seed, Disps: disps, Values: values}, true
}

// place computes the slots of every key in bucket under (d1, d2) into slots
// and reports whether they are all free and distinct.
func place(bucket []uint32, hashes []Hashes, taken []bool, d1, d2 uint32, slots *[]uint32) bool {
	n := uint32(len(taken))
	*slots = (*slots)[:0]
	for _, k := range bucket {
		hs := hashes[k]
		slot := displace(hs.F1, hs.F2, d1, d2) % n
		if taken[slot] || contains(*slots, slot) {
			return false
		}
		*slots = append(*slots, slot)
	}
	return true
}

func contains(s []uint32, v uint32) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
