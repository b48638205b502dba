package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit hash. Equal keys must produce equal hashes.
type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns a maphash based function seeded at random.
// Hashes are deterministic for the lifetime of the returned function only,
// so bucket placement differs between tables and between runs.
func MakeDefaultHashFunc[K comparable]() HashFunc[K] {
	seed := maphash.MakeSeed()

	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// HashString is an unseeded xxhash of s, stable across runs.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes is an unseeded xxhash of b, stable across runs.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// bucketIndex reduces a hash to a bucket index in [0, buckets).
// The hash is unsigned, so the remainder can never be negative.
func bucketIndex(hash uint64, buckets uintptr) uintptr {
	return uintptr(hash % uint64(buckets))
}
