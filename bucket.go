package chainmap

import "slices"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is a chain of entries whose keys share a bucket index.
// Keys within a bucket are pairwise distinct.
type bucket[K comparable, V any] []entry[K, V]

// find returns the position of key in the chain or -1.
func (b bucket[K, V]) find(key K) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}

	return -1
}

// removeAt drops the i-th entry, shifting the rest down so the chain keeps
// its order. slices.Delete zeroes the vacated tail slot.
func (b bucket[K, V]) removeAt(i int) bucket[K, V] {
	return slices.Delete(b, i, i+1)
}
