package chainmap

import (
	"fmt"
	"iter"
	"strings"
)

// HashTable is a map-like data structure with a fixed number of buckets.
// Colliding keys are chained inside their bucket, so the table never runs
// out of room, but it never grows either: lookups degrade linearly with
// the chain length once the entry count outruns the bucket count.
//
// A HashTable is not safe for concurrent use. Callers sharing one across
// goroutines must guard every call with their own lock.
type HashTable[K comparable, V any] struct {
	table[K, V]
}

// Returns a new hash table with the given number of buckets.
// It panics with ErrInvalidCapacity if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *HashTable[K, V] {
	var ht HashTable[K, V]
	ht.init(capacity, opts...)

	return &ht
}

// Number of stored entries.
func (ht *HashTable[K, V]) Count() int {
	return int(ht.count)
}

// Number of buckets, fixed at construction.
func (ht *HashTable[K, V]) Capacity() int {
	return int(ht.numBuckets)
}

// Returns the value stored for key.
func (ht *HashTable[K, V]) Value(key K) (V, bool) {
	return ht.get(key)
}

// Stores value for key. Returns the replaced value, if any.
func (ht *HashTable[K, V]) Update(key K, value V) (V, bool) {
	return ht.update(key, value)
}

// Removes key. Returns the removed value, if any.
func (ht *HashTable[K, V]) RemoveValue(key K) (V, bool) {
	return ht.remove(key)
}

// Get is the read half of the indexed accessor, same as Value.
func (ht *HashTable[K, V]) Get(key K) (V, bool) {
	return ht.get(key)
}

// Set is the write half of the indexed accessor. With ok set it stores
// value for key; otherwise key is removed and value is ignored.
func (ht *HashTable[K, V]) Set(key K, value V, ok bool) {
	if !ok {
		ht.remove(key)
		return
	}

	ht.update(key, value)
}

// All iterates over entries bucket by bucket. The table must not be
// modified during iteration.
func (ht *HashTable[K, V]) All() iter.Seq2[K, V] {
	return ht.all()
}

func (ht *HashTable[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range ht.all() {
			if !yield(k) {
				return
			}
		}
	}
}

func (ht *HashTable[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range ht.all() {
			if !yield(v) {
				return
			}
		}
	}
}

func (ht *HashTable[K, V]) Stats() Stats {
	return ht.stats()
}

// String renders every bucket followed by the entry count.
// The format is meant for debugging only.
func (ht *HashTable[K, V]) String() string {
	return ht.format(func(sb *strings.Builder, e entry[K, V]) {
		fmt.Fprintf(sb, "%v: %v", e.key, e.value)
	})
}
