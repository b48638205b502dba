package chainmap

import (
	"fmt"
	"iter"
	"strings"
)

// HashSet is a set-like data structure on top of the same chained table
// as HashTable. It doesn't store values, only keys, and it keeps the
// capacity it was initialized with.
type HashSet[K comparable] struct {
	table[K, struct{}]
}

func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *HashSet[K] {
	var hs HashSet[K]
	hs.init(capacity, opts...)

	return &hs
}

// Checks whether a key is in the set.
func (hs *HashSet[K]) Has(key K) bool {
	_, ok := hs.get(key)
	return ok
}

// Puts a key in the set. Returns whether the key is new.
func (hs *HashSet[K]) Put(key K) bool {
	_, existed := hs.update(key, struct{}{})
	return !existed
}

// Deletes a key from the set. Returns whether the key was present.
func (hs *HashSet[K]) Delete(key K) bool {
	_, ok := hs.remove(key)
	return ok
}

func (hs *HashSet[K]) Count() int {
	return int(hs.count)
}

func (hs *HashSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range hs.all() {
			if !yield(k) {
				return
			}
		}
	}
}

func (hs *HashSet[K]) Stats() Stats {
	return hs.stats()
}

func (hs *HashSet[K]) String() string {
	return hs.format(func(sb *strings.Builder, e entry[K, struct{}]) {
		fmt.Fprintf(sb, "%v", e.key)
	})
}
