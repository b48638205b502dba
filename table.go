package chainmap

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrInvalidCapacity is the panic value for a table built with capacity <= 0.
var ErrInvalidCapacity = errors.New("chainmap: capacity must be positive")

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	numBuckets uintptr
	count      uintptr

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		panic(fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity))
	}

	t.buckets = make([]bucket[K, V], capacity)
	t.numBuckets = uintptr(capacity)
	t.count = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K]()
	}
}

func (t *table[K, V]) index(key K) uintptr {
	return bucketIndex(t.hashFunc(key), t.numBuckets)
}

func (t *table[K, V]) get(key K) (V, bool) {
	b := t.buckets[t.index(key)]
	if i := b.find(key); i >= 0 {
		return b[i].value, true
	}

	return t.emptyV, false
}

// update stores value under key. If the key was present, its entry is
// overwritten in place and the previous value is returned with true.
// Otherwise the entry is appended to the end of its bucket.
func (t *table[K, V]) update(key K, value V) (V, bool) {
	idx := t.index(key)
	b := t.buckets[idx]

	if i := b.find(key); i >= 0 {
		old := b[i].value
		b[i].value = value

		return old, true
	}

	t.buckets[idx] = append(b, entry[K, V]{key: key, value: value})
	t.count++

	return t.emptyV, false
}

// remove deletes key and returns the value it held.
func (t *table[K, V]) remove(key K) (V, bool) {
	idx := t.index(key)
	b := t.buckets[idx]

	i := b.find(key)
	if i < 0 {
		return t.emptyV, false
	}

	old := b[i].value
	t.buckets[idx] = b.removeAt(i)
	t.count--

	return old, true
}

// Reset drops every entry, keeping the number of buckets.
func (t *table[K, V]) Reset() {
	for i := range t.buckets {
		clear(t.buckets[i])
		t.buckets[i] = t.buckets[i][:0]
	}

	t.count = 0
}

// all yields entries bucket by bucket, in chain order.
func (t *table[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, b := range t.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (t *table[K, V]) stats() Stats {
	s := Stats{
		Size:    int(t.count),
		Buckets: int(t.numBuckets),
	}

	for _, b := range t.buckets {
		if len(b) == 0 {
			continue
		}

		s.UsedBuckets++
		s.LongestChain = max(s.LongestChain, len(b))
	}

	s.LoadFactor = float32(s.Size) / float32(s.Buckets)

	return s
}

func (t *table[K, V]) format(entryFunc func(sb *strings.Builder, e entry[K, V])) string {
	var sb strings.Builder

	for i, b := range t.buckets {
		fmt.Fprintf(&sb, "%d: [", i)
		for j, e := range b {
			if j > 0 {
				sb.WriteString(", ")
			}
			entryFunc(&sb, e)
		}
		sb.WriteString("]\n")
	}

	fmt.Fprintf(&sb, "count: %d", t.count)

	return sb.String()
}
