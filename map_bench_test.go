package chainmap

import (
	"strconv"
	"testing"
)

var sizes = []int{
	1 << 10,
	1 << 16,
	// 1 << 20,
}

func BenchmarkValue_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapValueHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapValueHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=hashTable", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkHashTableValueHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkHashTableValueHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkValue_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapValueMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=hashTable", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkHashTableValueMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkUpdate_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapUpdateHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=hashTable", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkHashTableUpdateHit[uint64], genKeys[uint64]))
	})
}

func benchmarkStdMapValueHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkHashTableValueHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	ht := New[K, int](capacity)
	keys := genKeys(0, capacity)
	for i, k := range keys {
		ht.Update(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ht.Value(keys[i%len(keys)])
	}
}

func benchmarkStdMapValueMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity)
	misses := genKeys(capacity, capacity*2)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkHashTableValueMiss[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	ht := New[K, int](capacity)
	keys := genKeys(0, capacity)
	misses := genKeys(capacity, capacity*2)
	for i, k := range keys {
		ht.Update(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ht.Value(misses[i%len(misses)])
	}
}

func benchmarkStdMapUpdateHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int, capacity)
	keys := genKeys(0, capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m[keys[i%len(keys)]] = i
	}
}

func benchmarkHashTableUpdateHit[K comparable](
	b *testing.B,
	capacity int,
	genKeys func(start, end int) []K,
) {
	ht := New[K, int](capacity)
	keys := genKeys(0, capacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ht.Update(keys[i%len(keys)], i)
	}
}

func genKeys[K comparable](start, end int) []K {
	keys := make([]K, end-start)

	for i := range keys {
		var k any
		switch any(keys[i]).(type) {
		case uint64:
			k = uint64(start + i)
		case string:
			k = strconv.Itoa(start + i)
		default:
			panic("not reached")
		}

		keys[i] = k.(K)
	}

	return keys
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, capacity int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("capacity="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
