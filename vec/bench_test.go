// bench_test.go — microbenchmarks for the hot paths: cloning, swap,
// sorting, and the checked-vs-unchecked access gap.
package vec_test

import (
	"math/rand"
	"testing"

	"github.com/lvlkit/fixedvec/vec"
)

const benchLen = 1024

// sink keeps the compiler from eliding benchmarked reads.
var sink int

func newBenchArray(n int) *vec.Array[int] {
	rng := rand.New(rand.NewSource(42))
	a := vec.New[int](n)
	for i := 0; i < n; i++ {
		a.Set(i, rng.Intn(1_000_000))
	}
	return a
}

func BenchmarkClone(b *testing.B) {
	src := newBenchArray(benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := src.Clone()
		sink = c.Len()
	}
}

func BenchmarkSwap(b *testing.B) {
	x := newBenchArray(benchLen)
	y := newBenchArray(benchLen / 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}

func BenchmarkSort(b *testing.B) {
	src := newBenchArray(benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tmp := src.Clone()
		vec.Sort(tmp)
	}
}

func BenchmarkAt(b *testing.B) {
	a := newBenchArray(benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, _ := a.At(i % benchLen)
		sink = v
	}
}

func BenchmarkGet(b *testing.B) {
	a := newBenchArray(benchLen)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = a.Get(i % benchLen)
	}
}
