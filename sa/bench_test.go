package sa_test

import (
	"testing"

	"github.com/katalvlaran/anneal/sa"
)

// BenchmarkAnnealOnce measures the raw Metropolis loop (one stage of 4000 moves).
func BenchmarkAnnealOnce(b *testing.B) {
	q := parabola{target: 0}
	opts := sa.NewOptions(sa.WithSweeps(4000), sa.WithSeed(1))
	sched := sa.Schedule{1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sa.AnnealOnce[*point, int](q, &point{x: 50}, sched, opts)
	}
}

func BenchmarkAnnealParallel(b *testing.B) {
	q := parabola{target: 0}
	opts := sa.NewOptions(sa.WithRuns(8), sa.WithSweeps(1000), sa.WithSeed(1))
	sched := mustLinear(5, 0.1, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sa.AnnealParallel[*point, int](q, sched, opts)
	}
}
