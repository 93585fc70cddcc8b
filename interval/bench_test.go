package interval_test

import (
	"math/rand"
	"testing"

	"github.com/solventlabs/solvent/interval"
)

func BenchmarkMerge(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	in := make([]interval.Interval, 1024)
	for i := range in {
		start := rng.Int63n(1 << 20)
		in[i] = interval.Interval{Start: start, End: start + rng.Int63n(64)}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = interval.Merge(in)
	}
}

func BenchmarkCoverageSet_Covers(b *testing.B) {
	var in []interval.Interval
	for s := int64(0); s < 1<<16; s += 3 {
		in = append(in, interval.Interval{Start: s, End: s + 1})
	}
	cs := interval.Merge(in)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cs.Covers(int64(i) % (1 << 16))
	}
}
