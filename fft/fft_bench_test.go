package fft

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-fftfilter/internal/testutil"
)

func BenchmarkTransform(b *testing.B) {
	for _, n := range []int{64, 256, 1024, 4096} {
		in := testutil.DeterministicNoise(1, 1, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Transform(in); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
