package band_test

import (
	"fmt"

	"github.com/cwbudde/algo-fftfilter/band"
)

func ExampleReduce() {
	// 16-bin spectrum with all energy in bin 3; only the first half is
	// scanned, split into two bands of four bins each.
	spectrum := make([]complex128, 16)
	spectrum[3] = 8

	res, err := band.Reduce(spectrum, band.Config{Bands: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Amplitudes, res.PeakBin)

	// Output:
	// [2 0] 3
}
