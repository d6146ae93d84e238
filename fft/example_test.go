package fft_test

import (
	"fmt"

	"github.com/cwbudde/algo-fftfilter/fft"
)

func ExampleTransform() {
	// A unit impulse has a flat spectrum.
	spectrum, err := fft.Transform([]float64{1, 0, 0, 0})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, bin := range spectrum {
		fmt.Println(bin)
	}

	// Output:
	// (1+0i)
	// (1+0i)
	// (1+0i)
	// (1+0i)
}
