package fftfilter_test

import (
	"fmt"

	"github.com/cwbudde/algo-fftfilter/fftfilter"
	"github.com/cwbudde/algo-fftfilter/reading"
)

func ExampleFilter() {
	f, err := fftfilter.New(fftfilter.Config{
		Asset:             "vibration",
		Bands:             2,
		Samples:           8,
		EmitPeakFrequency: true,
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	// One full period of a sine on FFT bin 2, delivered one reading at a
	// time. The eighth sample completes the batch and yields the spectrum.
	wave := []float64{0, 1, 0, -1, 0, 1, 0, -1}

	var out []*reading.Reading
	for _, v := range wave {
		batch := f.Ingest([]*reading.Reading{
			reading.New("vibration", reading.Datapoint{Name: "x", Value: reading.Float(v)}),
		})
		out = append(out, batch...)
	}

	for _, r := range out {
		fmt.Println(r.Asset)
		for _, dp := range r.Datapoints {
			v, _ := dp.Value.Numeric()
			fmt.Printf("%s: %.1f\n", dp.Name, v)
		}
	}

	// Output:
	// vibration FFT
	// Band 00: 0.0
	// Band 01: 2.0
	// Peak Frequency: 2.0
}
