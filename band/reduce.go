package band

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrBandSpan is returned when the trimmed spectrum span is too small for the
// requested band count, which would never complete a single band.
var ErrBandSpan = errors.New("band: bin span too small for band count")

// Config holds the reduction parameters.
//
// Percentages trim the usable half-spectrum: LowPassPercent removes bins from
// the low-frequency end, HighPassPercent from the high-frequency end. Both
// must lie in [0, 100]; Bands must be positive.
type Config struct {
	Bands           int
	LowPassPercent  int
	HighPassPercent int
}

// Result holds the reduction output for one spectrum.
//
// PeakBin is the index of the bin with the largest magnitude within the
// scanned range, relative to the full spectrum.
type Result struct {
	Amplitudes    []float64
	PeakBin       int
	PeakMagnitude float64
}

// Validate reports whether the config fields are internally consistent.
// Span-dependent checks require the spectrum length and happen in [Reduce]
// or via [Config.SamplesPerBand].
func (c Config) Validate() error {
	if c.Bands <= 0 {
		return fmt.Errorf("band: bands must be positive: %d", c.Bands)
	}
	if c.LowPassPercent < 0 || c.LowPassPercent > 100 {
		return fmt.Errorf("band: lowPass percent out of range [0,100]: %d", c.LowPassPercent)
	}
	if c.HighPassPercent < 0 || c.HighPassPercent > 100 {
		return fmt.Errorf("band: highPass percent out of range [0,100]: %d", c.HighPassPercent)
	}
	return nil
}

// span returns the scanned bin range [first, last) for a spectrum of length n.
func (c Config) span(n int) (first, last int) {
	half := n / 2
	first = c.LowPassPercent * half / 100
	last = half - c.HighPassPercent*half/100
	return first, last
}

// SamplesPerBand returns the number of bins averaged into each band for a
// spectrum of length n. A result <= 0 means the configuration can never
// complete a band and must be rejected.
func (c Config) SamplesPerBand(n int) int {
	if c.Bands <= 0 {
		return 0
	}
	first, last := c.span(n)
	return (last - first) / c.Bands
}

// Reduce partitions the scanned range of the spectrum into bands and returns
// the arithmetic mean magnitude of each completed band plus the peak bin.
//
// Trailing bins that do not fill a whole band are dropped, so fewer than
// cfg.Bands amplitudes may be returned when the span does not divide evenly.
func Reduce(spectrum []complex128, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	first, last := cfg.span(len(spectrum))
	perBand := (last - first) / cfg.Bands
	if perBand <= 0 {
		return Result{}, fmt.Errorf("%w: %d usable bins, %d bands", ErrBandSpan, last-first, cfg.Bands)
	}

	mag := scanMagnitudes(spectrum, first, last)

	res := Result{Amplitudes: make([]float64, 0, cfg.Bands)}
	sum := 0.0
	cnt := 0
	for i, m := range mag {
		if m > res.PeakMagnitude {
			res.PeakMagnitude = m
			res.PeakBin = first + i
		}
		sum += m
		cnt++
		if cnt == perBand {
			res.Amplitudes = append(res.Amplitudes, sum/float64(perBand))
			sum = 0
			cnt = 0
		}
	}
	return res, nil
}

// scanMagnitudes computes |X[k]| for bins [first, last).
func scanMagnitudes(spectrum []complex128, first, last int) []float64 {
	n := last - first
	if n <= 0 {
		return nil
	}
	re := make([]float64, n)
	im := make([]float64, n)
	for i := 0; i < n; i++ {
		re[i] = real(spectrum[first+i])
		im[i] = imag(spectrum[first+i])
	}
	out := make([]float64, n)
	vecmath.Magnitude(out, re, im)
	return out
}
