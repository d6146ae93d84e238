package fft

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrNotPowerOfTwo is returned when the input length is not a power of two.
var ErrNotPowerOfTwo = errors.New("fft: input length must be a power of two")

// Direction selects the transform direction.
type Direction int

const (
	// Forward transforms time-domain data into the frequency domain.
	Forward Direction = 1
	// Inverse transforms frequency-domain data back into the time domain,
	// including the 1/N normalization.
	Inverse Direction = -1
)

// Transform computes the forward FFT of real-valued samples.
//
// Samples enter the complex plane with imaginary part zero. The result has
// the same length as the input. The input slice is not modified.
func Transform(samples []float64) ([]complex128, error) {
	data := make([]complex128, len(samples))
	for i, v := range samples {
		data[i] = complex(v, 0)
	}
	return TransformComplex(data, Forward)
}

// TransformComplex computes the FFT of complex data in the given direction.
//
// The transform is the classic recursive radix-2 Cooley-Tukey decimation:
// the even- and odd-indexed halves are transformed independently and
// combined with the N/2 twiddle factors e^(-2*pi*i*k/N). Base case N=1
// returns the input unchanged. The input slice is not modified; a fresh
// result slice is returned.
func TransformComplex(data []complex128, dir Direction) ([]complex128, error) {
	n := len(data)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	if dir != Forward && dir != Inverse {
		return nil, fmt.Errorf("fft: invalid direction %d", dir)
	}

	out := make([]complex128, n)
	copy(out, data)
	recurse(out, dir)

	if dir == Inverse {
		scale := complex(1/float64(n), 0)
		for i := range out {
			out[i] *= scale
		}
	}
	return out, nil
}

// recurse transforms data in place. len(data) is a power of two.
func recurse(data []complex128, dir Direction) {
	n := len(data)
	if n == 1 {
		return
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := 0; i < half; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	recurse(even, dir)
	recurse(odd, dir)

	for k := 0; k < half; k++ {
		angle := -2 * math.Pi * float64(dir) * float64(k) / float64(n)
		w := cmplx.Exp(complex(0, angle))
		data[k] = even[k] + w*odd[k]
		data[k+half] = even[k] - w*odd[k]
	}
}
