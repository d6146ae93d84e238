// Package fft implements the radix-2 Cooley-Tukey transform used by the
// band filter stage.
//
// The implementation is deliberately self-contained: the filter's transform
// engine is a pure routine over in-memory complex slices with no backend
// coupling. Input lengths must be a power of two; non-conforming lengths are
// rejected with [ErrNotPowerOfTwo] rather than producing a garbage spectrum.
package fft
