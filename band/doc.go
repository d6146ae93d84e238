// Package band reduces a complex spectrum into band-averaged amplitudes and
// a peak frequency bin.
//
// Only the first half of the spectrum is scanned (the upper half mirrors it
// for real inputs). Low-pass and high-pass cutoffs trim the usable half as
// integer percentages before the remaining bins are grouped into bands.
package band
