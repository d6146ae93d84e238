// Package fftfilter implements a streaming spectral-analysis stage: it
// buffers numeric datapoints of one monitored asset per datapoint name,
// runs an FFT over each completed batch, and emits a derived reading with
// band-averaged amplitudes in place of the raw samples.
//
// Every datapoint of the monitored asset accumulates independently, so a
// single asset carrying "x", "y" and "z" channels produces one spectrum
// reading per channel. Readings for other assets pass through untouched.
//
// Ingest and Reconfigure serialize on one internal lock; the filter may be
// driven from multiple goroutines and retuned while samples are in flight.
// Buffered samples survive reconfiguration.
package fftfilter
