package fftfilter

import "sort"

// SeriesBuffer accumulates scalar samples per series name in ingestion
// order. Series entries are created on first append and persist after their
// samples are taken, so a series keeps accumulating across batches.
//
// SeriesBuffer is not safe for concurrent use; the owning filter serializes
// access under its lock.
type SeriesBuffer struct {
	series map[string][]float64
}

// NewSeriesBuffer returns an empty buffer.
func NewSeriesBuffer() *SeriesBuffer {
	return &SeriesBuffer{series: make(map[string][]float64)}
}

// Append appends a sample to the named series, creating it if absent.
func (b *SeriesBuffer) Append(name string, v float64) {
	b.series[name] = append(b.series[name], v)
}

// Len returns the number of buffered samples for the named series.
func (b *SeriesBuffer) Len(name string) int {
	return len(b.series[name])
}

// Full reports whether the named series holds at least batch samples.
// The >= comparison keeps a series triggerable even when the batch size
// shrinks below an already-accumulated length between checks.
func (b *SeriesBuffer) Full(name string, batch int) bool {
	return batch > 0 && len(b.series[name]) >= batch
}

// Take removes and returns the oldest n samples of the named series.
// Any newer samples remain buffered toward the next batch. Take returns
// nil when fewer than n samples are buffered.
func (b *SeriesBuffer) Take(name string, n int) []float64 {
	seq := b.series[name]
	if n <= 0 || len(seq) < n {
		return nil
	}
	out := make([]float64, n)
	copy(out, seq[:n])
	b.series[name] = seq[:copy(seq, seq[n:])]
	return out
}

// Names returns the buffered series names in sorted order, giving the
// filter a deterministic emission order.
func (b *SeriesBuffer) Names() []string {
	names := make([]string, 0, len(b.series))
	for name := range b.series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
