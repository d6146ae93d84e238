package fftfilter

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-fftfilter/band"
	"github.com/cwbudde/algo-fftfilter/fft"
	"github.com/cwbudde/algo-fftfilter/reading"
)

// derivedAssetSuffix names spectrum readings after the monitored asset.
const derivedAssetSuffix = " FFT"

// Filter is the streaming FFT band filter stage.
type Filter struct {
	mu  sync.Mutex
	cfg Config
	buf *SeriesBuffer
	log *zap.Logger
}

// Option configures optional filter collaborators.
type Option func(*Filter)

// WithLogger attaches a logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(f *Filter) {
		if log != nil {
			f.log = log
		}
	}
}

// New returns a filter for the given configuration.
func New(cfg Config, opts ...Option) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Filter{
		cfg: cfg,
		buf: NewSeriesBuffer(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f, nil
}

// Config returns a snapshot of the live configuration.
func (f *Filter) Config() Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cfg
}

// Ingest consumes a batch of readings and returns the outgoing batch.
//
// Readings for the monitored asset have every numeric datapoint buffered
// under the datapoint's own name; each series that reaches the configured
// batch size yields one derived spectrum reading and starts over. All other
// readings pass through unchanged in their original relative order.
func (f *Filter) Ingest(in []*reading.Reading) []*reading.Reading {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]*reading.Reading, 0, len(in))
	for _, r := range in {
		if r == nil {
			continue
		}
		if r.Asset != f.cfg.Asset {
			out = append(out, r)
			continue
		}
		f.bufferReading(r)
		out = f.processFull(out)
	}
	return out
}

// Reconfigure applies a JSON configuration payload atomically. Options
// absent from the payload keep their current values; an invalid payload
// leaves the configuration untouched. Buffered samples are preserved, so
// a running accumulation continues under the new parameters. A series left
// over-full by a shrunken batch size triggers on the next ingested reading
// of the monitored asset.
func (f *Filter) Reconfigure(raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cfg, err := ParseConfig(raw, f.cfg)
	if err != nil {
		return err
	}
	f.cfg = cfg
	f.log.Info("filter reconfigured",
		zap.String("asset", cfg.Asset),
		zap.Int("bands", cfg.Bands),
		zap.Int("samples", cfg.Samples),
		zap.Int("lowPass", cfg.LowPassPercent),
		zap.Int("highPass", cfg.HighPassPercent))
	return nil
}

// bufferReading appends every numeric datapoint to its series. Non-numeric
// datapoints are skipped.
func (f *Filter) bufferReading(r *reading.Reading) {
	for _, dp := range r.Datapoints {
		v, ok := dp.Value.Numeric()
		if !ok {
			continue
		}
		f.buf.Append(dp.Name, v)
	}
}

// processFull runs the transform pipeline for every series that has reached
// the batch size and appends the derived readings to out.
func (f *Filter) processFull(out []*reading.Reading) []*reading.Reading {
	for _, name := range f.buf.Names() {
		if !f.buf.Full(name, f.cfg.Samples) {
			continue
		}
		samples := f.buf.Take(name, f.cfg.Samples)
		derived, err := f.analyze(name, samples)
		if err != nil {
			// Validated configs should never reach this; absorb per-series
			// failures so the stream keeps flowing.
			f.log.Error("spectrum analysis failed", zap.String("series", name), zap.Error(err))
			continue
		}
		out = append(out, derived)
	}
	return out
}

// analyze transforms one completed batch and builds the derived reading.
func (f *Filter) analyze(name string, samples []float64) (*reading.Reading, error) {
	spectrum, err := fft.Transform(samples)
	if err != nil {
		return nil, err
	}
	res, err := band.Reduce(spectrum, f.cfg.bandConfig())
	if err != nil {
		return nil, err
	}

	dps := make([]reading.Datapoint, 0, len(res.Amplitudes)+1)
	for i, amp := range res.Amplitudes {
		dps = append(dps, reading.Datapoint{
			Name:  fmt.Sprintf("Band %02d", i),
			Value: reading.Float(amp),
		})
	}
	if f.cfg.EmitPeakFrequency {
		dps = append(dps, reading.Datapoint{
			Name:  "Peak Frequency",
			Value: reading.Int(int64(res.PeakBin)),
		})
	}

	f.log.Debug("spectrum emitted",
		zap.String("series", name),
		zap.Int("bands", len(res.Amplitudes)),
		zap.Int("peakBin", res.PeakBin))

	return reading.New(f.cfg.Asset+derivedAssetSuffix, dps...), nil
}
