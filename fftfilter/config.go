package fftfilter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-fftfilter/band"
)

// Config holds the filter parameters.
type Config struct {
	// Asset is the asset name whose readings are analyzed.
	Asset string
	// Bands is the number of frequency bands emitted per spectrum.
	Bands int
	// Samples is the batch size per transform. Must be a power of two.
	Samples int
	// LowPassPercent trims the low-frequency end of the half-spectrum,
	// as a percentage in [0, 100].
	LowPassPercent int
	// HighPassPercent trims the high-frequency end of the half-spectrum,
	// as a percentage in [0, 100].
	HighPassPercent int
	// EmitPeakFrequency adds a "Peak Frequency" datapoint carrying the
	// bin index of the strongest magnitude in the scanned range.
	EmitPeakFrequency bool
}

// DefaultConfig returns the stock filter configuration.
func DefaultConfig() Config {
	return Config{
		Asset:   "fft",
		Bands:   5,
		Samples: 128,
	}
}

// Validate reports whether the configuration is usable. Beyond per-field
// range checks it rejects combinations whose band span could never complete
// a single band, which would stall ingestion silently.
func (c Config) Validate() error {
	if c.Asset == "" {
		return fmt.Errorf("fftfilter: asset name must not be empty")
	}
	if c.Samples <= 0 || c.Samples&(c.Samples-1) != 0 {
		return fmt.Errorf("fftfilter: samples must be a power of two: %d", c.Samples)
	}
	bc := c.bandConfig()
	if err := bc.Validate(); err != nil {
		return fmt.Errorf("fftfilter: %w", err)
	}
	if bc.SamplesPerBand(c.Samples) < 1 {
		return fmt.Errorf("fftfilter: %d bands cannot be filled from %d samples with lowPass=%d%% highPass=%d%%",
			c.Bands, c.Samples, c.LowPassPercent, c.HighPassPercent)
	}
	return nil
}

func (c Config) bandConfig() band.Config {
	return band.Config{
		Bands:           c.Bands,
		LowPassPercent:  c.LowPassPercent,
		HighPassPercent: c.HighPassPercent,
	}
}

// intItem is a config integer that accepts both JSON numbers and quoted
// digit strings; host configuration systems commonly deliver all values as
// strings. Malformed text is an error, never a silent zero.
type intItem int

func (v *intItem) UnmarshalJSON(data []byte) error {
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("fftfilter: invalid integer value %s", data)
	}
	*v = intItem(n)
	return nil
}

// boolItem accepts JSON booleans and quoted "true"/"false" strings.
type boolItem bool

func (v *boolItem) UnmarshalJSON(data []byte) error {
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("fftfilter: invalid boolean value %s", data)
	}
	*v = boolItem(b)
	return nil
}

// configPayload mirrors the recognized reconfiguration options. Absent
// fields leave the corresponding value unchanged; unknown fields are
// ignored.
type configPayload struct {
	Asset    *string   `json:"asset"`
	Bands    *intItem  `json:"bands"`
	Samples  *intItem  `json:"samples"`
	LowPass  *intItem  `json:"lowPass"`
	HighPass *intItem  `json:"highPass"`
	Peak     *boolItem `json:"peak"`
}

// ParseConfig applies the JSON configuration payload on top of cur and
// validates the merged result. cur is returned unchanged on any error, so
// a rejected payload never leaves a partial update behind.
func ParseConfig(raw string, cur Config) (Config, error) {
	var p configPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return cur, fmt.Errorf("fftfilter: invalid config json: %w", err)
	}

	next := cur
	if p.Asset != nil {
		next.Asset = *p.Asset
	}
	if p.Bands != nil {
		next.Bands = int(*p.Bands)
	}
	if p.Samples != nil {
		next.Samples = int(*p.Samples)
	}
	if p.LowPass != nil {
		next.LowPassPercent = int(*p.LowPass)
	}
	if p.HighPass != nil {
		next.HighPassPercent = int(*p.HighPass)
	}
	if p.Peak != nil {
		next.EmitPeakFrequency = bool(*p.Peak)
	}

	if err := next.Validate(); err != nil {
		return cur, err
	}
	return next, nil
}
