package reading

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies the scalar type carried by a Value.
type Kind int

const (
	// KindFloat is a floating-point scalar.
	KindFloat Kind = iota
	// KindInt is an integer scalar.
	KindInt
	// KindString is a non-numeric scalar, ignored by numeric processing.
	KindString
)

// Value is a typed scalar datapoint value.
type Value struct {
	kind Kind
	f    float64
	i    int64
	s    string
}

// Float returns a floating-point Value.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Int returns an integer Value.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the scalar type of the value.
func (v Value) Kind() Kind { return v.kind }

// Numeric returns the value as a float64 and true for numeric kinds.
// For non-numeric kinds it returns 0 and false.
func (v Value) Numeric() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// MarshalJSON encodes the value as its underlying scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindFloat:
		return json.Marshal(v.f)
	case KindInt:
		return json.Marshal(v.i)
	case KindString:
		return json.Marshal(v.s)
	default:
		return nil, fmt.Errorf("reading: unknown value kind %d", v.kind)
	}
}

// Datapoint is one named scalar within a reading.
type Datapoint struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// Reading is one record in the stream: an asset name plus an ordered set of
// datapoints. Datapoint order is preserved end to end.
type Reading struct {
	Asset      string      `json:"asset"`
	Timestamp  time.Time   `json:"ts,omitempty"`
	Datapoints []Datapoint `json:"datapoints"`
}

// New returns a reading for the given asset with the given datapoints,
// timestamped now.
func New(asset string, datapoints ...Datapoint) *Reading {
	return &Reading{
		Asset:      asset,
		Timestamp:  time.Now(),
		Datapoints: datapoints,
	}
}

// Datapoint returns the first datapoint with the given name, or nil.
func (r *Reading) Datapoint(name string) *Datapoint {
	for i := range r.Datapoints {
		if r.Datapoints[i].Name == name {
			return &r.Datapoints[i]
		}
	}
	return nil
}
