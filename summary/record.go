package summary

import (
	"fmt"
	"math"
	"strconv"
)

// Float is a float64 that round-trips non-finite values through JSON, which
// encoding/json otherwise rejects. NaN and the infinities are encoded as the
// strings "NaN", "+Inf" and "-Inf".
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"NaN"`:
		*f = Float(math.NaN())
		return nil
	case `"+Inf"`:
		*f = Float(math.Inf(1))
		return nil
	case `"-Inf"`:
		*f = Float(math.Inf(-1))
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid float value %s: %w", data, err)
	}
	*f = Float(v)
	return nil
}

// Histogram is the distributional half of a Record: aggregate statistics over
// the full sample set plus the non-empty buckets. Bucket and BucketLimit are
// parallel slices in ascending boundary order; BucketLimit holds each
// occupied bucket's right-edge boundary and Bucket its count.
type Histogram struct {
	Min        Float `json:"min"`
	Max        Float `json:"max"`
	Num        int64 `json:"num"`
	Sum        Float `json:"sum"`
	SumSquares Float `json:"sum_squares"`

	Bucket      []float64 `json:"bucket"`
	BucketLimit []float64 `json:"bucket_limit"`
}

// Record is the immutable payload persisted per log entry: a tagged union of
// a scalar value or a histogram. Exactly one of SimpleValue and Histogram is
// set.
type Record struct {
	Tag         string     `json:"tag"`
	SimpleValue *Float     `json:"simple_value,omitempty"`
	Histogram   *Histogram `json:"histogram,omitempty"`
}

// NewScalarRecord wraps a single (tag, value) pair into a scalar Record.
// Non-finite values pass through unmodified.
func NewScalarRecord(tag string, value float32) Record {
	v := Float(value)
	return Record{Tag: tag, SimpleValue: &v}
}

// IsScalar reports whether the record carries a scalar value.
func (r Record) IsScalar() bool {
	return r.SimpleValue != nil
}

// ScalarValue returns the scalar value and true, or zero and false for a
// histogram-shaped record.
func (r Record) ScalarValue() (float32, bool) {
	if r.SimpleValue == nil {
		return 0, false
	}
	return float32(*r.SimpleValue), true
}
