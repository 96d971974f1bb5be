package summary

import (
	"errors"
	"fmt"
	"sort"
)

// ErrEmptySampleSet is returned when a histogram is requested over a tensor
// with no elements; min and max are undefined there.
var ErrEmptySampleSet = errors.New("empty sample set")

// NewHistogramRecord bins every element of values into the shared bucket
// scheme and returns a histogram Record carrying count, sum, sum of squares,
// min, max and the non-empty buckets in ascending boundary order.
//
// Each element is assigned the smallest boundary index whose boundary is >=
// the element, so a value exactly equal to a boundary lands in that
// boundary's own bucket. Values beyond the largest boundary clamp into the
// extreme bucket.
func NewHistogramRecord(tag string, values Tensor) (Record, error) {
	if values == nil || values.NElement() == 0 {
		return Record{}, fmt.Errorf("histogram %q: %w", tag, ErrEmptySampleSet)
	}

	bounds := bucketBoundaries()
	counts := make([]int64, len(bounds))
	sumSquares := 0.0
	values.Each(func(v float64) {
		sumSquares += v * v
		idx := sort.SearchFloat64s(bounds, v)
		if idx == len(bounds) {
			idx = len(bounds) - 1
		}
		counts[idx]++
	})

	h := &Histogram{
		Min:        Float(values.Min()),
		Max:        Float(values.Max()),
		Num:        int64(values.NElement()),
		Sum:        Float(values.Sum()),
		SumSquares: Float(sumSquares),
	}
	for i, c := range counts {
		if c == 0 {
			continue
		}
		h.Bucket = append(h.Bucket, float64(c))
		h.BucketLimit = append(h.BucketLimit, bounds[i])
	}

	return Record{Tag: tag, Histogram: h}, nil
}
