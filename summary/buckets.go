package summary

import "sync"

// The bucket scheme is a fixed table of 1549 boundaries shared by every
// histogram recording, so that histograms taken at different steps bin
// comparably. Boundaries grow geometrically (factor 1.1) from 1e-12 outward
// in both signs, with an exact 0.0 at the center: fine resolution where
// metric values cluster, coarse resolution for outliers such as exploding
// gradients.
const (
	bucketCount       = 1549
	bucketCenterIndex = 774 // index of the exact 0.0 boundary
	bucketGrowthSeed  = 1e-12
	bucketGrowth      = 1.1
)

var (
	bucketOnce  sync.Once
	bucketTable []float64
)

// bucketBoundaries returns the shared boundary table, building it on first
// use. The returned slice is never mutated; callers must treat it as
// read-only.
func bucketBoundaries() []float64 {
	bucketOnce.Do(func() {
		bucketTable = buildBucketBoundaries()
	})
	return bucketTable
}

// buildBucketBoundaries constructs the strictly increasing boundary table.
// Deterministic, no inputs.
func buildBucketBoundaries() []float64 {
	b := make([]float64, bucketCount)
	b[bucketCenterIndex] = 0.0
	v := bucketGrowthSeed
	for i := 1; i <= bucketCenterIndex; i++ {
		b[bucketCenterIndex+i] = v
		b[bucketCenterIndex-i] = -v
		v *= bucketGrowth
	}
	return b
}
