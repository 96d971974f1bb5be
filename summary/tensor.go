package summary

import "gonum.org/v1/gonum/floats"

// Tensor is the read-only numeric sample set consumed by the histogram
// builder. Reductions are only defined for non-empty tensors; the builder
// checks NElement before calling them.
type Tensor interface {
	// Min returns the smallest element. Panics on an empty tensor.
	Min() float64
	// Max returns the largest element. Panics on an empty tensor.
	Max() float64
	// Sum returns the sum of all elements.
	Sum() float64
	// NElement returns the number of elements.
	NElement() int
	// Each calls fn for every element in storage order.
	Each(fn func(v float64))
}

// Dense is a flat float64-backed Tensor. The constructor copies its input,
// so a Dense never aliases caller-owned storage.
type Dense struct {
	data []float64
}

// NewDense returns a Dense holding a copy of data.
func NewDense(data []float64) *Dense {
	d := make([]float64, len(data))
	copy(d, data)
	return &Dense{data: d}
}

// Min returns the smallest element. Panics on an empty tensor.
func (d *Dense) Min() float64 { return floats.Min(d.data) }

// Max returns the largest element. Panics on an empty tensor.
func (d *Dense) Max() float64 { return floats.Max(d.data) }

// Sum returns the sum of all elements.
func (d *Dense) Sum() float64 { return floats.Sum(d.data) }

// NElement returns the number of elements.
func (d *Dense) NElement() int { return len(d.data) }

// Each calls fn for every element in storage order.
func (d *Dense) Each(fn func(v float64)) {
	for _, v := range d.data {
		fn(v)
	}
}
