package dvec

import (
	"fmt"
	"time"
)

// ReduceFunc collapses one segment's zone values into a single scalar.
// Implementations must not mutate or retain vals.
type ReduceFunc func(vals []float64) float64

// RemoveZoning collapses the zone dimension of every segment using fn,
// producing a zoneless vector on the same segmentation.
//
// Parameters:
//   - fn: The reduction applied to each segment's zone values
//
// Returns:
//   - *Vector: A new zoneless vector
//   - error: ErrNilReduceFunc or ErrZoningRequired for an already zoneless
//     receiver
func (v *Vector) RemoveZoning(fn ReduceFunc) (*Vector, error) {
	const operator = "remove_zoning"
	defer v.observeOperator(operator, time.Now())

	if fn == nil {
		return nil, v.fail(operator, ErrNilReduceFunc)
	}
	if v.zoning == nil {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: vector is already zoneless", ErrZoningRequired))
	}

	data := make(map[string][]float64, len(v.data))
	for key, vals := range v.data {
		data[key] = []float64{fn(vals)}
	}

	return v.derive(nil, v.segmentation, v.timeFormat, data), nil
}

// SumZoning collapses the zone dimension by summation. Equivalent to
// RemoveZoning with a sum reduction.
func (v *Vector) SumZoning() (*Vector, error) {
	return v.RemoveZoning(sumSlice)
}
