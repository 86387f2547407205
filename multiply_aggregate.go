package dvec

import (
	"fmt"
	"sort"
	"time"

	"github.com/tdmkit/dvec/chunk"
	"github.com/tdmkit/dvec/types"
)

// MultiplyAggregate multiplies two vectors and aggregates the product into
// target in one fused pass.
//
// Multiplying into a fine intermediate segmentation and immediately
// aggregating back down is the dominant pattern when applying correction
// factors, and the intermediate product can be orders of magnitude larger
// than either input. MultiplyAggregate never materialises it: the output
// keys are chunked, and each worker computes and sums only the products its
// chunk needs. The result is identical to Multiply followed by Aggregate.
//
// Parameters:
//   - other: The vector to multiply with
//   - target: The segmentation to aggregate the product into
//
// Returns:
//   - *Vector: A new vector on target
//   - error: ErrNilVector, ErrZoningMismatch, ErrSegmentationMismatch or
//     ErrBadMapping
func (v *Vector) MultiplyAggregate(other *Vector, target types.Segmentation) (*Vector, error) {
	const operator = "multiply_aggregate"
	defer v.observeOperator(operator, time.Now())

	if other == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: multiply operand", ErrNilVector))
	}
	if target == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: aggregation target", ErrSegmentationRequired))
	}

	zoning, err := resultZoning(v, other)
	if err != nil {
		return nil, v.fail(operator, err)
	}

	multiplyMapping, product, err := v.segmentation.Multiply(other.segmentation)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	aggMapping, err := product.Aggregate(target)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	if err := aggMapping.Validate(product.SegmentKeys()); err != nil {
		return nil, v.fail(operator, fmt.Errorf("aggregating %q to %q: %w",
			product.Name(), target.Name(), err))
	}

	outKeys := make([]string, 0, len(aggMapping))
	for key := range aggMapping {
		outKeys = append(outKeys, key)
	}
	sort.Strings(outKeys)

	pool := v.pool()
	chunks := chunk.Split(outKeys, pool.KeyChunkSize(len(outKeys), 1))
	width := vectorWidth(zoning)

	tasks := make([]chunk.Task[map[string][]float64], 0, len(chunks))
	for _, keys := range chunks {
		// Slice out exactly the pairs and source rows this chunk touches so
		// the task closure reads nothing from the parent vectors.
		pairs := make(map[string]types.SegmentPair)
		left := make(map[string][]float64)
		right := make(map[string][]float64)
		for _, outKey := range keys {
			for _, productKey := range aggMapping[outKey] {
				pair, ok := multiplyMapping[productKey]
				if !ok {
					return nil, v.fail(operator, fmt.Errorf(
						"%w: product segment %q has no multiply pair", ErrBadMapping, productKey))
				}
				leftVals, ok := v.data[pair.Left]
				if !ok {
					return nil, v.fail(operator, fmt.Errorf(
						"%w: multiply pair names unknown segment %q", ErrBadMapping, pair.Left))
				}
				rightVals, ok := other.data[pair.Right]
				if !ok {
					return nil, v.fail(operator, fmt.Errorf(
						"%w: multiply pair names unknown segment %q", ErrBadMapping, pair.Right))
				}
				pairs[productKey] = pair
				left[pair.Left] = leftVals
				right[pair.Right] = rightVals
			}
		}

		tasks = append(tasks, func() (map[string][]float64, error) {
			out := make(map[string][]float64, len(keys))
			for _, outKey := range keys {
				acc := make([]float64, width)
				for _, productKey := range aggMapping[outKey] {
					pair := pairs[productKey]
					addInto(acc, broadcastMul(left[pair.Left], right[pair.Right]))
				}
				out[outKey] = acc
			}
			return out, nil
		})
	}

	results, err := chunk.Run(pool.Workers(), tasks)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	v.metrics.RecordChunkExecution(operator, len(tasks), pool.Workers())
	v.logger.Debug("multiplied and aggregated",
		"product", product.Name(),
		"target", target.Name(),
		"segments", len(outKeys),
		"chunks", len(tasks),
	)

	data := make(map[string][]float64, len(outKeys))
	for _, part := range results {
		for key, vals := range part {
			data[key] = vals
		}
	}

	return v.derive(zoning, target, v.chooseTimeFormat(other), data), nil
}
