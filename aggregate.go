package dvec

import (
	"fmt"
	"time"

	"github.com/tdmkit/dvec/types"
)

// Aggregate sums groups of segments into the coarser target segmentation.
//
// The oracle's aggregation mapping must partition this vector's key set:
// every input key summed into exactly one output key. That property is what
// makes aggregation mass-preserving, so it is checked before any arithmetic
// and violations fail with ErrBadMapping.
//
// Parameters:
//   - target: The segmentation to aggregate into
//
// Returns:
//   - *Vector: A new vector on target with summed values
//   - error: ErrSegmentationRequired, ErrSegmentationMismatch or ErrBadMapping
func (v *Vector) Aggregate(target types.Segmentation) (*Vector, error) {
	return v.aggregateWith("aggregate", target, v.segmentation.Aggregate)
}

// AggregateSplitCompound aggregates into target through the oracle's
// compound-dimension mapping.
//
// Some segmentations carry a single compound dimension that encodes several
// independent attributes (a combined traveller-type code, for example).
// Regrouping those needs the compound dimension split apart first; the
// oracle exposes that as a distinct mapping query and the summing logic here
// is identical to Aggregate.
//
// Parameters:
//   - target: The segmentation to aggregate into
//
// Returns:
//   - *Vector: A new vector on target with summed values
//   - error: ErrSegmentationRequired, ErrSegmentationMismatch or ErrBadMapping
func (v *Vector) AggregateSplitCompound(target types.Segmentation) (*Vector, error) {
	return v.aggregateWith("aggregate_split_compound", target, v.segmentation.SplitCompound)
}

func (v *Vector) aggregateWith(
	operator string,
	target types.Segmentation,
	mappingFn func(types.Segmentation) (types.AggregationMapping, error),
) (*Vector, error) {
	defer v.observeOperator(operator, time.Now())

	if target == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: aggregation target", ErrSegmentationRequired))
	}

	mapping, err := mappingFn(target)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	if err := mapping.Validate(v.segmentation.SegmentKeys()); err != nil {
		return nil, v.fail(operator, fmt.Errorf("aggregating %q to %q: %w",
			v.segmentation.Name(), target.Name(), err))
	}

	width := vectorWidth(v.zoning)
	data := make(map[string][]float64, len(mapping))
	for outKey, inKeys := range mapping {
		acc := make([]float64, width)
		for _, key := range inKeys {
			addInto(acc, v.data[key])
		}
		data[outKey] = acc
	}

	return v.derive(v.zoning, target, v.timeFormat, data), nil
}
