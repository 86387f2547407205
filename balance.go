package dvec

import (
	"fmt"
	"time"

	"github.com/tdmkit/dvec/types"
)

// BalanceOption adjusts how BalanceAtSegments controls a vector.
type BalanceOption func(*balanceOptions)

type balanceOptions struct {
	groupTimePeriods bool
}

// BalanceGroupTimePeriods balances weekday and weekend time periods as two
// joint groups instead of controlling every segment independently. A shared
// factor per group keeps the relative split between its time periods intact.
// Requires a segmentation with a time-period dimension.
func BalanceGroupTimePeriods() BalanceOption {
	return func(o *balanceOptions) {
		o.groupTimePeriods = true
	}
}

// BalanceAtSegments scales each segment so its total matches the same
// segment's total in other, ignoring how the values split across zones.
//
// Effectively self[segment] *= sum(other[segment]) / sum(self[segment]).
// Non-positive values are replaced by the configured balance infill on both
// sides before the sums are taken, so empty segments pick up other's mass
// spread evenly instead of dividing by zero. The two vectors must share a
// segmentation; their zonings may differ since only segment totals are read
// from other.
//
// Parameters:
//   - other: The vector whose segment totals this one is controlled to
//   - opts: Optional behaviour flags (BalanceGroupTimePeriods)
//
// Returns:
//   - *Vector: A new controlled vector on this vector's zoning
//   - error: ErrNilVector, ErrSegmentationMismatch or ErrBadMapping
func (v *Vector) BalanceAtSegments(other *Vector, opts ...BalanceOption) (*Vector, error) {
	const operator = "balance_at_segments"
	defer v.observeOperator(operator, time.Now())

	if other == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: balance target", ErrNilVector))
	}
	if v.segmentation.Name() != other.segmentation.Name() {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: balancing %q against %q, call SplitLike to align them first",
			types.ErrSegmentationMismatch, v.segmentation.Name(), other.segmentation.Name()))
	}

	var o balanceOptions
	for _, opt := range opts {
		opt(&o)
	}

	infill := v.cfg.BalanceInfill
	data := make(map[string][]float64, len(v.data))

	if !o.groupTimePeriods {
		for key, selfVals := range v.data {
			selfFilled := infillNonPositive(selfVals, infill)
			otherFilled := infillNonPositive(other.data[key], infill)
			data[key] = scaled(selfFilled, sumSlice(otherFilled)/sumSlice(selfFilled))
		}

		return v.derive(v.zoning, v.segmentation, v.timeFormat, data), nil
	}

	weekday, err := v.segmentation.WeekdaySegmentGroups()
	if err != nil {
		return nil, v.fail(operator, err)
	}
	weekend, err := v.segmentation.WeekendSegmentGroups()
	if err != nil {
		return nil, v.fail(operator, err)
	}

	balanced := 0
	for _, groups := range [][][]string{weekday, weekend} {
		for _, group := range groups {
			selfSum, otherSum := 0.0, 0.0
			selfFilled := make([][]float64, len(group))
			for i, key := range group {
				selfVals, ok := v.data[key]
				if !ok {
					return nil, v.fail(operator, fmt.Errorf(
						"%w: time-period group names unknown segment %q", types.ErrBadMapping, key))
				}
				selfFilled[i] = infillNonPositive(selfVals, infill)
				selfSum += sumSlice(selfFilled[i])
				otherSum += sumSlice(infillNonPositive(other.data[key], infill))
			}

			factor := otherSum / selfSum
			for i, key := range group {
				data[key] = scaled(selfFilled[i], factor)
				balanced++
			}
		}
	}
	if balanced != len(v.data) {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: weekday and weekend groups cover %d of %d segments",
			types.ErrBadMapping, balanced, len(v.data)))
	}

	return v.derive(v.zoning, v.segmentation, v.timeFormat, data), nil
}

// infillNonPositive returns a copy of vals with every value <= 0 replaced by
// infill.
func infillNonPositive(vals []float64, infill float64) []float64 {
	out := make([]float64, len(vals))
	for i, x := range vals {
		if x <= 0 {
			out[i] = infill
		} else {
			out[i] = x
		}
	}

	return out
}
