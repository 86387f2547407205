package dvec

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/tdmkit/dvec/types"
)

// Expand broadens this vector with the extra dimensions carried by weights,
// distributing each source segment's values across the new combinations.
//
// The weights vector supplies the distribution: for a well-formed expansion
// the weight segments multiplied onto one source segment sum to 1, so the
// total is unchanged. That is enforced after the arithmetic; a result whose
// total drifts from the source beyond the configured mass tolerance fails
// with ErrMassNotPreserved rather than silently dropping or duplicating
// demand.
//
// Parameters:
//   - weights: The expansion weight vector
//
// Returns:
//   - *Vector: A new vector on the expanded segmentation
//   - error: ErrNilVector, ErrZoningMismatch, ErrSegmentationMismatch,
//     ErrBadMapping or ErrMassNotPreserved
func (v *Vector) Expand(weights *Vector) (*Vector, error) {
	const operator = "expand"
	defer v.observeOperator(operator, time.Now())

	if weights == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: expansion weights", ErrNilVector))
	}

	zoning, err := resultZoning(v, weights)
	if err != nil {
		return nil, v.fail(operator, err)
	}

	mapping, result, err := v.segmentation.Expand(weights.segmentation)
	if err != nil {
		return nil, v.fail(operator, err)
	}

	data := make(map[string][]float64, len(mapping))
	for outKey, pair := range mapping {
		src, ok := v.data[pair.Left]
		if !ok {
			return nil, v.fail(operator, fmt.Errorf(
				"%w: expand pair names unknown source segment %q", ErrBadMapping, pair.Left))
		}
		w, ok := weights.data[pair.Right]
		if !ok {
			return nil, v.fail(operator, fmt.Errorf(
				"%w: expand pair names unknown weight segment %q", ErrBadMapping, pair.Right))
		}
		data[outKey] = broadcastMul(src, w)
	}

	out := v.derive(zoning, result, v.chooseTimeFormat(weights), data)
	if !v.TotalIsClose(out, v.cfg.MassRelTol, v.cfg.MassAbsTol) {
		before, after := v.Total(), out.Total()
		v.logger.Error("expansion changed the vector total",
			"segmentation", v.segmentation.Name(),
			"expanded", result.Name(),
			"before", before,
			"after", after,
		)
		return nil, v.fail(operator, fmt.Errorf(
			"%w: expanding %q to %q changed the total from %v to %v",
			types.ErrMassNotPreserved, v.segmentation.Name(), result.Name(), before, after))
	}

	return out, nil
}

// SplitLike disaggregates this vector into template's finer segmentation,
// using template's own values as the split weights.
//
// For each coarse segment the fine segments it maps onto receive a share
// proportional to the template's zone-mean value for that fine segment,
// normalised within the coarse group. The same share applies across all
// zones, so the split preserves each coarse segment's values exactly.
//
// Parameters:
//   - template: A vector on the finer segmentation supplying split weights
//
// Returns:
//   - *Vector: A new vector on template's segmentation
//   - error: ErrNilVector, ErrSegmentationMismatch, ErrBadMapping or
//     ErrZeroSplitWeights
func (v *Vector) SplitLike(template *Vector) (*Vector, error) {
	const operator = "split_like"
	defer v.observeOperator(operator, time.Now())

	if template == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: split template", ErrNilVector))
	}

	mapping, err := v.segmentation.Split(template.segmentation)
	if err != nil {
		return nil, v.fail(operator, err)
	}

	data := make(map[string][]float64, len(template.segmentation.SegmentKeys()))
	for coarseKey, fineKeys := range mapping {
		src, ok := v.data[coarseKey]
		if !ok {
			return nil, v.fail(operator, fmt.Errorf(
				"%w: split mapping names unknown source segment %q", ErrBadMapping, coarseKey))
		}

		groupSum := 0.0
		means := make([]float64, len(fineKeys))
		for i, fine := range fineKeys {
			vals, ok := template.data[fine]
			if !ok {
				return nil, v.fail(operator, fmt.Errorf(
					"%w: split mapping names unknown template segment %q", ErrBadMapping, fine))
			}
			means[i] = meanSlice(vals)
			groupSum += means[i]
		}
		if groupSum == 0 {
			return nil, v.fail(operator, fmt.Errorf(
				"%w: template weights for segment %q sum to zero",
				types.ErrZeroSplitWeights, coarseKey))
		}

		for i, fine := range fineKeys {
			data[fine] = scaled(src, means[i]/groupSum)
		}
	}

	return v.derive(v.zoning, template.segmentation, v.chooseTimeFormat(template), data), nil
}

// Subset restricts the vector to the segments that survive in target.
//
// Subsetting deliberately discards the dropped segments' values; it is the
// one operator that does not preserve the vector total. Every target segment
// must exist in this vector.
//
// Parameters:
//   - target: The restricted segmentation to subset onto
//
// Returns:
//   - *Vector: A new vector on target
//   - error: ErrSegmentationRequired, ErrSegmentationMismatch or
//     ErrUnknownSegments
func (v *Vector) Subset(target types.Segmentation) (*Vector, error) {
	const operator = "subset"
	defer v.observeOperator(operator, time.Now())

	if target == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: subset target", ErrSegmentationRequired))
	}

	keys, err := v.segmentation.Subset(target)
	if err != nil {
		return nil, v.fail(operator, err)
	}

	var unknown []string
	data := make(map[string][]float64, len(keys))
	for _, key := range keys {
		vals, ok := v.data[key]
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		data[key] = slices.Clone(vals)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, v.fail(operator, fmt.Errorf("%w: %v not in segmentation %q",
			types.ErrUnknownSegments, unknown, v.segmentation.Name()))
	}

	return v.derive(v.zoning, target, v.timeFormat, data), nil
}
