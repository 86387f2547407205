package dvec

import (
	"fmt"
	"sort"
	"time"

	"github.com/tdmkit/dvec/types"
)

// ConvertTimeFormat rescales the vector from its current temporal
// normalization to another, such as average-week values to average-hour.
//
// Each time period has its own conversion factor, so every segment is scaled
// by the factor of the time period it carries. Converting to the current
// format returns a plain copy.
//
// Parameters:
//   - to: The target time format
//
// Returns:
//   - *Vector: A new vector normalised to the target format
//   - error: ErrTimeDimensionRequired, ErrBadTimeFormat,
//     ErrBadTimeFormatConversion, ErrMissingConversionFactors or
//     ErrBadMapping
func (v *Vector) ConvertTimeFormat(to types.TimeFormat) (*Vector, error) {
	const operator = "convert_time_format"
	defer v.observeOperator(operator, time.Now())

	if !v.segmentation.HasTimeDimension() {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: segmentation %q carries no time periods to convert",
			types.ErrTimeDimensionRequired, v.segmentation.Name()))
	}
	if !to.Valid() {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: conversion target must be a concrete format", types.ErrBadTimeFormat))
	}
	if to == v.timeFormat {
		return v.Copy(), nil
	}

	factors, err := v.timeFormat.ConversionFactors(to)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	groups, err := v.segmentation.TimePeriodGroups()
	if err != nil {
		return nil, v.fail(operator, err)
	}

	var missing []int
	for tp := range groups {
		if _, ok := factors[tp]; !ok {
			missing = append(missing, int(tp))
		}
	}
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, v.fail(operator, fmt.Errorf(
			"%w: converting %s to %s leaves time periods %v unconvertible",
			types.ErrMissingConversionFactors, v.timeFormat, to, missing))
	}

	converted := 0
	data := make(map[string][]float64, len(v.data))
	for tp, keys := range groups {
		factor := factors[tp]
		for _, key := range keys {
			vals, ok := v.data[key]
			if !ok {
				return nil, v.fail(operator, fmt.Errorf(
					"%w: time-period group names unknown segment %q", types.ErrBadMapping, key))
			}
			data[key] = scaled(vals, factor)
			converted++
		}
	}
	if converted != len(v.data) {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: time-period groups cover %d of %d segments",
			types.ErrBadMapping, converted, len(v.data)))
	}

	return v.derive(v.zoning, v.segmentation, to, data), nil
}
