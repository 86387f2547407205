package dvec

import (
	"fmt"
	"time"

	"github.com/tdmkit/dvec/types"
)

// Multiply builds a new vector by elementwise-multiplying v and other.
//
// The segmentation oracle defines how the two operands' segment keys pair
// up and what segmentation the product carries. Zoning follows the operands:
// matching zonings are kept, a zoneless side broadcasts against the other
// side's zones, and two different zonings are an error.
//
// Multiplication is the mechanism for applying rates and splits, so it does
// not preserve total mass.
//
// Parameters:
//   - other: Right-hand operand
//
// Returns:
//   - *Vector: The product, carrying the result segmentation
//   - error: ErrNilVector, ErrZoningMismatch, ErrSegmentationMismatch or
//     ErrBadMapping
func (v *Vector) Multiply(other *Vector) (*Vector, error) {
	defer v.observeOperator("multiply", time.Now())

	if other == nil {
		return nil, v.fail("multiply", fmt.Errorf("%w: multiply operand", ErrNilVector))
	}

	zoning, err := resultZoning(v, other)
	if err != nil {
		return nil, v.fail("multiply", err)
	}

	mapping, resultSeg, err := v.segmentation.Multiply(other.segmentation)
	if err != nil {
		return nil, v.fail("multiply", err)
	}

	data := make(map[string][]float64, len(mapping))
	for key, pair := range mapping {
		left, ok := v.data[pair.Left]
		if !ok {
			return nil, v.fail("multiply", fmt.Errorf("%w: left key %q for output %q",
				types.ErrBadMapping, pair.Left, key))
		}
		right, ok := other.data[pair.Right]
		if !ok {
			return nil, v.fail("multiply", fmt.Errorf("%w: right key %q for output %q",
				types.ErrBadMapping, pair.Right, key))
		}
		data[key] = broadcastMul(left, right)
	}

	return v.derive(zoning, resultSeg, v.chooseTimeFormat(other), data), nil
}

// resultZoning resolves the zoning two operands combine under: matching
// zonings are kept, a nil side defers to the other, and two different
// non-nil zonings cannot combine.
func resultZoning(a, b *Vector) (types.Zoning, error) {
	switch {
	case sameZoning(a.zoning, b.zoning):
		return a.zoning, nil
	case a.zoning == nil:
		return b.zoning, nil
	case b.zoning == nil:
		return a.zoning, nil
	default:
		return nil, fmt.Errorf("%w: %q and %q",
			types.ErrZoningMismatch, a.zoning.Name(), b.zoning.Name())
	}
}

// sameZoning reports whether two zoning references describe the same system.
// Two nils match; a nil never matches a non-nil.
func sameZoning(a, b types.Zoning) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Name() == b.Name()
}

// chooseTimeFormat picks the time format a combination result carries: the
// receiver's when set, otherwise the other operand's. Two different set
// formats combine anyway, with a warning, since callers sometimes mix bases
// deliberately.
func (v *Vector) chooseTimeFormat(other *Vector) types.TimeFormat {
	if v.timeFormat != types.TimeFormatUnset &&
		other.timeFormat != types.TimeFormatUnset &&
		v.timeFormat != other.timeFormat {
		v.logger.Warn("operands carry different time formats",
			"left", v.timeFormat.String(),
			"right", other.timeFormat.String(),
		)
	}

	if v.timeFormat != types.TimeFormatUnset {
		return v.timeFormat
	}

	return other.timeFormat
}
