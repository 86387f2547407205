package dvec

import (
	"errors"

	"github.com/tdmkit/dvec/types"
)

// Sentinel errors returned by the engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSegmentationRequired is returned when a vector is constructed
	// without a segmentation.
	ErrSegmentationRequired = errors.New("segmentation is required")

	// ErrNilVector is returned when an operator receives a nil operand.
	ErrNilVector = errors.New("vector is nil")

	// ErrVectorZoned is returned when a zoneless-only accessor is called on
	// a zoned vector.
	ErrVectorZoned = errors.New("vector has a zoning system")

	// ErrNilReduceFunc is returned when RemoveZoning is given a nil
	// reduction function.
	ErrNilReduceFunc = errors.New("reduction function is required")

	// ErrNilResolver is returned when Load is given a nil oracle resolver.
	ErrNilResolver = errors.New("resolver is required")
)

// Re-export the shared sentinel errors from the types package so callers can
// match engine failures without importing types directly. These are the same
// error values, so errors.Is works across both packages.
var (
	ErrUnknownSegments          = types.ErrUnknownSegments
	ErrSegmentationMismatch     = types.ErrSegmentationMismatch
	ErrUnknownDimension         = types.ErrUnknownDimension
	ErrBadMapping               = types.ErrBadMapping
	ErrUnknownSegmentation      = types.ErrUnknownSegmentation
	ErrZoningRequired           = types.ErrZoningRequired
	ErrZoningMismatch           = types.ErrZoningMismatch
	ErrBadTranslation           = types.ErrBadTranslation
	ErrUnknownZones             = types.ErrUnknownZones
	ErrUnknownZoning            = types.ErrUnknownZoning
	ErrTimeFormatRequired       = types.ErrTimeFormatRequired
	ErrTimeFormatNotAllowed     = types.ErrTimeFormatNotAllowed
	ErrTimeDimensionRequired    = types.ErrTimeDimensionRequired
	ErrBadTimeFormat            = types.ErrBadTimeFormat
	ErrBadTimeFormatConversion  = types.ErrBadTimeFormatConversion
	ErrMissingConversionFactors = types.ErrMissingConversionFactors
	ErrDuplicateRows            = types.ErrDuplicateRows
	ErrExtraColumns             = types.ErrExtraColumns
	ErrBadVectorLength          = types.ErrBadVectorLength
	ErrMassNotPreserved         = types.ErrMassNotPreserved
	ErrZeroSplitWeights         = types.ErrZeroSplitWeights
)
