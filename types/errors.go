package types

import "errors"

// Sentinel errors for the dvec library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("...: %w", err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by failure class (segmentation, zoning, integrity, invariant)
//   - Use consistent messages across similar error types

// Segmentation errors - violations of the segment algebra contract.
var (
	// ErrUnknownSegments is returned when data carries segment keys the
	// segmentation does not define.
	ErrUnknownSegments = errors.New("unknown segment keys")

	// ErrSegmentationMismatch is returned when an operation requires a
	// specific segmentation relationship between operands and the oracle
	// reports none.
	ErrSegmentationMismatch = errors.New("segmentation mismatch")

	// ErrUnknownDimension is returned when per-dimension values do not line
	// up with the segmentation's dimension list.
	ErrUnknownDimension = errors.New("unknown segment dimension")

	// ErrBadMapping is returned when an oracle mapping does not partition the
	// input key set (duplicated, unconsumed or unknown keys).
	ErrBadMapping = errors.New("invalid segmentation mapping")

	// ErrUnknownSegmentation is returned when a resolver has no segmentation
	// registered under a persisted name.
	ErrUnknownSegmentation = errors.New("unknown segmentation name")
)

// Zoning errors - violations of the zone system contract.
var (
	// ErrZoningRequired is returned when an operation needs a zoned vector
	// or a target zoning and none is present.
	ErrZoningRequired = errors.New("zoning system required")

	// ErrZoningMismatch is returned when two operands carry different
	// non-nil zoning systems.
	ErrZoningMismatch = errors.New("zoning systems do not match")

	// ErrBadTranslation is returned when a translation matrix is missing or
	// its shape does not match the zonings it claims to connect.
	ErrBadTranslation = errors.New("invalid zone translation")

	// ErrUnknownZones is returned when tabular input carries zone IDs the
	// zoning system does not define.
	ErrUnknownZones = errors.New("unknown zone identifiers")

	// ErrUnknownZoning is returned when a resolver has no zoning registered
	// under a persisted name.
	ErrUnknownZoning = errors.New("unknown zoning name")
)

// Time format errors - violations of the temporal normalization contract.
var (
	// ErrTimeFormatRequired is returned when the segmentation carries a
	// time-period dimension but no time format was supplied, or when a
	// conversion starts from an unset format.
	ErrTimeFormatRequired = errors.New("time format required")

	// ErrTimeFormatNotAllowed is returned when a time format is supplied for
	// a segmentation without a time-period dimension.
	ErrTimeFormatNotAllowed = errors.New("time format not allowed without a time dimension")

	// ErrTimeDimensionRequired is returned when an operation needs a
	// time-period dimension and the segmentation has none.
	ErrTimeDimensionRequired = errors.New("time-period dimension required")

	// ErrBadTimeFormat is returned when a string names no known time format.
	ErrBadTimeFormat = errors.New("invalid time format")

	// ErrBadTimeFormatConversion is returned when no conversion exists
	// between two time formats (unset operand or identical formats).
	ErrBadTimeFormatConversion = errors.New("invalid time format conversion")

	// ErrMissingConversionFactors is returned when the segmentation carries
	// time periods with no known conversion factor.
	ErrMissingConversionFactors = errors.New("missing time conversion factors")
)

// Data integrity errors - malformed tabular or dictionary input.
var (
	// ErrDuplicateRows is returned when tabular input repeats a
	// (zone, segment) combination.
	ErrDuplicateRows = errors.New("duplicate zone and segment rows")

	// ErrExtraColumns is returned when a row's dimension values do not match
	// the segmentation's dimension count.
	ErrExtraColumns = errors.New("row values do not match segmentation dimensions")

	// ErrBadVectorLength is returned when a segment's value slice does not
	// match the zone count.
	ErrBadVectorLength = errors.New("value length does not match zone count")
)

// Invariant violations - hard failures of mass-preservation checks.
var (
	// ErrMassNotPreserved is returned when a transformation that must
	// conserve total demand changes it beyond tolerance.
	ErrMassNotPreserved = errors.New("total demand not preserved")

	// ErrZeroSplitWeights is returned when a split group's weights sum to
	// zero and no split fractions can be derived.
	ErrZeroSplitWeights = errors.New("split weights sum to zero")
)

// IsIntegrityError reports whether err indicates malformed input data rather
// than misuse of the API, so callers can route data errors back to whoever
// produced the file.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true for duplicate rows, unknown zones, unknown segments and
//     mismatched row shapes
func IsIntegrityError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrDuplicateRows) ||
		errors.Is(err, ErrExtraColumns) ||
		errors.Is(err, ErrUnknownZones) ||
		errors.Is(err, ErrUnknownSegments)
}
