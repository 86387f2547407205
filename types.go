package dvec

import "github.com/tdmkit/dvec/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual declarations.
//
// This pattern solves the "import cycle" problem by allowing side packages
// (segment, zoning, codec) to depend on `types` without depending on the root
// `dvec` package, while still providing a convenient `dvec.Segmentation`,
// `dvec.Logger`, etc. for users.
type (
	Segmentation      = types.Segmentation
	Zoning            = types.Zoning
	TranslationMatrix = types.TranslationMatrix
	TimeFormat        = types.TimeFormat
	TimePeriod        = types.TimePeriod
	Resolver          = types.Resolver
)

// Re-export the typed oracle mappings.
type (
	SegmentPair        = types.SegmentPair
	MultiplyMapping    = types.MultiplyMapping
	ExpandMapping      = types.ExpandMapping
	AggregationMapping = types.AggregationMapping
	SplitMapping       = types.SplitMapping
)

// Re-export the observability interfaces.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export TimeFormat constants.
const (
	TimeFormatUnset = types.TimeFormatUnset
	TimeFormatWeek  = types.TimeFormatWeek
	TimeFormatDay   = types.TimeFormatDay
	TimeFormatHour  = types.TimeFormatHour
)
