package types

import (
	"fmt"
	"sort"
)

// Segmentation is the segment algebra oracle consumed by the vector engine.
//
// A segmentation defines a finite set of valid segment keys (the leaf
// combinations of its descriptive dimensions) and answers how that set
// combines with other segmentations under multiplication, aggregation,
// splitting, expansion and subsetting. The engine never inspects dimension
// semantics itself; every combination rule comes from this interface.
//
// Implementations must be safe for concurrent use: the engine shares a
// single segmentation reference across parallel workers.
type Segmentation interface {
	// Name returns the unique name of this segmentation.
	Name() string

	// SegmentKeys returns every valid segment key in a stable order.
	// The engine treats this as the exact key set a vector must carry.
	SegmentKeys() []string

	// HasSegment reports whether key is a valid segment of this segmentation.
	HasSegment(key string) bool

	// DimensionNames returns the ordered component dimension names.
	// Composite segment keys join one value per dimension in this order.
	DimensionNames() []string

	// ComposeKey builds a composite segment key from one value per
	// dimension, in DimensionNames order.
	//
	// Returns:
	//   - string: The composite key
	//   - error: ErrUnknownDimension if the value count does not match the
	//     dimension count
	ComposeKey(values []string) (string, error)

	// DecomposeKey splits a composite segment key back into its per-dimension
	// values.
	//
	// Returns:
	//   - []string: One value per dimension, in DimensionNames order
	//   - error: ErrUnknownSegments if key is not a valid segment
	DecomposeKey(key string) ([]string, error)

	// Multiply answers how this segmentation combines with other under
	// elementwise multiplication.
	//
	// Returns:
	//   - MultiplyMapping: result key -> (left key, right key)
	//   - Segmentation: The resulting segmentation
	//   - error: ErrSegmentationMismatch if the two cannot combine
	Multiply(other Segmentation) (MultiplyMapping, Segmentation, error)

	// Aggregate answers how this segmentation sums into the coarser target.
	//
	// Returns:
	//   - AggregationMapping: target key -> input keys to sum
	//   - error: ErrSegmentationMismatch if target is not an aggregation of this
	Aggregate(target Segmentation) (AggregationMapping, error)

	// SplitCompound is the aggregation mapping for segmentations whose single
	// compound dimension encodes several independent attributes. The engine
	// applies the same sum-and-regroup logic as Aggregate.
	SplitCompound(target Segmentation) (AggregationMapping, error)

	// Split answers how each of this segmentation's (coarse) keys distributes
	// across the finer target keys.
	Split(target Segmentation) (SplitMapping, error)

	// Expand answers how this segmentation broadens with the extra dimensions
	// carried by other.
	//
	// Returns:
	//   - ExpandMapping: result key -> (source key, weight key)
	//   - Segmentation: The resulting segmentation
	//   - error: ErrSegmentationMismatch if the two cannot combine
	Expand(other Segmentation) (ExpandMapping, Segmentation, error)

	// Subset returns the keys of this segmentation that survive restriction
	// to target. The selection is explicitly partial; dropped keys drop their
	// mass.
	Subset(target Segmentation) ([]string, error)

	// HasTimeDimension reports whether this segmentation carries a
	// time-period dimension.
	HasTimeDimension() bool

	// TimePeriodGroups returns, for each time period, the segment keys that
	// carry that period value.
	//
	// Returns:
	//   - map[TimePeriod][]string: Period -> member keys
	//   - error: ErrTimeDimensionRequired if there is no time dimension
	TimePeriodGroups() (map[TimePeriod][]string, error)

	// WeekdaySegmentGroups groups segment keys that differ only in their
	// weekday time periods. Each group is balanced jointly when time-period
	// granularity must not be independently rescaled.
	WeekdaySegmentGroups() ([][]string, error)

	// WeekendSegmentGroups is the weekend counterpart of WeekdaySegmentGroups.
	WeekendSegmentGroups() ([][]string, error)
}

// SegmentPair names the two source segments whose values are multiplied to
// produce one output segment.
type SegmentPair struct {
	// Left is the segment key read from the left operand.
	Left string

	// Right is the segment key read from the right operand.
	Right string
}

// MultiplyMapping maps each output segment key to the pair of source keys
// whose values are multiplied to produce it.
type MultiplyMapping map[string]SegmentPair

// ExpandMapping maps each output segment key to the (source, weight) pair
// whose values are multiplied to produce it. Structurally identical to
// MultiplyMapping; returned by Expand where the right-hand operand is a
// weight distribution.
type ExpandMapping map[string]SegmentPair

// AggregationMapping maps each output segment key to the input keys whose
// values are summed to produce it.
type AggregationMapping map[string][]string

// SplitMapping maps each coarse segment key to the finer keys its value is
// distributed across.
type SplitMapping map[string][]string

// Validate checks that the mapping consumes every input key exactly once.
//
// Aggregation only preserves mass when the output groups partition the input
// key set: a key listed twice is double-counted, a key never listed loses its
// mass, and a key outside the input set has no value to read.
//
// Parameters:
//   - inputs: The complete input segment key set being aggregated
//
// Returns:
//   - error: ErrBadMapping naming the offending keys, or nil
func (m AggregationMapping) Validate(inputs []string) error {
	counts := make(map[string]int, len(inputs))
	for _, k := range inputs {
		counts[k] = 0
	}

	var unknown []string
	for _, group := range m {
		for _, k := range group {
			if _, ok := counts[k]; !ok {
				unknown = append(unknown, k)
				continue
			}
			counts[k]++
		}
	}

	var dup, missing []string
	for _, k := range inputs {
		switch counts[k] {
		case 0:
			missing = append(missing, k)
		case 1:
		default:
			dup = append(dup, k)
		}
	}

	if len(dup) == 0 && len(missing) == 0 && len(unknown) == 0 {
		return nil
	}

	sort.Strings(dup)
	sort.Strings(missing)
	sort.Strings(unknown)

	return fmt.Errorf("%w: duplicated %v, unconsumed %v, unknown %v",
		ErrBadMapping, dup, missing, unknown)
}
