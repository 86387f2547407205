package dvec

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/tdmkit/dvec/chunk"
	"github.com/tdmkit/dvec/internal/logger"
	"github.com/tdmkit/dvec/internal/metrics"
	"github.com/tdmkit/dvec/types"
)

// Vector is a segmented demand vector: one numeric array per valid segment
// key, each array indexed by zone.
//
// A vector always carries exactly the segment keys its segmentation defines.
// Zoned vectors hold one value per zone in ZoneIDs order; zoneless vectors
// hold a single scalar per segment. Vectors are immutable after
// construction: every operator returns a new Vector and no method mutates
// its receiver.
type Vector struct {
	zoning       types.Zoning
	segmentation types.Segmentation
	timeFormat   types.TimeFormat
	data         map[string][]float64

	cfg     Config
	logger  types.Logger
	metrics types.MetricsCollector
}

// New constructs a vector from a segment-keyed map of values.
//
// Every key must be a valid segment of the segmentation; segments absent
// from data are infilled with the WithInfill value (default 0). Zoned
// vectors require one value per zone for every supplied segment; zoneless
// vectors require single-element slices.
//
// Parameters:
//   - zoning: Zone system, or nil for a zoneless vector
//   - segmentation: Segment algebra oracle (required)
//   - data: Segment key -> values (may be nil to infill everything)
//   - opts: Optional configuration (WithConfig, WithTimeFormat, ...)
//
// Returns:
//   - *Vector: The validated vector
//   - error: ErrUnknownSegments, ErrBadVectorLength, ErrTimeFormatRequired,
//     ErrTimeFormatNotAllowed, ErrSegmentationRequired or ErrInvalidConfig
func New(zoning types.Zoning, segmentation types.Segmentation, data map[string][]float64, opts ...Option) (*Vector, error) {
	o, err := resolveOptions(segmentation, opts)
	if err != nil {
		return nil, err
	}

	width := vectorWidth(zoning)

	var unknown []string
	out := make(map[string][]float64, len(segmentation.SegmentKeys()))
	for key, vals := range data {
		if !segmentation.HasSegment(key) {
			unknown = append(unknown, key)
			continue
		}
		if len(vals) != width {
			return nil, fmt.Errorf("%w: segment %q has %d values, want %d",
				types.ErrBadVectorLength, key, len(vals), width)
		}
		out[key] = slices.Clone(vals)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %v not in segmentation %q",
			types.ErrUnknownSegments, unknown, segmentation.Name())
	}

	infilled := infillMissing(out, segmentation, width, o.infill)

	v := &Vector{
		zoning:       zoning,
		segmentation: segmentation,
		timeFormat:   o.timeFormat,
		data:         out,
		cfg:          o.cfg,
		logger:       o.logger,
		metrics:      o.metrics,
	}

	v.metrics.RecordSegmentsInfilled(infilled)
	v.metrics.RecordVectorSize(len(out), width)
	v.logger.Debug("constructed vector",
		"segmentation", segmentation.Name(),
		"zoning", zoningName(zoning),
		"segments", len(out),
		"infilled", infilled,
	)

	return v, nil
}

// resolveOptions applies defaults, validates the configuration and checks
// the time format against the segmentation's time dimension.
func resolveOptions(segmentation types.Segmentation, opts []Option) (*vectorOptions, error) {
	if segmentation == nil {
		return nil, ErrSegmentationRequired
	}

	o := &vectorOptions{
		cfg:        DefaultConfig(),
		logger:     logger.NewNop(),
		metrics:    metrics.NewNop(),
		timeFormat: types.TimeFormatUnset,
	}
	for _, opt := range opts {
		opt(o)
	}

	SetDefaults(&o.cfg)
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	if segmentation.HasTimeDimension() {
		if !o.timeFormat.Valid() {
			return nil, fmt.Errorf("%w: segmentation %q has a time-period dimension",
				types.ErrTimeFormatRequired, segmentation.Name())
		}
	} else if o.timeFormat != types.TimeFormatUnset {
		return nil, fmt.Errorf("%w: segmentation %q",
			types.ErrTimeFormatNotAllowed, segmentation.Name())
	}

	return o, nil
}

// derive builds an operator result without re-validating inputs the oracle
// already shaped. The receiver's configuration, logger and metrics carry
// over; segments the mapping never produced are infilled with zeros so the
// complete-key-set invariant holds on every derived vector.
func (v *Vector) derive(zoning types.Zoning, segmentation types.Segmentation, timeFormat types.TimeFormat, data map[string][]float64) *Vector {
	infillMissing(data, segmentation, vectorWidth(zoning), 0)

	// A result without a time dimension carries no time format, even when
	// the source vector did. Keeps the format/dimension pairing intact for
	// aggregations that sum the time periods away.
	if !segmentation.HasTimeDimension() {
		timeFormat = types.TimeFormatUnset
	}

	return &Vector{
		zoning:       zoning,
		segmentation: segmentation,
		timeFormat:   timeFormat,
		data:         data,
		cfg:          v.cfg,
		logger:       v.logger,
		metrics:      v.metrics,
	}
}

// pool builds the worker pool the vector's operators fan out on.
func (v *Vector) pool() chunk.Pool {
	return chunk.NewPool(v.cfg.ProcessCount)
}

// infillMissing adds a constant-valued entry for every segmentation key
// absent from data. Returns the number of segments infilled.
func infillMissing(data map[string][]float64, segmentation types.Segmentation, width int, infill float64) int {
	infilled := 0
	for _, key := range segmentation.SegmentKeys() {
		if _, ok := data[key]; ok {
			continue
		}
		data[key] = constantSlice(width, infill)
		infilled++
	}

	return infilled
}

// vectorWidth returns the per-segment value count: the zone count for zoned
// vectors, 1 for zoneless.
func vectorWidth(zoning types.Zoning) int {
	if zoning == nil {
		return 1
	}

	return zoning.ZoneCount()
}

func zoningName(zoning types.Zoning) string {
	if zoning == nil {
		return ""
	}

	return zoning.Name()
}

// Zoning returns the vector's zone system, or nil for zoneless vectors.
func (v *Vector) Zoning() types.Zoning {
	return v.zoning
}

// Segmentation returns the vector's segment algebra oracle.
func (v *Vector) Segmentation() types.Segmentation {
	return v.segmentation
}

// TimeFormat returns the temporal normalization of the vector's values,
// TimeFormatUnset when the segmentation has no time-period dimension.
func (v *Vector) TimeFormat() types.TimeFormat {
	return v.timeFormat
}

// IsZoneless reports whether the vector has no spatial dimension.
func (v *Vector) IsZoneless() bool {
	return v.zoning == nil
}

// SegmentKeys returns the vector's segment keys in the segmentation's
// stable order.
func (v *Vector) SegmentKeys() []string {
	return v.segmentation.SegmentKeys()
}

// Value returns a copy of the values for one segment.
//
// Parameters:
//   - key: Segment key
//
// Returns:
//   - []float64: Zone-indexed values (single element when zoneless)
//   - error: ErrUnknownSegments if key is not a valid segment
func (v *Vector) Value(key string) ([]float64, error) {
	vals, ok := v.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in segmentation %q",
			types.ErrUnknownSegments, key, v.segmentation.Name())
	}

	return slices.Clone(vals), nil
}

// Scalar returns the single value for one segment of a zoneless vector.
//
// Parameters:
//   - key: Segment key
//
// Returns:
//   - float64: The segment's scalar value
//   - error: ErrVectorZoned for zoned vectors, ErrUnknownSegments for
//     unknown keys
func (v *Vector) Scalar(key string) (float64, error) {
	if v.zoning != nil {
		return 0, fmt.Errorf("%w: use Value for zoned vectors", ErrVectorZoned)
	}
	vals, ok := v.data[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q not in segmentation %q",
			types.ErrUnknownSegments, key, v.segmentation.Name())
	}

	return vals[0], nil
}

// Total returns the sum of every value across all segments and zones.
func (v *Vector) Total() float64 {
	total := 0.0
	for _, vals := range v.data {
		for _, x := range vals {
			total += x
		}
	}

	return total
}

// TotalIsClose reports whether the totals of two vectors agree within
// tolerance: |a-b| <= max(relTol*max(|a|,|b|), absTol).
//
// Parameters:
//   - other: Vector to compare against
//   - relTol: Relative tolerance against the larger magnitude
//   - absTol: Absolute tolerance floor
//
// Returns:
//   - bool: true when the totals agree
func (v *Vector) TotalIsClose(other *Vector, relTol, absTol float64) bool {
	if other == nil {
		return false
	}

	return floatsClose(v.Total(), other.Total(), relTol, absTol)
}

// floatsClose implements the symmetric relative-or-absolute closeness test
// used by every mass-preservation check.
func floatsClose(a, b, relTol, absTol float64) bool {
	return math.Abs(a-b) <= math.Max(relTol*math.Max(math.Abs(a), math.Abs(b)), absTol)
}

// observeOperator records one operator invocation's wall time. Use with
// defer and time.Now at the top of the operator.
func (v *Vector) observeOperator(operator string, start time.Time) {
	v.metrics.RecordOperatorDuration(operator, time.Since(start).Seconds())
}

// fail records an operator error before it propagates to the caller.
func (v *Vector) fail(operator string, err error) error {
	v.metrics.RecordOperatorError(operator)

	return err
}

// Copy returns a deep copy of the vector. The zoning and segmentation
// references are shared; they are immutable by contract.
func (v *Vector) Copy() *Vector {
	data := make(map[string][]float64, len(v.data))
	for key, vals := range v.data {
		data[key] = slices.Clone(vals)
	}

	return &Vector{
		zoning:       v.zoning,
		segmentation: v.segmentation,
		timeFormat:   v.timeFormat,
		data:         data,
		cfg:          v.cfg,
		logger:       v.logger,
		metrics:      v.metrics,
	}
}
