package segment

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tdmkit/dvec/types"
)

// TimeDimension is the reserved name of the time-period dimension. A Static
// segmentation with a dimension of this name carries time periods; its
// values must be the decimal time-period numbers.
const TimeDimension = "tp"

// Dimension is one named axis of a segmentation with its ordered value set.
type Dimension struct {
	// Name identifies the dimension, such as "p" for purpose or "m" for mode.
	Name string

	// Values is the ordered set of values the dimension takes.
	Values []string
}

// Compound declares that one dimension's values each encode several
// component attributes, and how to decode them.
type Compound struct {
	// Dimension names the compound dimension.
	Dimension string

	// Components names the attributes encoded in each compound value.
	Components []string

	// Decode maps every compound value to its component values, one per
	// entry of Components.
	Decode map[string][]string
}

// Option configures a Static segmentation under construction.
type Option func(*Static)

// WithCompound attaches a compound-dimension declaration, enabling
// SplitCompound aggregation through the decoded component attributes.
func WithCompound(c Compound) Option {
	return func(s *Static) {
		s.compound = &c
	}
}

// Static implements types.Segmentation from an ordered dimension table.
type Static struct {
	name     string
	dims     []Dimension
	compound *Compound

	keys     []string
	keySet   map[string]struct{}
	dimPos   map[string]int
	tpGroups map[types.TimePeriod][]string
}

var _ types.Segmentation = (*Static)(nil)

// NewStatic creates a segmentation from an ordered list of dimensions.
//
// Segment keys are the cross product of the dimension values, composed in
// dimension order with the last dimension varying fastest. A dimension named
// TimeDimension makes the segmentation time-aware; its values must be
// decimal time-period numbers.
//
// Parameters:
//   - name: Unique segmentation name
//   - dims: Ordered dimensions, each with at least one value
//   - opts: Optional declarations (WithCompound)
//
// Returns:
//   - *Static: Initialized segmentation
//   - error: Description of the first definition problem found
//
// Example:
//
//	seg, err := segment.NewStatic("p_m", []segment.Dimension{
//	    {Name: "p", Values: []string{"1", "2"}},
//	    {Name: "m", Values: []string{"car", "bus"}},
//	})
//	if err != nil { /* handle */ }
func NewStatic(name string, dims []Dimension, opts ...Option) (*Static, error) {
	s := &Static{
		name:   name,
		dimPos: make(map[string]int, len(dims)),
	}
	for _, opt := range opts {
		opt(s)
	}

	if name == "" {
		return nil, fmt.Errorf("segmentation name is required")
	}
	if len(dims) == 0 {
		return nil, fmt.Errorf("segmentation %q has no dimensions", name)
	}

	s.dims = make([]Dimension, len(dims))
	for i, d := range dims {
		if d.Name == "" {
			return nil, fmt.Errorf("segmentation %q: dimension %d has no name", name, i)
		}
		if _, dup := s.dimPos[d.Name]; dup {
			return nil, fmt.Errorf("segmentation %q: dimension %q repeated", name, d.Name)
		}
		if len(d.Values) == 0 {
			return nil, fmt.Errorf("segmentation %q: dimension %q has no values", name, d.Name)
		}
		if err := checkValues(name, d.Name, d.Values); err != nil {
			return nil, err
		}
		s.dimPos[d.Name] = i
		s.dims[i] = Dimension{Name: d.Name, Values: slices.Clone(d.Values)}
	}

	if err := s.checkTimeDimension(); err != nil {
		return nil, err
	}
	if err := s.checkCompound(); err != nil {
		return nil, err
	}

	s.keys = crossKeys(s.dims)
	s.keySet = make(map[string]struct{}, len(s.keys))
	for _, key := range s.keys {
		s.keySet[key] = struct{}{}
	}
	s.buildTimePeriodGroups()

	return s, nil
}

func checkValues(segName, dimName string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, val := range values {
		if val == "" {
			return fmt.Errorf("segmentation %q: dimension %q has an empty value", segName, dimName)
		}
		if strings.Contains(val, types.SegmentKeySeparator) {
			return fmt.Errorf("segmentation %q: dimension %q value %q contains the key separator",
				segName, dimName, val)
		}
		if _, dup := seen[val]; dup {
			return fmt.Errorf("segmentation %q: dimension %q value %q repeated", segName, dimName, val)
		}
		seen[val] = struct{}{}
	}

	return nil
}

func (s *Static) checkTimeDimension() error {
	pos, ok := s.dimPos[TimeDimension]
	if !ok {
		return nil
	}

	for _, val := range s.dims[pos].Values {
		tp, err := strconv.Atoi(val)
		if err != nil || !types.ValidTimePeriod(types.TimePeriod(tp)) {
			return fmt.Errorf("segmentation %q: time-period value %q is not a known time period",
				s.name, val)
		}
	}

	return nil
}

func (s *Static) checkCompound() error {
	if s.compound == nil {
		return nil
	}

	c := s.compound
	pos, ok := s.dimPos[c.Dimension]
	if !ok {
		return fmt.Errorf("segmentation %q: compound dimension %q does not exist", s.name, c.Dimension)
	}
	if len(c.Components) == 0 {
		return fmt.Errorf("segmentation %q: compound dimension %q declares no components", s.name, c.Dimension)
	}
	seen := make(map[string]struct{}, len(c.Components))
	for _, comp := range c.Components {
		if comp == "" {
			return fmt.Errorf("segmentation %q: compound dimension %q has an unnamed component", s.name, c.Dimension)
		}
		if _, dup := seen[comp]; dup {
			return fmt.Errorf("segmentation %q: compound component %q repeated", s.name, comp)
		}
		if _, clash := s.dimPos[comp]; clash {
			return fmt.Errorf("segmentation %q: compound component %q clashes with a dimension name", s.name, comp)
		}
		seen[comp] = struct{}{}
	}

	for _, val := range s.dims[pos].Values {
		decoded, ok := c.Decode[val]
		if !ok {
			return fmt.Errorf("segmentation %q: compound value %q has no decoding", s.name, val)
		}
		if len(decoded) != len(c.Components) {
			return fmt.Errorf("segmentation %q: compound value %q decodes to %d values, want %d",
				s.name, val, len(decoded), len(c.Components))
		}
		for _, dv := range decoded {
			if dv == "" || strings.Contains(dv, types.SegmentKeySeparator) {
				return fmt.Errorf("segmentation %q: compound value %q decodes to invalid value %q",
					s.name, val, dv)
			}
		}
	}

	return nil
}

// crossKeys composes the cross product of the dimension values in dimension
// order, last dimension fastest.
func crossKeys(dims []Dimension) []string {
	total := 1
	for _, d := range dims {
		total *= len(d.Values)
	}

	keys := make([]string, 0, total)
	idx := make([]int, len(dims))
	parts := make([]string, len(dims))
	for {
		for i, d := range dims {
			parts[i] = d.Values[idx[i]]
		}
		keys = append(keys, types.JoinSegmentKey(parts))

		i := len(dims) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < len(dims[i].Values) {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return keys
		}
	}
}

func (s *Static) buildTimePeriodGroups() {
	pos, ok := s.dimPos[TimeDimension]
	if !ok {
		return
	}

	s.tpGroups = make(map[types.TimePeriod][]string)
	for _, key := range s.keys {
		parts := types.SplitSegmentKey(key)
		tp, _ := strconv.Atoi(parts[pos])
		period := types.TimePeriod(tp)
		s.tpGroups[period] = append(s.tpGroups[period], key)
	}
}

// Name returns the segmentation's unique name.
func (s *Static) Name() string {
	return s.name
}

// SegmentKeys returns every segment key in definition order.
func (s *Static) SegmentKeys() []string {
	return slices.Clone(s.keys)
}

// HasSegment reports whether key is a valid segment.
func (s *Static) HasSegment(key string) bool {
	_, ok := s.keySet[key]

	return ok
}

// DimensionNames returns the ordered dimension names.
func (s *Static) DimensionNames() []string {
	names := make([]string, len(s.dims))
	for i, d := range s.dims {
		names[i] = d.Name
	}

	return names
}

// ComposeKey builds a segment key from one value per dimension.
func (s *Static) ComposeKey(values []string) (string, error) {
	if len(values) != len(s.dims) {
		return "", fmt.Errorf("%w: %d values for %d dimensions of %q",
			types.ErrUnknownDimension, len(values), len(s.dims), s.name)
	}

	return types.JoinSegmentKey(values), nil
}

// DecomposeKey splits a segment key back into per-dimension values.
func (s *Static) DecomposeKey(key string) ([]string, error) {
	if !s.HasSegment(key) {
		return nil, fmt.Errorf("%w: %q not in segmentation %q",
			types.ErrUnknownSegments, key, s.name)
	}

	return types.SplitSegmentKey(key), nil
}

// Multiply answers how this segmentation combines with other under
// elementwise multiplication. The result spans the union of both dimension
// sets; dimensions present on both sides must have identical value sets and
// act as the join columns.
func (s *Static) Multiply(other types.Segmentation) (types.MultiplyMapping, types.Segmentation, error) {
	pairs, result, err := s.pairMapping(other)
	if err != nil {
		return nil, nil, err
	}

	return types.MultiplyMapping(pairs), result, nil
}

// Expand answers how this segmentation broadens with the dimensions carried
// by other. Structurally identical to Multiply; the engine applies the
// mass-preservation contract that distinguishes expansion.
func (s *Static) Expand(other types.Segmentation) (types.ExpandMapping, types.Segmentation, error) {
	pairs, result, err := s.pairMapping(other)
	if err != nil {
		return nil, nil, err
	}

	return types.ExpandMapping(pairs), result, nil
}

// pairMapping builds the combined segmentation of s and other plus the
// result-key to (left, right) source-key mapping shared by Multiply and
// Expand.
func (s *Static) pairMapping(other types.Segmentation) (map[string]types.SegmentPair, *Static, error) {
	o, err := asStatic(other)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.combine(o)
	if err != nil {
		return nil, nil, err
	}

	leftProj, err := result.projector(s)
	if err != nil {
		return nil, nil, err
	}
	rightProj, err := result.projector(o)
	if err != nil {
		return nil, nil, err
	}

	pairs := make(map[string]types.SegmentPair, len(result.keys))
	for _, key := range result.keys {
		parts := types.SplitSegmentKey(key)
		pairs[key] = types.SegmentPair{
			Left:  types.JoinSegmentKey(leftProj(parts)),
			Right: types.JoinSegmentKey(rightProj(parts)),
		}
	}

	return pairs, result, nil
}

// combine returns the segmentation spanning the union of both dimension
// sets. When the sets are identical the receiver itself is returned so the
// established name survives; otherwise the result is named by joining its
// dimension names.
func (s *Static) combine(o *Static) (*Static, error) {
	dims := slices.Clone(s.dims)
	shared := 0
	for _, d := range o.dims {
		if i, ok := s.dimPos[d.Name]; ok {
			if !slices.Equal(s.dims[i].Values, d.Values) {
				return nil, fmt.Errorf("%w: dimension %q has different values in %q and %q",
					types.ErrSegmentationMismatch, d.Name, s.name, o.name)
			}
			shared++
			continue
		}
		dims = append(dims, d)
	}

	if shared == len(s.dims) && shared == len(o.dims) {
		return s, nil
	}

	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}

	return NewStatic(strings.Join(names, "_"), dims)
}

// projector maps decomposed keys of s onto the dimension order of target.
// Every target dimension must exist in s.
func (s *Static) projector(target *Static) (func(parts []string) []string, error) {
	pos := make([]int, len(target.dims))
	for i, d := range target.dims {
		p, ok := s.dimPos[d.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no dimension %q",
				types.ErrSegmentationMismatch, s.name, d.Name)
		}
		pos[i] = p
	}

	return func(parts []string) []string {
		out := make([]string, len(pos))
		for i, p := range pos {
			out[i] = parts[p]
		}
		return out
	}, nil
}

// Aggregate answers how this segmentation sums into the coarser target.
// Target dimensions must be a subset of this segmentation's dimensions.
func (s *Static) Aggregate(target types.Segmentation) (types.AggregationMapping, error) {
	t, err := asStatic(target)
	if err != nil {
		return nil, err
	}

	proj, err := s.projector(t)
	if err != nil {
		return nil, err
	}

	mapping := make(types.AggregationMapping, len(t.keys))
	for _, key := range s.keys {
		parts := types.SplitSegmentKey(key)
		outKey := types.JoinSegmentKey(proj(parts))
		if !t.HasSegment(outKey) {
			return nil, fmt.Errorf("%w: %q does not cover segment %q of %q",
				types.ErrSegmentationMismatch, t.name, key, s.name)
		}
		mapping[outKey] = append(mapping[outKey], key)
	}

	return mapping, nil
}

// SplitCompound aggregates through the compound dimension: every segment's
// compound value is decoded into its component attributes, and the target
// may select any mix of plain dimensions and decoded components.
func (s *Static) SplitCompound(target types.Segmentation) (types.AggregationMapping, error) {
	if s.compound == nil {
		return nil, fmt.Errorf("%w: %q has no compound dimension",
			types.ErrSegmentationMismatch, s.name)
	}
	t, err := asStatic(target)
	if err != nil {
		return nil, err
	}

	c := s.compound
	compPos := make(map[string]int, len(c.Components))
	for i, comp := range c.Components {
		compPos[comp] = i
	}
	compoundPos := s.dimPos[c.Dimension]

	// Each target dimension reads either a plain dimension of s or one
	// decoded component of the compound value.
	type picker struct {
		fromParts int
		fromComps int
	}
	pickers := make([]picker, len(t.dims))
	for i, d := range t.dims {
		if p, ok := s.dimPos[d.Name]; ok && d.Name != c.Dimension {
			pickers[i] = picker{fromParts: p, fromComps: -1}
			continue
		}
		if p, ok := compPos[d.Name]; ok {
			pickers[i] = picker{fromParts: -1, fromComps: p}
			continue
		}
		return nil, fmt.Errorf("%w: %q has no dimension or compound component %q",
			types.ErrSegmentationMismatch, s.name, d.Name)
	}

	mapping := make(types.AggregationMapping, len(t.keys))
	outVals := make([]string, len(t.dims))
	for _, key := range s.keys {
		parts := types.SplitSegmentKey(key)
		decoded, ok := c.Decode[parts[compoundPos]]
		if !ok {
			return nil, fmt.Errorf("%w: compound value %q has no decoding",
				types.ErrBadMapping, parts[compoundPos])
		}
		for i, p := range pickers {
			if p.fromComps >= 0 {
				outVals[i] = decoded[p.fromComps]
			} else {
				outVals[i] = parts[p.fromParts]
			}
		}
		outKey := types.JoinSegmentKey(outVals)
		if !t.HasSegment(outKey) {
			return nil, fmt.Errorf("%w: %q does not cover segment %q of %q",
				types.ErrSegmentationMismatch, t.name, key, s.name)
		}
		mapping[outKey] = append(mapping[outKey], key)
	}

	return mapping, nil
}

// Split answers how each of this segmentation's keys distributes across the
// finer target keys. The inverse of Aggregate: this segmentation's
// dimensions must be a subset of the target's.
func (s *Static) Split(target types.Segmentation) (types.SplitMapping, error) {
	t, err := asStatic(target)
	if err != nil {
		return nil, err
	}

	proj, err := t.projector(s)
	if err != nil {
		return nil, err
	}

	mapping := make(types.SplitMapping, len(s.keys))
	for _, fine := range t.keys {
		parts := types.SplitSegmentKey(fine)
		coarse := types.JoinSegmentKey(proj(parts))
		if !s.HasSegment(coarse) {
			return nil, fmt.Errorf("%w: %q does not cover segment %q of %q",
				types.ErrSegmentationMismatch, s.name, fine, t.name)
		}
		mapping[coarse] = append(mapping[coarse], fine)
	}

	return mapping, nil
}

// Subset returns target's keys after verifying every one is a valid segment
// of this segmentation. Target must carry the same dimensions in the same
// order, with value sets restricted to this segmentation's.
func (s *Static) Subset(target types.Segmentation) ([]string, error) {
	t, err := asStatic(target)
	if err != nil {
		return nil, err
	}

	if !slices.Equal(s.DimensionNames(), t.DimensionNames()) {
		return nil, fmt.Errorf("%w: %q and %q have different dimensions",
			types.ErrSegmentationMismatch, s.name, t.name)
	}
	for _, key := range t.keys {
		if !s.HasSegment(key) {
			return nil, fmt.Errorf("%w: %q is not a restriction of %q, segment %q is new",
				types.ErrSegmentationMismatch, t.name, s.name, key)
		}
	}

	return t.SegmentKeys(), nil
}

// HasTimeDimension reports whether the segmentation carries a time-period
// dimension.
func (s *Static) HasTimeDimension() bool {
	_, ok := s.dimPos[TimeDimension]

	return ok
}

// TimePeriodGroups returns the segment keys carrying each time period.
func (s *Static) TimePeriodGroups() (map[types.TimePeriod][]string, error) {
	if s.tpGroups == nil {
		return nil, fmt.Errorf("%w: segmentation %q", types.ErrTimeDimensionRequired, s.name)
	}

	groups := make(map[types.TimePeriod][]string, len(s.tpGroups))
	for tp, keys := range s.tpGroups {
		groups[tp] = slices.Clone(keys)
	}

	return groups, nil
}

// WeekdaySegmentGroups groups segment keys that differ only in their weekday
// time periods.
func (s *Static) WeekdaySegmentGroups() ([][]string, error) {
	return s.timeGroups(types.WeekdayTimePeriods())
}

// WeekendSegmentGroups groups segment keys that differ only in their weekend
// time periods.
func (s *Static) WeekendSegmentGroups() ([][]string, error) {
	return s.timeGroups(types.WeekendTimePeriods())
}

// timeGroups groups keys whose time period is in periods by their remaining
// dimension values, in definition order.
func (s *Static) timeGroups(periods []types.TimePeriod) ([][]string, error) {
	pos, ok := s.dimPos[TimeDimension]
	if !ok {
		return nil, fmt.Errorf("%w: segmentation %q", types.ErrTimeDimensionRequired, s.name)
	}

	member := make(map[types.TimePeriod]struct{}, len(periods))
	for _, tp := range periods {
		member[tp] = struct{}{}
	}

	var order []string
	groups := make(map[string][]string)
	for _, key := range s.keys {
		parts := types.SplitSegmentKey(key)
		tp, _ := strconv.Atoi(parts[pos])
		if _, ok := member[types.TimePeriod(tp)]; !ok {
			continue
		}

		rest := types.JoinSegmentKey(slices.Delete(slices.Clone(parts), pos, pos+1))
		if _, seen := groups[rest]; !seen {
			order = append(order, rest)
		}
		groups[rest] = append(groups[rest], key)
	}

	out := make([][]string, len(order))
	for i, rest := range order {
		out[i] = groups[rest]
	}

	return out, nil
}

// asStatic narrows the oracle interface to this package's implementation.
// Structural combination needs access to the dimension tables, so mixing
// Static with a foreign Segmentation implementation cannot be answered.
func asStatic(seg types.Segmentation) (*Static, error) {
	if seg == nil {
		return nil, fmt.Errorf("%w: segmentation is nil", types.ErrSegmentationMismatch)
	}
	s, ok := seg.(*Static)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a static segmentation",
			types.ErrSegmentationMismatch, seg.Name())
	}

	return s, nil
}
