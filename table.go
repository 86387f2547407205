package dvec

import (
	"fmt"
	"sort"
	"time"

	"github.com/tdmkit/dvec/chunk"
	"github.com/tdmkit/dvec/types"
)

// Row is one entry of a vector's long-format table representation: a single
// value for one segment combination in one zone.
type Row struct {
	// Zone is the zone ID the value belongs to, empty for zoneless vectors.
	Zone string

	// Segments holds one value per segmentation dimension, in
	// DimensionNames order.
	Segments []string

	// Value is the demand value for this zone and segment combination.
	Value float64
}

// ingestRow is a validated, key-composed row awaiting conversion.
type ingestRow struct {
	key   string
	zone  int
	value float64
}

// FromRows constructs a vector from a long-format table.
//
// Every row must carry one value per segmentation dimension; rows of zoned
// vectors must also name a known zone. Rows are validated as a whole before
// any conversion: unknown segments, unknown zones, duplicated (zone, segment)
// combinations and mismatched column counts are all hard errors. Zones a
// segment has no row for are infilled with 0; segments with no rows at all
// are infilled with the WithInfill value.
//
// Conversion of the validated rows is chunked and runs on the configured
// worker pool.
//
// Parameters:
//   - zoning: Zone system, or nil for a zoneless table
//   - segmentation: Segment algebra oracle (required)
//   - rows: The table entries
//   - opts: Optional configuration (WithConfig, WithTimeFormat, ...)
//
// Returns:
//   - *Vector: The validated vector
//   - error: ErrExtraColumns, ErrUnknownSegments, ErrUnknownZones,
//     ErrDuplicateRows, ErrSegmentationRequired or ErrInvalidConfig
func FromRows(zoning types.Zoning, segmentation types.Segmentation, rows []Row, opts ...Option) (*Vector, error) {
	const operator = "from_rows"

	o, err := resolveOptions(segmentation, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	width := vectorWidth(zoning)
	dims := len(segmentation.DimensionNames())

	var zoneIdx map[string]int
	if zoning != nil {
		ids := zoning.ZoneIDs()
		zoneIdx = make(map[string]int, len(ids))
		for i, id := range ids {
			zoneIdx[id] = i
		}
	}

	var unknownSegs, unknownZones []string
	seen := make(map[ingestKey]struct{}, len(rows))
	entries := make([]ingestRow, 0, len(rows))
	for i, row := range rows {
		if len(row.Segments) != dims {
			return nil, fmt.Errorf("%w: row %d has %d segment columns, segmentation %q has %d dimensions",
				types.ErrExtraColumns, i, len(row.Segments), segmentation.Name(), dims)
		}

		key, err := segmentation.ComposeKey(row.Segments)
		if err != nil {
			return nil, err
		}
		if !segmentation.HasSegment(key) {
			unknownSegs = append(unknownSegs, key)
			continue
		}

		zone := 0
		if zoning == nil {
			if row.Zone != "" {
				return nil, fmt.Errorf("%w: row %d names zone %q in a zoneless table",
					types.ErrExtraColumns, i, row.Zone)
			}
		} else {
			idx, ok := zoneIdx[row.Zone]
			if !ok {
				unknownZones = append(unknownZones, row.Zone)
				continue
			}
			zone = idx
		}

		ik := ingestKey{key: key, zone: zone}
		if _, dup := seen[ik]; dup {
			return nil, fmt.Errorf("%w: row %d repeats segment %q zone %q",
				types.ErrDuplicateRows, i, key, row.Zone)
		}
		seen[ik] = struct{}{}

		entries = append(entries, ingestRow{key: key, zone: zone, value: row.Value})
	}
	if len(unknownSegs) > 0 {
		sort.Strings(unknownSegs)
		return nil, fmt.Errorf("%w: %v not in segmentation %q",
			types.ErrUnknownSegments, dedupSorted(unknownSegs), segmentation.Name())
	}
	if len(unknownZones) > 0 {
		sort.Strings(unknownZones)
		return nil, fmt.Errorf("%w: %v not in zoning %q",
			types.ErrUnknownZones, dedupSorted(unknownZones), zoning.Name())
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].zone < entries[j].zone
	})

	pool := chunk.NewPool(o.cfg.ProcessCount)
	chunks := splitAtKeyBoundaries(entries, pool.RowChunkSize(len(entries), o.cfg.RowChunkSize))

	tasks := make([]chunk.Task[map[string][]float64], 0, len(chunks))
	for _, part := range chunks {
		tasks = append(tasks, func() (map[string][]float64, error) {
			out := make(map[string][]float64)
			for _, e := range part {
				vals, ok := out[e.key]
				if !ok {
					vals = make([]float64, width)
					out[e.key] = vals
				}
				vals[e.zone] = e.value
			}
			return out, nil
		})
	}

	results, err := chunk.Run(pool.Workers(), tasks)
	if err != nil {
		return nil, err
	}

	data := make(map[string][]float64, len(segmentation.SegmentKeys()))
	for _, part := range results {
		for key, vals := range part {
			data[key] = vals
		}
	}
	infilled := infillMissing(data, segmentation, width, o.infill)

	v := &Vector{
		zoning:       zoning,
		segmentation: segmentation,
		timeFormat:   o.timeFormat,
		data:         data,
		cfg:          o.cfg,
		logger:       o.logger,
		metrics:      o.metrics,
	}

	v.metrics.RecordRowsIngested(len(rows))
	v.metrics.RecordChunkExecution(operator, len(tasks), pool.Workers())
	v.metrics.RecordSegmentsInfilled(infilled)
	v.metrics.RecordVectorSize(len(data), width)
	v.observeOperator(operator, start)
	v.logger.Debug("ingested table",
		"segmentation", segmentation.Name(),
		"zoning", zoningName(zoning),
		"rows", len(rows),
		"chunks", len(tasks),
		"infilled", infilled,
	)

	return v, nil
}

type ingestKey struct {
	key  string
	zone int
}

// splitAtKeyBoundaries chunks sorted entries, extending each chunk so a
// segment's rows never straddle two chunks. Disjoint per-chunk key sets let
// the converted maps merge by plain union.
func splitAtKeyBoundaries(entries []ingestRow, size int) [][]ingestRow {
	if len(entries) == 0 || size <= 0 {
		return nil
	}

	var chunks [][]ingestRow
	for start := 0; start < len(entries); {
		end := min(start+size, len(entries))
		for end < len(entries) && entries[end].key == entries[end-1].key {
			end++
		}
		chunks = append(chunks, entries[start:end])
		start = end
	}

	return chunks
}

func dedupSorted(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}

	return out
}

// ToRows exports the vector as a long-format table.
//
// Rows are ordered by segment key in the segmentation's stable order, then
// by zone in ZoneIDs order. Zoneless vectors produce one row per segment
// with an empty Zone. Export is chunked per segment and runs on the
// configured worker pool.
//
// Returns:
//   - []Row: The table entries
//   - error: ErrUnknownSegments if a key cannot be decomposed
func (v *Vector) ToRows() ([]Row, error) {
	const operator = "to_rows"
	defer v.observeOperator(operator, time.Now())

	var zoneIDs []string
	if v.zoning != nil {
		zoneIDs = v.zoning.ZoneIDs()
	}

	keys := v.SegmentKeys()
	pool := v.pool()
	chunks := chunk.Split(keys, pool.KeyChunkSize(len(keys), v.cfg.ToRowsMinChunkSize))

	width := vectorWidth(v.zoning)
	tasks := make([]chunk.Task[[]Row], 0, len(chunks))
	for _, part := range chunks {
		tasks = append(tasks, func() ([]Row, error) {
			rows := make([]Row, 0, len(part)*width)
			for _, key := range part {
				segs, err := v.segmentation.DecomposeKey(key)
				if err != nil {
					return nil, err
				}
				vals := v.data[key]
				if zoneIDs == nil {
					rows = append(rows, Row{Segments: segs, Value: vals[0]})
					continue
				}
				for i, id := range zoneIDs {
					rows = append(rows, Row{Zone: id, Segments: segs, Value: vals[i]})
				}
			}
			return rows, nil
		})
	}

	results, err := chunk.Run(pool.Workers(), tasks)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	v.metrics.RecordChunkExecution(operator, len(tasks), pool.Workers())

	rows := make([]Row, 0, len(keys)*width)
	for _, part := range results {
		rows = append(rows, part...)
	}
	v.logger.Debug("exported rows",
		"segments", len(keys),
		"rows", len(rows),
		"chunks", len(tasks),
	)

	return rows, nil
}
