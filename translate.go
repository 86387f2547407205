package dvec

import (
	"fmt"
	"time"

	"github.com/tdmkit/dvec/chunk"
	"github.com/tdmkit/dvec/types"
)

// TranslateZoning maps every segment's values onto a different zoning
// system using the weighted correspondence the source zoning publishes.
//
// Each target zone receives the weight-scaled sum of the source zones that
// map onto it. With a well-formed correspondence (source rows summing to 1)
// the translation preserves each segment's total.
//
// Parameters:
//   - target: The zoning system to translate into
//   - weighting: The correspondence weighting to request from the zoning
//     oracle, such as "population" or "employment"
//
// Returns:
//   - *Vector: A new vector on target with this vector's segmentation
//   - error: ErrZoningRequired, ErrBadTranslation or the oracle's error
func (v *Vector) TranslateZoning(target types.Zoning, weighting string) (*Vector, error) {
	const operator = "translate_zoning"
	defer v.observeOperator(operator, time.Now())

	if v.zoning == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: cannot translate a zoneless vector", ErrZoningRequired))
	}
	if target == nil {
		return nil, v.fail(operator, fmt.Errorf("%w: translation target", ErrZoningRequired))
	}

	matrix, err := v.zoning.Translate(target, weighting)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	if err := matrix.Validate(); err != nil {
		return nil, v.fail(operator, err)
	}
	if matrix.FromZones != v.zoning.ZoneCount() || matrix.ToZones != target.ZoneCount() {
		return nil, v.fail(operator, fmt.Errorf(
			"%w: matrix is %dx%d, translating %q (%d zones) to %q (%d zones)",
			ErrBadTranslation, matrix.FromZones, matrix.ToZones,
			v.zoning.Name(), v.zoning.ZoneCount(), target.Name(), target.ZoneCount()))
	}

	keys := v.SegmentKeys()
	pool := v.pool()
	chunks := chunk.Split(keys, pool.KeyChunkSize(len(keys), v.cfg.TranslateMinChunkSize))

	tasks := make([]chunk.Task[map[string][]float64], 0, len(chunks))
	for _, part := range chunks {
		rows := make(map[string][]float64, len(part))
		for _, key := range part {
			rows[key] = v.data[key]
		}

		tasks = append(tasks, func() (map[string][]float64, error) {
			out := make(map[string][]float64, len(rows))
			for key, vals := range rows {
				translated := make([]float64, matrix.ToZones)
				for i, val := range vals {
					if val == 0 {
						continue
					}
					weights := matrix.Weights[i]
					for j, w := range weights {
						translated[j] += val * w
					}
				}
				out[key] = translated
			}
			return out, nil
		})
	}

	results, err := chunk.Run(pool.Workers(), tasks)
	if err != nil {
		return nil, v.fail(operator, err)
	}
	v.metrics.RecordChunkExecution(operator, len(tasks), pool.Workers())
	v.logger.Debug("translated zoning",
		"from", v.zoning.Name(),
		"to", target.Name(),
		"segments", len(keys),
		"chunks", len(tasks),
	)

	data := make(map[string][]float64, len(keys))
	for _, part := range results {
		for key, vals := range part {
			data[key] = vals
		}
	}

	return v.derive(target, v.segmentation, v.timeFormat, data), nil
}
