package dvec

import "github.com/tdmkit/dvec/types"

// SegmentReport returns per-segment totals as a zoneless table.
//
// When reportSeg names a coarser segmentation the vector is aggregated onto
// it first; passing nil (or the vector's own segmentation) reports at the
// current granularity.
//
// Parameters:
//   - reportSeg: Optional reporting segmentation to aggregate onto
//
// Returns:
//   - []Row: One row per reported segment, zone column empty
//   - error: Any Aggregate, SumZoning or ToRows error
func (v *Vector) SegmentReport(reportSeg types.Segmentation) ([]Row, error) {
	vec := v
	var err error

	if reportSeg != nil && reportSeg.Name() != v.segmentation.Name() {
		if vec, err = vec.Aggregate(reportSeg); err != nil {
			return nil, err
		}
	}
	if !vec.IsZoneless() {
		if vec, err = vec.SumZoning(); err != nil {
			return nil, err
		}
	}

	return vec.ToRows()
}

// SectorReport translates the vector onto a coarse sector zoning and
// returns it as a table, for eyeballing spatial distributions without the
// full zone detail.
//
// When reportSeg names a coarser segmentation the vector is aggregated onto
// it before translating.
//
// Parameters:
//   - sectors: The sector zoning to translate onto
//   - weighting: The correspondence weighting passed to TranslateZoning
//   - reportSeg: Optional reporting segmentation to aggregate onto
//
// Returns:
//   - []Row: One row per sector and reported segment
//   - error: Any Aggregate, TranslateZoning or ToRows error
func (v *Vector) SectorReport(sectors types.Zoning, weighting string, reportSeg types.Segmentation) ([]Row, error) {
	vec := v
	var err error

	if reportSeg != nil && reportSeg.Name() != v.segmentation.Name() {
		if vec, err = vec.Aggregate(reportSeg); err != nil {
			return nil, err
		}
	}
	if vec, err = vec.TranslateZoning(sectors, weighting); err != nil {
		return nil, err
	}

	return vec.ToRows()
}
