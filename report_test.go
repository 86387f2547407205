package dvec

import (
	"testing"

	"github.com/stretchr/testify/require"
	dvectest "github.com/tdmkit/dvec/testing"
	"github.com/tdmkit/dvec/types"
)

func TestVectorSegmentReport(t *testing.T) {
	zones := dvectest.ZoningThree(t)

	v, err := New(zones, dvectest.SegPM(t), map[string][]float64{
		"1_car": {1, 2, 3},
		"1_bus": {4, 5, 6},
		"2_car": {7, 8, 9},
		"2_bus": {10, 11, 12},
	})
	require.NoError(t, err)

	t.Run("reports zone totals at the current granularity", func(t *testing.T) {
		rows, err := v.SegmentReport(nil)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		byKey := make(map[string]Row, len(rows))
		for _, row := range rows {
			require.Empty(t, row.Zone)
			byKey[row.Segments[0]+"_"+row.Segments[1]] = row
		}
		require.Equal(t, 6.0, byKey["1_car"].Value)
		require.Equal(t, 33.0, byKey["2_bus"].Value)
	})

	t.Run("aggregates onto a coarser reporting segmentation", func(t *testing.T) {
		rows, err := v.SegmentReport(dvectest.SegP(t))
		require.NoError(t, err)
		require.Len(t, rows, 2)

		var total float64
		for _, row := range rows {
			total += row.Value
		}
		require.InDelta(t, v.Total(), total, 1e-9)
	})
}

func TestVectorSectorReport(t *testing.T) {
	zones := dvectest.ZoningThree(t)
	sectors := dvectest.ZoningTwo(t)

	v, err := New(zones, dvectest.SegPM(t), map[string][]float64{
		"1_car": {1, 2, 3},
		"2_bus": {4, 5, 6},
	})
	require.NoError(t, err)

	t.Run("reports sector totals per segment", func(t *testing.T) {
		rows, err := v.SectorReport(sectors, "population", nil)
		require.NoError(t, err)
		require.Len(t, rows, 4*2)

		var total float64
		for _, row := range rows {
			require.Contains(t, []string{"north", "south"}, row.Zone)
			total += row.Value
		}
		require.InDelta(t, v.Total(), total, 1e-9)
	})

	t.Run("aggregates before translating", func(t *testing.T) {
		rows, err := v.SectorReport(sectors, "population", dvectest.SegM(t))
		require.NoError(t, err)
		require.Len(t, rows, 2*2)
	})

	t.Run("fails for zoneless vectors", func(t *testing.T) {
		zoneless, err := New(nil, dvectest.SegPM(t), nil)
		require.NoError(t, err)

		_, err = zoneless.SectorReport(sectors, "population", nil)
		require.ErrorIs(t, err, types.ErrZoningRequired)
	})
}
