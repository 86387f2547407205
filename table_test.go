package dvec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdmkit/dvec/segment"
	dvectest "github.com/tdmkit/dvec/testing"
	"github.com/tdmkit/dvec/types"
)

func TestFromRows(t *testing.T) {
	zones := dvectest.ZoningThree(t)

	segAB := func(t *testing.T) *segment.Static {
		t.Helper()
		seg, err := segment.NewStatic("ab", []segment.Dimension{
			{Name: "seg", Values: []string{"A", "B"}},
		})
		require.NoError(t, err)
		return seg
	}

	t.Run("pivots a long table into a complete vector", func(t *testing.T) {
		v, err := FromRows(zones, segAB(t), []Row{
			{Zone: "z1", Segments: []string{"A"}, Value: 10},
			{Zone: "z2", Segments: []string{"A"}, Value: 20},
			{Zone: "z1", Segments: []string{"B"}, Value: 5},
		})
		require.NoError(t, err)

		vals, err := v.Value("A")
		require.NoError(t, err)
		require.Equal(t, []float64{10, 20, 0}, vals)

		vals, err = v.Value("B")
		require.NoError(t, err)
		require.Equal(t, []float64{5, 0, 0}, vals)

		require.InDelta(t, 35.0, v.Total(), 1e-9)
	})

	t.Run("infills whole segments but zero-fills missing zones", func(t *testing.T) {
		v, err := FromRows(zones, segAB(t), []Row{
			{Zone: "z1", Segments: []string{"A"}, Value: 10},
		}, WithInfill(7))
		require.NoError(t, err)

		vals, err := v.Value("A")
		require.NoError(t, err)
		require.Equal(t, []float64{10, 0, 0}, vals)

		vals, err = v.Value("B")
		require.NoError(t, err)
		require.Equal(t, []float64{7, 7, 7}, vals)
	})

	t.Run("builds zoneless vectors from zone-free rows", func(t *testing.T) {
		v, err := FromRows(nil, segAB(t), []Row{
			{Segments: []string{"A"}, Value: 3},
			{Segments: []string{"B"}, Value: 4},
		})
		require.NoError(t, err)
		require.True(t, v.IsZoneless())

		val, err := v.Scalar("B")
		require.NoError(t, err)
		require.Equal(t, 4.0, val)
	})

	t.Run("rejects duplicated zone and segment combinations", func(t *testing.T) {
		_, err := FromRows(zones, segAB(t), []Row{
			{Zone: "z1", Segments: []string{"A"}, Value: 1},
			{Zone: "z1", Segments: []string{"A"}, Value: 2},
		})
		require.ErrorIs(t, err, types.ErrDuplicateRows)
	})

	t.Run("rejects unknown zones", func(t *testing.T) {
		_, err := FromRows(zones, segAB(t), []Row{
			{Zone: "z9", Segments: []string{"A"}, Value: 1},
		})
		require.ErrorIs(t, err, types.ErrUnknownZones)
	})

	t.Run("rejects unknown segment values", func(t *testing.T) {
		_, err := FromRows(zones, segAB(t), []Row{
			{Zone: "z1", Segments: []string{"C"}, Value: 1},
		})
		require.ErrorIs(t, err, types.ErrUnknownSegments)
	})

	t.Run("rejects rows with the wrong column count", func(t *testing.T) {
		_, err := FromRows(zones, segAB(t), []Row{
			{Zone: "z1", Segments: []string{"A", "extra"}, Value: 1},
		})
		require.ErrorIs(t, err, types.ErrExtraColumns)
	})

	t.Run("rejects zone IDs in a zoneless table", func(t *testing.T) {
		_, err := FromRows(nil, segAB(t), []Row{
			{Zone: "z1", Segments: []string{"A"}, Value: 1},
		})
		require.ErrorIs(t, err, types.ErrExtraColumns)
	})

	t.Run("chunked ingestion matches single-chunk ingestion", func(t *testing.T) {
		seg := dvectest.SegPM(t)
		var rows []Row
		val := 1.0
		for _, key := range []string{"1_car", "1_bus", "2_car", "2_bus"} {
			segs, err := seg.DecomposeKey(key)
			require.NoError(t, err)
			for _, zone := range []string{"z1", "z2", "z3"} {
				rows = append(rows, Row{Zone: zone, Segments: segs, Value: val})
				val++
			}
		}

		chunkedCfg := DefaultConfig()
		chunkedCfg.ProcessCount = 2
		chunkedCfg.RowChunkSize = 2

		chunked, err := FromRows(zones, seg, rows, WithConfig(chunkedCfg))
		require.NoError(t, err)
		plain, err := FromRows(zones, seg, rows)
		require.NoError(t, err)

		for _, key := range seg.SegmentKeys() {
			want, err := plain.Value(key)
			require.NoError(t, err)
			got, err := chunked.Value(key)
			require.NoError(t, err)
			require.Equal(t, want, got, "segment %q", key)
		}
	})
}

func TestVectorToRows(t *testing.T) {
	zones := dvectest.ZoningThree(t)
	seg := dvectest.SegPM(t)

	t.Run("orders rows by segment then zone", func(t *testing.T) {
		v, err := New(zones, seg, map[string][]float64{
			"1_car": {1, 2, 3},
		})
		require.NoError(t, err)

		rows, err := v.ToRows()
		require.NoError(t, err)
		require.Len(t, rows, 4*3)

		require.Equal(t, Row{Zone: "z1", Segments: []string{"1", "car"}, Value: 1}, rows[0])
		require.Equal(t, Row{Zone: "z2", Segments: []string{"1", "car"}, Value: 2}, rows[1])
		require.Equal(t, Row{Zone: "z3", Segments: []string{"1", "car"}, Value: 3}, rows[2])
	})

	t.Run("zoneless vectors export one row per segment", func(t *testing.T) {
		v, err := New(nil, seg, map[string][]float64{
			"2_bus": {9},
		})
		require.NoError(t, err)

		rows, err := v.ToRows()
		require.NoError(t, err)
		require.Len(t, rows, 4)

		for _, row := range rows {
			require.Empty(t, row.Zone)
		}
	})

	t.Run("round trips through FromRows", func(t *testing.T) {
		v, err := New(zones, seg, map[string][]float64{
			"1_car": {1, 2, 3},
			"2_bus": {4, 0, 6},
		})
		require.NoError(t, err)

		rows, err := v.ToRows()
		require.NoError(t, err)

		back, err := FromRows(zones, seg, rows)
		require.NoError(t, err)
		for _, key := range v.SegmentKeys() {
			want, err := v.Value(key)
			require.NoError(t, err)
			got, err := back.Value(key)
			require.NoError(t, err)
			require.Equal(t, want, got, "segment %q", key)
		}
	})
}
