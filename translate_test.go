package dvec

import (
	"testing"

	"github.com/stretchr/testify/require"
	dvectest "github.com/tdmkit/dvec/testing"
	"github.com/tdmkit/dvec/types"
)

func TestVectorTranslateZoning(t *testing.T) {
	zones := dvectest.ZoningThree(t)
	sectors := dvectest.ZoningTwo(t)

	t.Run("redistributes values along the correspondence weights", func(t *testing.T) {
		v, err := New(zones, dvectest.SegP(t), map[string][]float64{
			"1": {10, 20, 30},
		})
		require.NoError(t, err)

		got, err := v.TranslateZoning(sectors, "population")
		require.NoError(t, err)
		require.Equal(t, "two", got.Zoning().Name())

		vals, err := got.Value("1")
		require.NoError(t, err)
		require.InDeltaSlice(t, []float64{20, 40}, vals, 1e-9)
	})

	t.Run("preserves per-segment totals through a round trip", func(t *testing.T) {
		v, err := New(zones, dvectest.SegPM(t), map[string][]float64{
			"1_car": {1, 2, 3},
			"1_bus": {4, 5, 6},
			"2_car": {7, 8, 9},
		})
		require.NoError(t, err)

		forward, err := v.TranslateZoning(sectors, "population")
		require.NoError(t, err)
		back, err := forward.TranslateZoning(zones, "population")
		require.NoError(t, err)

		require.Equal(t, "three", back.Zoning().Name())
		for _, key := range v.SegmentKeys() {
			before, err := v.Value(key)
			require.NoError(t, err)
			after, err := back.Value(key)
			require.NoError(t, err)
			require.InDelta(t, sumSlice(before), sumSlice(after), 1e-9, "segment %q", key)
		}
	})

	t.Run("keeps the time format", func(t *testing.T) {
		v, err := New(zones, dvectest.SegPTP(t), nil, WithTimeFormat(types.TimeFormatDay))
		require.NoError(t, err)

		got, err := v.TranslateZoning(sectors, "population")
		require.NoError(t, err)
		require.Equal(t, types.TimeFormatDay, got.TimeFormat())
	})

	t.Run("rejects zoneless vectors", func(t *testing.T) {
		v, err := New(nil, dvectest.SegP(t), nil)
		require.NoError(t, err)

		_, err = v.TranslateZoning(sectors, "population")
		require.ErrorIs(t, err, types.ErrZoningRequired)
	})

	t.Run("rejects a nil target", func(t *testing.T) {
		v, err := New(zones, dvectest.SegP(t), nil)
		require.NoError(t, err)

		_, err = v.TranslateZoning(nil, "population")
		require.ErrorIs(t, err, types.ErrZoningRequired)
	})

	t.Run("rejects an unregistered weighting", func(t *testing.T) {
		v, err := New(zones, dvectest.SegP(t), nil)
		require.NoError(t, err)

		_, err = v.TranslateZoning(sectors, "employment")
		require.ErrorIs(t, err, types.ErrBadTranslation)
	})
}
