package dvec

import (
	"testing"

	"github.com/stretchr/testify/require"
	dvectest "github.com/tdmkit/dvec/testing"
	"github.com/tdmkit/dvec/types"
)

func TestVectorAggregate(t *testing.T) {
	zones := dvectest.ZoningThree(t)

	t.Run("sums fine segments into coarse ones", func(t *testing.T) {
		v, err := New(zones, dvectest.SegPM(t), map[string][]float64{
			"1_car": {10, 20, 0},
			"1_bus": {5, 0, 0},
		})
		require.NoError(t, err)

		got, err := v.Aggregate(dvectest.SegP(t))
		require.NoError(t, err)
		require.Equal(t, "p", got.Segmentation().Name())

		vals, err := got.Value("1")
		require.NoError(t, err)
		require.Equal(t, []float64{15, 20, 0}, vals)

		vals, err = got.Value("2")
		require.NoError(t, err)
		require.Equal(t, []float64{0, 0, 0}, vals)
	})

	t.Run("preserves the total", func(t *testing.T) {
		v, err := New(zones, dvectest.SegPM(t), map[string][]float64{
			"1_car": {1, 2, 3},
			"1_bus": {4, 5, 6},
			"2_car": {7, 8, 9},
			"2_bus": {10, 11, 12},
		})
		require.NoError(t, err)

		got, err := v.Aggregate(dvectest.SegM(t))
		require.NoError(t, err)
		require.InDelta(t, v.Total(), got.Total(), 1e-9)
	})

	t.Run("drops the time format when time periods are summed away", func(t *testing.T) {
		v, err := New(nil, dvectest.SegPTP(t), map[string][]float64{
			"1_1": {3},
			"1_5": {4},
		}, WithTimeFormat(types.TimeFormatWeek))
		require.NoError(t, err)

		got, err := v.Aggregate(dvectest.SegP(t))
		require.NoError(t, err)
		require.Equal(t, types.TimeFormatUnset, got.TimeFormat())

		total, err := got.Scalar("1")
		require.NoError(t, err)
		require.Equal(t, 7.0, total)
	})

	t.Run("rejects a target that is not a projection", func(t *testing.T) {
		v, err := New(zones, dvectest.SegP(t), nil)
		require.NoError(t, err)

		_, err = v.Aggregate(dvectest.SegPM(t))
		require.ErrorIs(t, err, types.ErrSegmentationMismatch)
	})

	t.Run("rejects a nil target", func(t *testing.T) {
		v, err := New(zones, dvectest.SegP(t), nil)
		require.NoError(t, err)

		_, err = v.Aggregate(nil)
		require.ErrorIs(t, err, ErrSegmentationRequired)
	})
}

func TestVectorAggregateSplitCompound(t *testing.T) {
	t.Run("decodes compound values while aggregating", func(t *testing.T) {
		v, err := New(nil, dvectest.SegUCM(t), map[string][]float64{
			"c1_car": {1}, "c1_bus": {2},
			"c2_car": {3}, "c2_bus": {4},
			"c3_car": {5}, "c3_bus": {6},
			"c4_car": {7}, "c4_bus": {8},
		})
		require.NoError(t, err)

		got, err := v.AggregateSplitCompound(dvectest.SegPM(t))
		require.NoError(t, err)
		require.InDelta(t, v.Total(), got.Total(), 1e-9)

		for key, want := range map[string]float64{
			"1_car": 4, "1_bus": 6, "2_car": 12, "2_bus": 14,
		} {
			val, err := got.Scalar(key)
			require.NoError(t, err)
			require.Equal(t, want, val, "segment %q", key)
		}
	})

	t.Run("rejects segmentations without a compound dimension", func(t *testing.T) {
		v, err := New(nil, dvectest.SegPM(t), nil)
		require.NoError(t, err)

		_, err = v.AggregateSplitCompound(dvectest.SegP(t))
		require.ErrorIs(t, err, types.ErrSegmentationMismatch)
	})
}
