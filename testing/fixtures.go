package testing

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdmkit/dvec/segment"
	"github.com/tdmkit/dvec/zoning"
)

// ZoningThree creates the three-zone test zoning ("z1", "z2", "z3") with a
// population-weighted translation into ZoningTwo registered: z1 wholly in
// "north", z3 wholly in "south", z2 split evenly.
func ZoningThree(t *testing.T) *zoning.Static {
	t.Helper()

	z, err := zoning.NewStatic("three", []string{"z1", "z2", "z3"})
	require.NoError(t, err)

	two, err := zoning.NewStatic("two", []string{"north", "south"})
	require.NoError(t, err)

	err = z.AddCorrespondence(two, "population", []zoning.Correspondence{
		{From: "z1", To: "north", Weight: 1},
		{From: "z2", To: "north", Weight: 0.5},
		{From: "z2", To: "south", Weight: 0.5},
		{From: "z3", To: "south", Weight: 1},
	})
	require.NoError(t, err)

	return z
}

// ZoningTwo creates the two-sector test zoning ("north", "south") with the
// reverse translation into ZoningThree registered: north splits z1/z2 60:40,
// south splits z2/z3 40:60.
func ZoningTwo(t *testing.T) *zoning.Static {
	t.Helper()

	z, err := zoning.NewStatic("two", []string{"north", "south"})
	require.NoError(t, err)

	three, err := zoning.NewStatic("three", []string{"z1", "z2", "z3"})
	require.NoError(t, err)

	err = z.AddCorrespondence(three, "population", []zoning.Correspondence{
		{From: "north", To: "z1", Weight: 0.6},
		{From: "north", To: "z2", Weight: 0.4},
		{From: "south", To: "z2", Weight: 0.4},
		{From: "south", To: "z3", Weight: 0.6},
	})
	require.NoError(t, err)

	return z
}

// SegP creates the purpose-only segmentation "p" with purposes 1 and 2.
func SegP(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("p", []segment.Dimension{
		{Name: "p", Values: []string{"1", "2"}},
	})
	require.NoError(t, err)

	return seg
}

// SegM creates the mode-only segmentation "m" with modes car and bus.
func SegM(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("m", []segment.Dimension{
		{Name: "m", Values: []string{"car", "bus"}},
	})
	require.NoError(t, err)

	return seg
}

// SegPM creates the segmentation "p_m": purposes 1-2 crossed with modes
// car and bus.
func SegPM(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("p_m", []segment.Dimension{
		{Name: "p", Values: []string{"1", "2"}},
		{Name: "m", Values: []string{"car", "bus"}},
	})
	require.NoError(t, err)

	return seg
}

// SegPMSubset creates "p_m_commute", the restriction of SegPM to purpose 1.
func SegPMSubset(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("p_m_commute", []segment.Dimension{
		{Name: "p", Values: []string{"1"}},
		{Name: "m", Values: []string{"car", "bus"}},
	})
	require.NoError(t, err)

	return seg
}

// SegTP creates the time-period-only segmentation "tp" with all six periods.
func SegTP(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("tp", []segment.Dimension{
		{Name: segment.TimeDimension, Values: []string{"1", "2", "3", "4", "5", "6"}},
	})
	require.NoError(t, err)

	return seg
}

// SegPTP creates the segmentation "p_tp": purposes 1-2 crossed with all six
// time periods.
func SegPTP(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("p_tp", []segment.Dimension{
		{Name: "p", Values: []string{"1", "2"}},
		{Name: segment.TimeDimension, Values: []string{"1", "2", "3", "4", "5", "6"}},
	})
	require.NoError(t, err)

	return seg
}

// SegUCM creates "uc_m", a segmentation whose "uc" dimension compounds
// purpose and skill: c1=(1,hi), c2=(1,lo), c3=(2,hi), c4=(2,lo).
func SegUCM(t *testing.T) *segment.Static {
	t.Helper()

	seg, err := segment.NewStatic("uc_m", []segment.Dimension{
		{Name: "uc", Values: []string{"c1", "c2", "c3", "c4"}},
		{Name: "m", Values: []string{"car", "bus"}},
	}, segment.WithCompound(segment.Compound{
		Dimension:  "uc",
		Components: []string{"p", "s"},
		Decode: map[string][]string{
			"c1": {"1", "hi"},
			"c2": {"1", "lo"},
			"c3": {"2", "hi"},
			"c4": {"2", "lo"},
		},
	}))
	require.NoError(t, err)

	return seg
}
