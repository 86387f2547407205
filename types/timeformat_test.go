package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeFormatString(t *testing.T) {
	tests := []struct {
		format TimeFormat
		want   string
	}{
		{TimeFormatUnset, "unset"},
		{TimeFormatWeek, "week"},
		{TimeFormatDay, "day"},
		{TimeFormatHour, "hour"},
		{TimeFormat(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("TimeFormat.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTimeFormat(t *testing.T) {
	t.Run("round trips every settable format", func(t *testing.T) {
		for _, f := range []TimeFormat{TimeFormatWeek, TimeFormatDay, TimeFormatHour} {
			got, err := ParseTimeFormat(f.String())
			require.NoError(t, err)
			require.Equal(t, f, got)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseTimeFormat("fortnight")
		require.ErrorIs(t, err, ErrBadTimeFormat)

		_, err = ParseTimeFormat("unset")
		require.ErrorIs(t, err, ErrBadTimeFormat)
	})
}

func TestConversionFactors(t *testing.T) {
	t.Parallel()

	t.Run("week to day uses the fixed table", func(t *testing.T) {
		factors, err := TimeFormatWeek.ConversionFactors(TimeFormatDay)
		require.NoError(t, err)
		require.Equal(t, map[TimePeriod]float64{1: 0.2, 2: 0.2, 3: 0.2, 4: 0.2, 5: 1, 6: 1}, factors)
	})

	t.Run("day to hour uses the fixed table", func(t *testing.T) {
		factors, err := TimeFormatDay.ConversionFactors(TimeFormatHour)
		require.NoError(t, err)
		require.Equal(t, map[TimePeriod]float64{
			1: 1.0 / 3, 2: 1.0 / 6, 3: 1.0 / 3, 4: 1.0 / 12, 5: 1.0 / 24, 6: 1.0 / 24,
		}, factors)
	})

	t.Run("inverse factors are reciprocals", func(t *testing.T) {
		forward, err := TimeFormatWeek.ConversionFactors(TimeFormatDay)
		require.NoError(t, err)
		inverse, err := TimeFormatDay.ConversionFactors(TimeFormatWeek)
		require.NoError(t, err)

		for _, tp := range TimePeriods() {
			require.InEpsilon(t, 1/forward[tp], inverse[tp], 1e-12, "period %d", tp)
		}
	})

	t.Run("compound conversion composes adjacent tables", func(t *testing.T) {
		weekToDay, err := TimeFormatWeek.ConversionFactors(TimeFormatDay)
		require.NoError(t, err)
		dayToHour, err := TimeFormatDay.ConversionFactors(TimeFormatHour)
		require.NoError(t, err)
		weekToHour, err := TimeFormatWeek.ConversionFactors(TimeFormatHour)
		require.NoError(t, err)

		for _, tp := range TimePeriods() {
			require.InEpsilon(t, weekToDay[tp]*dayToHour[tp], weekToHour[tp], 1e-12, "period %d", tp)
		}
	})

	t.Run("every conversion covers every time period", func(t *testing.T) {
		formats := []TimeFormat{TimeFormatWeek, TimeFormatDay, TimeFormatHour}
		for _, from := range formats {
			for _, to := range formats {
				if from == to {
					continue
				}
				factors, err := from.ConversionFactors(to)
				require.NoError(t, err)
				require.Len(t, factors, len(TimePeriods()))
				for _, tp := range TimePeriods() {
					require.Contains(t, factors, tp)
					require.Positive(t, factors[tp])
				}
			}
		}
	})

	t.Run("converting to self is rejected", func(t *testing.T) {
		_, err := TimeFormatWeek.ConversionFactors(TimeFormatWeek)
		require.ErrorIs(t, err, ErrBadTimeFormatConversion)
	})

	t.Run("unset operands are rejected", func(t *testing.T) {
		_, err := TimeFormatUnset.ConversionFactors(TimeFormatDay)
		require.ErrorIs(t, err, ErrBadTimeFormatConversion)

		_, err = TimeFormatDay.ConversionFactors(TimeFormatUnset)
		require.ErrorIs(t, err, ErrBadTimeFormatConversion)
	})

	t.Run("forward then inverse round trips to one", func(t *testing.T) {
		formats := []TimeFormat{TimeFormatWeek, TimeFormatDay, TimeFormatHour}
		for _, from := range formats {
			for _, to := range formats {
				if from == to {
					continue
				}
				forward, err := from.ConversionFactors(to)
				require.NoError(t, err)
				back, err := to.ConversionFactors(from)
				require.NoError(t, err)
				for _, tp := range TimePeriods() {
					require.InEpsilon(t, 1.0, forward[tp]*back[tp], 1e-12)
				}
			}
		}
	})
}

func TestTimeFormatValid(t *testing.T) {
	require.False(t, TimeFormatUnset.Valid())
	require.True(t, TimeFormatWeek.Valid())
	require.True(t, TimeFormatDay.Valid())
	require.True(t, TimeFormatHour.Valid())
	require.False(t, TimeFormat(42).Valid())
}
