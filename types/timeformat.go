package types

import "fmt"

// TimePeriod identifies one modelled time period (1..6).
//
// Periods 1-4 are weekday periods (AM peak, interpeak, PM peak, off-peak);
// periods 5 and 6 are Saturday and Sunday.
type TimePeriod int

// TimePeriods returns every modelled time period in ascending order.
func TimePeriods() []TimePeriod {
	return []TimePeriod{1, 2, 3, 4, 5, 6}
}

// WeekdayTimePeriods returns the weekday time periods in ascending order.
func WeekdayTimePeriods() []TimePeriod {
	return []TimePeriod{1, 2, 3, 4}
}

// WeekendTimePeriods returns the weekend time periods in ascending order.
func WeekendTimePeriods() []TimePeriod {
	return []TimePeriod{5, 6}
}

// ValidTimePeriod reports whether tp is one of the modelled time periods.
func ValidTimePeriod(tp TimePeriod) bool {
	return tp >= 1 && tp <= 6
}

// TimeFormat describes the temporal normalization of vector values.
//
// A vector whose segmentation carries a time-period dimension must declare
// whether its values are average weekly, average day or average hourly
// quantities. Conversion between formats is a per-time-period multiplier;
// see ConversionFactors.
type TimeFormat int

const (
	// TimeFormatUnset is the zero value; valid only for segmentations
	// without a time-period dimension.
	TimeFormatUnset TimeFormat = iota

	// TimeFormatWeek marks values as average weekly quantities.
	TimeFormatWeek

	// TimeFormatDay marks values as average day quantities.
	TimeFormatDay

	// TimeFormatHour marks values as average hourly quantities.
	TimeFormatHour
)

// String returns the string representation of the time format.
func (f TimeFormat) String() string {
	switch f {
	case TimeFormatUnset:
		return "unset"
	case TimeFormatWeek:
		return "week"
	case TimeFormatDay:
		return "day"
	case TimeFormatHour:
		return "hour"
	default:
		return "unknown"
	}
}

// ParseTimeFormat converts a string produced by String back to a TimeFormat.
//
// Returns:
//   - TimeFormat: The parsed format
//   - error: ErrBadTimeFormat if s names no known format
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch s {
	case "week":
		return TimeFormatWeek, nil
	case "day":
		return TimeFormatDay, nil
	case "hour":
		return TimeFormatHour, nil
	default:
		return TimeFormatUnset, fmt.Errorf("%w: %q", ErrBadTimeFormat, s)
	}
}

// Valid reports whether f is one of the three settable formats.
func (f TimeFormat) Valid() bool {
	return f == TimeFormatWeek || f == TimeFormatDay || f == TimeFormatHour
}

// ConversionFactors returns the per-time-period multipliers that convert
// values in format f into format to.
//
// Adjacent conversions (week<->day, day<->hour) use fixed factor tables;
// compound conversions (week<->hour) compose the two adjacent tables by
// per-period multiplication. Inverse conversions are the reciprocals of the
// forward factors.
//
// Parameters:
//   - to: The target format; must be valid and differ from f
//
// Returns:
//   - map[TimePeriod]float64: Multiplier per time period
//   - error: ErrBadTimeFormatConversion if f or to is unset or f == to
func (f TimeFormat) ConversionFactors(to TimeFormat) (map[TimePeriod]float64, error) {
	if !f.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: %s to %s", ErrBadTimeFormatConversion, f, to)
	}
	if f == to {
		return nil, fmt.Errorf("%w: already %s", ErrBadTimeFormatConversion, f)
	}

	switch {
	case f == TimeFormatWeek && to == TimeFormatDay:
		return weekToDayFactors(), nil
	case f == TimeFormatWeek && to == TimeFormatHour:
		return composeFactors(weekToDayFactors(), dayToHourFactors()), nil
	case f == TimeFormatDay && to == TimeFormatWeek:
		return invertFactors(weekToDayFactors()), nil
	case f == TimeFormatDay && to == TimeFormatHour:
		return dayToHourFactors(), nil
	case f == TimeFormatHour && to == TimeFormatWeek:
		return composeFactors(invertFactors(dayToHourFactors()), invertFactors(weekToDayFactors())), nil
	case f == TimeFormatHour && to == TimeFormatDay:
		return invertFactors(dayToHourFactors()), nil
	default:
		return nil, fmt.Errorf("%w: %s to %s", ErrBadTimeFormatConversion, f, to)
	}
}

// weekToDayFactors converts average weekly values to average day values.
// Weekday periods (1-4) spread a week across its five weekdays; Saturday and
// Sunday (5, 6) are already single days.
func weekToDayFactors() map[TimePeriod]float64 {
	return map[TimePeriod]float64{
		1: 0.2,
		2: 0.2,
		3: 0.2,
		4: 0.2,
		5: 1,
		6: 1,
	}
}

// dayToHourFactors converts average day values to average hourly values,
// dividing each period's day total by the hours the period spans.
func dayToHourFactors() map[TimePeriod]float64 {
	return map[TimePeriod]float64{
		1: 1.0 / 3,
		2: 1.0 / 6,
		3: 1.0 / 3,
		4: 1.0 / 12,
		5: 1.0 / 24,
		6: 1.0 / 24,
	}
}

func invertFactors(factors map[TimePeriod]float64) map[TimePeriod]float64 {
	out := make(map[TimePeriod]float64, len(factors))
	for tp, v := range factors {
		out[tp] = 1 / v
	}

	return out
}

func composeFactors(first, second map[TimePeriod]float64) map[TimePeriod]float64 {
	out := make(map[TimePeriod]float64, len(first))
	for tp, v := range first {
		out[tp] = v * second[tp]
	}

	return out
}
