package dvec

// Value-slice arithmetic shared by the operators. Slices are either
// zone-width or single-element (the zoneless scalar case); broadcastMul
// bridges the two shapes the way scalar-array multiplication does.

// broadcastMul multiplies two value slices elementwise, broadcasting a
// single-element slice against a longer one. Both single-element yields a
// single-element product.
func broadcastMul(a, b []float64) []float64 {
	switch {
	case len(a) == len(b):
		out := make([]float64, len(a))
		for i := range a {
			out[i] = a[i] * b[i]
		}

		return out
	case len(a) == 1:
		out := make([]float64, len(b))
		for i := range b {
			out[i] = a[0] * b[i]
		}

		return out
	case len(b) == 1:
		out := make([]float64, len(a))
		for i := range a {
			out[i] = a[i] * b[0]
		}

		return out
	default:
		// Construction guarantees equal widths or a scalar side; reaching
		// here means an operator broke that invariant.
		panic("dvec: mismatched value slice lengths")
	}
}

// addInto accumulates src into dst elementwise. dst must already have the
// right length.
func addInto(dst, src []float64) {
	for i := range src {
		dst[i] += src[i]
	}
}

// scaled returns vals * factor as a new slice.
func scaled(vals []float64, factor float64) []float64 {
	out := make([]float64, len(vals))
	for i, x := range vals {
		out[i] = x * factor
	}

	return out
}

// sumSlice returns the sum of all elements.
func sumSlice(vals []float64) float64 {
	total := 0.0
	for _, x := range vals {
		total += x
	}

	return total
}

// meanSlice returns the arithmetic mean, 0 for an empty slice.
func meanSlice(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}

	return sumSlice(vals) / float64(len(vals))
}

// constantSlice returns a new slice of n copies of value.
func constantSlice(n int, value float64) []float64 {
	out := make([]float64, n)
	if value != 0 {
		for i := range out {
			out[i] = value
		}
	}

	return out
}
