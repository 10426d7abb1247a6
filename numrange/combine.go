package numrange

import (
	"math"

	"github.com/xuenqlve/datarange/errors"
)

// Combine returns the smallest range spanning a and b. A nil argument is
// treated as absent and the other argument is returned as is.
func Combine(a, b *Range) *Range {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return &Range{
		lower: math.Min(a.lower, b.lower),
		upper: math.Max(a.upper, b.upper),
	}
}

// CombineIgnoringNaN is like Combine, but NaN ranges count as absent and
// NaN bounds lose to any number. It returns nil when nothing numeric is left.
func CombineIgnoringNaN(a, b *Range) *Range {
	if a == nil {
		if b != nil && b.IsNaNRange() {
			return nil
		}
		return b
	}
	if b == nil {
		if a.IsNaNRange() {
			return nil
		}
		return a
	}
	lower := minIgnoringNaN(a.lower, b.lower)
	upper := maxIgnoringNaN(a.upper, b.upper)
	if math.IsNaN(lower) && math.IsNaN(upper) {
		return nil
	}
	return &Range{lower: lower, upper: upper}
}

// ExpandToInclude returns r extended to cover value. r itself is returned
// when it already contains value or value is NaN.
func ExpandToInclude(r *Range, value float64) *Range {
	if r == nil {
		return &Range{lower: value, upper: value}
	}
	if math.IsNaN(value) || r.Contains(value) {
		return r
	}
	if value < r.lower {
		return &Range{lower: value, upper: r.upper}
	}
	return &Range{lower: r.lower, upper: value}
}

// Expand grows r by the given fractions of its length on each side.
// Negative margins shrink it; a result that would invert collapses to a
// zero-length range at its midpoint.
func Expand(r Range, lowerMargin, upperMargin float64) Range {
	length := r.Length()
	lower := r.lower - length*lowerMargin
	upper := r.upper + length*upperMargin
	if lower > upper {
		lower = lower/2.0 + upper/2.0
		upper = lower
	}
	return Range{lower: lower, upper: upper}
}

// Shift moves both bounds by delta. Unless allowZeroCrossing is set, a bound
// stops at zero rather than changing sign, and the result still covers the
// point where the trailing bound would have landed.
func Shift(r Range, delta float64, allowZeroCrossing bool) Range {
	if allowZeroCrossing {
		return Range{lower: r.lower + delta, upper: r.upper + delta}
	}
	lower := shiftWithNoZeroCrossing(r.lower, delta)
	upper := shiftWithNoZeroCrossing(r.upper, delta)
	switch {
	case delta > 0:
		upper = math.Max(upper, r.lower+delta)
	case delta < 0:
		lower = math.Min(lower, r.upper+delta)
	}
	return Range{lower: lower, upper: upper}
}

func ShiftNoCrossing(r Range, delta float64) Range {
	return Shift(r, delta, false)
}

func shiftWithNoZeroCrossing(value, delta float64) float64 {
	switch {
	case value > 0:
		return math.Max(value+delta, 0)
	case value < 0:
		return math.Min(value+delta, 0)
	default:
		return value + delta
	}
}

// Scale multiplies both bounds by a non-negative factor.
func Scale(r Range, factor float64) (Range, error) {
	if factor < 0 {
		return Range{}, errors.Trace(errors.ErrNegativeScale)
	}
	return Range{lower: r.lower * factor, upper: r.upper * factor}, nil
}

func minIgnoringNaN(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func maxIgnoringNaN(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}
