// Package numrange provides Range, an immutable closed interval of float64
// values used for axis bounds and data extents.
package numrange

import (
	"fmt"
	"math"

	"github.com/xuenqlve/datarange/errors"
)

// Range is the closed interval [lower, upper]. The zero value is [0, 0].
type Range struct {
	lower float64
	upper float64
}

// New returns [lower, upper]. It fails when lower > upper; equal bounds
// and NaN bounds are accepted.
func New(lower, upper float64) (Range, error) {
	if lower > upper {
		return Range{}, errors.NewCodeErrorMessage(errors.ErrCodeInvalidRange,
			fmt.Sprintf("Range(double, double): require lower (%s) <= upper (%s).",
				formatDouble(lower), formatDouble(upper)))
	}
	return Range{lower: lower, upper: upper}, nil
}

// MustNew is like New but panics on invalid bounds.
func MustNew(lower, upper float64) Range {
	r, err := New(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// IsInvalidRange reports whether err was caused by inverted bounds.
func IsInvalidRange(err error) bool {
	return errors.CodeOf(err) == errors.ErrCodeInvalidRange
}

func (r Range) LowerBound() float64 {
	return r.lower
}

func (r Range) UpperBound() float64 {
	return r.upper
}

func (r Range) Length() float64 {
	return r.upper - r.lower
}

// CentralValue halves each bound first so the sum cannot overflow.
func (r Range) CentralValue() float64 {
	return r.lower/2.0 + r.upper/2.0
}

func (r Range) Contains(value float64) bool {
	return value >= r.lower && value <= r.upper
}

// Intersects reports whether [b0, b1] overlaps r. Touching at a single
// bound counts as overlap.
func (r Range) Intersects(b0, b1 float64) bool {
	if b0 <= r.lower {
		return b1 >= r.lower
	}
	return b0 <= r.upper && b1 >= b0
}

func (r Range) IntersectsRange(other Range) bool {
	return r.Intersects(other.lower, other.upper)
}

// Constrain clamps value into r.
func (r Range) Constrain(value float64) float64 {
	if value < r.lower {
		return r.lower
	}
	if value > r.upper {
		return r.upper
	}
	return value
}

// IsNaNRange reports whether both bounds are NaN.
func (r Range) IsNaNRange() bool {
	return math.IsNaN(r.lower) && math.IsNaN(r.upper)
}
