package numrange

const (
	Greater = 1
	Less    = -1
	Equal   = 0
)

// Compare orders ranges by lower bound, then by upper bound.
func Compare(a, b Range) int {
	if c := compareOrdered(a.lower, b.lower); c != Equal {
		return c
	}
	return compareOrdered(a.upper, b.upper)
}

// compareOrdered treats NaN as equal to everything.
func compareOrdered(a, b float64) int {
	if a > b {
		return Greater
	} else if a < b {
		return Less
	}
	return Equal
}

// Equals reports whether other is a Range (or non-nil *Range) with the same
// bounds. Bounds are compared exactly.
func (r Range) Equals(other any) bool {
	switch o := other.(type) {
	case Range:
		return r.lower == o.lower && r.upper == o.upper
	case *Range:
		return o != nil && r.lower == o.lower && r.upper == o.upper
	default:
		return false
	}
}
