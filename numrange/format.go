package numrange

import (
	"math"
	"strconv"
	"strings"
)

// String renders r as Range[lower,upper], e.g. Range[-1.0,1.0].
func (r Range) String() string {
	return "Range[" + formatDouble(r.lower) + "," + formatDouble(r.upper) + "]"
}

// formatDouble prints the shortest round-tripping digits, keeping ".0" on
// integral values and switching to d.dddEn outside [1e-3, 1e7).
func formatDouble(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(v)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
