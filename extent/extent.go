// Package extent derives ranges from data values.
package extent

import (
	"math"

	"github.com/xuenqlve/datarange/errors"
	"github.com/xuenqlve/datarange/log"
	"github.com/xuenqlve/datarange/numrange"
	"github.com/xuenqlve/datarange/transform"
)

// Of returns the smallest range holding every non-NaN value, or nil when
// there is none.
func Of(values ...float64) *numrange.Range {
	var r *numrange.Range
	skipped := 0
	for _, v := range values {
		if math.IsNaN(v) {
			skipped++
			continue
		}
		r = numrange.ExpandToInclude(r, v)
	}
	if skipped > 0 {
		log.Logger().Debug().Int("skipped", skipped).Int("total", len(values)).Msg("extent ignored NaN values")
	}
	return r
}

// OfAny coerces values to float64 before taking their extent.
func OfAny(values []any) (*numrange.Range, error) {
	floats := make([]float64, 0, len(values))
	for i, value := range values {
		f, err := transform.ToFloat64(value)
		if err != nil {
			return nil, errors.Annotatef(err, "value %d", i)
		}
		floats = append(floats, f)
	}
	return Of(floats...), nil
}

// Union combines ranges, skipping nil and NaN ones.
func Union(ranges ...*numrange.Range) *numrange.Range {
	var r *numrange.Range
	for _, next := range ranges {
		r = numrange.CombineIgnoringNaN(r, next)
	}
	return r
}
