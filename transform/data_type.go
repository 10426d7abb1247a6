package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuenqlve/datarange/errors"
)

// ToFloat64 coerces numeric kinds, bools and numeric strings to a bound value.
func ToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		parsed, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return parsed, nil
		}
		// 'true'/'false'
		if s == "true" {
			return 1, nil
		} else if s == "false" {
			return 0, nil
		}
		return 0, errors.NewCodeError(errors.ErrCodeConvert, errors.Wrapf(err, "cannot convert %q to float64", v))
	case []byte:
		return ToFloat64(string(v))
	default:
		return 0, errors.NewCodeErrorMessage(errors.ErrCodeConvert, fmt.Sprintf("cannot convert %T to float64", value))
	}
}

// ToFloat64Slice converts a decoded config list, failing on the first bad element.
func ToFloat64Slice(value interface{}) ([]float64, error) {
	var items []interface{}
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []float64:
		return v, nil
	case []interface{}:
		items = v
	default:
		f, err := ToFloat64(value)
		if err != nil {
			return nil, err
		}
		return []float64{f}, nil
	}
	result := make([]float64, 0, len(items))
	for i, item := range items {
		f, err := ToFloat64(item)
		if err != nil {
			return nil, errors.Annotatef(err, "element %d", i)
		}
		result = append(result, f)
	}
	return result, nil
}
