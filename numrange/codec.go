package numrange

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/xuenqlve/datarange/errors"
	"go.yaml.in/yaml/v3"
)

// jsonBound is a bound on the wire. Non-finite values travel as the
// strings "NaN", "Infinity" and "-Infinity".
type jsonBound float64

func (b jsonBound) MarshalJSON() ([]byte, error) {
	v := float64(b)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return json.Marshal(formatDouble(v))
	}
	return json.Marshal(v)
}

func (b *jsonBound) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Trace(err)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errors.Trace(err)
		}
		*b = jsonBound(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Trace(err)
	}
	*b = jsonBound(v)
	return nil
}

type jsonBounds struct {
	Lower *jsonBound `json:"lower"`
	Upper *jsonBound `json:"upper"`
}

type yamlBounds struct {
	Lower *float64 `yaml:"lower"`
	Upper *float64 `yaml:"upper"`
}

var errMissingBound = errors.NewCodeErrorMessage(errors.ErrCodeInvalidRange, "range needs both lower and upper bounds")

func fromBounds(lower, upper *float64) (Range, error) {
	if lower == nil || upper == nil {
		return Range{}, errors.Trace(errMissingBound)
	}
	return New(*lower, *upper)
}

func fromPair(pair []float64) (Range, error) {
	if len(pair) != 2 {
		return Range{}, errors.NewCodeErrorMessage(errors.ErrCodeInvalidRange, "range needs exactly two bounds")
	}
	return New(pair[0], pair[1])
}

// MarshalJSON encodes r as {"lower":L,"upper":U}.
func (r Range) MarshalJSON() ([]byte, error) {
	lower, upper := jsonBound(r.lower), jsonBound(r.upper)
	return json.Marshal(jsonBounds{Lower: &lower, Upper: &upper})
}

// UnmarshalJSON accepts {"lower":L,"upper":U} or [L,U]. Both bounds are
// required and must satisfy New.
func (r *Range) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var (
		parsed Range
		err    error
	)
	if len(data) > 0 && data[0] == '[' {
		var pair []jsonBound
		if err := json.Unmarshal(data, &pair); err != nil {
			return errors.Trace(err)
		}
		floats := make([]float64, len(pair))
		for i, b := range pair {
			floats[i] = float64(b)
		}
		parsed, err = fromPair(floats)
	} else {
		var b jsonBounds
		if err := json.Unmarshal(data, &b); err != nil {
			return errors.Trace(err)
		}
		parsed, err = fromBounds((*float64)(b.Lower), (*float64)(b.Upper))
	}
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Range) MarshalYAML() (any, error) {
	lower, upper := r.lower, r.upper
	return yamlBounds{Lower: &lower, Upper: &upper}, nil
}

// UnmarshalYAML accepts a lower/upper mapping or a two element sequence.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	var (
		parsed Range
		err    error
	)
	if value.Kind == yaml.SequenceNode {
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return errors.Trace(err)
		}
		parsed, err = fromPair(pair)
	} else {
		var b yamlBounds
		if err := value.Decode(&b); err != nil {
			return errors.Trace(err)
		}
		parsed, err = fromBounds(b.Lower, b.Upper)
	}
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
