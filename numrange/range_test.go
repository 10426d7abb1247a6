package numrange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuenqlve/datarange/errors"
)

const delta = 0.0001

func exampleRange() Range {
	return MustNew(-1.0, 1.0)
}

func TestNew(t *testing.T) {
	r, err := New(-1.0, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r.LowerBound(), delta)
	assert.InDelta(t, 1.0, r.UpperBound(), delta)

	r, err = New(5.0, 5.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, r.Length(), delta)

	_, err = New(-10, -3)
	require.NoError(t, err)
}

func TestNewInvalidRange(t *testing.T) {
	_, err := New(10.0, -10.0)
	require.Error(t, err)
	assert.True(t, IsInvalidRange(err))
	assert.Equal(t, uint16(errors.ErrCodeInvalidRange), errors.CodeOf(err))
	assert.Equal(t, "Range(double, double): require lower (10.0) <= upper (-10.0).", err.Error())

	assert.Panics(t, func() { MustNew(10.0, -10.0) })
	assert.False(t, IsInvalidRange(nil))
}

func TestNewAcceptsNaN(t *testing.T) {
	r, err := New(math.NaN(), math.NaN())
	require.NoError(t, err)
	assert.True(t, r.IsNaNRange())
	assert.False(t, exampleRange().IsNaNRange())
	assert.False(t, MustNew(math.NaN(), 1).IsNaNRange())
}

func TestAccessors(t *testing.T) {
	r := exampleRange()
	assert.InDelta(t, 2.0, r.Length(), delta)
	assert.InDelta(t, -1.0, r.LowerBound(), delta)
	assert.InDelta(t, 1.0, r.UpperBound(), delta)
	assert.InDelta(t, 0.0, r.CentralValue(), delta)

	assert.InDelta(t, 4.0, MustNew(2, 6).CentralValue(), delta)
	huge := MustNew(math.MaxFloat64/2, math.MaxFloat64)
	assert.False(t, math.IsInf(huge.CentralValue(), 0))
}

func TestContains(t *testing.T) {
	r := exampleRange()
	assert.True(t, r.Contains(0))
	assert.True(t, r.Contains(-1))
	assert.True(t, r.Contains(1))
	assert.False(t, r.Contains(-2))
	assert.False(t, r.Contains(2))
	assert.False(t, r.Contains(math.NaN()))
}

func TestConstrain(t *testing.T) {
	r := exampleRange()
	assert.InDelta(t, 0.0, r.Constrain(0.0), delta)
	assert.InDelta(t, -1.0, r.Constrain(-5.0), delta)
	assert.InDelta(t, 1.0, r.Constrain(5.0), delta)

	for _, v := range []float64{-100, -1, -0.3, 0, 0.7, 1, 42} {
		got := r.Constrain(v)
		assert.True(t, r.Contains(got), "constrain(%v) = %v", v, got)
		if r.Contains(v) {
			assert.Equal(t, v, got)
		}
	}
}

func TestIntersects(t *testing.T) {
	r := exampleRange()
	testCases := []struct {
		name   string
		b0, b1 float64
		want   bool
	}{
		{"low overlap", -2.0, 0.0, true},
		{"high overlap", 0.0, 2.0, true},
		{"inside", -0.5, 0.5, true},
		{"covering", -3, 3, true},
		{"touch lower", -2.0, -1.0, true},
		{"touch upper", 1.0, 2.0, true},
		{"above", 2.0, 3.0, false},
		{"below", -3.0, -2.0, false},
		{"inverted query", 0.5, 0.2, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Intersects(tc.b0, tc.b1))
		})
	}
	assert.True(t, r.IntersectsRange(MustNew(1, 5)))
	assert.False(t, r.IntersectsRange(MustNew(1.5, 5)))
}

func TestCentralValueIsContained(t *testing.T) {
	for _, r := range []Range{exampleRange(), MustNew(5, 5), MustNew(-10, -3), MustNew(0.1, 1e9)} {
		assert.True(t, r.Contains(r.CentralValue()), r.String())
		assert.GreaterOrEqual(t, r.Length(), 0.0)
	}
}

func TestEquals(t *testing.T) {
	r := exampleRange()
	assert.True(t, r.Equals(MustNew(-1.0, 1.0)))
	other := MustNew(-1.0, 1.0)
	assert.True(t, r.Equals(&other))
	assert.False(t, r.Equals(MustNew(-2.0, 1.0)))
	assert.False(t, r.Equals(MustNew(-1.0, 2.0)))
	assert.False(t, r.Equals("not a range"))
	assert.False(t, r.Equals((*Range)(nil)))
	assert.False(t, r.Equals(nil))
	assert.True(t, r == MustNew(-1.0, 1.0))
}

func TestHash(t *testing.T) {
	r := exampleRange()
	assert.Equal(t, r.Hash(), MustNew(-1.0, 1.0).Hash())
	assert.NotEqual(t, r.Hash(), MustNew(-1.0, 2.0).Hash())
	assert.NotEqual(t, MustNew(1, 2).Hash(), MustNew(2, 1+2).Hash())

	negZero := math.Copysign(0, -1)
	a, b := MustNew(negZero, 1), MustNew(0, 1)
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, Equal, Compare(exampleRange(), MustNew(-1, 1)))
	assert.Equal(t, Less, Compare(MustNew(-2, 1), exampleRange()))
	assert.Equal(t, Greater, Compare(MustNew(0, 1), exampleRange()))
	assert.Equal(t, Less, Compare(MustNew(-1, 0), exampleRange()))
	assert.Equal(t, Greater, Compare(MustNew(-1, 3), exampleRange()))
}
