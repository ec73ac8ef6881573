package random

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-random/errors/definitions"
	"github.com/couchbase/tools-random/source"
)

func TestFloat64Range(t *testing.T) {
	type testCase struct {
		name     string
		mn, mx   float64
		draws    []float64
		expected float64
	}

	cases := []testCase{
		{
			name:     "Interpolated",
			mn:       10,
			mx:       20,
			draws:    []float64{0.5},
			expected: 15,
		},
		{
			name:     "LowerBound",
			mn:       -1,
			mx:       1,
			draws:    []float64{0},
			expected: -1,
		},
		{
			name:     "RoundedToUpperBoundRedrawn",
			mn:       1,
			mx:       2,
			draws:    []float64{math.Nextafter(1, 0), 0.25},
			expected: 1.25,
		},
		{
			name:     "OverflowingRange",
			mn:       -math.MaxFloat64,
			mx:       math.MaxFloat64,
			draws:    []float64{0.5},
			expected: 0,
		},
		{
			name:     "OverflowingRangeLowerBound",
			mn:       -math.MaxFloat64,
			mx:       math.MaxFloat64,
			draws:    []float64{0},
			expected: -math.MaxFloat64,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := source.NewMockSource(t)

			for _, draw := range tc.draws {
				src.On("Float64").Return(draw).Once()
			}

			n, err := Float64Range(src, tc.mn, tc.mx)
			require.NoError(t, err)
			require.Equal(t, tc.expected, n)
		})
	}
}

func TestFloat32(t *testing.T) {
	src := source.NewMockSource(t)
	src.On("Float64").Return(math.Nextafter(1, 0)).Once()
	src.On("Float64").Return(0.5).Once()

	require.Equal(t, float32(0.5), Float32(src))
}

func TestFloat64(t *testing.T) {
	src := source.NewMockSource(t)
	src.On("Float64").Return(0.125)

	require.Equal(t, 0.125, Float64(src))
}

func TestFloatWithinBounds(t *testing.T) {
	src := rand.New(rand.NewSource(9))

	for i := 0; i < 10_000; i++ {
		f32, err := Float32Range(src, -1.5, 2.5)
		require.NoError(t, err)
		require.GreaterOrEqual(t, f32, float32(-1.5))
		require.Less(t, f32, float32(2.5))

		f64, err := Float64Range(src, 1e-9, 2e-9)
		require.NoError(t, err)
		require.GreaterOrEqual(t, f64, 1e-9)
		require.Less(t, f64, 2e-9)

		n32, err := Float32N(src, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n32, float32(0))
		require.Less(t, n32, float32(3))

		n64, err := Float64N(src, 1e6)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n64, 0.0)
		require.Less(t, n64, 1e6)

		u32 := Float32(src)
		require.GreaterOrEqual(t, u32, float32(0))
		require.Less(t, u32, float32(1))
	}
}

func TestFloatDegenerateRange(t *testing.T) {
	src := source.NewMockSource(t)

	f32, err := Float32Range(src, 1.5, 1.5)
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)

	f64, err := Float64Range(src, -2, -2)
	require.NoError(t, err)
	require.Equal(t, -2.0, f64)

	zero, err := Float64N(src, 0)
	require.NoError(t, err)
	require.Zero(t, zero)
}

func TestFloatInvalidRange(t *testing.T) {
	type testCase struct {
		name string
		fn   func(src source.Source) error
		arg  string
	}

	cases := []testCase{
		{
			name: "Float32MinGreaterThanMax",
			fn:   func(src source.Source) error { _, err := Float32Range(src, 1, 0); return err },
			arg:  "minValue",
		},
		{
			name: "Float64MinGreaterThanMax",
			fn:   func(src source.Source) error { _, err := Float64Range(src, 0.1, -0.1); return err },
			arg:  "minValue",
		},
		{
			name: "NaN",
			fn:   func(src source.Source) error { _, err := Float64Range(src, math.NaN(), 1); return err },
			arg:  "minValue",
		},
		{
			name: "Float32NegativeMax",
			fn:   func(src source.Source) error { _, err := Float32N(src, -1); return err },
			arg:  "maxValue",
		},
		{
			name: "Float64NegativeMax",
			fn:   func(src source.Source) error { _, err := Float64N(src, -math.SmallestNonzeroFloat64); return err },
			arg:  "maxValue",
		},
		{
			name: "InfiniteMin",
			fn:   func(src source.Source) error { _, err := Float64Range(src, math.Inf(-1), 0); return err },
			arg:  "minValue",
		},
		{
			name: "InfiniteMax",
			fn:   func(src source.Source) error { _, err := Float32N(src, float32(math.Inf(1))); return err },
			arg:  "maxValue",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var rangeErr *definitions.RangeError

			require.ErrorAs(t, tc.fn(source.NewMockSource(t)), &rangeErr)
			require.Equal(t, tc.arg, rangeErr.Name)
		})
	}
}
