package definitions

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeErrorError(t *testing.T) {
	type testCase struct {
		name     string
		err      *RangeError
		expected string
	}

	cases := []testCase{
		{
			name:     "MinValue",
			err:      NewMinValueError(int64(10)),
			expected: "'minValue' (10) must be smaller than or equal to 'maxValue'",
		},
		{
			name:     "MaxValue",
			err:      NewMaxValueError(int8(-1)),
			expected: "'maxValue' (-1) must be greater than or equal to 0",
		},
		{
			name:     "Custom",
			err:      &RangeError{Name: "digits", Value: 0, Constraint: "must be positive"},
			expected: "'digits' (0) must be positive",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestIsRangeError(t *testing.T) {
	require.True(t, IsRangeError(NewMinValueError(1)))
	require.True(t, IsRangeError(fmt.Errorf("failed to sample: %w", NewMaxValueError(-1))))
	require.False(t, IsRangeError(errors.New("range")))
	require.False(t, IsRangeError(nil))
}

func TestRangeErrorFields(t *testing.T) {
	err := NewMinValueError(uint16(7))

	var rangeErr *RangeError

	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &rangeErr)
	require.Equal(t, "minValue", rangeErr.Name)
	require.Equal(t, uint16(7), rangeErr.Value)
}
