package random

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-random/source"
)

func TestSelection(t *testing.T) {
	const (
		chars = "0123456789abcdefghijklmnopqrstuvwxyz"
		n     = 6
	)

	in := func(t *testing.T, c string) {
		for _, e := range c {
			require.Contains(t, chars, string(e))
		}
	}

	src := rand.New(rand.NewSource(3))

	first, err := Selection(src, []byte(chars), n)
	require.NoError(t, err)
	require.Len(t, first, n)
	in(t, string(first))

	second, err := Selection(src, []byte(chars), n)
	require.NoError(t, err)
	require.Len(t, second, n)
	in(t, string(second))

	require.NotEqual(t, first, second)
}

func TestSelectionWhenEmpty(t *testing.T) {
	s, err := Selection(source.NewMockSource(t), []string{}, 2)
	require.ErrorIs(t, err, ErrChoiceIsEmpty)
	require.Nil(t, s)
}

func TestSelectionNone(t *testing.T) {
	s, err := Selection(source.NewMockSource(t), []string{"a"}, 0)
	require.NoError(t, err)
	require.Empty(t, s)
}
