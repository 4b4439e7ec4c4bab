package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/anneal/tsp"
)

func TestValidatePermutation(t *testing.T) {
	assert.NoError(t, tsp.ValidatePermutation([]int{2, 0, 1}, 3))

	for _, bad := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		assert.ErrorIs(t, tsp.ValidatePermutation(bad, 3), tsp.ErrDimensionMismatch, "%v", bad)
	}
	assert.ErrorIs(t, tsp.ValidatePermutation(nil, 0), tsp.ErrDimensionMismatch)
}

func TestMakeTourFromPermutation_RotatesToStart(t *testing.T) {
	tour, err := tsp.MakeTourFromPermutation([]int{3, 1, 0, 2}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1, 0}, tour)
	assert.NoError(t, tsp.ValidateTour(tour, 4))
}

func TestValidateTour(t *testing.T) {
	assert.NoError(t, tsp.ValidateTour([]int{0, 1, 2, 0}, 3))

	cases := [][]int{
		{0, 1, 2},       // not closed
		{1, 0, 2, 1},    // wrong start
		{0, 1, 1, 0},    // duplicate
		{0, 1, 2, 0, 0}, // too long
	}
	for _, c := range cases {
		assert.ErrorIs(t, tsp.ValidateTour(c, 3), tsp.ErrDimensionMismatch, "%v", c)
	}
}

func TestCopyTour_Independent(t *testing.T) {
	src := []int{0, 1, 2, 0}
	cp := tsp.CopyTour(src)
	cp[1] = 9
	assert.Equal(t, 1, src[1])
	assert.Nil(t, tsp.CopyTour(nil))
}
