package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermutations(t *testing.T) {
	assert := assert.New(t)

	perms := slices.Collect(Permutations([]int64{5, 6, 7}))
	assert.Equal([][]int64{
		{5, 6, 7},
		{5, 7, 6},
		{6, 5, 7},
		{6, 7, 5},
		{7, 5, 6},
		{7, 6, 5},
	}, perms)

	assert.Len(slices.Collect(Permutations([]int{0, 1, 2, 3, 4})), 120)
	assert.Equal([][]string{{}}, slices.Collect(Permutations([]string{})))
}

func TestPermutations_Duplicates(t *testing.T) {
	assert := assert.New(t)

	// Items are permuted by position, not by value.
	assert.Len(slices.Collect(Permutations([]int{1, 1})), 2)
}

func TestPermutations_Stop(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for perm := range Permutations([]int{1, 2, 3}) {
		count++
		if perm[0] == 2 {
			break
		}
	}
	assert.Equal(3, count)
}
