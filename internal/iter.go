// Package internal holds iterator helpers shared by the emulator.
package internal

import (
	"iter"
	"slices"
)

// Permutations yields every ordering of items, without repetition, in
// lexicographic order of the item indexes. Each yielded slice is fresh.
func Permutations[T any](items []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		index := make([]int, len(items))
		for n := range index {
			index[n] = n
		}

		for {
			perm := make([]T, len(items))
			for n, i := range index {
				perm[n] = items[i]
			}
			if !yield(perm) {
				return
			}
			if !nextPermutation(index) {
				return
			}
		}
	}
}

// nextPermutation advances index to its next lexicographic permutation,
// returning false once the last permutation has been passed.
func nextPermutation(index []int) bool {
	i := len(index) - 2
	for i >= 0 && index[i] >= index[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(index) - 1
	for index[j] <= index[i] {
		j--
	}
	index[i], index[j] = index[j], index[i]
	slices.Reverse(index[i+1:])

	return true
}
