// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package sort implements a generic in-place quicksort over an
// ordered key slice with an optional index payload that is permuted
// in lockstep with the keys.
package sort

import "golang.org/x/exp/constraints"

// QuicksortAsc sorts keys[lo] through keys[hi] (hi inclusive)
// ascending, permuting indices (if non-nil) the same way. indices may be nil, in which case
// only keys are reordered.
func QuicksortAsc[K constraints.Ordered, I any](keys []K, indices []I, lo, hi int) {
	for lo < hi {
		if hi-lo < 12 {
			insertionSortAsc(keys, indices, lo, hi)
			return
		}
		p := keys[(lo+hi)/2]
		i, j := partitionAsc(keys, indices, p, lo, hi)
		// recurse into the smaller side, loop over the larger
		// one to keep stack depth at O(log n)
		if j-lo < hi-i {
			QuicksortAsc(keys, indices, lo, j)
			lo = i
		} else {
			QuicksortAsc(keys, indices, i, hi)
			hi = j
		}
	}
}

// QuicksortDesc sorts keys[lo] through keys[hi] (hi inclusive)
// descending, permuting indices
// (if non-nil) the same way.
func QuicksortDesc[K constraints.Ordered, I any](keys []K, indices []I, lo, hi int) {
	for lo < hi {
		if hi-lo < 12 {
			insertionSortDesc(keys, indices, lo, hi)
			return
		}
		p := keys[(lo+hi)/2]
		i, j := partitionDesc(keys, indices, p, lo, hi)
		if j-lo < hi-i {
			QuicksortDesc(keys, indices, lo, j)
			lo = i
		} else {
			QuicksortDesc(keys, indices, i, hi)
			hi = j
		}
	}
}

func partitionAsc[K constraints.Ordered, I any](keys []K, indices []I, pivot K, left, right int) (int, int) {
	for left <= right {
		for keys[left] < pivot {
			left++
		}
		for keys[right] > pivot {
			right--
		}
		if left <= right {
			keys[left], keys[right] = keys[right], keys[left]
			if indices != nil {
				indices[left], indices[right] = indices[right], indices[left]
			}
			left++
			right--
		}
	}
	return left, right
}

func partitionDesc[K constraints.Ordered, I any](keys []K, indices []I, pivot K, left, right int) (int, int) {
	for left <= right {
		for keys[left] > pivot {
			left++
		}
		for keys[right] < pivot {
			right--
		}
		if left <= right {
			keys[left], keys[right] = keys[right], keys[left]
			if indices != nil {
				indices[left], indices[right] = indices[right], indices[left]
			}
			left++
			right--
		}
	}
	return left, right
}

func insertionSortAsc[K constraints.Ordered, I any](keys []K, indices []I, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
			if indices != nil {
				indices[j-1], indices[j] = indices[j], indices[j-1]
			}
		}
	}
}

func insertionSortDesc[K constraints.Ordered, I any](keys []K, indices []I, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && keys[j-1] < keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
			if indices != nil {
				indices[j-1], indices[j] = indices[j], indices[j-1]
			}
		}
	}
}
