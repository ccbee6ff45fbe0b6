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

package prefixsum

import (
	"golang.org/x/exp/constraints"

	"github.com/sneller-labs/graphcore/ints"
	"github.com/sneller-labs/graphcore/parallel"
)

// Parallel computes the same result as Serial, but does so in three
// phases so that the work can run across multiple goroutines:
//
//  1. partition d into blocks of blockSize; each block computes its
//     own local sum, in parallel.
//  2. a serial exclusive scan over the (small) per-block sums yields
//     each block's base offset.
//  3. each block writes its local exclusive scan starting at its
//     base, in parallel.
//
// If blockSize <= 0, parallel.DefaultBlockSize is used. Parallel
// never changes the output for a given input relative to Serial —
// only the means by which it gets there.
func Parallel[D constraints.Integer](d []D, blockSize int) []D {
	n := len(d)
	s := make([]D, n+1)
	if n == 0 {
		return s
	}
	if blockSize <= 0 {
		blockSize = parallel.DefaultBlockSize
	}

	numBlocks := int(ints.ChunkCount(uint(n), uint(blockSize)))
	if numBlocks <= 1 {
		copy(s, Serial(d))
		return s
	}

	blockSums := make([]D, numBlocks)
	parallel.ForWorkers(numBlocks, parallel.Workers(), func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			var sum D
			for _, v := range d[start:end] {
				sum += v
			}
			blockSums[b] = sum
		}
	})

	blockBase := Serial(blockSums)

	parallel.ForWorkers(numBlocks, parallel.Workers(), func(lo, hi int) {
		for b := lo; b < hi; b++ {
			start := b * blockSize
			end := start + blockSize
			if end > n {
				end = n
			}
			acc := blockBase[b]
			for i := start; i < end; i++ {
				s[i] = acc
				acc += d[i]
			}
		}
	})
	s[n] = blockBase[numBlocks]
	return s
}
