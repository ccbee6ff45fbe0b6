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

package graph

import (
	"github.com/sneller-labs/graphcore/parallel"
	"github.com/sneller-labs/graphcore/prefixsum"
	isort "github.com/sneller-labs/graphcore/internal/sort"
)

// Squish canonicalizes a raw CSRGraph: for each vertex, sorts its
// neighbor slice ascending by target, removes consecutive duplicate
// targets (first-wins on weight), and removes any entry equal to
// the vertex itself (self-loop). Each vertex's neighbor list is
// therefore sorted and duplicate/self-loop free on return; this
// holds for arbitrarily duplicated/self-looped input.
func Squish(g *CSRGraph) *CSRGraph {
	out := &CSRGraph{numNodes: g.numNodes, weighted: g.weighted, directed: g.directed}
	out.outIndex, out.outNeighs = squishSide(g.outIndex, g.outNeighs, g.numNodes)
	if g.Inverted() {
		out.inIndex, out.inNeighs = squishSide(g.inIndex, g.inNeighs, g.numNodes)
	}
	return out
}

func squishSide(index []int64, neighs []DestID, numNodes int) ([]int64, []DestID) {
	cleaned := make([]int64, numNodes)
	workers := parallel.Workers()

	parallel.ForWorkers(numNodes, workers, func(lo, hi int) {
		for n := lo; n < hi; n++ {
			slice := neighs[index[n]:index[n+1]]
			cleaned[n] = int64(squishVertex(NodeID(n), slice))
		}
	})

	newIndex := prefixsum.Parallel(cleaned, parallel.DefaultBlockSize)
	newNeighs := make([]DestID, newIndex[numNodes])

	parallel.ForWorkers(numNodes, workers, func(lo, hi int) {
		for n := lo; n < hi; n++ {
			src := neighs[index[n] : index[n]+cleaned[n]]
			copy(newNeighs[newIndex[n]:newIndex[n+1]], src)
		}
	})
	return newIndex, newNeighs
}

// squishVertex sorts slice ascending by target, compacts consecutive
// duplicates and any self-loop (target == self) in place, and
// returns the new length.
func squishVertex(self NodeID, slice []DestID) int {
	if len(slice) == 0 {
		return 0
	}
	keys := make([]NodeID, len(slice))
	for i, d := range slice {
		keys[i] = d.Target
	}
	isort.QuicksortAsc(keys, slice, 0, len(slice)-1)

	w := 0
	for r := 0; r < len(slice); r++ {
		if slice[r].Target == self {
			continue
		}
		if w > 0 && slice[w-1].Target == slice[r].Target {
			continue
		}
		slice[w] = slice[r]
		w++
	}
	return w
}
