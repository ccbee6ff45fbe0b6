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

import "github.com/sneller-labs/graphcore/heap"

// DegreeRank pairs a vertex with its out-degree, as reported by
// TopDegree.
type DegreeRank struct {
	Node   NodeID
	Degree int
}

// TopDegree reports the k vertices with the highest out-degree,
// sorted descending by degree (ascending id tie-break). It is a
// diagnostic for a human operator eyeballing whether a graph's hub
// structure looks sane; it has no bearing on CSR construction.
//
// Implemented with a bounded min-heap of size k: each candidate is
// compared against the current minimum of the top-k set, which
// keeps the work at O(n log k) instead of sorting every vertex.
func TopDegree(g *CSRGraph, k int) []DegreeRank {
	if k <= 0 || g.numNodes == 0 {
		return nil
	}
	if k > g.numNodes {
		k = g.numNodes
	}

	less := func(a, b DegreeRank) bool {
		if a.Degree != b.Degree {
			return a.Degree < b.Degree
		}
		return a.Node > b.Node
	}

	top := make([]DegreeRank, 0, k)
	for n := 0; n < g.numNodes; n++ {
		cand := DegreeRank{Node: NodeID(n), Degree: g.OutDegree(NodeID(n))}
		if len(top) < k {
			heap.PushSlice(&top, cand, less)
			continue
		}
		if less(top[0], cand) {
			heap.PopSlice(&top, less)
			heap.PushSlice(&top, cand, less)
		}
	}

	result := make([]DegreeRank, len(top))
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.PopSlice(&top, less)
	}
	return result
}
