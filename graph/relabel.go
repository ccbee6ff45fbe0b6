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
	"errors"
	"sort"

	isort "github.com/sneller-labs/graphcore/internal/sort"
	"github.com/sneller-labs/graphcore/parallel"
)

// ErrRelabelDirected is returned by Relabel when called on a
// directed graph; relabeling by degree is only defined for
// undirected graphs.
var ErrRelabelDirected = errors.New("graph: relabel requires an undirected graph")

// Relabel ranks vertices by descending out-degree, breaking ties by
// ascending original id for reproducibility, and rebuilds the CSR
// with vertex ids remapped to those ranks. g must already be
// squished and undirected.
func Relabel(g *CSRGraph) (*CSRGraph, error) {
	if g.Directed() {
		return nil, ErrRelabelDirected
	}
	n := g.numNodes
	rank := make([]int, n)
	for i := range rank {
		rank[i] = i
	}
	degree := func(n NodeID) int { return g.OutDegree(n) }
	sort.Slice(rank, func(i, j int) bool {
		a, b := NodeID(rank[i]), NodeID(rank[j])
		da, db := degree(a), degree(b)
		if da != db {
			return da > db
		}
		return a < b
	})

	// newID[old] = new, the inverse permutation of rank.
	newID := make([]NodeID, n)
	for newIdx, oldIdx := range rank {
		newID[oldIdx] = NodeID(newIdx)
	}

	out := &CSRGraph{numNodes: n, weighted: g.weighted, directed: g.directed}
	deg := make([]int64, n)
	workers := parallel.Workers()
	parallel.ForWorkers(n, workers, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			deg[newID[i]] = int64(g.OutDegree(NodeID(i)))
		}
	})

	total := 0
	newIndex := make([]int64, n+1)
	for i, d := range deg {
		newIndex[i] = int64(total)
		total += int(d)
	}
	newIndex[n] = int64(total)
	newNeighs := make([]DestID, total)

	parallel.ForWorkers(n, workers, func(lo, hi int) {
		for oldID := lo; oldID < hi; oldID++ {
			dst := newID[oldID]
			slot := newIndex[dst]
			for _, nb := range g.OutNeighbors(NodeID(oldID)) {
				newNeighs[slot] = DestID{Target: newID[nb.Target], Weight: nb.Weight}
				slot++
			}
			sortByTarget(newNeighs[newIndex[dst]:newIndex[dst+1]])
		}
	})

	out.outIndex, out.outNeighs = newIndex, newNeighs
	return out, nil
}

func sortByTarget(slice []DestID) {
	if len(slice) == 0 {
		return
	}
	keys := make([]NodeID, len(slice))
	for i, d := range slice {
		keys[i] = d.Target
	}
	isort.QuicksortAsc(keys, slice, 0, len(slice)-1)
}
