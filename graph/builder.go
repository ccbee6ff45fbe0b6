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
	"fmt"
	"sync/atomic"

	"github.com/sneller-labs/graphcore/parallel"
	"github.com/sneller-labs/graphcore/prefixsum"
)

// ErrOffsetOverflow is returned by Build when a CSR side's total edge
// count does not fit in an int (the offset array's index type).
var ErrOffsetOverflow = errors.New("graph: adjacency offset overflow")

// BuildOptions configures Build.
type BuildOptions struct {
	// NumNodes is the vertex count, or UnknownNodeCount to infer it
	// from the edge list via a parallel max-reduction over both
	// endpoints.
	NumNodes int

	// Directed, when false, builds a single symmetric out-side
	// (every edge is stored both ways) and no in-side exists.
	Directed bool

	// Invert additionally builds the in-side CSR arrays. Only
	// meaningful when Directed is true.
	Invert bool

	// Weighted marks the resulting graph's DestID.Weight as
	// meaningful. It does not itself fill in weights — weight
	// insertion is the reader/generator's responsibility.
	Weighted bool

	// Workers is the degree of parallelism to use; 0 selects
	// parallel.Workers().
	Workers int
}

// Build constructs a raw CSRGraph from el. Neighbor slice ordering
// within a vertex is unspecified after Build (it depends on atomic
// scatter race order); call Squish to canonicalize.
func Build(el EdgeList, opts BuildOptions) (*CSRGraph, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = parallel.Workers()
	}

	numNodes := opts.NumNodes
	if numNodes < 0 {
		numNodes = inferNumNodes(el, workers)
	}
	if numNodes < 0 {
		numNodes = 0
	}

	g := &CSRGraph{numNodes: numNodes, weighted: opts.Weighted, directed: opts.Directed}

	if !opts.Directed {
		idx, neighs, err := buildSide(el, numNodes, workers, false, true)
		if err != nil {
			return nil, err
		}
		g.outIndex, g.outNeighs = idx, neighs
		return g, nil
	}

	idx, neighs, err := buildSide(el, numNodes, workers, false, false)
	if err != nil {
		return nil, err
	}
	g.outIndex, g.outNeighs = idx, neighs

	if opts.Invert {
		inIdx, inNeighs, err := buildSide(el, numNodes, workers, true, false)
		if err != nil {
			return nil, err
		}
		g.inIndex, g.inNeighs = inIdx, inNeighs
	}
	return g, nil
}

// inferNumNodes scans el in parallel, max-reducing over both
// endpoints, and returns max+1 (or 0 for an empty edge list). Each
// partition computes a private local max and merges it into the
// shared max with a single atomic compare-and-swap once it is done,
// so the per-partition scan itself touches no shared state.
func inferNumNodes(el EdgeList, workers int) int {
	if len(el) == 0 {
		return 0
	}
	var shared int64 = -1
	parallel.ForWorkers(len(el), workers, func(lo, hi int) {
		m := NodeID(-1)
		for _, e := range el[lo:hi] {
			if e.U > m {
				m = e.U
			}
			if e.V.Target > m {
				m = e.V.Target
			}
		}
		for {
			cur := atomic.LoadInt64(&shared)
			if int64(m) <= cur {
				return
			}
			if atomic.CompareAndSwapInt64(&shared, cur, int64(m)) {
				return
			}
		}
	})
	return int(shared) + 1
}

// buildSide runs the degree-count / offsets / scatter algorithm
// for one CSR side.
//
//   - transpose=false, symmetrize=false: ordinary directed out-side;
//     only deg[u] is incremented, slot offsets[u] holds v's dest
//     projection.
//   - transpose=true, symmetrize=false: in-side; only deg[v] is
//     incremented, slot offsets[v] holds u's source projection.
//   - symmetrize=true: undirected out-side; both deg[u] and deg[v]
//     are incremented and both slots are written (transpose is
//     ignored in this mode).
func buildSide(el EdgeList, numNodes, workers int, transpose, symmetrize bool) ([]int64, []DestID, error) {
	deg := make([]int64, numNodes)
	forU := symmetrize || !transpose
	forV := symmetrize || transpose

	parallel.ForWorkers(len(el), workers, func(lo, hi int) {
		for _, e := range el[lo:hi] {
			if forU {
				atomic.AddInt64(&deg[e.U], 1)
			}
			if forV {
				atomic.AddInt64(&deg[e.V.Target], 1)
			}
		}
	})

	index := prefixsum.Parallel(deg, parallel.DefaultBlockSize)
	total := index[numNodes]
	if total < 0 || int64(int(total)) != total {
		return nil, nil, fmt.Errorf("%w: %d entries", ErrOffsetOverflow, total)
	}

	neighs := make([]DestID, total)
	scatter := make([]int64, numNodes)
	copy(scatter, index[:numNodes])

	parallel.ForWorkers(len(el), workers, func(lo, hi int) {
		for _, e := range el[lo:hi] {
			if forU {
				slot := atomic.AddInt64(&scatter[e.U], 1) - 1
				neighs[slot] = e.V
			}
			if forV {
				slot := atomic.AddInt64(&scatter[e.V.Target], 1) - 1
				neighs[slot] = sourceProjection(e)
			}
		}
	})

	return index, neighs, nil
}
