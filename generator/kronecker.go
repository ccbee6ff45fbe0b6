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

package generator

import (
	"math/rand"
	"sync/atomic"

	"github.com/sneller-labs/graphcore/graph"
	"github.com/sneller-labs/graphcore/parallel"
)

// rmat probabilities for the four quadrants of the recursive
// partitioning matrix: the standard Graph500/GAP parameters, which
// favor the (0,0) quadrant to produce a power-law-like, hub-heavy
// degree distribution.
const (
	rmatA = 0.57
	rmatB = 0.19
	rmatC = 0.19
	rmatD = 0.05
)

// Params describes the size of a synthetic graph: 2^Scale vertices
// and EdgeFactor*2^Scale edges. Seed makes generation reproducible;
// Workers selects the degree of parallelism (0 = parallel.Workers()).
type Params struct {
	Scale      int
	EdgeFactor int
	Seed       int64
	Workers    int
}

func (p Params) numNodes() int { return 1 << uint(p.Scale) }
func (p Params) numEdges() int { return p.EdgeFactor * p.numNodes() }

func (p Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return parallel.Workers()
}

// Kronecker generates a synthetic edge list with the recursive
// R-MAT/Kronecker model, parallelized over edge index with one
// private *rand.Rand per generated edge range, seeded
// deterministically from Params.Seed and the range's start index.
// The ranges depend only on the edge count, so a given Params always
// produces the same edge list whatever the worker count.
type Kronecker struct {
	Params
}

func (k *Kronecker) Generate(uniform bool) (graph.EdgeList, error) {
	if uniform {
		return generateParallel(k.Params, uniformEdge)
	}
	return generateParallel(k.Params, rmatEdge)
}

type edgeFunc func(rng *rand.Rand, scale int) (graph.NodeID, graph.NodeID)

// minPoolDistance bounds how far generateParallel recursively splits
// an edge range before generating it directly on the current
// goroutine: below this width, further splitting would spend more on
// scheduling than it saves.
const minPoolDistance = 1 << 14

// generateParallel fills one edge per index in [0, p.numEdges())
// using a push-work parallel.Pool: each task either generates its
// range directly (once the range is small enough) or splits it in
// half and re-enqueues both halves. Idle workers pick up whichever
// queued halves remain, so no worker is bound to a fixed share of
// the edge range.
func generateParallel(p Params, fn edgeFunc) (graph.EdgeList, error) {
	n := p.numEdges()
	el := make(graph.EdgeList, n)
	if n == 0 {
		return el, nil
	}

	pool := parallel.NewPool(p.workers())
	pending := int64(1)

	var genTask parallel.PoolFunc
	genTask = func(start, end int, args any, pl parallel.Pool) {
		if end-start > minPoolDistance {
			mid := start + (end-start)/2
			atomic.AddInt64(&pending, 2)
			pl.Enqueue(start, mid, genTask, nil)
			pl.Enqueue(mid, end, genTask, nil)
		} else {
			rng := rand.New(rand.NewSource(p.Seed + int64(start) + 1))
			for i := start; i < end; i++ {
				u, v := fn(rng, p.Scale)
				el[i] = graph.Edge{U: u, V: graph.DestID{Target: v}}
			}
		}
		if atomic.AddInt64(&pending, -1) == 0 {
			pl.Close(nil)
		}
	}

	pool.Enqueue(0, n, genTask, nil)
	if err := pool.Wait(); err != nil {
		return nil, err
	}
	return el, nil
}

// rmatEdge draws one edge by recursively choosing one of four
// quadrants of an N x N adjacency matrix at each of `scale` levels,
// narrowing the candidate (u, v) range by half each time.
func rmatEdge(rng *rand.Rand, scale int) (graph.NodeID, graph.NodeID) {
	if scale <= 0 {
		return 0, 0
	}
	var u, v int64
	step := int64(1) << uint(scale-1)
	for step > 0 {
		p := rng.Float64()
		switch {
		case p < rmatA:
			// quadrant (0,0): no offset
		case p < rmatA+rmatB:
			v += step
		case p < rmatA+rmatB+rmatC:
			u += step
		default:
			u += step
			v += step
		}
		step /= 2
	}
	return graph.NodeID(u), graph.NodeID(v)
}
