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

// Package graph implements the CSR (compressed sparse row) graph
// representation and the pipeline stages that build, canonicalize,
// and relabel it: the Builder turns an EdgeList into a raw CSRGraph,
// the Squisher canonicalizes each vertex's neighbor slice, and the
// Relabeler permutes vertex IDs by descending degree.
package graph

// NodeID identifies a vertex, in [0, numNodes). -1 is the sentinel
// for "not yet determined" used during node-count inference.
type NodeID = int32

// UnknownNodeCount is the sentinel passed to Build when the caller
// wants the node count inferred from the edge list.
const UnknownNodeCount = -1

// DestID is the neighbor record stored in adjacency. Weight is the
// zero value for unweighted graphs; ordering and equality of a DestID
// always project onto Target, regardless of Weight.
type DestID struct {
	Target NodeID
	Weight float64
}

// CSRGraph is an immutable directed or undirected graph stored in
// compressed sparse row form. The out-side is always present; the
// in-side is only populated for a directed, inverted build.
type CSRGraph struct {
	numNodes int
	weighted bool
	directed bool

	outNeighs []DestID
	outIndex  []int64

	inNeighs []DestID
	inIndex  []int64
}

// NumNodes returns the number of vertices.
func (g *CSRGraph) NumNodes() int {
	return g.numNodes
}

// Weighted reports whether DestID.Weight carries meaningful data.
func (g *CSRGraph) Weighted() bool {
	return g.weighted
}

// Directed reports whether the graph was built as a directed graph.
// This is independent of Inverted(): a directed, non-inverted build
// has only the out-side populated, so it cannot be inferred from
// in-side presence.
func (g *CSRGraph) Directed() bool {
	return g.directed
}

// Inverted reports whether the in-side CSR arrays are populated.
func (g *CSRGraph) Inverted() bool {
	return g.inIndex != nil
}

// OutDegree returns the number of out-neighbors of vertex n.
func (g *CSRGraph) OutDegree(n NodeID) int {
	return int(g.outIndex[n+1] - g.outIndex[n])
}

// OutNeighbors returns vertex n's out-neighbor slice. The slice
// aliases the graph's internal storage and must not be retained
// past a subsequent Squish/Relabel call.
func (g *CSRGraph) OutNeighbors(n NodeID) []DestID {
	return g.outNeighs[g.outIndex[n]:g.outIndex[n+1]]
}

// InDegree returns the number of in-neighbors of vertex n. Valid
// only when Inverted().
func (g *CSRGraph) InDegree(n NodeID) int {
	return int(g.inIndex[n+1] - g.inIndex[n])
}

// InNeighbors returns vertex n's in-neighbor slice. Valid only when
// Inverted().
func (g *CSRGraph) InNeighbors(n NodeID) []DestID {
	return g.inNeighs[g.inIndex[n]:g.inIndex[n+1]]
}

// NumOutEdges returns the total number of out-adjacency entries.
func (g *CSRGraph) NumOutEdges() int64 {
	if len(g.outIndex) == 0 {
		return 0
	}
	return g.outIndex[len(g.outIndex)-1]
}
