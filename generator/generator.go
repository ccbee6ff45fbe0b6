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

// Package generator produces synthetic edge lists for benchmarking
// the builder/squisher/relabeler pipeline without needing a real
// input file: a Kronecker/R-MAT generator (skewed, power-law-like
// degree distribution) and a uniform-random generator.
package generator

import "github.com/sneller-labs/graphcore/graph"

// Generator produces a synthetic EdgeList of 2^Scale vertices and
// EdgeFactor*2^Scale edges.
type Generator interface {
	Generate(uniform bool) (graph.EdgeList, error)
}

// InsertWeights fills in el's weights as a deterministic, pure
// function of edge index, so two runs over the same edge list
// produce byte-identical weighted graphs. weight(i) = 1 + (i % 256).
func InsertWeights(el graph.EdgeList) {
	for i := range el {
		el[i].V.Weight = float64(1 + (i % 256))
	}
}
