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

	"github.com/sneller-labs/graphcore/graph"
)

// Uniform generates a synthetic edge list with both endpoints drawn
// uniformly at random from [0, 2^Scale) — a much flatter degree
// distribution than Kronecker, useful as a baseline/control graph.
type Uniform struct {
	Params
}

func (u *Uniform) Generate(bool) (graph.EdgeList, error) {
	return generateParallel(u.Params, uniformEdge)
}

func uniformEdge(rng *rand.Rand, scale int) (graph.NodeID, graph.NodeID) {
	n := int64(1) << uint(scale)
	return graph.NodeID(rng.Int63n(n)), graph.NodeID(rng.Int63n(n))
}
