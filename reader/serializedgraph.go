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

package reader

import (
	"fmt"
	"os"

	"github.com/sneller-labs/graphcore/graph"
)

// SerializedGraph reads a pre-built CSRGraph from a .sg (unweighted)
// or .wsg (weighted) file written by graph.CSRGraph.WriteTo.
type SerializedGraph struct {
	Filename string
	Weighted bool
}

func (r *SerializedGraph) Suffix() string {
	if r.Weighted {
		return ".wsg"
	}
	return ".sg"
}

func (r *SerializedGraph) ReadFile(needsWeights bool) (graph.EdgeList, int, error) {
	return nil, graph.UnknownNodeCount, fmt.Errorf("reader: %s is a serialized graph, not an edge list", r.Filename)
}

func (r *SerializedGraph) ReadSerializedGraph() (*graph.CSRGraph, error) {
	f, err := os.Open(r.Filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return graph.ReadGraphFrom(f)
}
