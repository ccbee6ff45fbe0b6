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

// Package reader implements the external edge-list and
// serialized-graph input contracts: a parallel whitespace-delimited
// text reader and a flat-binary .sg/.wsg reader, both producing a
// graph.EdgeList or graph.CSRGraph ready for the builder.
package reader

import "github.com/sneller-labs/graphcore/graph"

// Reader reads one graph input source.
type Reader interface {
	// Suffix is the file extension this Reader claims (including
	// the leading dot), e.g. ".tsv" or ".sg".
	Suffix() string

	// ReadFile parses the whole input into an edge list. If
	// needsWeights is true and the input carries a weight column,
	// weights are populated; otherwise DestID.Weight is left zero
	// and the caller is expected to run a weight-fill pass. The
	// second return is the inferred node count, or
	// graph.UnknownNodeCount if the reader did not track it.
	ReadFile(needsWeights bool) (graph.EdgeList, int, error)

	// ReadSerializedGraph reads a pre-built CSRGraph directly,
	// skipping the builder entirely. Implementations that do not
	// support this return a non-nil error.
	ReadSerializedGraph() (*graph.CSRGraph, error)
}
