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

package config

import "flag"

// FromFlags registers the pipeline's flags on fs and returns a
// Config backed by them. Call fs.Parse before reading the Config.
func FromFlags(fs *flag.FlagSet) Config {
	v := &Values{EdgeFactorVal: DefaultEdgeFactor}
	fs.StringVar(&v.FilenameVal, "f", "", "input edge-list or serialized-graph file")
	fs.IntVar(&v.ScaleVal, "scale", 0, "generate a synthetic graph with 2^scale vertices")
	fs.BoolVar(&v.UniformVal, "uniform", false, "use uniform-random instead of Kronecker generation")
	fs.BoolVar(&v.SymmetrizeVal, "sym", true, "symmetrize edges into an undirected graph")
	fs.BoolVar(&v.InvertVal, "invert", false, "build the in-neighbor CSR side as well (directed graphs only)")
	fs.BoolVar(&v.RelabelVal, "relabel", false, "permute vertex ids by descending degree after squishing (undirected graphs only)")
	fs.IntVar(&v.WorkersVal, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.IntVar(&v.EdgeFactorVal, "edgefactor", DefaultEdgeFactor, "edges per vertex for synthetic generation")
	fs.StringVar(&v.OutputPathVal, "o", "", "write the built graph to this path (.sg/.wsg)")
	fs.StringVar(&v.CompressionVal, "compression", "", "compression for -o output: \"\", \"s2\", \"zstd\"")
	return v
}
