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

// Package pipeline drives reader/generator input through the
// builder and squisher to produce a finished CSRGraph, timing and
// reporting each stage.
package pipeline

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sneller-labs/graphcore/config"
	"github.com/sneller-labs/graphcore/generator"
	"github.com/sneller-labs/graphcore/graph"
	"github.com/sneller-labs/graphcore/reader"
)

// RunID is stamped on every pipeline run and included in every
// timing line, so concurrent runs can be told apart in aggregated
// logs (e.g. a benchmark harness launching several at once).
type RunID = uuid.UUID

// destIDSize estimates the serialized footprint of one DestID, used
// by the allocation pre-check ahead of a synthetic generation run.
const destIDSize = 12 // int32 target + float64 weight

// MakeGraph drives reader/generator -> builder -> squisher per cfg,
// returning the finished, canonicalized CSRGraph. Each stage's
// wall-clock time is reported via PrintTime.
func MakeGraph(cfg config.Config) (*graph.CSRGraph, error) {
	runID := uuid.New()

	if filename := cfg.Filename(); filename != "" && isSerializedSuffix(filename) {
		r := &reader.SerializedGraph{Filename: filename, Weighted: strings.HasSuffix(filename, ".wsg")}
		start := time.Now()
		g, err := r.ReadSerializedGraph()
		PrintTime(runID, "read serialized graph", time.Since(start))
		return g, err
	}

	el, numNodes, err := readOrGenerate(cfg, runID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	g, err := graph.Build(el, graph.BuildOptions{
		NumNodes: numNodes,
		Directed: !cfg.Symmetrize(),
		Invert:   cfg.Invert(),
		Weighted: false,
		Workers:  cfg.Workers(),
	})
	PrintTime(runID, "build", time.Since(start))
	if err != nil {
		return nil, err
	}

	start = time.Now()
	g = graph.Squish(g)
	PrintTime(runID, "squish", time.Since(start))

	if cfg.Relabel() {
		start = time.Now()
		relabeled, err := graph.Relabel(g)
		PrintTime(runID, "relabel", time.Since(start))
		if err != nil {
			return nil, err
		}
		g = relabeled
	}

	return g, nil
}

func readOrGenerate(cfg config.Config, runID RunID) (graph.EdgeList, int, error) {
	if filename := cfg.Filename(); filename != "" {
		start := time.Now()
		r := &reader.TextReader{Filename: filename, Workers: cfg.Workers()}
		el, numNodes, err := r.ReadFile(true)
		PrintTime(runID, "read text edge list", time.Since(start))
		return el, numNodes, err
	}

	edgeFactor := cfg.EdgeFactor()
	if edgeFactor <= 0 {
		edgeFactor = config.DefaultEdgeFactor
	}
	params := generator.Params{Scale: cfg.Scale(), EdgeFactor: edgeFactor, Workers: cfg.Workers()}
	wantBytes := int64(edgeFactor) * (int64(1) << uint(cfg.Scale())) * destIDSize
	if err := config.CheckAllocation(wantBytes); err != nil {
		return nil, graph.UnknownNodeCount, err
	}

	start := time.Now()
	gen := &generator.Kronecker{Params: params}
	el, err := gen.Generate(cfg.Uniform())
	PrintTime(runID, "generate", time.Since(start))
	if err != nil {
		return nil, graph.UnknownNodeCount, err
	}
	return el, 1 << uint(cfg.Scale()), nil
}

func isSerializedSuffix(filename string) bool {
	return strings.HasSuffix(filename, ".sg") || strings.HasSuffix(filename, ".wsg")
}

// PrintTime reports a pipeline stage's duration to stderr, tagged
// with the run's correlation id.
func PrintTime(id RunID, label string, d time.Duration) {
	fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", id, label, d)
}
