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
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"sync/atomic"

	"github.com/sneller-labs/graphcore/bucket"
	"github.com/sneller-labs/graphcore/graph"
	"github.com/sneller-labs/graphcore/parallel"
)

// TextReader reads a whitespace/tab-delimited edge-list text file:
// one edge per line, "u v" or "u v w", blank lines and lines
// starting with '#' or '%' (a common convention in graph benchmark
// corpora) ignored. Each worker goroutine owns a contiguous
// byte range of the file, adjusted so no line straddles a range
// boundary, scans it with a bufio.Scanner, and donates its locally
// built edge slice to a shared bucket.Bucket — the direct motivating
// use case the Bucket container was designed for.
type TextReader struct {
	Filename string
	Workers  int
}

func (r *TextReader) Suffix() string { return ".tsv" }

func (r *TextReader) ReadSerializedGraph() (*graph.CSRGraph, error) {
	return nil, fmt.Errorf("reader: %s is a text edge list, not a serialized graph", r.Filename)
}

func (r *TextReader) ReadFile(needsWeights bool) (graph.EdgeList, int, error) {
	data, err := os.ReadFile(r.Filename)
	if err != nil {
		return nil, graph.UnknownNodeCount, err
	}

	workers := r.Workers
	if workers <= 0 {
		workers = parallel.Workers()
	}
	ranges := splitOnLines(data, workers)

	b := bucket.New[graph.Edge]()
	var maxNode int64 = -1
	var firstErr atomic.Value // stores error

	parallel.ForWorkers(len(ranges), len(ranges), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			rg := ranges[i]
			local, localMax, err := scanEdges(data[rg[0]:rg[1]], needsWeights)
			if err != nil {
				firstErr.CompareAndSwap(nil, err)
				continue
			}
			for {
				cur := atomic.LoadInt64(&maxNode)
				if localMax <= cur {
					break
				}
				if atomic.CompareAndSwapInt64(&maxNode, cur, localMax) {
					break
				}
			}
			b.Donate(&local)
		}
	})

	if v := firstErr.Load(); v != nil {
		return nil, graph.UnknownNodeCount, v.(error)
	}

	numNodes := graph.UnknownNodeCount
	if maxNode >= 0 {
		numNodes = int(maxNode) + 1
	}
	return graph.EdgeList(b.Flatten()), numNodes, nil
}

// splitOnLines partitions data into at most n contiguous byte
// ranges, each boundary pushed forward to the next '\n' so no line
// is split across two ranges.
func splitOnLines(data []byte, n int) [][2]int {
	if len(data) == 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}
	chunk := (len(data) + n - 1) / n
	var ranges [][2]int
	start := 0
	for start < len(data) {
		end := start + chunk
		if end >= len(data) {
			end = len(data)
		} else if nl := bytes.IndexByte(data[end:], '\n'); nl >= 0 {
			end += nl + 1
		} else {
			end = len(data)
		}
		ranges = append(ranges, [2]int{start, end})
		start = end
	}
	return ranges
}

// scanEdges parses every edge record in chunk, returning the edges
// and the highest NodeID seen (-1 if none).
func scanEdges(chunk []byte, needsWeights bool) ([]graph.Edge, int64, error) {
	var edges []graph.Edge
	maxNode := int64(-1)

	s := bufio.NewScanner(bytes.NewReader(chunk))
	s.Buffer(make([]byte, 64*1024), 1<<20)
	for s.Scan() {
		line := bytes.TrimSpace(s.Bytes())
		if len(line) == 0 || line[0] == '#' || line[0] == '%' {
			continue
		}
		fields := bytes.Fields(line)
		if len(fields) < 2 {
			return nil, 0, fmt.Errorf("reader: malformed edge record %q", line)
		}
		u, err := strconv.ParseInt(string(fields[0]), 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("reader: bad source id %q: %w", fields[0], err)
		}
		v, err := strconv.ParseInt(string(fields[1]), 10, 32)
		if err != nil {
			return nil, 0, fmt.Errorf("reader: bad target id %q: %w", fields[1], err)
		}
		var w float64
		if needsWeights && len(fields) >= 3 {
			w, err = strconv.ParseFloat(string(fields[2]), 64)
			if err != nil {
				return nil, 0, fmt.Errorf("reader: bad weight %q: %w", fields[2], err)
			}
		}
		edges = append(edges, graph.Edge{U: graph.NodeID(u), V: graph.DestID{Target: graph.NodeID(v), Weight: w}})
		if u > maxNode {
			maxNode = u
		}
		if v > maxNode {
			maxNode = v
		}
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return edges, maxNode, nil
}
