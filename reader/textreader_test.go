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
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/sneller-labs/graphcore/graph"
)

func writeTempFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "edges.tsv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTextReaderBasic(t *testing.T) {
	path := writeTempFile(t, "# a comment\n0 1\n1 2 2.5\n% another comment\n\n2 0\n")
	r := &TextReader{Filename: path, Workers: 1}
	el, numNodes, err := r.ReadFile(true)
	if err != nil {
		t.Fatal(err)
	}
	if len(el) != 3 {
		t.Fatalf("len(el) = %d, want 3", len(el))
	}
	if numNodes != 3 {
		t.Fatalf("numNodes = %d, want 3", numNodes)
	}
	var found25 bool
	for _, e := range el {
		if e.V.Weight == 2.5 {
			found25 = true
		}
	}
	if !found25 {
		t.Fatal("expected to parse the 2.5 weight field")
	}
}

func TestTextReaderIgnoresWeightsWhenNotNeeded(t *testing.T) {
	path := writeTempFile(t, "0 1 99.0\n")
	r := &TextReader{Filename: path, Workers: 1}
	el, _, err := r.ReadFile(false)
	if err != nil {
		t.Fatal(err)
	}
	if el[0].V.Weight != 0 {
		t.Fatalf("weight = %v, want 0 when needsWeights=false", el[0].V.Weight)
	}
}

func TestTextReaderMalformedLine(t *testing.T) {
	path := writeTempFile(t, "0\n")
	r := &TextReader{Filename: path, Workers: 1}
	if _, _, err := r.ReadFile(false); err == nil {
		t.Fatal("expected error on a line with fewer than 2 fields")
	}
}

func TestTextReaderParallelMatchesSerial(t *testing.T) {
	var lines string
	for i := 0; i < 500; i++ {
		lines += "0 " + strconv.Itoa(i+1) + "\n"
	}
	path := writeTempFile(t, lines)

	serial := &TextReader{Filename: path, Workers: 1}
	sEl, sNum, err := serial.ReadFile(false)
	if err != nil {
		t.Fatal(err)
	}
	parallelReader := &TextReader{Filename: path, Workers: 8}
	pEl, pNum, err := parallelReader.ReadFile(false)
	if err != nil {
		t.Fatal(err)
	}
	if len(sEl) != len(pEl) {
		t.Fatalf("len mismatch: serial=%d parallel=%d", len(sEl), len(pEl))
	}
	if sNum != pNum {
		t.Fatalf("numNodes mismatch: serial=%d parallel=%d", sNum, pNum)
	}

	seen := make(map[graph.NodeID]bool, len(pEl))
	for _, e := range pEl {
		seen[e.V.Target] = true
	}
	if len(seen) != 500 {
		t.Fatalf("saw %d distinct targets, want 500", len(seen))
	}
}

func TestSerializedGraphSuffix(t *testing.T) {
	w := &SerializedGraph{Weighted: true}
	if w.Suffix() != ".wsg" {
		t.Fatalf("Suffix() = %q, want .wsg", w.Suffix())
	}
	u := &SerializedGraph{Weighted: false}
	if u.Suffix() != ".sg" {
		t.Fatalf("Suffix() = %q, want .sg", u.Suffix())
	}
}
