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

package graph

import (
	"bytes"
	"testing"
)

func buildTestGraph(t *testing.T, weighted bool) *CSRGraph {
	t.Helper()
	el := EdgeList{
		{U: 0, V: DestID{Target: 1, Weight: 1.5}},
		{U: 1, V: DestID{Target: 2, Weight: 2.5}},
		{U: 2, V: DestID{Target: 0, Weight: 3.5}},
	}
	g, err := Build(el, BuildOptions{NumNodes: UnknownNodeCount, Directed: false, Weighted: weighted})
	if err != nil {
		t.Fatal(err)
	}
	return Squish(g)
}

func assertGraphsEqual(t *testing.T, a, b *CSRGraph) {
	t.Helper()
	if a.NumNodes() != b.NumNodes() {
		t.Fatalf("numNodes mismatch: %d vs %d", a.NumNodes(), b.NumNodes())
	}
	if a.Weighted() != b.Weighted() {
		t.Fatalf("weighted mismatch: %v vs %v", a.Weighted(), b.Weighted())
	}
	if a.Inverted() != b.Inverted() {
		t.Fatalf("inverted mismatch: %v vs %v", a.Inverted(), b.Inverted())
	}
	if a.Directed() != b.Directed() {
		t.Fatalf("directed mismatch: %v vs %v", a.Directed(), b.Directed())
	}
	for n := 0; n < a.NumNodes(); n++ {
		an, bn := a.OutNeighbors(NodeID(n)), b.OutNeighbors(NodeID(n))
		if len(an) != len(bn) {
			t.Fatalf("vertex %d: neighbor count mismatch %d vs %d", n, len(an), len(bn))
		}
		for i := range an {
			if an[i] != bn[i] {
				t.Fatalf("vertex %d neighbor %d mismatch: %+v vs %+v", n, i, an[i], bn[i])
			}
		}
	}
}

func TestSerializeRoundTripUncompressed(t *testing.T) {
	g := buildTestGraph(t, true)
	var buf bytes.Buffer
	if err := g.WriteTo(&buf, ""); err != nil {
		t.Fatal(err)
	}
	got, err := ReadGraphFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertGraphsEqual(t, g, got)
}

func TestSerializeRoundTripCompressed(t *testing.T) {
	for _, algo := range []string{"zstd", "s2"} {
		t.Run(algo, func(t *testing.T) {
			g := buildTestGraph(t, true)
			var buf bytes.Buffer
			if err := g.WriteTo(&buf, algo); err != nil {
				t.Fatal(err)
			}
			got, err := ReadGraphFrom(&buf)
			if err != nil {
				t.Fatal(err)
			}
			assertGraphsEqual(t, g, got)
		})
	}
}

func TestSerializeUnweighted(t *testing.T) {
	g := buildTestGraph(t, false)
	var buf bytes.Buffer
	if err := g.WriteTo(&buf, ""); err != nil {
		t.Fatal(err)
	}
	got, err := ReadGraphFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertGraphsEqual(t, g, got)
}

func TestSerializeRoundTripDirectedNotInverted(t *testing.T) {
	el := EdgeList{
		{U: 0, V: DestID{Target: 1}},
		{U: 1, V: DestID{Target: 2}},
	}
	g, err := Build(el, BuildOptions{NumNodes: UnknownNodeCount, Directed: true})
	if err != nil {
		t.Fatal(err)
	}
	g = Squish(g)
	if !g.Directed() || g.Inverted() {
		t.Fatalf("precondition: expected directed, non-inverted graph; got Directed=%v Inverted=%v", g.Directed(), g.Inverted())
	}

	var buf bytes.Buffer
	if err := g.WriteTo(&buf, ""); err != nil {
		t.Fatal(err)
	}
	got, err := ReadGraphFrom(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Directed() || got.Inverted() {
		t.Fatalf("round trip lost directedness: Directed=%v Inverted=%v", got.Directed(), got.Inverted())
	}
	assertGraphsEqual(t, g, got)
}

func TestSerializeBadMagic(t *testing.T) {
	// a full-length header whose magic is zero
	buf := bytes.NewBuffer(make([]byte, 30))
	if _, err := ReadGraphFrom(buf); err == nil {
		t.Fatal("expected error on bad magic")
	}
}
