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

package bucket

import (
	"sync"
	"testing"
)

// TestConcurrentDonation has 8 workers each donate a
// 10k-element slice concurrently; the resulting size is 80k and a
// full iteration yields exactly the concatenation, in some order
// of chunk donation, with per-chunk interior order preserved.
func TestConcurrentDonation(t *testing.T) {
	const workers = 8
	const perWorker = 10000

	b := New[int]()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			local := make([]int, perWorker)
			for i := range local {
				// tag each element with its worker id so we can
				// verify per-chunk interior order after the fact
				local[i] = w*perWorker + i
			}
			b.Donate(&local)
			if local != nil {
				t.Errorf("worker %d: donated slice was not emptied", w)
			}
		}()
	}
	wg.Wait()

	if got := b.Size(); got != workers*perWorker {
		t.Fatalf("size = %d, want %d", got, workers*perWorker)
	}
	if b.NumChunks() != workers {
		t.Fatalf("chunks = %d, want %d", b.NumChunks(), workers)
	}

	seen := make(map[int]bool, workers*perWorker)
	var count int
	lastInChunk := make(map[int]int)
	for c := b.Begin(); !c.Done(); c = c.Next() {
		v := c.Get()
		seen[v] = true
		count++
		w := v / perWorker
		if prev, ok := lastInChunk[w]; ok && v <= prev {
			t.Fatalf("interior order violated for worker %d: %d after %d", w, v, prev)
		}
		lastInChunk[w] = v
	}
	if count != workers*perWorker {
		t.Fatalf("iterated %d elements, want %d", count, workers*perWorker)
	}
	if len(seen) != workers*perWorker {
		t.Fatalf("saw %d distinct elements, want %d", len(seen), workers*perWorker)
	}
}

func TestPushBackSingleThreaded(t *testing.T) {
	b := New[string]()
	b.PushBack("a")
	b.PushBack("b")
	b.PushBack("c")
	if b.Size() != 3 {
		t.Fatalf("size = %d, want 3", b.Size())
	}
	got := b.Flatten()
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDonateEmptyIsNoop(t *testing.T) {
	b := New[int]()
	empty := []int{}
	b.Donate(&empty)
	if !b.Empty() {
		t.Fatal("donating an empty slice should not create a chunk")
	}
	if b.NumChunks() != 0 {
		t.Fatalf("chunks = %d, want 0", b.NumChunks())
	}
}

func TestCursorArithmetic(t *testing.T) {
	b := New[int]()
	c1 := []int{1, 2, 3}
	c2 := []int{}
	c3 := []int{4, 5}
	b.Donate(&c1)
	b.Donate(&c2) // empty donate is a no-op, so only 2 chunks result
	b.Donate(&c3)

	begin := b.Begin()
	end := b.End()
	if Diff(end, begin) != 5 {
		t.Fatalf("Diff(end,begin) = %d, want 5", Diff(end, begin))
	}

	mid := begin.Advance(3)
	if mid.Get() != 4 {
		t.Fatalf("begin.Advance(3).Get() = %d, want 4", mid.Get())
	}
	if Diff(mid, begin) != 3 {
		t.Fatalf("Diff(mid,begin) = %d, want 3", Diff(mid, begin))
	}

	full := begin.Advance(5)
	if !full.Equal(end) {
		t.Fatalf("begin.Advance(5) should equal End()")
	}
}

func TestCursorCompareLexicographic(t *testing.T) {
	b := New[int]()
	c1 := []int{1, 2, 3}
	b.Donate(&c1)

	a := b.Begin().Advance(1)
	c := b.Begin().Advance(2)
	if a.Compare(c) >= 0 {
		t.Fatal("cursor at offset 1 should order before cursor at offset 2 in the same chunk")
	}
	if c.Compare(a) <= 0 {
		t.Fatal("cursor at offset 2 should order after cursor at offset 1 in the same chunk")
	}
	if a.Compare(a) != 0 {
		t.Fatal("a cursor must compare equal to itself")
	}
}

func TestAdvanceNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative advance")
		}
	}()
	b := New[int]()
	b.Begin().Advance(-1)
}
