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

package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestForCoversEveryIndex(t *testing.T) {
	const n = 10000
	var hits [n]int32
	ForWorkers(n, 8, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestForEmpty(t *testing.T) {
	called := false
	For(0, func(lo, hi int) { called = true })
	if called {
		t.Fatal("task should not run for n=0")
	}
}

func TestSpinCoversEveryIndex(t *testing.T) {
	const n = 5000
	var hits [n]int32
	Spin(n, 6, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestPoolEnqueueFromWithinTask(t *testing.T) {
	p := NewPool(4)
	var done int32
	var closeOnce sync.Once
	var fn PoolFunc
	fn = func(start, end int, args any, pool Pool) {
		atomic.AddInt32(&done, 1)
		if end-start > 1 {
			mid := (start + end) / 2
			pool.Enqueue(start, mid, fn, nil)
			pool.Enqueue(mid, end, fn, nil)
		} else {
			// leaf task: once 64 tasks (splits and leaves
			// together) have run, close the pool; splits enqueued
			// after that are dropped, so not every leaf has to run
			if atomic.LoadInt32(&done) >= 64 {
				closeOnce.Do(func() { pool.Close(nil) })
			}
		}
	}
	p.Enqueue(0, 64, fn, nil)
	if err := p.Wait(); err != nil {
		t.Fatal(err)
	}
	if done == 0 {
		t.Fatal("expected at least one task to run")
	}
}
