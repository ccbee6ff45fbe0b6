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

// Package parallel implements the fork-join primitives shared by
// the prefixsum, graph, generator, and reader packages: a static range
// partitioner with a WaitGroup barrier (For), a push-work thread
// pool for workloads that can't be statically partitioned up front
// (Pool), and a busy-wait countdown latch for very short regions
// where spawning a goroutine per partition would dominate the cost
// of the region itself (Spin).
package parallel

import (
	"runtime"
	"sync"

	"github.com/sneller-labs/graphcore/ints"
)

// DefaultBlockSize is the suggested block size for the blocked
// parallel prefix sum (~2^20 elements per block).
const DefaultBlockSize = 1 << 20

// Task processes the half-open range [lo, hi).
type Task func(lo, hi int)

// Workers returns the default degree of parallelism: the number
// of logical CPUs made available to this process.
func Workers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// ForWorkers partitions [0, n) into at most `workers` contiguous ranges
// and runs task on each range in its own goroutine, blocking until
// all of them return (a fork-join barrier). If workers <= 0,
// Workers() is used. n <= 0 is a no-op.
func ForWorkers(n, workers int, task Task) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = Workers()
	}
	parts := ints.Interval{Start: 0, End: n}.Split(workers)
	if len(parts) <= 1 {
		if len(parts) == 1 {
			task(parts[0].Start, parts[0].End)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(len(parts))
	for _, p := range parts {
		p := p
		go func() {
			defer wg.Done()
			task(p.Start, p.End)
		}()
	}
	wg.Wait()
}

// For is ForWorkers with the default worker count.
func For(n int, task Task) {
	ForWorkers(n, Workers(), task)
}
