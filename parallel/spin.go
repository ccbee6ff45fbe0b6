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
	"sync/atomic"

	"github.com/sneller-labs/graphcore/internal/atomicext"
)

// Latch is a busy-wait countdown barrier. It is cheaper than a
// sync.WaitGroup for regions so short (a handful of atomic
// increments on a shared degree array, say) that parking and
// waking a goroutine on a futex would cost more than the work
// itself.
type Latch struct {
	remaining int64
}

// NewLatch returns a Latch armed to wait for n completions.
func NewLatch(n int) *Latch {
	return &Latch{remaining: int64(n)}
}

// Done signals one completion.
func (l *Latch) Done() {
	atomic.AddInt64(&l.remaining, -1)
}

// Wait spins until all n completions have been observed.
func (l *Latch) Wait() {
	for atomic.LoadInt64(&l.remaining) > 0 {
		atomicext.Pause()
	}
}

// Spin runs task over [0,n) split into `workers` ranges, using a
// busy-wait Latch instead of a sync.WaitGroup to join.
func Spin(n, workers int, task Task) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = Workers()
	}
	parts := splitRange(n, workers)
	if len(parts) <= 1 {
		if len(parts) == 1 {
			task(parts[0][0], parts[0][1])
		}
		return
	}
	latch := NewLatch(len(parts))
	for _, p := range parts {
		p := p
		go func() {
			defer latch.Done()
			task(p[0], p[1])
		}()
	}
	latch.Wait()
}

func splitRange(n, workers int) [][2]int {
	if workers > n {
		workers = n
	}
	base := n / workers
	rem := n % workers
	out := make([][2]int, 0, workers)
	start := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, [2]int{start, start + size})
		start += size
	}
	return out
}
