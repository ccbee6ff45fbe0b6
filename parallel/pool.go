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

import "sync"

type pool struct {
	workers  int
	wg       *sync.WaitGroup
	reqMutex sync.Mutex
	requests []poolRequest
	err      error
	closed   bool
	cond     *sync.Cond
}

type poolRequest struct {
	start, end int
	fn         PoolFunc
	args       any
}

// NewPool starts a pool of `workers` goroutines waiting to run
// enqueued PoolFuncs. Call Close once all work has been (or will
// be) enqueued, then Wait for the workers to drain.
func NewPool(workers int) Pool {
	if workers < 1 {
		workers = Workers()
	}
	p := &pool{
		workers: workers,
		wg:      new(sync.WaitGroup),
	}
	p.start()
	return p
}

func (p *pool) start() {
	p.cond = sync.NewCond(&p.reqMutex)

	var started sync.WaitGroup
	started.Add(p.workers)
	p.wg.Add(p.workers)

	worker := func() {
		defer p.wg.Done()
		started.Done()

		for {
			p.reqMutex.Lock()
			for !p.closed && len(p.requests) == 0 {
				p.cond.Wait()
			}
			if p.closed && len(p.requests) == 0 {
				p.reqMutex.Unlock()
				return
			}
			n := len(p.requests)
			req := p.requests[n-1]
			p.requests = p.requests[:n-1]
			p.reqMutex.Unlock()

			req.fn(req.start, req.end, req.args, p)
		}
	}

	for i := 0; i < p.workers; i++ {
		go worker()
	}
	// wait for every worker goroutine to have started before
	// returning. A worker that has not reached cond.Wait yet still
	// sees an earlier Enqueue, since it checks the request queue
	// under reqMutex before waiting.
	started.Wait()
}

func (p *pool) Enqueue(start, end int, fn PoolFunc, args any) {
	p.reqMutex.Lock()
	if !p.closed {
		p.requests = append(p.requests, poolRequest{start, end, fn, args})
		p.cond.Broadcast()
	}
	p.reqMutex.Unlock()
}

func (p *pool) Close(err error) {
	p.reqMutex.Lock()
	p.err = err
	p.closed = true
	p.cond.Broadcast()
	p.reqMutex.Unlock()
}

func (p *pool) Wait() error {
	p.wg.Wait()
	return p.err
}
