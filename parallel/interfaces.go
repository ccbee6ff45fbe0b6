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

// Design:
//
// A Pool runs a PoolFunc over a range of indices [start:end).
// The PoolFunc may enqueue further sub-ranges on the Pool itself
// (for workloads, like recursive graph generation, whose shape
// isn't known until a range has been partially processed), or it
// may just do its work and return.
//
// It is the caller's responsibility to Close the pool once it
// knows no further work will be enqueued; Wait blocks until all
// enqueued work has drained and returns the first error passed
// to Close, if any.

// PoolFunc processes the half-open range [start, end). args carries
// any additional state the function needs; it may enqueue more
// ranges on the supplied Pool before returning.
type PoolFunc func(start, end int, args any, pool Pool)

// Pool is a push-work goroutine pool.
type Pool interface {
	Enqueue(start, end int, fn PoolFunc, args any)
	Close(error)
	Wait() error
}
