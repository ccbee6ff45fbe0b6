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

// Package bucket implements a concurrently-appendable,
// sequentially-readable chunked sequence. Many goroutines can
// Donate locally-built slices into a Bucket without any
// per-element synchronization; a Bucket only ever serializes the
// (much cheaper) append of a whole chunk. This is the pattern the
// parallel edge-list reader uses to hand worker-local edge slices
// off to the rest of the pipeline without per-edge contention.
package bucket

import "sync"

// Bucket is a sequence of chunks of T. Logical length is the sum
// of the chunk lengths. Once inserted, a chunk is never split or
// rebalanced; the Bucket owns its chunks exclusively.
//
// PushBack is a single-threaded append path. Donate is the only
// operation safe to call concurrently from multiple goroutines;
// it must never race with a reader (Iterate, Size after Iterate
// has started, etc.) — that contract is the caller's
// responsibility to uphold and is not enforced here.
type Bucket[T any] struct {
	mu     sync.Mutex
	chunks [][]T
	count  int64
}

// New returns an empty Bucket.
func New[T any]() *Bucket[T] {
	return &Bucket[T]{}
}

// Size returns the total element count across all chunks.
func (b *Bucket[T]) Size() int64 {
	b.mu.Lock()
	n := b.count
	b.mu.Unlock()
	return n
}

// Empty reports whether the bucket holds zero elements.
func (b *Bucket[T]) Empty() bool {
	return b.Size() == 0
}

// Clear drops all chunks and resets the count to zero. The
// caller must ensure no readers are active.
func (b *Bucket[T]) Clear() {
	b.mu.Lock()
	b.chunks = nil
	b.count = 0
	b.mu.Unlock()
}

// PushBack appends a single element to the last chunk, creating
// one if none exists. Not safe to call concurrently with itself
// or with Donate.
func (b *Bucket[T]) PushBack(x T) {
	if len(b.chunks) == 0 {
		b.chunks = append(b.chunks, make([]T, 0, 1))
	}
	last := len(b.chunks) - 1
	b.chunks[last] = append(b.chunks[last], x)
	b.count++
}

// Donate atomically moves the storage of *seq into the Bucket as
// a new chunk; *seq is emptied on success. It is a no-op when
// *seq is empty. Donate is safe for many goroutines to call
// concurrently with each other; it must not race with a reader.
//
// Donate takes a pointer so that the "seq becomes empty on
// success" half of the contract is actually observable by the
// caller — a plain slice parameter would only empty the callee's
// local copy of the header.
func (b *Bucket[T]) Donate(seq *[]T) {
	if seq == nil || len(*seq) == 0 {
		return
	}
	chunk := *seq
	*seq = nil

	b.mu.Lock()
	b.chunks = append(b.chunks, chunk)
	b.count += int64(len(chunk))
	b.mu.Unlock()
}

// NumChunks returns the number of chunks currently held. Exposed
// for cursor arithmetic and tests; not part of the element count.
func (b *Bucket[T]) NumChunks() int {
	return len(b.chunks)
}
