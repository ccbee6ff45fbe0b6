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

// Cursor is a random-access position within a Bucket: a
// (chunk index, offset within chunk) pair. Begin() is (0, 0);
// End() is (len(chunks), 0).
//
// The source this package is modeled on compares cursor ordering
// incorrectly: it orders by chunk index but treats offsets within
// the same chunk as always equal. That is a bug — this
// implementation defines the correct lexicographic order on
// (chunk, offset), which is what a random-access iterator needs
// to support range partitioning.
type Cursor[T any] struct {
	b      *Bucket[T]
	chunk  int
	offset int
}

// Begin returns a cursor at the start of the bucket.
func (b *Bucket[T]) Begin() Cursor[T] {
	return Cursor[T]{b: b}
}

// End returns a cursor one-past the last chunk.
func (b *Bucket[T]) End() Cursor[T] {
	return Cursor[T]{b: b, chunk: len(b.chunks)}
}

// Iterate returns a cursor spanning all chunks in chunk-insertion
// order and, within each chunk, element order. It is equivalent
// to Begin but documents the read-only intent.
func (b *Bucket[T]) Iterate() Cursor[T] {
	return b.Begin()
}

// Get returns the element the cursor currently points to. It
// panics if the cursor is at or past End.
func (c Cursor[T]) Get() T {
	return c.b.chunks[c.chunk][c.offset]
}

// Done reports whether the cursor has reached End.
func (c Cursor[T]) Done() bool {
	return c.chunk >= len(c.b.chunks)
}

// Next advances the cursor by one element, rolling over into the
// next chunk (including across empty chunks) as needed.
func (c Cursor[T]) Next() Cursor[T] {
	c.offset++
	for c.chunk < len(c.b.chunks) && c.offset >= len(c.b.chunks[c.chunk]) {
		c.chunk++
		c.offset = 0
	}
	return c
}

// Advance returns the cursor moved forward by k elements (k must
// be >= 0; negative advance panics rather than silently doing the
// wrong thing).
func (c Cursor[T]) Advance(k int) Cursor[T] {
	if k < 0 {
		panic("bucket: negative cursor advance is unsupported")
	}
	for k > 0 {
		if c.chunk >= len(c.b.chunks) {
			// walking past End advances the synthetic offset
			// so that Advance composes with Diff even when it
			// overshoots; chunk stays pinned at len(chunks).
			c.offset += k
			return c
		}
		remaining := len(c.b.chunks[c.chunk]) - c.offset
		if k < remaining {
			c.offset += k
			return c
		}
		k -= remaining
		c.chunk++
		c.offset = 0
	}
	return c
}

// Diff returns a - b as a count of elements, computed by walking
// chunks. Diff(a, b) == -Diff(b, a).
func Diff[T any](a, b Cursor[T]) int {
	if a.b != b.b {
		panic("bucket: cursors from different buckets are not comparable")
	}
	if a.chunk == b.chunk {
		return a.offset - b.offset
	}
	sign := 1
	lo, hi := b, a
	if lo.chunk > hi.chunk {
		lo, hi = hi, lo
		sign = -1
	}
	n := 0
	chunks := a.b.chunks
	if lo.chunk < len(chunks) {
		n += len(chunks[lo.chunk]) - lo.offset
	}
	for i := lo.chunk + 1; i < hi.chunk && i < len(chunks); i++ {
		n += len(chunks[i])
	}
	n += hi.offset
	return sign * n
}

// Compare returns -1, 0, or 1 as c orders before, at, or after
// other, using the correct lexicographic (chunk, offset) order
// (see the type doc for the bug this fixes relative to the
// source).
func (c Cursor[T]) Compare(other Cursor[T]) int {
	if c.chunk != other.chunk {
		if c.chunk < other.chunk {
			return -1
		}
		return 1
	}
	if c.offset != other.offset {
		if c.offset < other.offset {
			return -1
		}
		return 1
	}
	return 0
}

// Equal reports whether c and other refer to the same bucket and
// the same (chunk, offset) coordinates.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.b == other.b && c.chunk == other.chunk && c.offset == other.offset
}
