// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package ints

// Interval is a half-open interval [start, end)
// (start is always less than or equal to end)
type Interval struct {
	Start, End int
}

// Empty returns whether [in] is an empty interval.
func (in Interval) Empty() bool {
	return in.Start >= in.End
}

// Len returns the length of the interval.
func (in Interval) Len() int {
	if in.End <= in.Start {
		return 0
	}
	return in.End - in.Start
}

// Each calls [fn] for each value in the interval.
func (in Interval) Each(fn func(int)) {
	for i := in.Start; i < in.End; i++ {
		fn(i)
	}
}

// EachErr calls [fn] for each value in the interval.
// If [fn] returns a non-nil error, this stops and
// returns the error.
func (in Interval) EachErr(fn func(int) error) error {
	for i := in.Start; i < in.End; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

// Split partitions [in] into at most n roughly equal
// sub-intervals, in order. Empty sub-intervals are
// omitted when in.Len() < n.
func (in Interval) Split(n int) []Interval {
	if n < 1 {
		n = 1
	}
	total := in.Len()
	if total == 0 {
		return nil
	}
	if n > total {
		n = total
	}
	base := total / n
	rem := total % n
	out := make([]Interval, 0, n)
	start := in.Start
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		out = append(out, Interval{Start: start, End: start + size})
		start += size
	}
	return out
}
