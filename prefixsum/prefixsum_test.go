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

package prefixsum

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestSerialKnownSequence(t *testing.T) {
	d := []int{3, 1, 4, 1, 5, 9, 2, 6}
	want := []int{0, 3, 4, 8, 9, 14, 23, 25, 31}
	got := Serial(d)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Serial(%v) = %v, want %v", d, got, want)
	}
}

func TestSerialEmpty(t *testing.T) {
	got := Serial([]int{})
	if !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("Serial(nil) = %v, want [0]", got)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	sizes := []int{0, 1, 7, 100, 10000}
	for _, n := range sizes {
		d := make([]int64, n)
		for i := range d {
			d[i] = int64(rand.Intn(50))
		}
		serial := Serial(d)
		for _, bs := range []int{1, 3, 16, 1 << 10} {
			parallel := Parallel(d, bs)
			if !reflect.DeepEqual(serial, parallel) {
				t.Fatalf("n=%d blockSize=%d: Parallel = %v, want %v", n, bs, parallel, serial)
			}
		}
	}
}

func TestParallelKnownSequence(t *testing.T) {
	d := []int{3, 1, 4, 1, 5, 9, 2, 6}
	want := []int{0, 3, 4, 8, 9, 14, 23, 25, 31}
	got := Parallel(d, 3)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parallel(%v, 3) = %v, want %v", d, got, want)
	}
}
