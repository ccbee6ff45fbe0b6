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

// Package prefixsum computes exclusive prefix sums over non-negative
// degree arrays, serially and in parallel. The parallel variant must
// produce output bit-identical to the serial one; it exists purely
// as a throughput optimization for the degree arrays the CSR builder
// and squisher compute over.
package prefixsum

import "golang.org/x/exp/constraints"

// Serial computes the exclusive prefix sum of d: s[0] = 0,
// s[i+1] = s[i] + d[i], with s having length len(d)+1 and
// s[len(d)] equal to the total. d must hold non-negative values.
func Serial[D constraints.Integer](d []D) []D {
	s := make([]D, len(d)+1)
	var sum D
	for i, v := range d {
		s[i] = sum
		sum += v
	}
	s[len(d)] = sum
	return s
}
