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

package graph

// Edge is a pair (u, v): v carries the target node and, for a
// weighted edge, the weight. No uniqueness or ordering is implied
// by an EdgeList; that is the Squisher's job.
type Edge struct {
	U NodeID
	V DestID
}

// EdgeList is an ordered, mutable-until-consumed sequence of Edges.
type EdgeList []Edge

// sourceProjection reconstructs the DestID representing u as seen
// from v's side of an undirected/transposed edge: same weight,
// target is u.
func sourceProjection(e Edge) DestID {
	return DestID{Target: e.U, Weight: e.V.Weight}
}
