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

// Package config defines the pipeline's run configuration, and two
// ways to populate it: command-line flags and a YAML file.
package config

// Config is everything the pipeline needs to produce a CSRGraph:
// either a filename to read, or a scale/edgeFactor pair to generate
// a synthetic graph from.
type Config interface {
	Filename() string
	Scale() int
	Uniform() bool
	Symmetrize() bool
	Invert() bool
	Relabel() bool
	Workers() int
	EdgeFactor() int
	OutputPath() string
	Compression() string
}

// Values is a plain Config implementation any loader can populate.
type Values struct {
	FilenameVal    string
	ScaleVal       int
	UniformVal     bool
	SymmetrizeVal  bool
	InvertVal      bool
	RelabelVal     bool
	WorkersVal     int
	EdgeFactorVal  int
	OutputPathVal  string
	CompressionVal string
}

func (v *Values) Filename() string    { return v.FilenameVal }
func (v *Values) Scale() int          { return v.ScaleVal }
func (v *Values) Uniform() bool       { return v.UniformVal }
func (v *Values) Symmetrize() bool    { return v.SymmetrizeVal }
func (v *Values) Invert() bool        { return v.InvertVal }
func (v *Values) Relabel() bool       { return v.RelabelVal }
func (v *Values) Workers() int        { return v.WorkersVal }
func (v *Values) EdgeFactor() int     { return v.EdgeFactorVal }
func (v *Values) OutputPath() string  { return v.OutputPathVal }
func (v *Values) Compression() string { return v.CompressionVal }

// DefaultEdgeFactor is used by the pipeline when neither a flag nor
// a YAML field overrides it.
const DefaultEdgeFactor = 16
