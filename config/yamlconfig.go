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

package config

import (
	"os"

	"sigs.k8s.io/yaml"
)

// yamlDoc is the struct-tagged shape of a YAML config file; sigs.k8s.io/yaml
// converts YAML to JSON before unmarshaling so plain `json` tags apply.
type yamlDoc struct {
	Filename    string `json:"filename"`
	Scale       int    `json:"scale"`
	Uniform     bool   `json:"uniform"`
	Symmetrize  *bool  `json:"symmetrize"`
	Invert      bool   `json:"invert"`
	Relabel     bool   `json:"relabel"`
	Workers     int    `json:"workers"`
	EdgeFactor  int    `json:"edgeFactor"`
	OutputPath  string `json:"outputPath"`
	Compression string `json:"compression"`
}

// FromYAML reads a Config from a YAML file at path. Symmetrize
// defaults to true when the field is absent, matching FromFlags.
func FromYAML(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yamlDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	v := &Values{
		FilenameVal:    doc.Filename,
		ScaleVal:       doc.Scale,
		UniformVal:     doc.Uniform,
		SymmetrizeVal:  true,
		InvertVal:      doc.Invert,
		RelabelVal:     doc.Relabel,
		WorkersVal:     doc.Workers,
		EdgeFactorVal:  doc.EdgeFactor,
		OutputPathVal:  doc.OutputPath,
		CompressionVal: doc.Compression,
	}
	if doc.Symmetrize != nil {
		v.SymmetrizeVal = *doc.Symmetrize
	}
	if v.EdgeFactorVal == 0 {
		v.EdgeFactorVal = DefaultEdgeFactor
	}
	return v, nil
}
