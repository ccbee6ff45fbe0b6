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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sneller-labs/graphcore/config"
	"github.com/sneller-labs/graphcore/graph"
	"github.com/sneller-labs/graphcore/pipeline"
)

func main() {
	var yamlPath string
	fs := flag.NewFlagSet("graphbuild", flag.ExitOnError)
	fs.StringVar(&yamlPath, "config", "", "path to a YAML config file (overrides all other flags)")
	cfg := config.FromFlags(fs)
	fs.Parse(os.Args[1:])

	if yamlPath != "" {
		var err error
		cfg, err = config.FromYAML(yamlPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "graphbuild: can't load %q: %s\n", yamlPath, err)
			os.Exit(1)
		}
	}

	g, err := pipeline.MakeGraph(cfg)
	if err != nil {
		if errors.Is(err, graph.ErrRelabelDirected) {
			fmt.Fprintf(os.Stderr, "graphbuild: %s\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "graphbuild: %s\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "graphbuild: built graph with %d nodes, %d directed edges\n", g.NumNodes(), g.NumOutEdges())

	if out := cfg.OutputPath(); out != "" {
		f, err := os.Create(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "graphbuild: can't create %q: %s\n", out, err)
			os.Exit(1)
		}
		if err := g.WriteTo(f, cfg.Compression()); err != nil {
			fmt.Fprintf(os.Stderr, "graphbuild: can't write %q: %s\n", out, err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "graphbuild: %s\n", err)
			os.Exit(1)
		}
	}
}
