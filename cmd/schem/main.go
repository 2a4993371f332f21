// Copyright 2011 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command schem ingests a restricted Verilog-like HDL corpus and renders
// the schematic netlist graph reachable from a named top module.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danwflynn/ARM-LEGv8-CPU"
)

const (
	exitOK = iota
	exitConfig
	exitStructural
	exitParse
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("schem", flag.ContinueOnError)
	filesFlag := fs.String("files", "files.txt", "manifest listing source files, one path per line")
	outFlag := fs.String("o", "", "output path (defaults to <module>.<fmt>)")
	fmtFlag := fs.String("fmt", "png", "output format: dot or png")
	verbose := fs.Bool("v", false, "log progress as the corpus is walked")
	if err := fs.Parse(args); err != nil {
		return exitConfig
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: schem [flags] <top-module>")
		return exitConfig
	}
	topModule := fs.Arg(0)
	status := schem.NewStatusPrinter(*verbose)

	if *fmtFlag != "dot" && *fmtFlag != "png" {
		status.Error("unknown -fmt %q: want \"dot\" or \"png\"", *fmtFlag)
		return exitConfig
	}

	reader := schem.OSSourceReader{}
	status.Info("reading manifest %s", *filesFlag)
	paths, err := schem.Manifest(reader, *filesFlag)
	if err != nil {
		status.Error("%s", err)
		return exitConfig
	}

	corpus, err := schem.LoadCorpus(reader, paths)
	if err != nil {
		status.Error("%s", err)
		return exitConfig
	}

	status.Info("walking module %s", topModule)
	sch, err := schem.Build(corpus, topModule)
	if err != nil {
		switch err.(type) {
		case *schem.StructuralError:
			status.Error("%s", err)
			return exitStructural
		case *schem.ParseError:
			status.Error("%s", err)
			return exitParse
		default:
			status.Error("%s", err)
			return exitConfig
		}
	}

	dotBytes, err := schem.Render(sch)
	if err != nil {
		status.Error("%s", err)
		return exitConfig
	}

	out := *outFlag
	if out == "" {
		out = topModule + "." + *fmtFlag
	}
	dotPath := out
	if *fmtFlag == "png" {
		dotPath = topModule + ".dot"
	}
	if err := os.WriteFile(dotPath, dotBytes, 0o644); err != nil {
		status.Error("writing %s: %s", dotPath, err)
		return exitConfig
	}

	if *fmtFlag == "dot" {
		return exitOK
	}

	status.Info("rasterizing %s -> %s", dotPath, out)
	if err := schem.Rasterize(dotPath, out); err != nil {
		status.Error("%s", err)
		return exitConfig
	}
	return exitOK
}
