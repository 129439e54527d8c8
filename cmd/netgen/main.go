// Copyright 2025 go-spreadsort Authors
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

// Command netgen generates fixed-size sorting networks as Go source.
//
// Usage:
//
//	netgen -output networks.go -maxsize 8 -pkg sortnet
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/netgen -output networks.go -maxsize 8 -pkg sortnet
//
// The generator computes Bose-Nelson compare-exchange sequences for every
// size from 2 up to -maxsize and emits one sort function per size plus a
// length-dispatching Sort entry point. Output is gofmt-formatted and written
// atomically so an interrupted run never leaves a truncated source file.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "networks.go", "Output Go source file")
	maxSize    = flag.Int("maxsize", 8, "Largest slice length to generate a network for (2-32)")
	pkgName    = flag.String("pkg", "sortnet", "Package name for the generated file")
)

func main() {
	flag.Parse()

	if *maxSize < 2 || *maxSize > 32 {
		fmt.Fprintf(os.Stderr, "Error: -maxsize must be in [2, 32], got %d\n", *maxSize)
		os.Exit(1)
	}

	gen := &Generator{
		OutputFile: *outputFile,
		MaxSize:    *maxSize,
		Package:    *pkgName,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated networks for sizes 2-%d\n", *maxSize)
}
