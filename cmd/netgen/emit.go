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

package main

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/natefinch/atomic"
)

const licenseHeader = `// Copyright 2025 go-spreadsort Authors
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
`

// Generator renders the network source file.
type Generator struct {
	OutputFile string
	MaxSize    int
	Package    string
}

// Run renders, formats and atomically writes the generated file.
func (g *Generator) Run() error {
	src, err := g.render()
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(g.OutputFile, bytes.NewReader(src)); err != nil {
		return fmt.Errorf("writing %s: %w", g.OutputFile, err)
	}
	return nil
}

func (g *Generator) render() ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by netgen -maxsize %d -pkg %s. DO NOT EDIT.\n\n",
		g.MaxSize, g.Package)
	buf.WriteString(licenseHeader)
	fmt.Fprintf(&buf, "\npackage %s\n\n", g.Package)

	buf.WriteString("// MaxSize is the largest slice length covered by a fixed network.\n")
	fmt.Fprintf(&buf, "const MaxSize = %d\n\n", g.MaxSize)

	buf.WriteString("// Sort sorts data in place using the network for its exact length, or\n")
	buf.WriteString("// insertion sort above MaxSize.\n")
	buf.WriteString("func Sort[T any](data []T, less func(a, b T) bool) {\n")
	buf.WriteString("\tswitch len(data) {\n")
	buf.WriteString("\tcase 0, 1:\n")
	for n := 2; n <= g.MaxSize; n++ {
		fmt.Fprintf(&buf, "\tcase %d:\n\t\tsort%d(data, less)\n", n, n)
	}
	buf.WriteString("\tdefault:\n\t\tinsertion(data, less)\n")
	buf.WriteString("\t}\n}\n")

	for n := 2; n <= g.MaxSize; n++ {
		pairs := boseNelson(n)
		fmt.Fprintf(&buf, "\n// sort%d is a Bose-Nelson network with %d compare-exchange%s.\n",
			n, len(pairs), plural(len(pairs)))
		fmt.Fprintf(&buf, "func sort%d[T any](d []T, less func(a, b T) bool) {\n", n)
		for _, p := range pairs {
			fmt.Fprintf(&buf, "\tcas(d, %d, %d, less)\n", p[0], p[1])
		}
		buf.WriteString("}\n")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
