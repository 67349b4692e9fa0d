/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/notargets/gomsh/mesh"
	"github.com/notargets/gomsh/readers"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [meshfile]",
	Short: "Summarize the contents of a Gmsh mesh file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asYAML, _ := cmd.Flags().GetBool("yaml")
		if err := runInfo(args[0], asYAML, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolP("yaml", "y", false, "emit the summary as YAML")
}

// MeshSummary is the report emitted by the info command.
type MeshSummary struct {
	File        string         `json:"file"`
	Points      int            `json:"points"`
	Cells       int            `json:"cells"`
	CellTypes   map[string]int `json:"cellTypes,omitempty"`
	BoundingBox *[2][3]float64 `json:"boundingBox,omitempty"`
	Centroid    *[3]float64    `json:"centroid,omitempty"`
	Warnings    []string       `json:"warnings,omitempty"`
}

func summarize(file string, m *mesh.Mesh, warnings []readers.Warning) *MeshSummary {
	s := &MeshSummary{
		File:   file,
		Points: m.NumVertices,
		Cells:  m.NumElements,
	}
	if m.NumElements > 0 {
		s.CellTypes = make(map[string]int)
		for _, et := range m.ElementTypes {
			s.CellTypes[et.String()]++
		}
	}
	if lo, hi, ok := m.BoundingBox(); ok {
		bb := [2][3]float64{lo, hi}
		s.BoundingBox = &bb
	}
	if c, ok := m.Centroid(); ok {
		s.Centroid = &c
	}
	for _, w := range warnings {
		s.Warnings = append(s.Warnings, w.String())
	}
	return s
}

func runInfo(filename string, asYAML bool, w io.Writer) error {
	m, warnings, err := readers.ReadGmsh4(filename)
	if err != nil {
		return err
	}

	s := summarize(filename, m, warnings)
	if asYAML {
		data, err := yaml.Marshal(s)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	printSummaryTable(w, s)
	return nil
}

func printSummaryTable(w io.Writer, s *MeshSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"File", s.File})
	table.Append([]string{"Points", strconv.Itoa(s.Points)})
	table.Append([]string{"Cells", strconv.Itoa(s.Cells)})

	names := make([]string, 0, len(s.CellTypes))
	for name := range s.CellTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		table.Append([]string{"Cells: " + name, strconv.Itoa(s.CellTypes[name])})
	}

	if s.BoundingBox != nil {
		table.Append([]string{"Bounds min", formatXYZ(s.BoundingBox[0])})
		table.Append([]string{"Bounds max", formatXYZ(s.BoundingBox[1])})
	}
	if s.Centroid != nil {
		table.Append([]string{"Centroid", formatXYZ(*s.Centroid)})
	}
	table.Render()

	for _, warn := range s.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

func formatXYZ(v [3]float64) string {
	return fmt.Sprintf("%g %g %g", v[0], v[1], v[2])
}
