package readers

import (
	"fmt"
	"strings"
)

// Gmsh4TestBuilder helps build Gmsh 4.1 format test files.
type Gmsh4TestBuilder struct {
	Version string
}

// NodeBlock describes one $Nodes entity block for a generated file.
type NodeBlock struct {
	Dim        int
	EntityTag  int
	Parametric int
	Tags       []int
	Coords     [][]float64 // one tuple per tag; width 3, or 3+Dim if parametric
}

// ElementBlock describes one $Elements entity block for a generated file.
type ElementBlock struct {
	Dim       int
	EntityTag int
	Type      int     // Gmsh element type code
	Elements  [][]int // each record: element tag followed by vertex tags
}

// NewGmsh4TestBuilder creates a builder emitting version 4.1 headers.
func NewGmsh4TestBuilder() *Gmsh4TestBuilder {
	return &Gmsh4TestBuilder{Version: "4.1"}
}

// Build creates a complete Gmsh file from the given blocks, with declared
// tag ranges computed from the content.
func (b *Gmsh4TestBuilder) Build(nodes []NodeBlock, elems []ElementBlock) string {
	numNodes, minNode, maxNode := nodeStats(nodes)
	numElems, minElem, maxElem := elemStats(elems)
	return strings.Join([]string{
		b.BuildHeader(),
		b.BuildNodes(nodes, numNodes, minNode, maxNode),
		b.BuildElements(elems, numElems, minElem, maxElem),
	}, "\n")
}

func (b *Gmsh4TestBuilder) BuildHeader() string {
	return fmt.Sprintf("$MeshFormat\n%s 0 8\n$EndMeshFormat", b.Version)
}

// BuildNodes emits a $Nodes section with an explicit header, so tests can
// declare ranges that disagree with the content.
func (b *Gmsh4TestBuilder) BuildNodes(blocks []NodeBlock, numNodes, minTag, maxTag int) string {
	var lines []string
	lines = append(lines, "$Nodes")
	lines = append(lines, fmt.Sprintf("%d %d %d %d", len(blocks), numNodes, minTag, maxTag))

	for _, blk := range blocks {
		lines = append(lines, fmt.Sprintf("%d %d %d %d",
			blk.Dim, blk.EntityTag, blk.Parametric, len(blk.Tags)))
		for _, tag := range blk.Tags {
			lines = append(lines, fmt.Sprintf("%d", tag))
		}
		for _, c := range blk.Coords {
			parts := make([]string, len(c))
			for i, v := range c {
				parts[i] = fmt.Sprintf("%g", v)
			}
			lines = append(lines, strings.Join(parts, " "))
		}
	}

	lines = append(lines, "$EndNodes")
	return strings.Join(lines, "\n")
}

// BuildElements emits an $Elements section with an explicit header.
func (b *Gmsh4TestBuilder) BuildElements(blocks []ElementBlock, numElems, minTag, maxTag int) string {
	var lines []string
	lines = append(lines, "$Elements")
	lines = append(lines, fmt.Sprintf("%d %d %d %d", len(blocks), numElems, minTag, maxTag))

	for _, blk := range blocks {
		lines = append(lines, fmt.Sprintf("%d %d %d %d",
			blk.Dim, blk.EntityTag, blk.Type, len(blk.Elements)))
		for _, rec := range blk.Elements {
			parts := make([]string, len(rec))
			for i, v := range rec {
				parts[i] = fmt.Sprintf("%d", v)
			}
			lines = append(lines, strings.Join(parts, " "))
		}
	}

	lines = append(lines, "$EndElements")
	return strings.Join(lines, "\n")
}

func nodeStats(blocks []NodeBlock) (num, min, max int) {
	min = 1
	first := true
	for _, blk := range blocks {
		num += len(blk.Tags)
		for _, tag := range blk.Tags {
			if first || tag < min {
				min = tag
			}
			if first || tag > max {
				max = tag
			}
			first = false
		}
	}
	return num, min, max
}

func elemStats(blocks []ElementBlock) (num, min, max int) {
	min = 1
	first := true
	for _, blk := range blocks {
		num += len(blk.Elements)
		for _, rec := range blk.Elements {
			if len(rec) == 0 {
				continue
			}
			if first || rec[0] < min {
				min = rec[0]
			}
			if first || rec[0] > max {
				max = rec[0]
			}
			first = false
		}
	}
	return num, min, max
}
