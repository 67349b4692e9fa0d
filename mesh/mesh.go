package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ElementType classifies the generic shape of a cell, independent of
// polynomial order. Higher-order variants carry their own type where the
// node layout differs (Line3, Tet10, ...); incomplete/composite Gmsh
// elements fold into the nearest linear type.
type ElementType int

const (
	Point ElementType = iota
	Line
	Line3
	PolyLine
	Triangle
	Triangle6
	Quad
	Quad8
	Quad9
	Tet
	Tet10
	Hex
	Hex20
	Hex27
	Prism
	Prism15
	Prism18
	Pyramid
	Pyramid13
)

func (e ElementType) String() string {
	return [...]string{
		"Point", "Line", "Line3", "PolyLine",
		"Triangle", "Triangle6",
		"Quad", "Quad8", "Quad9",
		"Tet", "Tet10",
		"Hex", "Hex20", "Hex27",
		"Prism", "Prism15", "Prism18",
		"Pyramid", "Pyramid13",
	}[e]
}

// Node is a decoded mesh point. Tag is the 1-based file identifier; tags
// are unique but not guaranteed contiguous.
type Node struct {
	Tag     int
	X, Y, Z float64
}

// Cell is a decoded element. Vertices holds zero-based offsets into the
// mesh vertex table (nodeTag - 1), in file order.
type Cell struct {
	Tag      int
	Type     ElementType
	Vertices []int
}

// Mesh represents an unstructured mesh: a vertex table plus element
// connectivity referencing it.
type Mesh struct {
	// Geometry
	Vertices [][]float64 // Vertex coordinates [maxNodeTag][3], indexed by nodeTag-1

	// Element data
	EtoV         [][]int       // Element to vertex connectivity [nelems][nverts_per_elem]
	ElementTypes []ElementType // Element type for each element
	ElementTags  []int         // File tag for each element

	// Mesh statistics
	NumVertices int // Populated vertex slots (distinct node tags)
	NumElements int
}

// DanglingVertexError reports an element vertex index that does not
// address a populated vertex slot.
type DanglingVertexError struct {
	ElementTag int
	Index      int // offending zero-based vertex index
	NumSlots   int // size of the vertex table
}

func (e *DanglingVertexError) Error() string {
	return fmt.Sprintf("element %d references vertex index %d outside populated point table (size %d)",
		e.ElementTag, e.Index, e.NumSlots)
}

// Build assembles decoded nodes and cells into a Mesh. Vertices are placed
// at slot nodeTag-1 with no compaction, so a non-contiguous tag space
// leaves nil holes; every cell vertex index must land on a populated slot
// or Build fails with a DanglingVertexError. Cells keep file order.
func Build(nodes []Node, cells []Cell) (*Mesh, error) {
	maxSlot := 0
	for _, n := range nodes {
		if n.Tag < 1 {
			return nil, fmt.Errorf("node tag %d is not positive", n.Tag)
		}
		if n.Tag > maxSlot {
			maxSlot = n.Tag
		}
	}

	m := &Mesh{
		Vertices:     make([][]float64, maxSlot),
		EtoV:         make([][]int, 0, len(cells)),
		ElementTypes: make([]ElementType, 0, len(cells)),
		ElementTags:  make([]int, 0, len(cells)),
	}

	for _, n := range nodes {
		if m.Vertices[n.Tag-1] == nil {
			m.NumVertices++
		}
		m.Vertices[n.Tag-1] = []float64{n.X, n.Y, n.Z}
	}

	for _, c := range cells {
		for _, v := range c.Vertices {
			if v < 0 || v >= len(m.Vertices) || m.Vertices[v] == nil {
				return nil, &DanglingVertexError{
					ElementTag: c.Tag,
					Index:      v,
					NumSlots:   len(m.Vertices),
				}
			}
		}
		m.EtoV = append(m.EtoV, c.Vertices)
		m.ElementTypes = append(m.ElementTypes, c.Type)
		m.ElementTags = append(m.ElementTags, c.Tag)
	}
	m.NumElements = len(m.EtoV)

	return m, nil
}

// GetNodeIndex returns the zero-based vertex slot for a 1-based node tag,
// and whether that slot is populated.
func (m *Mesh) GetNodeIndex(nodeTag int) (int, bool) {
	idx := nodeTag - 1
	if idx < 0 || idx >= len(m.Vertices) || m.Vertices[idx] == nil {
		return 0, false
	}
	return idx, true
}

// BoundingBox returns the axis-aligned bounds over all populated vertices.
// ok is false for a mesh with no vertices.
func (m *Mesh) BoundingBox() (lo, hi [3]float64, ok bool) {
	xs, ys, zs := m.coordSlices()
	if len(xs) == 0 {
		return lo, hi, false
	}
	lo = [3]float64{floats.Min(xs), floats.Min(ys), floats.Min(zs)}
	hi = [3]float64{floats.Max(xs), floats.Max(ys), floats.Max(zs)}
	return lo, hi, true
}

// Centroid returns the mean of all populated vertex coordinates.
func (m *Mesh) Centroid() (c [3]float64, ok bool) {
	xs, ys, zs := m.coordSlices()
	if len(xs) == 0 {
		return c, false
	}
	n := float64(len(xs))
	c = [3]float64{floats.Sum(xs) / n, floats.Sum(ys) / n, floats.Sum(zs) / n}
	return c, true
}

func (m *Mesh) coordSlices() (xs, ys, zs []float64) {
	xs = make([]float64, 0, m.NumVertices)
	ys = make([]float64, 0, m.NumVertices)
	zs = make([]float64, 0, m.NumVertices)
	for _, v := range m.Vertices {
		if v == nil {
			continue
		}
		xs = append(xs, v[0])
		ys = append(ys, v[1])
		zs = append(zs, v[2])
	}
	return xs, ys, zs
}
