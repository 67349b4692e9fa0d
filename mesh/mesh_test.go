package mesh

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSimpleMesh(t *testing.T) {
	nodes := []Node{
		{Tag: 1, X: 0, Y: 0, Z: 0},
		{Tag: 2, X: 1, Y: 0, Z: 0},
		{Tag: 3, X: 0, Y: 1, Z: 0},
	}
	cells := []Cell{
		{Tag: 1, Type: Triangle, Vertices: []int{0, 1, 2}},
	}

	m, err := Build(nodes, cells)
	require.NoError(t, err)

	assert.Equal(t, 3, m.NumVertices)
	assert.Equal(t, 1, m.NumElements)
	assert.Equal(t, Triangle, m.ElementTypes[0])
	assert.Equal(t, []int{0, 1, 2}, m.EtoV[0])
	assert.Equal(t, []int{1}, m.ElementTags)
	assert.Equal(t, []float64{1, 0, 0}, m.Vertices[1])
}

func TestBuildEmptyMesh(t *testing.T) {
	m, err := Build(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumVertices)
	assert.Equal(t, 0, m.NumElements)

	_, _, ok := m.BoundingBox()
	assert.False(t, ok)
	_, ok = m.Centroid()
	assert.False(t, ok)
}

func TestBuildDanglingIndexOutOfRange(t *testing.T) {
	nodes := []Node{
		{Tag: 1}, {Tag: 2, X: 1},
	}
	cells := []Cell{
		{Tag: 7, Type: Line, Vertices: []int{0, 98}},
	}

	m, err := Build(nodes, cells)
	assert.Nil(t, m)

	var de *DanglingVertexError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 7, de.ElementTag)
	assert.Equal(t, 98, de.Index)
	assert.Equal(t, 2, de.NumSlots)
}

func TestBuildDanglingIndexInHole(t *testing.T) {
	// Tags 1 and 5 leave unpopulated slots 1-3 in between.
	nodes := []Node{
		{Tag: 1}, {Tag: 5, X: 1},
	}
	cells := []Cell{
		{Tag: 1, Type: Line, Vertices: []int{0, 2}},
	}

	m, err := Build(nodes, cells)
	assert.Nil(t, m)

	var de *DanglingVertexError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 2, de.Index)
}

func TestBuildNonContiguousTags(t *testing.T) {
	nodes := []Node{
		{Tag: 3, X: 0, Y: 0, Z: 0},
		{Tag: 7, X: 1, Y: 1, Z: 1},
	}
	cells := []Cell{
		{Tag: 1, Type: Line, Vertices: []int{2, 6}},
	}

	m, err := Build(nodes, cells)
	require.NoError(t, err)

	// Slots keep tag-1 positions, no compaction.
	assert.Equal(t, 7, len(m.Vertices))
	assert.Equal(t, 2, m.NumVertices)
	assert.Nil(t, m.Vertices[0])

	idx, ok := m.GetNodeIndex(7)
	assert.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = m.GetNodeIndex(4)
	assert.False(t, ok, "hole slot should not resolve")
	_, ok = m.GetNodeIndex(8)
	assert.False(t, ok, "tag beyond table should not resolve")
}

func TestBoundingBoxAndCentroid(t *testing.T) {
	nodes := []Node{
		{Tag: 1, X: -1, Y: 0, Z: 2},
		{Tag: 2, X: 3, Y: -2, Z: 0},
		{Tag: 3, X: 1, Y: 2, Z: 4},
	}

	m, err := Build(nodes, nil)
	require.NoError(t, err)

	lo, hi, ok := m.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, [3]float64{-1, -2, 0}, lo)
	assert.Equal(t, [3]float64{3, 2, 4}, hi)

	c, ok := m.Centroid()
	require.True(t, ok)
	assert.Equal(t, [3]float64{1, 0, 2}, c)
}

func TestElementTypeString(t *testing.T) {
	for _, tc := range []struct {
		et   ElementType
		want string
	}{
		{Point, "Point"},
		{Line, "Line"},
		{PolyLine, "PolyLine"},
		{Triangle6, "Triangle6"},
		{Hex27, "Hex27"},
		{Pyramid13, "Pyramid13"},
	} {
		if got := tc.et.String(); got != tc.want {
			t.Errorf("Expected %q, got %q", tc.want, got)
		}
	}
}

func TestBuildKeepsFileOrder(t *testing.T) {
	nodes := []Node{{Tag: 1}, {Tag: 2, X: 1}}
	cells := []Cell{
		{Tag: 10, Type: Line, Vertices: []int{0, 1}},
		{Tag: 5, Type: Line, Vertices: []int{1, 0}},
	}

	m, err := Build(nodes, cells)
	require.NoError(t, err)

	if !reflect.DeepEqual(m.ElementTags, []int{10, 5}) {
		t.Errorf("Expected tags in file order [10 5], got %v", m.ElementTags)
	}
}
