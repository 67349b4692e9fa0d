package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gomsh/mesh"
	"github.com/notargets/gomsh/readers"
)

const twoTriangleMsh = `$MeshFormat
4.1 0 8
$EndMeshFormat
$Nodes
1 4 1 4
2 1 0 4
1
2
3
4
0 0 0
1 0 0
1 1 0
0 1 0
$EndNodes
$Elements
2 3 1 3
2 1 2 2
1 1 2 3
2 1 3 4
1 1 1 1
3 1 2
$EndElements`

func writeTestMesh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.msh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSummarize(t *testing.T) {
	path := writeTestMesh(t, twoTriangleMsh)

	m, warnings, err := readers.ReadGmsh4(path)
	require.NoError(t, err)

	s := summarize(path, m, warnings)
	assert.Equal(t, 4, s.Points)
	assert.Equal(t, 3, s.Cells)
	assert.Equal(t, map[string]int{
		mesh.Triangle.String(): 2,
		mesh.Line.String():     1,
	}, s.CellTypes)

	require.NotNil(t, s.BoundingBox)
	assert.Equal(t, [3]float64{0, 0, 0}, s.BoundingBox[0])
	assert.Equal(t, [3]float64{1, 1, 0}, s.BoundingBox[1])
	assert.Empty(t, s.Warnings)
}

func TestRunInfoYAML(t *testing.T) {
	path := writeTestMesh(t, twoTriangleMsh)

	var buf bytes.Buffer
	require.NoError(t, runInfo(path, true, &buf))

	out := buf.String()
	assert.Contains(t, out, "points: 4")
	assert.Contains(t, out, "cells: 3")
	assert.Contains(t, out, "Triangle: 2")
}

func TestRunInfoTable(t *testing.T) {
	path := writeTestMesh(t, twoTriangleMsh)

	var buf bytes.Buffer
	require.NoError(t, runInfo(path, false, &buf))

	out := buf.String()
	assert.Contains(t, out, "Points")
	assert.Contains(t, out, "Triangle")
}

func TestRunCheck(t *testing.T) {
	good := writeTestMesh(t, twoTriangleMsh)
	bad := writeTestMesh(t, "$MeshFormat\n3.0 0 8\n$EndMeshFormat\n")

	var buf bytes.Buffer
	failed := runCheck([]string{good, bad}, &buf)
	assert.True(t, failed)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "OK (4 points, 3 cells)")
	assert.Contains(t, lines[1], "FAIL")
}
