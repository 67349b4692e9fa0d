package readers

import "github.com/notargets/gomsh/mesh"

// elementSpec pairs the generic topology of a Gmsh element type with the
// number of vertex tags each element record carries.
type elementSpec struct {
	Type     mesh.ElementType
	NumNodes int
}

// gmshElementType4 maps Gmsh v4 element type numbers to topology and node
// count. The table is closed: any code outside it is invalid input. Note
// that incomplete and composite higher-order types (14, 20-25, 26-28,
// 29-31, 92, 93) fold into their nearest generic topology while keeping
// the full node count of the record.
var gmshElementType4 = map[int]elementSpec{
	1:  {mesh.Line, 2},        // 2-node line
	2:  {mesh.Triangle, 3},    // 3-node triangle
	3:  {mesh.Quad, 4},        // 4-node quadrangle
	4:  {mesh.Tet, 4},         // 4-node tetrahedron
	5:  {mesh.Hex, 8},         // 8-node hexahedron
	6:  {mesh.Prism, 6},       // 6-node prism
	7:  {mesh.Pyramid, 5},     // 5-node pyramid
	8:  {mesh.Line3, 3},       // 3-node second order line
	9:  {mesh.Triangle6, 6},   // 6-node second order triangle
	10: {mesh.Quad9, 9},       // 9-node second order quadrangle
	11: {mesh.Tet10, 10},      // 10-node second order tetrahedron
	12: {mesh.Hex27, 27},      // 27-node second order hexahedron
	13: {mesh.Prism18, 18},    // 18-node second order prism
	14: {mesh.Pyramid, 14},    // 14-node second order pyramid
	15: {mesh.Point, 1},       // 1-node point
	16: {mesh.Quad8, 8},       // 8-node second order quadrangle
	17: {mesh.Hex20, 20},      // 20-node second order hexahedron
	18: {mesh.Prism15, 15},    // 15-node second order prism
	19: {mesh.Pyramid13, 13},  // 13-node second order pyramid
	20: {mesh.Triangle, 9},    // 9-node third order incomplete triangle
	21: {mesh.Triangle, 10},   // 10-node third order triangle
	22: {mesh.Triangle, 12},   // 12-node fourth order incomplete triangle
	23: {mesh.Triangle, 15},   // 15-node fourth order triangle
	24: {mesh.Triangle, 15},   // 15-node fifth order incomplete triangle
	25: {mesh.Triangle, 21},   // 21-node fifth order triangle
	26: {mesh.PolyLine, 4},    // 4-node third order edge
	27: {mesh.PolyLine, 5},    // 5-node fourth order edge
	28: {mesh.PolyLine, 6},    // 6-node fifth order edge
	29: {mesh.Tet, 20},        // 20-node third order tetrahedron
	30: {mesh.Tet, 35},        // 35-node fourth order tetrahedron
	31: {mesh.Tet, 56},        // 56-node fifth order tetrahedron
	92: {mesh.Hex, 64},        // 64-node third order hexahedron
	93: {mesh.Hex, 125},       // 125-node fourth order hexahedron
}

// elementSpecForType resolves a Gmsh element type code. Unknown codes are
// a fatal format error carrying the offending code.
func elementSpecForType(code int) (elementSpec, error) {
	spec, ok := gmshElementType4[code]
	if !ok {
		return elementSpec{}, &FormatError{Kind: UnknownElementType, Code: code}
	}
	return spec, nil
}
