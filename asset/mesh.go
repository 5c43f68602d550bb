package asset

import (
	"github.com/lixenwraith/diegetic/vmath"
)

// Indices is an optional triangle-list index buffer in one of the two
// supported widths. At most one of U16/U32 is set; both nil means the
// mesh is non-indexed and vertices are consumed three at a time.
type Indices struct {
	U16 []uint16
	U32 []uint32
}

// IsIndexed reports whether an index buffer is present
func (ix Indices) IsIndexed() bool {
	return ix.U16 != nil || ix.U32 != nil
}

// Len returns the number of indices
func (ix Indices) Len() int {
	if ix.U16 != nil {
		return len(ix.U16)
	}
	return len(ix.U32)
}

// At returns the vertex index at position i
func (ix Indices) At(i int) int {
	if ix.U16 != nil {
		return int(ix.U16[i])
	}
	return int(ix.U32[i])
}

// Mesh is a triangle-list mesh asset. UVs is the optional texture
// coordinate attribute; nil means the mesh has no UV attribute.
type Mesh struct {
	Positions []vmath.Vec3
	UVs       []vmath.Vec2
	Indices   Indices
}

// TriangleCount returns the number of triangles in the list
func (m *Mesh) TriangleCount() int {
	if m.Indices.IsIndexed() {
		return m.Indices.Len() / 3
	}
	return len(m.Positions) / 3
}

// TriangleVertexIndices returns the three vertex indices of triangle i
func (m *Mesh) TriangleVertexIndices(i int) (a, b, c int) {
	base := i * 3
	if m.Indices.IsIndexed() {
		return m.Indices.At(base), m.Indices.At(base + 1), m.Indices.At(base + 2)
	}
	return base, base + 1, base + 2
}

// TrianglePositions returns the three corner positions of triangle i
func (m *Mesh) TrianglePositions(i int) (a, b, c vmath.Vec3) {
	ia, ib, ic := m.TriangleVertexIndices(i)
	return m.Positions[ia], m.Positions[ib], m.Positions[ic]
}

// NewQuad builds a unit quad in the XY plane, centered on the origin,
// facing +Z, with UV (0,0) at the top-left corner. The standard surface
// mesh for the demo applications.
func NewQuad() Mesh {
	return Mesh{
		Positions: []vmath.Vec3{
			{X: -0.5, Y: 0.5},  // top left
			{X: 0.5, Y: 0.5},   // top right
			{X: 0.5, Y: -0.5},  // bottom right
			{X: -0.5, Y: -0.5}, // bottom left
		},
		UVs: []vmath.Vec2{
			{X: 0, Y: 0},
			{X: 1, Y: 0},
			{X: 1, Y: 1},
			{X: 0, Y: 1},
		},
		Indices: Indices{U16: []uint16{0, 2, 1, 0, 3, 2}},
	}
}
