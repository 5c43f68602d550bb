package picking

import (
	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/vmath"
)

// HitUV computes the UV coordinate of a ray/mesh hit by barycentric
// interpolation over the hit triangle's UV corners. Returns ok=false
// when the mesh has no UV attribute.
//
// The (z,x,y) permutation realigns the Möller-Trumbore weight layout
// with the triangle's (first, second, third) vertex order; changing it
// mirrors or rotates hit locations on the surface.
func HitUV(hit Hit, mesh *asset.Mesh) (vmath.Vec2, bool) {
	if mesh.UVs == nil {
		return vmath.Vec2{}, false
	}

	ia, ib, ic := mesh.TriangleVertexIndices(hit.Triangle)
	uv0 := mesh.UVs[ia]
	uv1 := mesh.UVs[ib]
	uv2 := mesh.UVs[ic]

	bc := hit.Barycentric.ZXY()
	uv := uv0.Scale(bc.X).
		Add(uv1.Scale(bc.Y)).
		Add(uv2.Scale(bc.Z))
	return uv, true
}
