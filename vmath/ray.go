package vmath

import (
	"github.com/chewxy/math32"
)

// rayEpsilon rejects rays nearly parallel to a triangle plane
const rayEpsilon = 1e-7

// Ray is a half-line in 3D space
type Ray struct {
	Origin Vec3
	Dir    Vec3 // Normalized direction
}

// ScreenToRay unprojects a pixel coordinate into a world-space ray
// invViewProj is the inverse of the camera's view-projection matrix
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj Mat4) Ray {
	// NDC with Y flipped (screen Y grows downward)
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	near := invViewProj.TransformPoint(Vec3{ndcX, ndcY, -1.0})
	far := invViewProj.TransformPoint(Vec3{ndcX, ndcY, 1.0})

	return Ray{
		Origin: near,
		Dir:    far.Sub(near).Normalized(),
	}
}

// IntersectTriangle intersects the ray with triangle (a, b, c) using
// Möller-Trumbore, both winding orders accepted.
//
// The returned barycentric vector follows the Möller-Trumbore layout:
// X weights vertex b, Y weights vertex c, Z = 1-X-Y weights vertex a.
// Callers interpolating per-vertex attributes in (a, b, c) order must
// permute accordingly; see picking.HitUV.
func (r Ray) IntersectTriangle(a, b, c Vec3) (dist float32, bary Vec3, ok bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	p := r.Dir.Cross(e2)
	det := e1.Dot(p)
	if math32.Abs(det) < rayEpsilon {
		return 0, Vec3{}, false
	}
	invDet := 1.0 / det

	t := r.Origin.Sub(a)
	u := t.Dot(p) * invDet
	if u < 0 || u > 1 {
		return 0, Vec3{}, false
	}

	q := t.Cross(e1)
	v := r.Dir.Dot(q) * invDet
	if v < 0 || u+v > 1 {
		return 0, Vec3{}, false
	}

	dist = e2.Dot(q) * invDet
	if dist < 0 {
		return 0, Vec3{}, false
	}

	return dist, Vec3{X: u, Y: v, Z: 1 - u - v}, true
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}
