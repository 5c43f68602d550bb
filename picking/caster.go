package picking

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/vmath"
)

// Hit is one ray/mesh intersection. Barycentric follows the
// Möller-Trumbore layout (see vmath.Ray.IntersectTriangle): X weights
// the triangle's second vertex, Y the third, Z the first.
type Hit struct {
	Entity      core.Entity
	Distance    float32
	Point       vmath.Vec3
	Barycentric vmath.Vec3
	Triangle    int
}

// Settings filter a cast
type Settings struct {
	// Filter restricts candidate entities; nil accepts all mesh-bearing entities
	Filter func(core.Entity) bool

	// RequireVisible skips entities hidden via the Visibility component
	RequireVisible bool

	// EarlyExit, when it returns true for an entity, stops the cast at
	// that entity's nearest hit. Nil means every hit along the ray is
	// collected.
	EarlyExit func(core.Entity) bool
}

// Caster casts rays against the world's mesh-bearing entities
type Caster struct {
	world *engine.World
}

func NewCaster(w *engine.World) *Caster {
	return &Caster{world: w}
}

// Cast intersects the ray with every candidate mesh and returns all
// hits ordered by distance. Rays are intersected in each entity's
// local space via the inverse of its world transform; distances stay
// in world units because the transformed direction is not renormalized.
//
// Fails when a candidate's mesh asset cannot be resolved; the caller
// treats that as fatal to the frame.
func (c *Caster) Cast(ray vmath.Ray, settings Settings) ([]Hit, error) {
	var hits []Hit

	for _, entity := range c.world.Components.Meshes.AllEntity() {
		if settings.Filter != nil && !settings.Filter(entity) {
			continue
		}
		if settings.RequireVisible {
			if vis, ok := c.world.Components.Visibilities.GetComponent(entity); ok && vis.Hidden {
				continue
			}
		}

		meshRef, _ := c.world.Components.Meshes.GetComponent(entity)
		mesh, ok := c.world.Resource.Assets.Meshes.Get(meshRef.Handle)
		if !ok {
			return nil, fmt.Errorf("mesh asset %d not found for entity %d", meshRef.Handle, entity)
		}

		localRay := ray
		if tf, ok := c.world.Components.Transforms.GetComponent(entity); ok {
			inv, ok := tf.Matrix.Inverse()
			if !ok {
				return nil, fmt.Errorf("singular transform on entity %d", entity)
			}
			localRay = vmath.Ray{
				Origin: inv.TransformPoint(ray.Origin),
				Dir:    inv.TransformDir(ray.Dir),
			}
		}

		entityHit := false
		for tri := 0; tri < mesh.TriangleCount(); tri++ {
			a, b, cc := mesh.TrianglePositions(tri)
			dist, bary, ok := localRay.IntersectTriangle(a, b, cc)
			if !ok {
				continue
			}
			hits = append(hits, Hit{
				Entity:      entity,
				Distance:    dist,
				Point:       ray.At(dist),
				Barycentric: bary,
				Triangle:    tri,
			})
			entityHit = true
		}

		if entityHit && settings.EarlyExit != nil && settings.EarlyExit(entity) {
			break
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits, nil
}
