package component

import (
	"github.com/lixenwraith/diegetic/render"
	"github.com/lixenwraith/diegetic/vmath"
)

// SurfaceTarget caches the normalized render target and texture pixel
// size of a UI surface. Computed once when the surface is created; not
// refreshed if the texture or camera target is swapped afterwards.
type SurfaceTarget struct {
	Target render.NormalizedTarget
	Size   vmath.Vec2 // Texture pixel dimensions
}
