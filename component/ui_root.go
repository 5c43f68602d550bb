package component

import (
	"github.com/lixenwraith/diegetic/asset"
)

// UIRoot marks the root entity of a UI tree that is rendered to a
// texture for display in world space. Creating one through
// systems.CreateUIRoot also spawns the offscreen render camera and
// attaches a TargetCamera pointing at it.
type UIRoot struct {
	Texture asset.Handle
}
