package component

import (
	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/core"
)

// UISurface marks a mesh entity as a surface where a UI texture is
// displayed and interacted with. Several surfaces may reference the
// same root and texture; each owns its own virtual pointer.
type UISurface struct {
	Root    core.Entity
	Texture asset.Handle
	Pointer core.PointerID
}
