package component

import (
	"github.com/lixenwraith/diegetic/asset"
)

// MeshRef attaches a mesh asset to an entity
type MeshRef struct {
	Handle asset.Handle
}

// MaterialRef attaches a material asset to an entity
type MaterialRef struct {
	Handle asset.Handle
}
