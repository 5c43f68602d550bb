package render

import (
	"image/color"

	"github.com/lixenwraith/diegetic/asset"
)

// Material describes how a surface mesh is shaded. UI surfaces get one
// built automatically with the UI texture as base color texture; the
// remaining fields come from the caller's optional override.
type Material struct {
	BaseColorTexture asset.Handle
	BaseColor        color.NRGBA
	Unlit            bool
}

// DefaultMaterial is the material used when a surface supplies no override
func DefaultMaterial() Material {
	return Material{
		BaseColor: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
