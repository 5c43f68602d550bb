package component

import (
	"image/color"

	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/render"
)

// Camera renders into a target. UI root cameras target the root's
// texture with a fully transparent clear color so the mesh material
// shows through where the UI draws nothing.
type Camera struct {
	Target     render.Target
	ClearColor color.NRGBA
}

// TargetCamera associates a UI root with the camera entity that
// renders its UI tree. Attached automatically by systems.CreateUIRoot.
type TargetCamera struct {
	Camera core.Entity
}
