package demo

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/component"
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/systems"
	"github.com/lixenwraith/diegetic/vmath"
)

// Panel is one world-space UI surface: a quad entity, the GPU copy of
// its UI texture, and the button living on it.
type Panel struct {
	Entity core.Entity
	Button *Button

	canvas    *ebiten.Image
	mesh      asset.Mesh
	transform vmath.Mat4
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewPanel creates a UI root with its own texture, spawns a quad
// surface with the given transform and pointer id, and places a button
// on it.
func NewPanel(w *engine.World, uiW, uiH int, pointer core.PointerID, transform vmath.Mat4, label string) (*Panel, error) {
	texture := w.Resource.Assets.Images.Add(asset.NewUITexture(uiW, uiH))
	root := systems.CreateUIRoot(w, texture)

	mesh := asset.NewQuad()
	meshHandle := w.Resource.Assets.Meshes.Add(mesh)
	entity := w.CreateEntity()
	w.Components.Meshes.SetComponent(entity, component.MeshRef{Handle: meshHandle})
	w.Components.Transforms.SetComponent(entity, component.NewTransform(transform))

	if err := systems.CreateUISurface(w, entity, systems.SurfaceConfig{
		Root:    root,
		Texture: texture,
		Pointer: pointer,
	}); err != nil {
		return nil, fmt.Errorf("panel %q: %w", label, err)
	}

	surfaceTarget, ok := w.Components.SurfaceTargets.GetComponent(entity)
	if !ok {
		return nil, fmt.Errorf("panel %q: surface target missing after creation", label)
	}

	indices := make([]uint16, len(mesh.Indices.U16))
	copy(indices, mesh.Indices.U16)

	return &Panel{
		Entity:    entity,
		Button:    NewButton(surfaceTarget.Target, uiW, uiH, label),
		canvas:    ebiten.NewImage(uiW, uiH),
		mesh:      mesh,
		transform: transform,
		vertices:  make([]ebiten.Vertex, len(mesh.Positions)),
		indices:   indices,
	}, nil
}

// Draw repaints the UI texture and projects the quad onto the screen
func (p *Panel) Draw(screen *ebiten.Image, viewProj vmath.Mat4) {
	p.Button.Draw(p.canvas)

	bounds := screen.Bounds()
	screenW := float32(bounds.Dx())
	screenH := float32(bounds.Dy())
	texW := float32(p.canvas.Bounds().Dx())
	texH := float32(p.canvas.Bounds().Dy())

	for i, pos := range p.mesh.Positions {
		world := p.transform.TransformPoint(pos)
		clip := viewProj.MulVec4(vmath.Vec4{X: world.X, Y: world.Y, Z: world.Z, W: 1})
		if clip.W <= 0 {
			return
		}
		ndcX := clip.X / clip.W
		ndcY := clip.Y / clip.W
		uv := p.mesh.UVs[i]
		p.vertices[i] = ebiten.Vertex{
			DstX:   (ndcX + 1) * 0.5 * screenW,
			DstY:   (1 - ndcY) * 0.5 * screenH,
			SrcX:   uv.X * texW,
			SrcY:   uv.Y * texH,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	screen.DrawTriangles(p.vertices, p.indices, p.canvas, &ebiten.DrawTrianglesOptions{})
}
