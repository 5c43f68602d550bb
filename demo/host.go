package demo

import (
	"fmt"
	"image/color"
	"time"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/diegetic/component"
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/input"
	"github.com/lixenwraith/diegetic/systems"
	"github.com/lixenwraith/diegetic/vmath"
)

var background = color.NRGBA{R: 10, G: 12, B: 18, A: 255}

// Host runs the world inside an Ebiten game loop. Each frame it feeds
// real mouse state and one picking ray into the world, updates the
// pointer systems, and dispatches the synthesized events to the panel
// buttons.
type Host struct {
	Config Config
	World  *engine.World
	Router *event.Router

	panels      []*Panel
	camera      core.Entity
	viewProj    vmath.Mat4
	invViewProj vmath.Mat4
}

func NewHost(cfg Config) (*Host, error) {
	w := engine.NewWorld()
	w.AddSystem(systems.NewCursorSystem(w))
	w.AddSystem(systems.NewButtonSystem(w))

	// Primary window, known before any surface is created
	window := w.CreateEntity()
	w.Resource.Window.Entity = window
	w.Resource.Window.Width = cfg.Window.Width
	w.Resource.Window.Height = cfg.Window.Height

	// Scene camera used to unproject the mouse
	eye := vmath.V3(cfg.Camera.Eye[0], cfg.Camera.Eye[1], cfg.Camera.Eye[2])
	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	fov := cfg.Camera.FOVDegrees * math32.Pi / 180
	proj := vmath.Perspective(fov, aspect, 0.1, 100)
	view := vmath.LookAt(eye, vmath.Vec3{}, vmath.V3(0, 1, 0))
	viewProj := proj.Mul(view)
	inv, ok := viewProj.Inverse()
	if !ok {
		return nil, fmt.Errorf("camera view-projection is singular")
	}

	camera := w.CreateEntity()
	w.Components.Cameras.SetComponent(camera, component.Camera{})

	return &Host{
		Config:      cfg,
		World:       w,
		Router:      event.NewRouter(w.Resource.Events.Queue),
		camera:      camera,
		viewProj:    viewProj,
		invViewProj: inv,
	}, nil
}

// AddPanel creates a panel and registers its button with the router
func (h *Host) AddPanel(pointer core.PointerID, transform vmath.Mat4, label string) (*Panel, error) {
	panel, err := NewPanel(h.World, h.Config.UI.Width, h.Config.UI.Height, pointer, transform, label)
	if err != nil {
		return nil, err
	}
	h.Router.Register(panel.Button)
	h.panels = append(h.panels, panel)
	return panel, nil
}

func (h *Host) Update() error {
	now := time.Now()
	tr := h.World.Resource.Time
	if !tr.RealTime.IsZero() {
		tr.DeltaTime = now.Sub(tr.RealTime)
	}
	tr.RealTime = now
	tr.FrameNumber = h.World.FrameNumber()

	mouse := h.World.Resource.Mouse
	mouse.BeginFrame()
	cx, cy := ebiten.CursorPosition()
	mouse.SetPosition(vmath.V2(float32(cx), float32(cy)))
	mouse.SetButton(input.MouseLeft, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	mouse.SetButton(input.MouseRight, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	mouse.SetButton(input.MouseMiddle, ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle))

	rays := h.World.Resource.Rays
	rays.Clear()
	ray := vmath.ScreenToRay(
		float32(cx), float32(cy),
		float32(h.Config.Window.Width), float32(h.Config.Window.Height),
		h.invViewProj,
	)
	rays.Insert(input.RayID{Pointer: core.PointerMouse, Camera: h.camera}, ray)

	if err := h.World.Update(); err != nil {
		return err
	}
	h.Router.DispatchAll()
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, panel := range h.panels {
		panel.Draw(screen, h.viewProj)
	}

	status := fmt.Sprintf("TPS %.0f", ebiten.ActualTPS())
	for _, panel := range h.panels {
		status += fmt.Sprintf("  |  %s: %d", panel.Button.Label, panel.Button.Clicks)
	}
	ebitenutil.DebugPrint(screen, status)
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.Config.Window.Width, h.Config.Window.Height
}
