package systems

import (
	"errors"
	"testing"

	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/component"
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/input"
	"github.com/lixenwraith/diegetic/render"
	"github.com/lixenwraith/diegetic/vmath"
)

// fixture builds a world with both pointer systems, one UI root
// rendering into a 200x100 texture, and one unit-quad surface at the
// origin owned by pointer 7.
type fixture struct {
	world   *engine.World
	texture asset.Handle
	root    core.Entity
	surface core.Entity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	w := engine.NewWorld()
	w.AddSystem(NewCursorSystem(w))
	w.AddSystem(NewButtonSystem(w))

	texture := w.Resource.Assets.Images.Add(asset.NewUITexture(200, 100))
	root := CreateUIRoot(w, texture)

	surface := addSurface(t, w, root, texture, 7, nil)
	return &fixture{world: w, texture: texture, root: root, surface: surface}
}

func addSurface(t *testing.T, w *engine.World, root core.Entity, texture asset.Handle, pointer core.PointerID, transform *vmath.Mat4) core.Entity {
	t.Helper()
	mesh := w.Resource.Assets.Meshes.Add(asset.NewQuad())
	e := w.CreateEntity()
	w.Components.Meshes.SetComponent(e, component.MeshRef{Handle: mesh})
	if transform != nil {
		w.Components.Transforms.SetComponent(e, component.NewTransform(*transform))
	}
	if err := CreateUISurface(w, e, SurfaceConfig{Root: root, Texture: texture, Pointer: pointer}); err != nil {
		t.Fatalf("CreateUISurface: %v", err)
	}
	return e
}

// frame runs one world update with the given ray, clearing per-frame
// input state first
func (f *fixture) frame(t *testing.T, ray *vmath.Ray) {
	t.Helper()
	f.world.Resource.Rays.Clear()
	if ray != nil {
		f.world.Resource.Rays.Insert(input.RayID{Pointer: core.PointerMouse}, *ray)
	}
	if err := f.world.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	f.world.Resource.Mouse.BeginFrame()
}

func rayAt(x, y float32) vmath.Ray {
	return vmath.Ray{Origin: vmath.V3(x, y, 5), Dir: vmath.V3(0, 0, -1)}
}

// near compares pixel positions with a float32-friendly tolerance
func near(a, b vmath.Vec2) bool {
	return a.Sub(b).Length() < 1e-3
}

func drainPointer(w *engine.World) []event.PointerInputPayload {
	var out []event.PointerInputPayload
	for _, ev := range w.Resource.Events.Queue.Consume() {
		if ev.Type != event.EventPointerInput {
			continue
		}
		out = append(out, ev.Payload.(event.PointerInputPayload))
	}
	return out
}

func TestCreateUIRoot(t *testing.T) {
	w := engine.NewWorld()
	texture := w.Resource.Assets.Images.Add(asset.NewUITexture(64, 64))
	root := CreateUIRoot(w, texture)

	uiRoot, ok := w.Components.Roots.GetComponent(root)
	if !ok || uiRoot.Texture != texture {
		t.Fatalf("expected root component referencing texture %d", texture)
	}
	targetCamera, ok := w.Components.TargetCameras.GetComponent(root)
	if !ok {
		t.Fatalf("expected TargetCamera on root")
	}
	camera, ok := w.Components.Cameras.GetComponent(targetCamera.Camera)
	if !ok {
		t.Fatalf("expected camera entity")
	}
	if camera.Target.Kind != render.TargetImage || camera.Target.Image != texture {
		t.Errorf("expected camera targeting texture %d, got %+v", texture, camera.Target)
	}
	if camera.ClearColor.A != 0 {
		t.Errorf("expected fully transparent clear color, got %+v", camera.ClearColor)
	}
}

func TestCreateUISurface(t *testing.T) {
	f := newFixture(t)

	surface, ok := f.world.Components.Surfaces.GetComponent(f.surface)
	if !ok {
		t.Fatalf("expected surface component")
	}
	if surface.Root != f.root || surface.Texture != f.texture || surface.Pointer != 7 {
		t.Errorf("unexpected surface component %+v", surface)
	}

	st, ok := f.world.Components.SurfaceTargets.GetComponent(f.surface)
	if !ok {
		t.Fatalf("expected cached surface target")
	}
	if st.Target.Kind != render.TargetImage || st.Target.Image != f.texture {
		t.Errorf("expected normalized image target, got %+v", st.Target)
	}
	if st.Size != vmath.V2(200, 100) {
		t.Errorf("expected cached size (200,100), got %v", st.Size)
	}

	matRef, ok := f.world.Components.Materials.GetComponent(f.surface)
	if !ok {
		t.Fatalf("expected material on surface")
	}
	mat, ok := f.world.Resource.Assets.Materials.Get(matRef.Handle)
	if !ok || mat.BaseColorTexture != f.texture {
		t.Errorf("expected material textured with %d", f.texture)
	}

	if cursor, ok := f.world.Components.Cursors.GetComponent(f.surface); !ok || cursor.Position != (vmath.Vec2{}) {
		t.Errorf("expected zero initial cursor")
	}
	if !f.world.Resource.Pointers.Has(7) {
		t.Errorf("expected pointer 7 registered")
	}
}

func TestCreateUISurfaceErrors(t *testing.T) {
	w := engine.NewWorld()
	texture := w.Resource.Assets.Images.Add(asset.NewUITexture(32, 32))
	root := CreateUIRoot(w, texture)

	// No mesh on the entity
	bare := w.CreateEntity()
	err := CreateUISurface(w, bare, SurfaceConfig{Root: root, Texture: texture})
	if !errors.Is(err, ErrSurfaceWithoutMesh) {
		t.Errorf("expected ErrSurfaceWithoutMesh, got %v", err)
	}

	mesh := w.Resource.Assets.Meshes.Add(asset.NewQuad())
	meshed := w.CreateEntity()
	w.Components.Meshes.SetComponent(meshed, component.MeshRef{Handle: mesh})

	// Root without a camera link
	err = CreateUISurface(w, meshed, SurfaceConfig{Root: w.CreateEntity(), Texture: texture})
	if !errors.Is(err, ErrRootWithoutCamera) {
		t.Errorf("expected ErrRootWithoutCamera, got %v", err)
	}

	// Texture asset missing
	err = CreateUISurface(w, meshed, SurfaceConfig{Root: root, Texture: 999})
	if !errors.Is(err, ErrTextureNotLoaded) {
		t.Errorf("expected ErrTextureNotLoaded, got %v", err)
	}

	// Camera targeting the primary window before one is registered
	windowCam := w.CreateEntity()
	w.Components.Cameras.SetComponent(windowCam, component.Camera{})
	windowRoot := w.CreateEntity()
	w.Components.TargetCameras.SetComponent(windowRoot, component.TargetCamera{Camera: windowCam})
	err = CreateUISurface(w, meshed, SurfaceConfig{Root: windowRoot, Texture: texture})
	if !errors.Is(err, render.ErrNoPrimaryWindow) {
		t.Errorf("expected ErrNoPrimaryWindow, got %v", err)
	}
}

func TestCursorMoveAndSuppression(t *testing.T) {
	f := newFixture(t)

	// Quad point (0.25,-0.1) maps to UV (0.75,0.6) and pixel (150,60)
	ray := rayAt(0.25, -0.1)
	f.frame(t, &ray)

	events := drainPointer(f.world)
	if len(events) != 1 {
		t.Fatalf("expected 1 move event, got %d", len(events))
	}
	ev := events[0]
	if ev.Action != event.PointerMove || ev.Pointer != 7 {
		t.Errorf("unexpected event %+v", ev)
	}
	if !near(ev.Position, vmath.V2(150, 60)) {
		t.Errorf("expected position (150,60), got %v", ev.Position)
	}
	if !near(ev.Delta, vmath.V2(150, 60)) {
		t.Errorf("expected delta from zero cursor, got %v", ev.Delta)
	}

	// Same ray again: position unchanged, no event
	f.frame(t, &ray)
	if events := drainPointer(f.world); len(events) != 0 {
		t.Fatalf("expected suppression of unchanged position, got %d events", len(events))
	}

	// New position reports the exact delta
	moved := rayAt(0, 0)
	f.frame(t, &moved)
	events = drainPointer(f.world)
	if len(events) != 1 {
		t.Fatalf("expected 1 move event, got %d", len(events))
	}
	if !near(events[0].Position, vmath.V2(100, 50)) {
		t.Errorf("expected position (100,50), got %v", events[0].Position)
	}
	if !near(events[0].Delta, vmath.V2(-50, -10)) {
		t.Errorf("expected delta (-50,-10), got %v", events[0].Delta)
	}
}

func TestCursorMissOnHiddenSurface(t *testing.T) {
	f := newFixture(t)
	f.world.Components.Visibilities.SetComponent(f.surface, component.Visibility{Hidden: true})

	ray := rayAt(0, 0)
	f.frame(t, &ray)
	if events := drainPointer(f.world); len(events) != 0 {
		t.Errorf("expected no events on hidden surface, got %d", len(events))
	}
}

func TestTwoSurfaceIsolation(t *testing.T) {
	f := newFixture(t)
	second := vmath.Translation(vmath.V3(3, 0, 0))
	addSurface(t, f.world, f.root, f.texture, 8, &second)

	// Ray over the first surface only
	ray := rayAt(0.25, -0.1)
	f.frame(t, &ray)
	events := drainPointer(f.world)
	if len(events) != 1 || events[0].Pointer != 7 {
		t.Fatalf("expected one move for pointer 7, got %+v", events)
	}

	// Ray over the second surface: pointer 8 moves, pointer 7 stays put
	ray = rayAt(3.25, -0.1)
	f.frame(t, &ray)
	events = drainPointer(f.world)
	if len(events) != 1 || events[0].Pointer != 8 {
		t.Fatalf("expected one move for pointer 8, got %+v", events)
	}
	if !near(events[0].Position, vmath.V2(150, 60)) {
		t.Errorf("expected local position (150,60), got %v", events[0].Position)
	}
}

func TestStackedSurfacesBothMove(t *testing.T) {
	f := newFixture(t)
	behind := vmath.Translation(vmath.V3(0, 0, -1))
	addSurface(t, f.world, f.root, f.texture, 8, &behind)

	ray := rayAt(0.25, -0.1)
	f.frame(t, &ray)

	events := drainPointer(f.world)
	if len(events) != 2 {
		t.Fatalf("expected moves on both stacked surfaces, got %d", len(events))
	}
	// Nearest surface first
	if events[0].Pointer != 7 || events[1].Pointer != 8 {
		t.Errorf("expected pointer order 7,8; got %d,%d", events[0].Pointer, events[1].Pointer)
	}
	for _, ev := range events {
		if !near(ev.Position, vmath.V2(150, 60)) {
			t.Errorf("pointer %d: expected position (150,60), got %v", ev.Pointer, ev.Position)
		}
	}
}

func TestButtonBroadcast(t *testing.T) {
	f := newFixture(t)
	offside := vmath.Translation(vmath.V3(3, 0, 0))
	addSurface(t, f.world, f.root, f.texture, 8, &offside)

	// Establish a cursor position on the first surface
	ray := rayAt(0.25, -0.1)
	f.frame(t, &ray)
	drainPointer(f.world)

	// Press lands on this frame's cursor positions: the cursor pass
	// runs first and re-commits (150,60) for pointer 7
	f.world.Resource.Mouse.SetButton(input.MouseLeft, true)
	f.frame(t, &ray)

	events := drainPointer(f.world)
	if len(events) != 2 {
		t.Fatalf("expected press broadcast to both surfaces, got %d events", len(events))
	}
	byPointer := map[core.PointerID]event.PointerInputPayload{}
	for _, ev := range events {
		if ev.Action != event.PointerPress || ev.Button != event.PointerPrimary {
			t.Errorf("unexpected event %+v", ev)
		}
		byPointer[ev.Pointer] = ev
	}
	if !near(byPointer[7].Position, vmath.V2(150, 60)) {
		t.Errorf("expected pointer 7 press at (150,60), got %v", byPointer[7].Position)
	}
	// The untouched surface presses at its zero cursor
	if byPointer[8].Position != (vmath.Vec2{}) {
		t.Errorf("expected pointer 8 press at origin, got %v", byPointer[8].Position)
	}

	// Release on the next frame
	f.world.Resource.Mouse.SetButton(input.MouseLeft, false)
	f.frame(t, nil)
	events = drainPointer(f.world)
	if len(events) != 2 {
		t.Fatalf("expected release broadcast, got %d events", len(events))
	}
	for _, ev := range events {
		if ev.Action != event.PointerRelease {
			t.Errorf("expected release, got %+v", ev)
		}
	}
}

func TestButtonUnmappedIgnored(t *testing.T) {
	f := newFixture(t)
	f.world.Resource.Mouse.SetButton(input.MouseBack, true)
	f.frame(t, nil)
	if events := drainPointer(f.world); len(events) != 0 {
		t.Errorf("expected unmapped button ignored, got %d events", len(events))
	}
}

func TestCursorErrorFailsFrame(t *testing.T) {
	f := newFixture(t)
	f.world.Components.SurfaceTargets.RemoveComponent(f.surface)

	f.world.Resource.Rays.Clear()
	ray := rayAt(0, 0)
	f.world.Resource.Rays.Insert(input.RayID{Pointer: core.PointerMouse}, ray)
	if err := f.world.Update(); err == nil {
		t.Fatalf("expected frame error for surface without cached target")
	}

	// Restoring the invariant lets the next frame proceed
	img, _ := f.world.Resource.Assets.Images.Get(f.texture)
	f.world.Components.SurfaceTargets.SetComponent(f.surface, component.SurfaceTarget{
		Target: render.NormalizedTarget{Kind: render.TargetImage, Image: f.texture},
		Size:   img.Size(),
	})
	if err := f.world.Update(); err != nil {
		t.Fatalf("expected recovery on next frame, got %v", err)
	}
}
