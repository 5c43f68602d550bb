package systems

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/component"
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/render"
)

var (
	// ErrSurfaceWithoutMesh is returned when the surface entity carries
	// no mesh to intersect rays with
	ErrSurfaceWithoutMesh = errors.New("surface entity has no mesh")

	// ErrRootWithoutCamera is returned when the root's render camera
	// cannot be resolved
	ErrRootWithoutCamera = errors.New("ui root has no target camera")

	// ErrTextureNotLoaded is returned when the UI texture asset does
	// not exist at surface creation time
	ErrTextureNotLoaded = errors.New("ui texture not loaded")
)

// CreateUIRoot marks root as the root of a UI tree rendered into
// texture. Spawns the offscreen camera targeting the texture with a
// fully transparent clear color and links it via TargetCamera.
func CreateUIRoot(w *engine.World, texture asset.Handle) core.Entity {
	camera := w.CreateEntity()
	w.Components.Cameras.SetComponent(camera, component.Camera{
		Target:     render.ImageTarget(texture),
		ClearColor: color.NRGBA{},
	})

	root := w.CreateEntity()
	w.Components.Roots.SetComponent(root, component.UIRoot{Texture: texture})
	w.Components.TargetCameras.SetComponent(root, component.TargetCamera{Camera: camera})
	return root
}

// SurfaceConfig configures a new UI surface
type SurfaceConfig struct {
	// Root is the UI root whose texture this surface displays
	Root core.Entity

	// Texture is the UI texture asset; must already be loaded
	Texture asset.Handle

	// Pointer identifies the virtual pointer owned by this surface
	Pointer core.PointerID

	// Material optionally overrides the surface material. The base
	// color texture is always set to the UI texture.
	Material *render.Material
}

// CreateUISurface turns a mesh entity into a UI surface: builds its
// material around the UI texture, caches the root camera's normalized
// render target with the texture pixel size, and registers the virtual
// pointer. The cached target and size are not refreshed if the texture
// or camera target changes later.
//
// Must be called after the root exists and the texture is loaded, and
// after the primary window is known when the root camera targets a
// window.
func CreateUISurface(w *engine.World, entity core.Entity, cfg SurfaceConfig) error {
	if !w.Components.Meshes.HasComponent(entity) {
		return fmt.Errorf("entity %d: %w", entity, ErrSurfaceWithoutMesh)
	}

	targetCamera, ok := w.Components.TargetCameras.GetComponent(cfg.Root)
	if !ok {
		return fmt.Errorf("root %d: %w", cfg.Root, ErrRootWithoutCamera)
	}
	camera, ok := w.Components.Cameras.GetComponent(targetCamera.Camera)
	if !ok {
		return fmt.Errorf("root %d camera %d: %w", cfg.Root, targetCamera.Camera, ErrRootWithoutCamera)
	}

	target, err := camera.Target.Normalize(w.Resource.Window.Entity)
	if err != nil {
		return fmt.Errorf("surface %d: %w", entity, err)
	}

	img, ok := w.Resource.Assets.Images.Get(cfg.Texture)
	if !ok {
		return fmt.Errorf("texture %d: %w", cfg.Texture, ErrTextureNotLoaded)
	}

	material := render.DefaultMaterial()
	if cfg.Material != nil {
		material = *cfg.Material
	}
	material.BaseColorTexture = cfg.Texture
	materialHandle := w.Resource.Assets.Materials.Add(material)

	w.Components.Materials.SetComponent(entity, component.MaterialRef{Handle: materialHandle})
	w.Components.SurfaceTargets.SetComponent(entity, component.SurfaceTarget{
		Target: target,
		Size:   img.Size(),
	})
	w.Components.Cursors.SetComponent(entity, component.PreviousCursor{})
	w.Components.Surfaces.SetComponent(entity, component.UISurface{
		Root:    cfg.Root,
		Texture: cfg.Texture,
		Pointer: cfg.Pointer,
	})
	w.Resource.Pointers.Register(cfg.Pointer)
	return nil
}
