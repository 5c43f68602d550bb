package engine

import (
	"github.com/lixenwraith/diegetic/component"
)

// ComponentStore holds the typed component stores of the world
// Explicitly typed for compile-time safety; systems keep a copy for
// direct access without runtime lookups
type ComponentStore struct {
	// World-space UI
	Roots          *Store[component.UIRoot]
	Surfaces       *Store[component.UISurface]
	SurfaceTargets *Store[component.SurfaceTarget]
	Cursors        *Store[component.PreviousCursor]

	// Scene
	Meshes       *Store[component.MeshRef]
	Materials    *Store[component.MaterialRef]
	Transforms   *Store[component.Transform]
	Visibilities *Store[component.Visibility]

	// Cameras
	Cameras       *Store[component.Camera]
	TargetCameras *Store[component.TargetCamera]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Roots:          NewStore[component.UIRoot](),
		Surfaces:       NewStore[component.UISurface](),
		SurfaceTargets: NewStore[component.SurfaceTarget](),
		Cursors:        NewStore[component.PreviousCursor](),

		Meshes:       NewStore[component.MeshRef](),
		Materials:    NewStore[component.MaterialRef](),
		Transforms:   NewStore[component.Transform](),
		Visibilities: NewStore[component.Visibility](),

		Cameras:       NewStore[component.Camera](),
		TargetCameras: NewStore[component.TargetCamera](),
	}
}

// all returns the stores for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{
		cs.Roots,
		cs.Surfaces,
		cs.SurfaceTargets,
		cs.Cursors,
		cs.Meshes,
		cs.Materials,
		cs.Transforms,
		cs.Visibilities,
		cs.Cameras,
		cs.TargetCameras,
	}
}
