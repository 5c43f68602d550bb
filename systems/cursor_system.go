package systems

import (
	"fmt"

	"github.com/lixenwraith/diegetic/component"
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/parameter"
	"github.com/lixenwraith/diegetic/picking"
)

// CursorSystem drives the per-surface virtual cursors. For every
// picking ray of the frame it casts against visible UI surfaces,
// converts each hit to texture pixels through the mesh UVs, and emits
// a pointer move for every surface whose cursor position changed.
// Unchanged positions are suppressed so downstream consumers only see
// real movement.
type CursorSystem struct {
	engine.SystemBase
	caster *picking.Caster
}

func NewCursorSystem(w *engine.World) *CursorSystem {
	return &CursorSystem{
		SystemBase: engine.NewSystemBase(w),
		caster:     picking.NewCaster(w),
	}
}

func (s *CursorSystem) Priority() int {
	return parameter.PriorityCursor
}

func (s *CursorSystem) Update() error {
	for _, entry := range s.Resource.Rays.All() {
		hits, err := s.caster.Cast(entry.Ray, picking.Settings{
			Filter:         s.Component.Surfaces.HasComponent,
			RequireVisible: true,
		})
		if err != nil {
			return fmt.Errorf("pointer %d: %w", entry.ID.Pointer, err)
		}
		for _, hit := range hits {
			if err := s.moveCursor(hit); err != nil {
				return err
			}
		}
	}
	return nil
}

// moveCursor commits one hit to the hit surface's cursor. Hits on
// meshes without a UV attribute cannot be positioned and are dropped.
func (s *CursorSystem) moveCursor(hit picking.Hit) error {
	surface, ok := s.Component.Surfaces.GetComponent(hit.Entity)
	if !ok {
		return fmt.Errorf("surface entity %d: surface component removed mid-frame", hit.Entity)
	}
	surfaceTarget, ok := s.Component.SurfaceTargets.GetComponent(hit.Entity)
	if !ok {
		return fmt.Errorf("surface entity %d: no cached render target", hit.Entity)
	}

	meshRef, _ := s.Component.Meshes.GetComponent(hit.Entity)
	mesh, ok := s.Resource.Assets.Meshes.Get(meshRef.Handle)
	if !ok {
		return fmt.Errorf("surface entity %d: mesh asset %d not found", hit.Entity, meshRef.Handle)
	}

	uv, ok := picking.HitUV(hit, mesh)
	if !ok {
		return nil
	}
	position := uv.MulComp(surfaceTarget.Size)

	previous, _ := s.Component.Cursors.GetComponent(hit.Entity)
	if position == previous.Position {
		return nil
	}

	s.World.PushEvent(event.EventPointerInput, event.PointerInputPayload{
		Pointer:  surface.Pointer,
		Target:   surfaceTarget.Target,
		Position: position,
		Action:   event.PointerMove,
		Delta:    position.Sub(previous.Position),
	})
	s.Component.Cursors.SetComponent(hit.Entity, component.PreviousCursor{Position: position})
	return nil
}
