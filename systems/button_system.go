package systems

import (
	"github.com/lixenwraith/diegetic/engine"
	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/input"
	"github.com/lixenwraith/diegetic/parameter"
)

// ButtonSystem forwards real mouse button transitions to the virtual
// pointers. Every transition is broadcast to every surface at that
// surface's own committed cursor position, whether or not the cursor
// is currently over the surface. Runs after CursorSystem so presses
// land on this frame's cursor positions.
type ButtonSystem struct {
	engine.SystemBase
}

func NewButtonSystem(w *engine.World) *ButtonSystem {
	return &ButtonSystem{SystemBase: engine.NewSystemBase(w)}
}

func (s *ButtonSystem) Priority() int {
	return parameter.PriorityButton
}

func (s *ButtonSystem) Update() error {
	transitions := s.Resource.Mouse.Transitions()
	if len(transitions) == 0 {
		return nil
	}

	surfaces := s.Component.Surfaces.AllEntity()
	for _, transition := range transitions {
		button, ok := input.PointerButtonFor(transition.Button)
		if !ok {
			continue
		}
		action := event.PointerRelease
		if transition.State == input.ButtonPressed {
			action = event.PointerPress
		}

		for _, entity := range surfaces {
			surface, ok := s.Component.Surfaces.GetComponent(entity)
			if !ok {
				continue
			}
			surfaceTarget, ok := s.Component.SurfaceTargets.GetComponent(entity)
			if !ok {
				continue
			}
			cursor, _ := s.Component.Cursors.GetComponent(entity)

			s.World.PushEvent(event.EventPointerInput, event.PointerInputPayload{
				Pointer:  surface.Pointer,
				Target:   surfaceTarget.Target,
				Position: cursor.Position,
				Action:   action,
				Button:   button,
			})
		}
	}
	return nil
}
