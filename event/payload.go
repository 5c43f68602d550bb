package event

import (
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/render"
	"github.com/lixenwraith/diegetic/vmath"
)

// PointerButton is the abstract button vocabulary of pointer events
type PointerButton uint8

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

// PointerActionKind discriminates pointer actions
type PointerActionKind uint8

const (
	// PointerMove carries a new position and the movement delta
	PointerMove PointerActionKind = iota
	// PointerPress is a button going down at the current position
	PointerPress
	// PointerRelease is a button going up at the current position
	PointerRelease
)

// PointerInputPayload is a synthesized pointer event addressed to a
// render target. Position is in pixels of that target.
// Delta is set for PointerMove, Button for press/release.
type PointerInputPayload struct {
	Pointer  core.PointerID
	Target   render.NormalizedTarget
	Position vmath.Vec2
	Action   PointerActionKind
	Button   PointerButton
	Delta    vmath.Vec2
}
