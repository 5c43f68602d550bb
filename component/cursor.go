package component

import (
	"github.com/lixenwraith/diegetic/vmath"
)

// PreviousCursor persists the last synthesized cursor position on a UI
// surface, in texture pixels. Written only by the cursor pass; read by
// the button pass for stable press/release positions.
type PreviousCursor struct {
	Position vmath.Vec2
}
