package input

import (
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/vmath"
)

// RayID keys a per-frame picking ray: the real pointer that produced it
// and the camera it was unprojected through
type RayID struct {
	Pointer core.PointerID
	Camera  core.Entity
}

// RayEntry is one ray with its identity, in insertion order
type RayEntry struct {
	ID  RayID
	Ray vmath.Ray
}

// RayMap collects the frame's active picking rays, one per real input
// device. The host adapter clears and refills it each frame before the
// world updates; insertion order is preserved so hit processing is
// deterministic.
type RayMap struct {
	entries []RayEntry
}

func NewRayMap() *RayMap {
	return &RayMap{}
}

// Clear drops all rays; call at the start of each frame
func (rm *RayMap) Clear() {
	rm.entries = rm.entries[:0]
}

// Insert adds a ray for this frame. A repeated ID replaces the
// previous ray in place.
func (rm *RayMap) Insert(id RayID, ray vmath.Ray) {
	for i := range rm.entries {
		if rm.entries[i].ID == id {
			rm.entries[i].Ray = ray
			return
		}
	}
	rm.entries = append(rm.entries, RayEntry{ID: id, Ray: ray})
}

// All returns the frame's rays in insertion order
func (rm *RayMap) All() []RayEntry {
	return rm.entries
}
