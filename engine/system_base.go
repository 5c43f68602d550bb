package engine

// System is the interface all per-frame systems implement
type System interface {
	// Update runs the system for the current frame. A returned error
	// fails the frame; remaining systems do not run. State is
	// frame-local, so the next frame proceeds normally.
	Update() error

	// Priority orders systems within a frame. Lower values run first.
	Priority() int
}

// SystemBase provides common dependencies for all systems
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Resource  *Resource
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from the world
// Call once in the system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Resource:  w.Resource,
		Component: w.Components,
	}
}
