package engine

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/event"
)

// World contains all entities and their components using typed stores,
// plus the singleton resources and the ordered system list
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resource   *Resource

	frame atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a new ECS world with all stores and resources initialized
func NewWorld() *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resource:     newResource(),
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.Components.all() {
		store.RemoveComponent(e)
	}
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, store := range w.Components.all() {
		store.ClearAllComponent()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update advances the frame counter and runs all systems in priority
// order. The first system error fails the frame: later systems are
// skipped and the error is returned to the embedding application.
func (w *World) Update() error {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	w.frame.Add(1)

	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		if err := system.Update(); err != nil {
			return fmt.Errorf("frame %d: %w", w.frame.Load(), err)
		}
	}
	return nil
}

// FrameNumber returns the current frame index
// Optimized for hot-path access by the event push path
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent emits an engine event stamped with the current frame
// This is the hot path for all system communication
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resource.Events.Queue.Push(event.Event{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
