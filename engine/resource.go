package engine

import (
	"time"

	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/core"
	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/input"
	"github.com/lixenwraith/diegetic/render"
)

// Resource holds singleton world resources, initialized during world
// creation and accessed by systems via their SystemBase
type Resource struct {
	Time   *TimeResource
	Window *WindowResource
	Assets *AssetResource

	// Input
	Mouse    *input.Mouse
	Rays     *input.RayMap
	Pointers *input.Registry

	// Event channel consumed by UI input handling
	Events *EventQueueResource
}

func newResource() *Resource {
	return &Resource{
		Time:     &TimeResource{},
		Window:   &WindowResource{},
		Assets:   NewAssetResource(),
		Mouse:    input.NewMouse(),
		Rays:     input.NewRayMap(),
		Pointers: input.NewRegistry(),
		Events:   &EventQueueResource{Queue: event.NewQueue()},
	}
}

// TimeResource wraps frame timing for systems
// Updated by the embedding application at the start of a frame
type TimeResource struct {
	// RealTime is the wall-clock time
	RealTime time.Time

	// DeltaTime is the duration since the last update
	DeltaTime time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// WindowResource identifies the primary window and its pixel size
// Entity stays NoEntity until the host adapter registers a window
type WindowResource struct {
	Entity core.Entity
	Width  int
	Height int
}

// AssetResource bundles the asset stores the pipeline reads
type AssetResource struct {
	Images    *asset.Assets[asset.Image]
	Meshes    *asset.Assets[asset.Mesh]
	Materials *asset.Assets[render.Material]
}

func NewAssetResource() *AssetResource {
	return &AssetResource{
		Images:    asset.NewAssets[asset.Image](),
		Meshes:    asset.NewAssets[asset.Mesh](),
		Materials: asset.NewAssets[render.Material](),
	}
}

// EventQueueResource wraps the event queue for systems access
type EventQueueResource struct {
	Queue *event.Queue
}
