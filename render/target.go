package render

import (
	"errors"

	"github.com/lixenwraith/diegetic/asset"
	"github.com/lixenwraith/diegetic/core"
)

// ErrNoPrimaryWindow is returned when a window target cannot be
// resolved because no primary window exists
var ErrNoPrimaryWindow = errors.New("no primary window")

// TargetKind discriminates render target variants
type TargetKind uint8

const (
	// TargetWindow renders to a window surface
	TargetWindow TargetKind = iota
	// TargetImage renders to a texture asset
	TargetImage
)

// Target is where a camera renders to. The zero value is the primary
// window (Window field left as NoEntity).
type Target struct {
	Kind   TargetKind
	Window core.Entity  // Window entity, NoEntity = primary
	Image  asset.Handle // Image asset for TargetImage
}

// WindowTarget targets a specific window entity
func WindowTarget(window core.Entity) Target {
	return Target{Kind: TargetWindow, Window: window}
}

// ImageTarget targets a texture asset
func ImageTarget(image asset.Handle) Target {
	return Target{Kind: TargetImage, Image: image}
}

// NormalizedTarget is a Target with the primary-window indirection
// resolved. Comparable; used as the location target on pointer events.
type NormalizedTarget struct {
	Kind   TargetKind
	Window core.Entity
	Image  asset.Handle
}

// Normalize resolves the target against the primary window entity.
// Fails with ErrNoPrimaryWindow when a window target is requested and
// no primary window is known.
func (t Target) Normalize(primaryWindow core.Entity) (NormalizedTarget, error) {
	switch t.Kind {
	case TargetImage:
		return NormalizedTarget{Kind: TargetImage, Image: t.Image}, nil
	default:
		window := t.Window
		if window == core.NoEntity {
			window = primaryWindow
		}
		if window == core.NoEntity {
			return NormalizedTarget{}, ErrNoPrimaryWindow
		}
		return NormalizedTarget{Kind: TargetWindow, Window: window}, nil
	}
}
