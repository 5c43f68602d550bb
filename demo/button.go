package demo

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/render"
	"github.com/lixenwraith/diegetic/vmath"
)

var (
	buttonIdle    = color.NRGBA{R: 38, G: 38, B: 38, A: 255}
	buttonHovered = color.NRGBA{R: 64, G: 64, B: 64, A: 255}
	buttonPressed = color.NRGBA{R: 89, G: 89, B: 89, A: 255}
	panelFill     = color.NRGBA{R: 20, G: 24, B: 34, A: 230}
)

// Button is a clickable rectangle on one UI surface, driven entirely
// by synthesized pointer events. It matches events by render target,
// so each button only reacts to its own surface's virtual pointer.
type Button struct {
	Label  string
	Clicks int

	target  render.NormalizedTarget
	x, y    float32
	w, h    float32
	cursor  vmath.Vec2
	pressed bool
}

// NewButton centers a button of the given size on a UI texture
func NewButton(target render.NormalizedTarget, texW, texH int, label string) *Button {
	w := float32(texW) * 0.5
	h := float32(texH) * 0.3
	return &Button{
		Label:  label,
		target: target,
		x:      (float32(texW) - w) / 2,
		y:      (float32(texH) - h) / 2,
		w:      w,
		h:      h,
	}
}

func (b *Button) EventTypes() []event.EventType {
	return []event.EventType{event.EventPointerInput}
}

func (b *Button) HandleEvent(ev event.Event) {
	p, ok := ev.Payload.(event.PointerInputPayload)
	if !ok || p.Target != b.target {
		return
	}
	switch p.Action {
	case event.PointerMove:
		b.cursor = p.Position
	case event.PointerPress:
		if p.Button == event.PointerPrimary && b.contains(b.cursor) {
			b.pressed = true
		}
	case event.PointerRelease:
		if p.Button != event.PointerPrimary {
			return
		}
		if b.pressed && b.contains(b.cursor) {
			b.Clicks++
			log.Printf("%s clicked (%d)", b.Label, b.Clicks)
		}
		b.pressed = false
	}
}

func (b *Button) contains(p vmath.Vec2) bool {
	return p.X >= b.x && p.X < b.x+b.w && p.Y >= b.y && p.Y < b.y+b.h
}

func (b *Button) fill() color.NRGBA {
	switch {
	case b.pressed:
		return buttonPressed
	case b.contains(b.cursor):
		return buttonHovered
	default:
		return buttonIdle
	}
}

// Draw repaints the UI texture: panel background, button, label
func (b *Button) Draw(dst *ebiten.Image) {
	dst.Clear()
	bounds := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), panelFill, false)
	vector.DrawFilledRect(dst, b.x, b.y, b.w, b.h, b.fill(), false)
	ebitenutil.DebugPrintAt(dst, b.Label, int(b.x)+8, int(b.y+b.h/2)-8)
}
