package input

import (
	"github.com/lixenwraith/diegetic/event"
	"github.com/lixenwraith/diegetic/vmath"
)

// MouseButton is a physical mouse button reported by the host
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseBack
	MouseForward
)

// ButtonState is a press/release transition state
type ButtonState uint8

const (
	ButtonPressed ButtonState = iota
	ButtonReleased
)

// ButtonTransition records one button state change within a frame
type ButtonTransition struct {
	Button MouseButton
	State  ButtonState
}

// Mouse holds the real mouse state for the current frame. The host
// adapter calls BeginFrame, then SetPosition and SetButton for every
// button it tracks; transitions are edge-detected against the held
// state of the previous frame.
type Mouse struct {
	position    vmath.Vec2
	down        [5]bool
	transitions []ButtonTransition
}

func NewMouse() *Mouse {
	return &Mouse{}
}

// BeginFrame discards the previous frame's transitions
func (m *Mouse) BeginFrame() {
	m.transitions = m.transitions[:0]
}

// SetPosition records the cursor position in window pixels
func (m *Mouse) SetPosition(p vmath.Vec2) {
	m.position = p
}

// Position returns the cursor position in window pixels
func (m *Mouse) Position() vmath.Vec2 {
	return m.position
}

// SetButton records the held state of a button, emitting a transition
// when it differs from the previous frame
func (m *Mouse) SetButton(button MouseButton, held bool) {
	if m.down[button] == held {
		return
	}
	m.down[button] = held
	state := ButtonReleased
	if held {
		state = ButtonPressed
	}
	m.transitions = append(m.transitions, ButtonTransition{Button: button, State: state})
}

// Held reports whether a button is currently held
func (m *Mouse) Held(button MouseButton) bool {
	return m.down[button]
}

// Transitions returns this frame's button state changes in order
func (m *Mouse) Transitions() []ButtonTransition {
	return m.transitions
}

// PointerButtonFor maps a mouse button to the abstract pointer-button
// vocabulary. Buttons beyond left/right/middle have no mapping and are
// ignored by the button-forwarding pass.
func PointerButtonFor(button MouseButton) (event.PointerButton, bool) {
	switch button {
	case MouseLeft:
		return event.PointerPrimary, true
	case MouseRight:
		return event.PointerSecondary, true
	case MouseMiddle:
		return event.PointerMiddle, true
	default:
		return 0, false
	}
}
