package event

// EventType represents the type of engine event
type EventType int

const (
	// EventPointerInput carries a synthesized pointer event for a UI tree
	// Trigger: CursorSystem (moves), ButtonSystem (press/release)
	// Consumer: UI input handling | Payload: PointerInputPayload
	EventPointerInput EventType = iota
)

// Event is a single queued engine event
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
