package parameter

// System priorities, lower runs first. The cursor pass must fully
// complete before the button pass because the button pass broadcasts
// at the cursor positions the first pass committed.
const (
	PriorityCursor = 10
	PriorityButton = 20 // After cursor, before UI consumption
	PriorityUI     = 100
)
