package core

// PointerID identifies a pointer device, real or virtual
// The real mouse is PointerMouse; embedding applications allocate
// custom IDs for the virtual pointers that drive UI surfaces
type PointerID uint32

// PointerMouse is the reserved ID of the real mouse device
const PointerMouse PointerID = 0

// IsCustom reports whether the ID belongs to a virtual pointer
func (p PointerID) IsCustom() bool {
	return p != PointerMouse
}
