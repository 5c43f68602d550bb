package component

import (
	"github.com/lixenwraith/diegetic/vmath"
)

// Transform is an entity's local-to-world matrix. Entities without one
// are treated as sitting at the origin with identity orientation.
type Transform struct {
	Matrix vmath.Mat4
}

// NewTransform wraps a world matrix
func NewTransform(m vmath.Mat4) Transform {
	return Transform{Matrix: m}
}

// Visibility controls whether an entity participates in rendering and
// visibility-filtered ray casts. Absence of the component means
// visible; the zero value is visible too.
type Visibility struct {
	Hidden bool
}
