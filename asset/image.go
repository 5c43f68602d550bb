package asset

import (
	"github.com/lixenwraith/diegetic/vmath"
)

// Image is a CPU-side texture asset: pixel dimensions plus an RGBA
// buffer. Render backends bind the buffer (or their own GPU copy) to
// the handle; the pointer pipeline only ever reads the dimensions.
type Image struct {
	Width  int
	Height int
	Pixels []byte // RGBA, len = Width*Height*4
}

// NewUITexture creates a transparent image suitable as a UI render
// target. UI roots render into it; surfaces sample it as a material.
func NewUITexture(width, height int) Image {
	return Image{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*4),
	}
}

// Size returns the pixel dimensions as a float vector
func (img *Image) Size() vmath.Vec2 {
	return vmath.V2(float32(img.Width), float32(img.Height))
}
