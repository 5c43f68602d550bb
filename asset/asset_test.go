package asset

import (
	"testing"
)

func TestAssetsAddGet(t *testing.T) {
	images := NewAssets[Image]()

	h := images.Add(NewUITexture(64, 32))
	if h == NoHandle {
		t.Fatalf("Add returned the zero handle")
	}

	img, ok := images.Get(h)
	if !ok {
		t.Fatalf("expected asset for handle %d", h)
	}
	if img.Width != 64 || img.Height != 32 {
		t.Errorf("expected 64x32, got %dx%d", img.Width, img.Height)
	}
}

func TestAssetsGetMissing(t *testing.T) {
	images := NewAssets[Image]()
	if _, ok := images.Get(42); ok {
		t.Errorf("expected no asset for unknown handle")
	}
	if _, ok := images.Get(NoHandle); ok {
		t.Errorf("expected no asset for the zero handle")
	}
}

func TestAssetsRemove(t *testing.T) {
	images := NewAssets[Image]()
	h := images.Add(NewUITexture(8, 8))
	images.Remove(h)
	if _, ok := images.Get(h); ok {
		t.Errorf("expected asset removed")
	}
	if images.Len() != 0 {
		t.Errorf("expected empty store, got %d", images.Len())
	}
}

func TestNewUITextureTransparent(t *testing.T) {
	img := NewUITexture(4, 2)
	if len(img.Pixels) != 4*2*4 {
		t.Fatalf("expected %d pixel bytes, got %d", 4*2*4, len(img.Pixels))
	}
	for i, b := range img.Pixels {
		if b != 0 {
			t.Fatalf("expected fully transparent image, byte %d is %d", i, b)
		}
	}
}

func TestMeshTriangleAccess(t *testing.T) {
	quad := NewQuad()
	if got := quad.TriangleCount(); got != 2 {
		t.Fatalf("expected 2 triangles, got %d", got)
	}

	a, b, c := quad.TriangleVertexIndices(1)
	if a != 0 || b != 3 || c != 2 {
		t.Errorf("expected indices (0,3,2), got (%d,%d,%d)", a, b, c)
	}
}

func TestMeshNonIndexed(t *testing.T) {
	m := Mesh{
		Positions: NewQuad().Positions[:3],
	}
	if m.Indices.IsIndexed() {
		t.Fatalf("expected non-indexed mesh")
	}
	if got := m.TriangleCount(); got != 1 {
		t.Fatalf("expected 1 triangle, got %d", got)
	}
	a, b, c := m.TriangleVertexIndices(0)
	if a != 0 || b != 1 || c != 2 {
		t.Errorf("expected indices (0,1,2), got (%d,%d,%d)", a, b, c)
	}
}
