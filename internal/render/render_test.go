package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/video699/research-dataset/dataset"
	"github.com/video699/research-dataset/geometry"
)

func TestConditionColorDistinct(t *testing.T) {
	conditions := []dataset.Condition{
		dataset.ConditionNormal,
		dataset.ConditionWindowed,
		dataset.ConditionObstacle,
		dataset.Condition("mirrored"),
	}
	seen := make(map[color.NRGBA]dataset.Condition)
	for _, c := range conditions {
		col := ConditionColor(c)
		if prev, ok := seen[col]; ok {
			t.Errorf("conditions %q and %q share color %v", prev, c, col)
		}
		seen[col] = c
	}
}

func TestAnnotateFrame(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 100, 80))
	screen := &dataset.Screen{
		Condition: dataset.ConditionNormal,
		Bounds: geometry.Quadrilateral{
			TopLeft:     geometry.Coordinate{X: 10, Y: 10},
			TopRight:    geometry.Coordinate{X: 60, Y: 10},
			BottomLeft:  geometry.Coordinate{X: 10, Y: 40},
			BottomRight: geometry.Coordinate{X: 60, Y: 40},
		},
	}

	out := AnnotateFrame(frame, []*dataset.Screen{screen})

	if got, want := out.Bounds(), frame.Bounds(); got != want {
		t.Fatalf("bounds: got %v, want %v", got, want)
	}

	want := ConditionColor(dataset.ConditionNormal)
	// Corner and edge midpoints lie on the outline.
	points := []image.Point{{10, 10}, {60, 10}, {35, 10}, {10, 25}, {60, 40}}
	for _, p := range points {
		got := out.RGBAAt(p.X, p.Y)
		if got.R != want.R || got.G != want.G || got.B != want.B {
			t.Errorf("pixel %v: got %v, want outline color %v", p, got, want)
		}
	}

	// A pixel well inside the quadrilateral keeps the frame content.
	inside := out.RGBAAt(35, 25)
	if inside.R == want.R && inside.G == want.G && inside.B == want.B {
		t.Error("interior pixel unexpectedly painted with the outline color")
	}
}

func TestAnnotateFrameClipsOutOfBoundsScreens(t *testing.T) {
	frame := image.NewNRGBA(image.Rect(0, 0, 50, 50))
	screen := &dataset.Screen{
		Condition: dataset.ConditionNormal,
		Bounds: geometry.Quadrilateral{
			TopLeft:     geometry.Coordinate{X: -20, Y: -20},
			TopRight:    geometry.Coordinate{X: 100, Y: -20},
			BottomLeft:  geometry.Coordinate{X: -20, Y: 100},
			BottomRight: geometry.Coordinate{X: 100, Y: 100},
		},
	}

	// Must not panic on out-of-bounds corners.
	out := AnnotateFrame(frame, []*dataset.Screen{screen})
	if out.Bounds() != frame.Bounds() {
		t.Errorf("bounds changed: %v", out.Bounds())
	}
}

func TestPagePreviewSize(t *testing.T) {
	page := image.NewNRGBA(image.Rect(0, 0, 300, 400))
	preview := PagePreview(page)
	if got := preview.Bounds(); got.Dx() != PreviewWidth || got.Dy() != PreviewHeight {
		t.Errorf("preview size: got %dx%d, want %dx%d", got.Dx(), got.Dy(), PreviewWidth, PreviewHeight)
	}
}
