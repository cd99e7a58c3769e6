// Package render draws review artifacts: frames annotated with screen
// outlines and fixed-size document page previews.
package render

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/video699/research-dataset/dataset"
	"github.com/video699/research-dataset/geometry"
)

// Document page previews use a PAL-sized window.
const (
	PreviewWidth  = 720
	PreviewHeight = 576
)

// ConditionColor returns the outline color used for a screen condition.
// The known conditions get hues spread around the color circle so they
// stay visually distinct on any frame content.
func ConditionColor(c dataset.Condition) color.NRGBA {
	var hue float64
	switch c {
	case dataset.ConditionNormal:
		hue = 120 // green
	case dataset.ConditionWindowed:
		hue = 50 // yellow
	case dataset.ConditionObstacle:
		hue = 0 // red
	default:
		hue = 280 // purple for conditions the schema adds later
	}
	r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// AnnotateFrame returns a copy of the frame image with every screen's
// bounding quadrilateral outlined in its condition color.
func AnnotateFrame(frame image.Image, screens []*dataset.Screen) *image.RGBA {
	overlay := image.NewNRGBA(frame.Bounds())
	for _, s := range screens {
		c := ConditionColor(s.Condition)
		q := s.Bounds
		drawLine(overlay, q.TopLeft, q.TopRight, c)
		drawLine(overlay, q.TopRight, q.BottomRight, c)
		drawLine(overlay, q.BottomRight, q.BottomLeft, c)
		drawLine(overlay, q.BottomLeft, q.TopLeft, c)
	}
	return blend.Normal(frame, overlay)
}

// PagePreview scales a document page image to the fixed preview size.
func PagePreview(page image.Image) *image.NRGBA {
	return imaging.Resize(page, PreviewWidth, PreviewHeight, imaging.CatmullRom)
}

// drawLine plots a one-pixel segment between two coordinates with
// Bresenham's algorithm. Pixels outside the image are dropped, since a
// screen may extend beyond the frame.
func drawLine(img *image.NRGBA, from, to geometry.Coordinate, c color.NRGBA) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx := 1
	if from.X > to.X {
		sx = -1
	}
	sy := 1
	if from.Y > to.Y {
		sy = -1
	}

	x, y := from.X, from.Y
	err := dx + dy
	for {
		if (image.Point{X: x, Y: y}).In(img.Bounds()) {
			img.SetNRGBA(x, y, c)
		}
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
