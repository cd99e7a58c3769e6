// Package rectify produces an upright rectangular image from an arbitrary
// quadrilateral region of a video frame by perspective correction.
//
// The output dimensions derive from the quadrilateral's edge lengths: the
// longer of the two horizontal edges becomes the width and the longer of
// the two vertical edges becomes the height, both truncated to integers.
// The quadrilateral's corners keep their named roles, so the top-left
// corner of the region always maps to the top-left corner of the output.
package rectify

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/video699/research-dataset/geometry"
)

// GeometryError reports a quadrilateral that cannot be rectified, either
// because its edges collapse to a zero-area output or because three of
// its corners are collinear, which makes the perspective transform
// singular.
type GeometryError struct {
	Quadrilateral geometry.Quadrilateral
	Reason        string
	Err           error
}

func (e *GeometryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot rectify quadrilateral %+v: %s: %v", e.Quadrilateral, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot rectify quadrilateral %+v: %s", e.Quadrilateral, e.Reason)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// Rectify crops the quadrilateral region out of the source image and
// unwarps it into an upright rectangle. Source pixels are read with
// bilinear interpolation; output pixels whose preimage falls outside the
// source image are transparent black.
//
// The call is a pure function of its inputs and does not modify src, so
// many screens of the same frame may be rectified concurrently.
func Rectify(src image.Image, quad geometry.Quadrilateral) (*image.NRGBA, error) {
	widthA := quad.BottomLeft.DistanceTo(quad.BottomRight)
	widthB := quad.TopLeft.DistanceTo(quad.TopRight)
	heightA := quad.TopRight.DistanceTo(quad.BottomRight)
	heightB := quad.TopLeft.DistanceTo(quad.BottomLeft)

	width := int(math.Max(widthA, widthB))
	height := int(math.Max(heightA, heightB))
	if width <= 0 || height <= 0 {
		return nil, &GeometryError{Quadrilateral: quad, Reason: "output region has zero area"}
	}

	srcCorners := [4]point{
		pointOf(quad.TopLeft),
		pointOf(quad.TopRight),
		pointOf(quad.BottomRight),
		pointOf(quad.BottomLeft),
	}
	dstCorners := [4]point{
		{0, 0},
		{float64(width - 1), 0},
		{float64(width - 1), float64(height - 1)},
		{0, float64(height - 1)},
	}

	forward, err := perspectiveTransform(srcCorners, dstCorners)
	if err != nil {
		return nil, &GeometryError{Quadrilateral: quad, Reason: "perspective transform is singular", Err: err}
	}
	inverse, err := forward.inverse()
	if err != nil {
		return nil, &GeometryError{Quadrilateral: quad, Reason: "perspective transform is not invertible", Err: err}
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for v := 0; v < height; v++ {
		for u := 0; u < width; u++ {
			x, y := inverse.apply(float64(u), float64(v))
			out.SetNRGBA(u, v, sampleBilinear(src, x, y))
		}
	}
	return out, nil
}

// sampleBilinear reads the source at a fractional position, blending the
// four surrounding pixels. Neighbors outside the source contribute
// transparent black.
func sampleBilinear(src image.Image, x, y float64) color.NRGBA {
	bounds := src.Bounds()
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	var r, g, b, a float64
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			wx := 1 - fx
			if dx == 1 {
				wx = fx
			}
			wy := 1 - fy
			if dy == 1 {
				wy = fy
			}
			w := wx * wy
			if w == 0 {
				continue
			}
			p := image.Point{X: x0 + dx, Y: y0 + dy}
			if !p.In(bounds) {
				continue
			}
			pr, pg, pb, pa := src.At(p.X, p.Y).RGBA()
			r += w * float64(pr>>8)
			g += w * float64(pg>>8)
			b += w * float64(pb>>8)
			a += w * float64(pa>>8)
		}
	}
	return color.NRGBA{
		R: uint8(r + 0.5),
		G: uint8(g + 0.5),
		B: uint8(b + 0.5),
		A: uint8(a + 0.5),
	}
}
