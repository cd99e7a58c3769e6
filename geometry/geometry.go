// Package geometry provides the 2D primitives shared by the dataset model
// and the rectifier: integer pixel coordinates and the named-corner
// quadrilateral bounding a screen on a video frame.
//
// All coordinates are 0-based with the origin at the top-left corner of a
// frame; X increases rightward and Y increases downward.
package geometry

import "math"

// Coordinate is a point in the 2D projection space of a video frame.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo returns the Euclidean distance to another coordinate.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dx := float64(c.X - other.X)
	dy := float64(c.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Quadrilateral bounds a screen on a video frame. The corners are named,
// not cyclically ordered: each field keeps its role regardless of where
// the corners lie, and callers must not reorder them.
type Quadrilateral struct {
	TopLeft     Coordinate `json:"top_left"`
	TopRight    Coordinate `json:"top_right"`
	BottomLeft  Coordinate `json:"bottom_left"`
	BottomRight Coordinate `json:"bottom_right"`
}

// BeyondBounds reports whether the quadrilateral extends outside a
// width x height frame: a left corner with negative x, a right corner with
// x at or past width, a top corner with negative y, or a bottom corner
// with y at or past height.
func (q Quadrilateral) BeyondBounds(width, height int) bool {
	return q.TopLeft.X < 0 ||
		q.BottomLeft.X < 0 ||
		q.TopRight.X >= width ||
		q.BottomRight.X >= width ||
		q.TopLeft.Y < 0 ||
		q.TopRight.Y < 0 ||
		q.BottomLeft.Y >= height ||
		q.BottomRight.Y >= height
}
