package rectify

import (
	"gonum.org/v1/gonum/mat"

	"github.com/video699/research-dataset/geometry"
)

type point struct {
	x, y float64
}

func pointOf(c geometry.Coordinate) point {
	return point{x: float64(c.X), y: float64(c.Y)}
}

// homography is a 3x3 projective transform in row-major order.
type homography [9]float64

// apply maps a point through the transform.
func (h homography) apply(x, y float64) (float64, float64) {
	d := h[6]*x + h[7]*y + h[8]
	return (h[0]*x + h[1]*y + h[2]) / d, (h[3]*x + h[4]*y + h[5]) / d
}

// inverse returns the transform mapping the opposite way.
func (h homography) inverse() (homography, error) {
	m := mat.NewDense(3, 3, h[:])
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return homography{}, err
	}
	var out homography
	copy(out[:], inv.RawMatrix().Data)
	return out, nil
}

// perspectiveTransform solves for the projective transform mapping each
// from-point onto the corresponding to-point. Four correspondences
// determine the eight degrees of freedom exactly, so the 8x8 system has a
// unique solution unless three of the from-points are collinear, in which
// case the solve fails.
func perspectiveTransform(from, to [4]point) (homography, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)
	for i := range from {
		x, y := from[i].x, from[i].y
		u, v := to[i].x, to[i].y
		a.SetRow(2*i, []float64{x, y, 1, 0, 0, 0, -x * u, -y * u})
		a.SetRow(2*i+1, []float64{0, 0, 0, x, y, 1, -x * v, -y * v})
		b.SetVec(2*i, u)
		b.SetVec(2*i+1, v)
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		return homography{}, err
	}

	var h homography
	copy(h[:8], coef.RawVector().Data)
	h[8] = 1
	return h, nil
}
