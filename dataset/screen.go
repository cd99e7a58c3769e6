package dataset

import (
	"github.com/video699/research-dataset/annotation"
	"github.com/video699/research-dataset/geometry"
)

// Condition classifies how a screen appears on its frame.
type Condition string

// Known screen conditions. The annotation schema may add further values;
// unknown conditions are carried through verbatim.
const (
	ConditionNormal   Condition = "normal"
	ConditionWindowed Condition = "windowed"
	ConditionObstacle Condition = "obstacle"
)

// Screen is a detected projection screen region on a video frame. Bounds,
// BeyondBounds and MatchingPages are fixed at construction and never
// recomputed; treat MatchingPages as read-only.
type Screen struct {
	Frame      *Frame
	Video      *Video
	Condition  Condition
	Descriptor []float64
	Bounds     geometry.Quadrilateral

	// BeyondBounds records whether any corner of Bounds lies outside the
	// video's pixel dimensions.
	BeyondBounds bool

	KeyRefs []*KeyRef

	// MatchingPages is the set of document pages the screen displays: the
	// pages of fully matching keyrefs, or of all keyrefs when no keyref
	// matches in full, or empty when the screen has no keyrefs.
	MatchingPages map[*Page]bool
}

func newScreen(f *Frame, el *annotation.Element) (*Screen, error) {
	s := &Screen{Frame: f, Video: f.Video}

	cond, err := stringAttr(el, "condition")
	if err != nil {
		return nil, err
	}
	s.Condition = Condition(cond)
	if s.Descriptor, err = vectorAttr(el, "vgg256"); err != nil {
		return nil, err
	}

	if s.Bounds.TopLeft, err = coordinateAttr(el, "x0", "y0"); err != nil {
		return nil, err
	}
	if s.Bounds.TopRight, err = coordinateAttr(el, "x1", "y1"); err != nil {
		return nil, err
	}
	if s.Bounds.BottomLeft, err = coordinateAttr(el, "x2", "y2"); err != nil {
		return nil, err
	}
	if s.Bounds.BottomRight, err = coordinateAttr(el, "x3", "y3"); err != nil {
		return nil, err
	}
	s.BeyondBounds = s.Bounds.BeyondBounds(f.Video.Width, f.Video.Height)

	for _, refEl := range el.FindAll("keyref") {
		ref, err := newKeyRef(s, refEl)
		if err != nil {
			return nil, err
		}
		s.KeyRefs = append(s.KeyRefs, ref)
	}

	// Fully matching pages take precedence; when there is none, any
	// matching page is accepted.
	s.MatchingPages = make(map[*Page]bool)
	for _, ref := range s.KeyRefs {
		if ref.Similarity == SimilarityFull {
			s.MatchingPages[ref.Page] = true
		}
	}
	if len(s.MatchingPages) == 0 {
		for _, ref := range s.KeyRefs {
			s.MatchingPages[ref.Page] = true
		}
	}
	return s, nil
}

// IsOutlier reports whether the screen should be excluded from
// evaluation. A screen is an outlier when it displays windowed content,
// is obscured by an obstacle, extends beyond the bounds of its video,
// has no fully matching document page, or has no matching document page
// at all. Each condition can be disabled with a Keep option; with every
// condition disabled no screen is an outlier.
func (s *Screen) IsOutlier(opts ...OutlierOption) bool {
	checks := defaultOutlierChecks()
	for _, opt := range opts {
		opt(&checks)
	}
	if checks.windowed && s.Condition == ConditionWindowed {
		return true
	}
	if checks.obstacle && s.Condition == ConditionObstacle {
		return true
	}
	if checks.beyondBounds && s.BeyondBounds {
		return true
	}
	if checks.incremental && len(s.KeyRefs) > 0 && !s.hasFullMatch() {
		return true
	}
	if checks.noMatch && len(s.KeyRefs) == 0 {
		return true
	}
	return false
}

func (s *Screen) hasFullMatch() bool {
	for _, ref := range s.KeyRefs {
		if ref.Similarity == SimilarityFull {
			return true
		}
	}
	return false
}
