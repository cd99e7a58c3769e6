package dataset

import (
	"strings"

	"github.com/video699/research-dataset/annotation"
)

// Similarity grades how closely a page matches the content of a screen.
type Similarity string

// Known similarity grades.
const (
	SimilarityFull    Similarity = "full"
	SimilarityPartial Similarity = "partial"
)

// KeyRef is an is-displayed-on relation between a document page and a
// screen on a video frame. The Page reference is non-owning: many keyrefs
// may point at the same page.
type KeyRef struct {
	Screen     *Screen
	Video      *Video
	Page       *Page
	Similarity Similarity
}

func newKeyRef(s *Screen, el *annotation.Element) (*KeyRef, error) {
	ref := &KeyRef{Screen: s, Video: s.Video}

	sim, err := stringAttr(el, "similarity")
	if err != nil {
		return nil, err
	}
	ref.Similarity = Similarity(sim)

	key := strings.TrimSpace(el.Text)
	page, ok := s.Video.PageByKey(key)
	if !ok {
		return nil, &ReferentialError{Key: key, Video: s.Video.DirName}
	}
	ref.Page = page
	return ref, nil
}
