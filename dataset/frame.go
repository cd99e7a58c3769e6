package dataset

import (
	"path/filepath"

	"github.com/video699/research-dataset/annotation"
)

// Frame is a single annotated video frame. The Descriptor is an opaque
// feature vector extracted from the frame image.
type Frame struct {
	Video      *Video
	FileName   string
	Number     int
	Descriptor []float64
	Screens    []*Screen
}

func newFrame(v *Video, el *annotation.Element) (*Frame, error) {
	f := &Frame{Video: v}

	name, err := stringAttr(el, "filename")
	if err != nil {
		return nil, err
	}
	f.FileName = filepath.Join(v.DirName, name)
	if f.Number, err = intAttr(el, "number"); err != nil {
		return nil, err
	}
	if f.Descriptor, err = vectorAttr(el, "vgg256"); err != nil {
		return nil, err
	}

	for _, screenEl := range el.FindAll("screen") {
		screen, err := newScreen(f, screenEl)
		if err != nil {
			return nil, err
		}
		f.Screens = append(f.Screens, screen)
	}
	return f, nil
}
