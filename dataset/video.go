package dataset

import (
	"path/filepath"

	"github.com/video699/research-dataset/annotation"
)

// Video is a single recorded video. Its flattened slices collect the
// entities of every document and frame it owns, in construction order.
type Video struct {
	Dataset    *Dataset
	DirName    string
	FPS        int
	FrameCount int
	Width      int // frame width in pixels
	Height     int // frame height in pixels
	URI        string

	Documents []*Document
	Pages     []*Page
	Frames    []*Frame
	Screens   []*Screen
	KeyRefs   []*KeyRef

	pageByKey map[string]*Page
}

func newVideo(d *Dataset, el *annotation.Element) (*Video, error) {
	v := &Video{Dataset: d}

	dir, err := stringAttr(el, "dirname")
	if err != nil {
		return nil, err
	}
	v.DirName = filepath.Join(d.DirName, dir)
	if v.FPS, err = intAttr(el, "fps"); err != nil {
		return nil, err
	}
	if v.FrameCount, err = intAttr(el, "frames"); err != nil {
		return nil, err
	}
	if v.Width, err = intAttr(el, "width"); err != nil {
		return nil, err
	}
	if v.Height, err = intAttr(el, "height"); err != nil {
		return nil, err
	}
	if v.URI, err = stringAttr(el, "uri"); err != nil {
		return nil, err
	}

	// Every page is indexed before the first frame is built, so a keyref
	// can resolve a page that appears later in the document set than the
	// keyref itself.
	for _, docEl := range el.FindAll("document") {
		doc, err := newDocument(v, docEl)
		if err != nil {
			return nil, err
		}
		v.Documents = append(v.Documents, doc)
	}
	v.pageByKey = make(map[string]*Page)
	for _, doc := range v.Documents {
		v.Pages = append(v.Pages, doc.Pages...)
		for _, page := range doc.Pages {
			v.pageByKey[page.Key] = page
		}
	}

	for _, frameEl := range el.FindAll("frame") {
		frame, err := newFrame(v, frameEl)
		if err != nil {
			return nil, err
		}
		v.Frames = append(v.Frames, frame)
		v.Screens = append(v.Screens, frame.Screens...)
		for _, screen := range frame.Screens {
			v.KeyRefs = append(v.KeyRefs, screen.KeyRefs...)
		}
	}
	return v, nil
}

// PageByKey returns the page with the given key within the video. Keys
// are unique per video, not globally.
func (v *Video) PageByKey(key string) (*Page, bool) {
	p, ok := v.pageByKey[key]
	return p, ok
}
