package dataset

import (
	"path/filepath"

	"github.com/video699/research-dataset/annotation"
)

// Document is a single document presented in a video.
type Document struct {
	Video    *Video
	FileName string
	Pages    []*Page
}

func newDocument(v *Video, el *annotation.Element) (*Document, error) {
	doc := &Document{Video: v}
	name, err := stringAttr(el, "filename")
	if err != nil {
		return nil, err
	}
	doc.FileName = filepath.Join(v.DirName, name)

	for _, pageEl := range el.FindAll("page") {
		page, err := newPage(doc, pageEl)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

// Page is a single page of a document. Its Key identifies it within the
// owning video only; two videos may reuse the same key. The Descriptor is
// an opaque feature vector extracted from the page image.
type Page struct {
	Document   *Document
	Video      *Video
	FileName   string
	Key        string
	Number     int
	Descriptor []float64
}

func newPage(doc *Document, el *annotation.Element) (*Page, error) {
	p := &Page{Document: doc, Video: doc.Video}

	name, err := stringAttr(el, "filename")
	if err != nil {
		return nil, err
	}
	// Page images live under the video directory, not next to the document.
	p.FileName = filepath.Join(doc.Video.DirName, name)
	if p.Key, err = stringAttr(el, "key"); err != nil {
		return nil, err
	}
	if p.Number, err = intAttr(el, "number"); err != nil {
		return nil, err
	}
	if p.Descriptor, err = vectorAttr(el, "vgg256"); err != nil {
		return nil, err
	}
	return p, nil
}
