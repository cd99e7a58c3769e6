// Package dataset builds an object model of a video-to-document
// correspondence dataset from its annotation tree.
//
// The model is an entity graph of five linked kinds: each Video owns
// Documents split into Pages and Frames carrying detected Screens, and
// each Screen carries KeyRefs that resolve to the Pages it displays.
// The whole graph is built in a single pass over the annotation tree and
// is immutable afterwards; concurrent read-only access needs no
// synchronization.
//
// Construction fails with a *StructuralError when a required attribute is
// missing or does not parse, and with a *ReferentialError when a keyref
// names a page key that does not exist within its video. No partial graph
// is ever returned.
package dataset

import (
	"path/filepath"

	"github.com/video699/research-dataset/annotation"
)

// AnnotationFilename is the name of the annotation document inside a
// dataset directory.
const AnnotationFilename = "dataset.xml"

// Dataset is the root of the entity graph. The flattened slices collect
// the entities of every video in construction order.
type Dataset struct {
	DirName   string
	Videos    []*Video
	Documents []*Document
	Pages     []*Page
	Frames    []*Frame
	Screens   []*Screen
	KeyRefs   []*KeyRef
}

// New builds the entity graph from a parsed annotation tree rooted at a
// dataset element. The dirname is the directory the dataset lives in;
// entity file names are resolved against it but no file is opened.
func New(dirname string, root *annotation.Element) (*Dataset, error) {
	d := &Dataset{DirName: dirname}
	for _, el := range root.FindAll("video") {
		video, err := newVideo(d, el)
		if err != nil {
			return nil, err
		}
		d.Videos = append(d.Videos, video)
		d.Documents = append(d.Documents, video.Documents...)
		d.Pages = append(d.Pages, video.Pages...)
		d.Frames = append(d.Frames, video.Frames...)
		d.Screens = append(d.Screens, video.Screens...)
		d.KeyRefs = append(d.KeyRefs, video.KeyRefs...)
	}
	return d, nil
}

// Load parses the annotation document inside dirname and builds the
// entity graph from it.
func Load(dirname string) (*Dataset, error) {
	root, err := annotation.ParseFile(filepath.Join(dirname, AnnotationFilename))
	if err != nil {
		return nil, err
	}
	return New(dirname, root)
}
