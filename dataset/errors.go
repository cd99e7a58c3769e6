package dataset

import "fmt"

// StructuralError reports a missing or malformed required attribute on an
// element of the annotation tree. Graph construction aborts on the first
// one and no partial graph is returned.
type StructuralError struct {
	Element string // name of the offending element, e.g. "video"
	Attr    string // name of the offending attribute
	Err     error  // underlying parse failure, nil when the attribute is absent
}

func (e *StructuralError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("element <%s> is missing required attribute %q", e.Element, e.Attr)
	}
	return fmt.Sprintf("element <%s> has malformed attribute %q: %v", e.Element, e.Attr, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// ReferentialError reports a keyref whose key matches no page within its
// owning video. Keys are scoped per video, so a key defined by another
// video does not satisfy the reference.
type ReferentialError struct {
	Key   string // the unresolved page key
	Video string // directory name of the owning video
}

func (e *ReferentialError) Error() string {
	return fmt.Sprintf("keyref %q does not match any page in video %s", e.Key, e.Video)
}
