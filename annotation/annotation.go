// Package annotation decodes the XML annotation document describing a
// dataset into a generic element tree. The tree is the hand-off point to
// the dataset package, which parses attribute values and builds the
// entity graph; this package checks well-formedness only, not conformance
// to the dataset schema.
package annotation

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// Element is a single node of the annotation tree.
type Element struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Element
}

// Attr returns the named attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// FindAll returns every descendant element with the given name, in
// document order. The element itself is never included.
func (e *Element) FindAll(name string) []*Element {
	var found []*Element
	for _, child := range e.Children {
		if child.Name == name {
			found = append(found, child)
		}
		found = append(found, child.FindAll(name)...)
	}
	return found
}

// Parse decodes an XML document into an element tree rooted at the
// document element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed annotation document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				el.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, errors.New("empty annotation document")
	}
	return root, nil
}

// ParseFile decodes the XML document at the given path.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation document: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
