package dataset

import (
	"encoding/json"
	"strconv"

	"github.com/video699/research-dataset/annotation"
	"github.com/video699/research-dataset/geometry"
)

func stringAttr(el *annotation.Element, name string) (string, error) {
	v, ok := el.Attr(name)
	if !ok {
		return "", &StructuralError{Element: el.Name, Attr: name}
	}
	return v, nil
}

func intAttr(el *annotation.Element, name string) (int, error) {
	v, err := stringAttr(el, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &StructuralError{Element: el.Name, Attr: name, Err: err}
	}
	return n, nil
}

// vectorAttr decodes a descriptor attribute holding a JSON array of
// floats. The vector is an opaque payload; its length is not checked.
func vectorAttr(el *annotation.Element, name string) ([]float64, error) {
	v, err := stringAttr(el, name)
	if err != nil {
		return nil, err
	}
	var vec []float64
	if err := json.Unmarshal([]byte(v), &vec); err != nil {
		return nil, &StructuralError{Element: el.Name, Attr: name, Err: err}
	}
	return vec, nil
}

func coordinateAttr(el *annotation.Element, xName, yName string) (geometry.Coordinate, error) {
	x, err := intAttr(el, xName)
	if err != nil {
		return geometry.Coordinate{}, err
	}
	y, err := intAttr(el, yName)
	if err != nil {
		return geometry.Coordinate{}, err
	}
	return geometry.Coordinate{X: x, Y: y}, nil
}
