//go:build !ocr

// Package ocr recognizes text on rectified screen images.
//
// This is the stub used when the "ocr" build tag is not set; ScreenText
// always returns ErrNotEnabled. Rebuild with -tags ocr (Tesseract must be
// installed) to enable recognition.
package ocr

import (
	"errors"
	"image"
)

// ErrNotEnabled is returned when OCR is requested but support was not
// compiled in.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Enabled reports whether OCR support was compiled in.
func Enabled() bool { return false }

// ScreenText returns ErrNotEnabled.
func ScreenText(img image.Image, language string) (string, error) {
	return "", ErrNotEnabled
}
