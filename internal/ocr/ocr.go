//go:build ocr

// Package ocr recognizes text on rectified screen images, as a quick
// check that a screen region was unwarped the right way up.
//
// OCR support wraps the Tesseract engine via gosseract and is compiled in
// with the "ocr" build tag:
//
//	go build -tags ocr
//
// Tesseract and the language data for the requested language must be
// installed on the system.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Enabled reports whether OCR support was compiled in.
func Enabled() bool { return true }

// ScreenText runs Tesseract over a rectified screen image and returns the
// recognized text with surrounding whitespace trimmed. The language is a
// Tesseract language code such as "eng"; an empty string keeps the
// engine default.
func ScreenText(img image.Image, language string) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode screen image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return "", fmt.Errorf("failed to set OCR language: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set OCR image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}
