//go:build !ocr

package ocr

import (
	"errors"
	"image"
	"testing"
)

func TestScreenTextNotEnabled(t *testing.T) {
	if Enabled() {
		t.Fatal("stub build must report OCR as disabled")
	}

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	_, err := ScreenText(img, "eng")
	if !errors.Is(err, ErrNotEnabled) {
		t.Errorf("ScreenText error: got %v, want ErrNotEnabled", err)
	}
}
