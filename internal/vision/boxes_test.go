package vision

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/cardkeep/cardkeep/internal/ocr"
)

func writeTestImage(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	path := filepath.Join(t.TempDir(), "card.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return path
}

func TestAnnotateImage(t *testing.T) {
	path := writeTestImage(t, 100, 60)

	out, err := AnnotateImage(path, []ocr.Line{
		{Text: "John Smith", Box: ocr.Box{Left: 10, Top: 10, Width: 50, Height: 20}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 60 {
		t.Fatalf("bounds changed: %v", img.Bounds())
	}

	// top-left corner of the box must be painted
	r, g, b, _ := img.At(10, 10).RGBA()
	if r != 0 || g != 0xffff || b != 0 {
		t.Errorf("pixel at box corner = (%d,%d,%d), want green", r, g, b)
	}
	// a pixel well inside the box stays untouched
	r, g, b, _ = img.At(35, 20).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("interior pixel = (%d,%d,%d), want white", r, g, b)
	}
}

func TestAnnotateImage_BoxOutsideBounds(t *testing.T) {
	path := writeTestImage(t, 40, 40)

	if _, err := AnnotateImage(path, []ocr.Line{
		{Box: ocr.Box{Left: 200, Top: 200, Width: 50, Height: 50}},
	}); err != nil {
		t.Fatalf("out-of-bounds box must be ignored, got error: %v", err)
	}
}

func TestAnnotateImage_MissingFile(t *testing.T) {
	if _, err := AnnotateImage("/does/not/exist.png", nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}
