// Package vision renders detection overlays for the review UI. Geometry is
// display-only; nothing here feeds back into classification.
package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/cardkeep/cardkeep/internal/ocr"
)

var boxColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

const boxThickness = 2

// AnnotateImage decodes the card image at path and draws a rectangle around
// every detected text line, returning the annotated image as PNG bytes.
func AnnotateImage(path string, lines []ocr.Line) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)

	for _, ln := range lines {
		drawRect(dst, ln.Box)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawRect(img *image.RGBA, b ocr.Box) {
	r := image.Rect(b.Left, b.Top, b.Left+b.Width, b.Top+b.Height).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < boxThickness; t++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			setIfInside(img, x, r.Min.Y+t)
			setIfInside(img, x, r.Max.Y-1-t)
		}
		for y := r.Min.Y; y < r.Max.Y; y++ {
			setIfInside(img, r.Min.X+t, y)
			setIfInside(img, r.Max.X-1-t, y)
		}
	}
}

func setIfInside(img *image.RGBA, x, y int) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.Set(x, y, boxColor)
	}
}
