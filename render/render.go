// Package render encodes a filled Piet grid as a PNG image, one block of
// codelSize x codelSize pixels per cell.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/aharris/pietgen/piet"
)

// Encode rasterizes grid to PNG bytes, rendering each codel as a
// codelSize x codelSize square of solid color. The standard library's
// image/png is used directly: a generator's only encoding job here is a
// flat, uncompressed-in-spirit grid of solid blocks, which every
// ecosystem PNG library ultimately reduces to image/png calls anyway, so
// reaching past the standard library would buy nothing but an extra
// dependency (see DESIGN.md).
func Encode(grid *piet.Grid, codelSize int) ([]byte, error) {
	if codelSize < 1 {
		return nil, fmt.Errorf("render: codel size %d must be at least 1", codelSize)
	}
	if !grid.IsFilled() {
		return nil, fmt.Errorf("render: grid has unpainted cells")
	}

	width := grid.Width() * codelSize
	height := grid.Height() * codelSize
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for gy := 0; gy < grid.Height(); gy++ {
		for gx := 0; gx < grid.Width(); gx++ {
			r, g, b, a := grid.At(gx, gy).Color.RGBA()
			c := color.RGBA{R: r, G: g, B: b, A: a}

			for py := 0; py < codelSize; py++ {
				for px := 0; px < codelSize; px++ {
					img.Set(gx*codelSize+px, gy*codelSize+py, c)
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("render: encode png: %w", err)
	}
	return buf.Bytes(), nil
}
