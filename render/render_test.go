package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/aharris/pietgen/piet"
)

func TestEncodeProducesValidPNG(t *testing.T) {
	grid := piet.NewGrid(2, 2)
	grid.Set(0, 0, piet.LightRed)
	grid.Set(1, 0, piet.LightYellow)
	grid.Set(0, 1, piet.DarkBlue)
	grid.Set(1, 1, piet.Black)

	data, err := Encode(grid, 3)
	if err != nil {
		t.Fatalf("Encode: unexpected error: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: unexpected error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 6 || bounds.Dy() != 6 {
		t.Errorf("decoded image size = %dx%d, want 6x6", bounds.Dx(), bounds.Dy())
	}

	r, g, b, a := piet.LightRed.RGBA()
	gotR, gotG, gotB, gotA := img.At(0, 0).RGBA()
	if uint8(gotR>>8) != r || uint8(gotG>>8) != g || uint8(gotB>>8) != b || uint8(gotA>>8) != a {
		t.Errorf("pixel (0,0) = (%d,%d,%d,%d), want (%d,%d,%d,%d)", gotR>>8, gotG>>8, gotB>>8, gotA>>8, r, g, b, a)
	}
}

func TestEncodeRejectsUnfilledGrid(t *testing.T) {
	grid := piet.NewGrid(2, 2)
	grid.Set(0, 0, piet.LightRed)

	if _, err := Encode(grid, 2); err == nil {
		t.Error("Encode: want error for unfilled grid, got nil")
	}
}

func TestEncodeRejectsBadCodelSize(t *testing.T) {
	grid := piet.NewGrid(1, 1)
	grid.Set(0, 0, piet.LightRed)

	if _, err := Encode(grid, 0); err == nil {
		t.Error("Encode: want error for codel size 0, got nil")
	}
}
