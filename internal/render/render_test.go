package render

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestFlatten(t *testing.T) {
	img := NewCanvas(8, 8)
	img.SetNRGBA(3, 3, color.NRGBA{R: 50, G: 60, B: 70, A: 120})

	out := Flatten(img)

	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0xff {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, out.Pix[i])
		}
	}
	if got := out.NRGBAAt(3, 3); got.R != 50 || got.G != 60 || got.B != 70 {
		t.Errorf("color channels changed: %v", got)
	}
	// Input untouched.
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("Flatten mutated its input")
	}
}

func TestSavePNGWritesOpaqueRGB(t *testing.T) {
	img := Flatten(NewCanvas(16, 16))
	path := filepath.Join(t.TempDir(), "out.png")

	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	// PNG signature, then IHDR with the color type at offset 25.
	// Fully opaque input encodes as truecolor without alpha (type 2).
	if len(data) < 26 {
		t.Fatalf("file too short: %d bytes", len(data))
	}
	if got := data[25]; got != 2 {
		t.Errorf("IHDR color type = %d, want 2 (RGB, no alpha)", got)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Width != 16 || cfg.Height != 16 {
		t.Errorf("decoded size = %dx%d, want 16x16", cfg.Width, cfg.Height)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	img := NewCanvas(2, 2)
	err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img)
	if err == nil {
		t.Fatal("expected error for nonexistent directory")
	}
}
