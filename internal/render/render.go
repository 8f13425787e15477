// Package render holds the drawing primitives shared by the asset
// generators: the brand palette, gradients, glows, masks, text layout and
// PNG output. Everything operates on straight-alpha NRGBA images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
)

// NewCanvas returns a fully transparent canvas of the given size.
func NewCanvas(widthPx, heightPx int) *image.NRGBA {
	return imaging.New(widthPx, heightPx, color.NRGBA{})
}

// Flatten returns a copy of img with every pixel forced fully opaque. The
// PNG encoder then emits plain RGB for it, with no alpha channel.
func Flatten(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}

// SavePNG writes img to path with maximum compression.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
