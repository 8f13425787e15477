package render

import (
	"image"
	"image/color"
	"math"
)

// RadialGlow renders a soft circular highlight sprite of size
// (2*radiusPx+1) squared, centered in its own bounds. Alpha ramps
// quadratically from maxAlpha at the center down to zero at the rim.
func RadialGlow(radiusPx int, c color.NRGBA, maxAlpha uint8) *image.NRGBA {
	size := radiusPx*2 + 1
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if radiusPx <= 0 {
		return img
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x-radiusPx), float64(y-radiusPx))
			ring := math.Ceil(d)
			if ring < 1 {
				ring = 1
			}
			if ring > float64(radiusPx) {
				continue
			}
			t := 1 - ring/float64(radiusPx)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(t * t * float64(maxAlpha))})
		}
	}
	return img
}
