package render

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// RoundedRectMask returns an alpha mask covering a widthPx x heightPx
// rounded rectangle with the given corner radius. Edges are anti-aliased.
func RoundedRectMask(widthPx, heightPx int, cornerRadius float64) *image.Alpha {
	dc := gg.NewContext(widthPx, heightPx)
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(0, 0, float64(widthPx), float64(heightPx), cornerRadius)
	dc.Fill()
	return dc.AsMask()
}

// ApplyMask returns a copy of img whose alpha channel is replaced by mask.
// Any transparency already present in img is discarded.
func ApplyMask(img image.Image, mask *image.Alpha) *image.NRGBA {
	out := imaging.Clone(img)
	b := out.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := out.PixOffset(x, y)
			out.Pix[i+3] = mask.AlphaAt(x, y).A
		}
	}
	return out
}
