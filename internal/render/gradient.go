package render

import (
	"image"
	"image/color"
)

// Lerp interpolates between two colors per channel. Fractional channel
// values truncate toward zero, so t=0 yields exactly a and t=1 exactly b.
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: lerpChannel(a.A, b.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// VerticalGradient fills a widthPx x heightPx canvas with a three-stop
// vertical gradient. The middle stop sits at heightPx*midFrac; rows above it
// blend top to mid, rows below blend mid to bottom.
func VerticalGradient(widthPx, heightPx int, top, mid, bottom color.NRGBA, midFrac float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, widthPx, heightPx))
	midY := int(float64(heightPx) * midFrac)
	for y := 0; y < heightPx; y++ {
		var c color.NRGBA
		if y <= midY {
			t := 0.0
			if midY > 0 {
				t = float64(y) / float64(midY)
			}
			c = Lerp(top, mid, t)
		} else {
			t := float64(y-midY) / float64(heightPx-midY)
			c = Lerp(mid, bottom, t)
		}
		fillRow(img, y, c)
	}
	return img
}

// HorizontalGradient fills a widthPx x heightPx canvas with a two-stop
// horizontal gradient from left to right.
func HorizontalGradient(widthPx, heightPx int, left, right color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, widthPx, heightPx))
	for x := 0; x < widthPx; x++ {
		c := Lerp(left, right, float64(x)/float64(widthPx))
		for y := 0; y < heightPx; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func fillRow(img *image.NRGBA, y int, c color.NRGBA) {
	i := img.PixOffset(0, y)
	row := img.Pix[i : i+img.Bounds().Dx()*4]
	for x := 0; x < len(row); x += 4 {
		row[x+0] = c.R
		row[x+1] = c.G
		row[x+2] = c.B
		row[x+3] = c.A
	}
}
