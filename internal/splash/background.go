package splash

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/glebschkv/phone-pet-paradise/internal/render"
	"github.com/glebschkv/phone-pet-paradise/internal/render/layout"
)

// drawBackground fills a fresh canvas with the three-stop vertical brand
// gradient, darkest at the edges with the deep purple peak at 40% height.
func drawBackground() *image.NRGBA {
	return render.VerticalGradient(Width, Height, render.BGTop, render.BGMid, render.BGBottom, gradientMidFrac)
}

// drawGlow composites the big ambient glow behind the content area. The
// blur pass removes the ring banding left by the sprite's alpha
// quantization.
func drawGlow(canvas *image.NRGBA) *image.NRGBA {
	sprite := render.RadialGlow(glowRadius, render.Purple, glowMaxAlpha)

	layer := render.NewCanvas(Width, Height)
	cx := Width / 2
	cy := layout.Frac(Height, glowCenterYFrac)
	layer = imaging.Paste(layer, sprite, image.Pt(cx-glowRadius, cy-glowRadius))
	layer = imaging.Blur(layer, glowBlurSigma)

	return imaging.Overlay(canvas, layer, image.Point{}, 1.0)
}

// drawScanlines lays the faint two-pixel lines every four rows that give the
// background its CRT texture.
func drawScanlines(canvas *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(canvas)
	line := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: scanlineAlpha})
	for y := 0; y < Height; y += scanlineStep {
		draw.Draw(out, image.Rect(0, y+2, Width, y+4), line, image.Point{}, draw.Over)
	}
	return out
}
