package splash

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/glebschkv/phone-pet-paradise/internal/render"
	"github.com/glebschkv/phone-pet-paradise/internal/render/layout"
)

// drawLoadingBar renders the static progress indicator: a faint rounded
// track with a thin outline, and a gradient fill at 30% with a glow bleeding
// past its edges.
func drawLoadingBar(canvas *image.NRGBA, tagRect image.Rectangle) *image.NRGBA {
	barX := layout.CenterSpan(Width, barWidth)
	barY := layout.Below(tagRect, barGap)

	out := drawTrack(canvas, barX, barY)

	fillW := layout.Frac(barWidth, barFillFrac)
	fill := render.HorizontalGradient(fillW, barHeight, render.Purple, render.PurpleLt)
	fill = render.ApplyMask(fill, render.RoundedRectMask(fillW, barHeight, barCornerRadius))

	// The glow layer is the fill blurred inside an expanded box, composited
	// first so the sharp fill sits on top of its own halo.
	fillRect := image.Rect(barX+2, barY+1, barX+2+fillW, barY+1+barHeight)
	glowRect := layout.Expand(fillRect, barGlowMargin)
	glow := render.NewCanvas(glowRect.Dx(), glowRect.Dy())
	glow = imaging.Paste(glow, fill, image.Pt(barGlowMargin, barGlowMargin))
	glow = imaging.Blur(glow, barGlowSigma)

	out = imaging.Overlay(out, glow, glowRect.Min, 1.0)
	out = imaging.Overlay(out, fill, fillRect.Min, 1.0)
	return out
}

// drawTrack draws the translucent track with its outline on a local context
// sized to the stroke, then composites it at the bar position.
func drawTrack(canvas *image.NRGBA, barX, barY int) *image.NRGBA {
	pad := trackOutlineWidth
	dc := gg.NewContext(barWidth+2*pad, barHeight+2*pad)
	dc.DrawRoundedRectangle(float64(pad), float64(pad), barWidth, barHeight, barCornerRadius)
	dc.SetColor(render.WithAlpha(render.White, trackFillAlpha))
	dc.FillPreserve()
	dc.SetColor(render.WithAlpha(render.Purple, trackOutlineAlpha))
	dc.SetLineWidth(trackOutlineWidth)
	dc.Stroke()
	return imaging.Overlay(canvas, dc.Image(), image.Pt(barX-pad, barY-pad), 1.0)
}
