package splash

import (
	"image"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/glebschkv/phone-pet-paradise/internal/render"
	"github.com/glebschkv/phone-pet-paradise/internal/render/layout"
)

// titleLayout computes the left pen position and total width of the spaced
// wordmark so its block is centered on the canvas.
func titleLayout(face font.Face) (x, totalWidth int) {
	totalWidth = render.SpacedWidth(face, titleText, titleSpacing)
	return layout.CenterSpan(Width, totalWidth), totalWidth
}

// drawTitle renders the glowing wordmark, then the tagline below it. The
// wide blurred pass goes down first, the tight pass over it, the sharp text
// last. It returns the canvas and the tagline's ink rectangle.
func drawTitle(canvas *image.NRGBA, faces faceSet, iconRect image.Rectangle) (*image.NRGBA, image.Rectangle) {
	titleTop := layout.Below(iconRect, titleGap)
	baseline := titleTop + faces.title.Metrics().Ascent.Ceil()
	x, _ := titleLayout(faces.title)

	wide := render.GlowLayer(Width, Height, faces.title, titleText, x, baseline,
		render.WithAlpha(render.Purple, titleGlowWideAlpha), titleGlowWideSigma, titleSpacing)
	out := imaging.Overlay(canvas, wide, image.Point{}, 1.0)

	tight := render.GlowLayer(Width, Height, faces.title, titleText, x, baseline,
		render.WithAlpha(render.Purple, titleGlowTightAlpha), titleGlowTightSigma, titleSpacing)
	out = imaging.Overlay(out, tight, image.Point{}, 1.0)

	render.DrawSpacedString(out, faces.title, titleText, x, baseline, render.TextColor, titleSpacing)

	_, titleInkH := render.InkBounds(faces.title, titleText)
	tagTop := titleTop + titleInkH + taglineGap
	tagBaseline := tagTop + faces.tagline.Metrics().Ascent.Ceil()
	tagW, tagInkH := render.InkBounds(faces.tagline, taglineText)
	tagX := layout.CenterSpan(Width, tagW)
	render.DrawString(out, faces.tagline, taglineText, tagX, tagBaseline,
		render.WithAlpha(render.TaglineColor, taglineAlpha))

	tagRect := image.Rect(tagX, tagTop, tagX+tagW, tagTop+tagInkH)
	return out, tagRect
}
