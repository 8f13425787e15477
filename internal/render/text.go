package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// CharWidths measures the inked width of each rune in text, ignoring
// advance padding. Wordmark layout spaces characters by ink, not advance.
func CharWidths(face font.Face, text string) []int {
	runes := []rune(text)
	widths := make([]int, len(runes))
	for i, r := range runes {
		b, _ := font.BoundString(face, string(r))
		widths[i] = (b.Max.X - b.Min.X).Ceil()
	}
	return widths
}

// SpacedWidth returns the total width of text when drawn with spacingPx
// extra pixels between adjacent characters.
func SpacedWidth(face font.Face, text string, spacingPx int) int {
	total := 0
	widths := CharWidths(face, text)
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += spacingPx * (len(widths) - 1)
	}
	return total
}

// InkBounds returns the inked width and height of text drawn as one run.
func InkBounds(face font.Face, text string) (widthPx, heightPx int) {
	b, _ := font.BoundString(face, text)
	return (b.Max.X - b.Min.X).Ceil(), (b.Max.Y - b.Min.Y).Ceil()
}

// DrawString draws text once with its baseline at (x, baselineY).
func DrawString(dst draw.Image, face font.Face, text string, x, baselineY int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baselineY),
	}
	d.DrawString(text)
}

// DrawSpacedString draws text starting at x with the given baseline,
// advancing the pen by each character's inked width plus spacingPx.
func DrawSpacedString(dst draw.Image, face font.Face, text string, x, baselineY int, c color.Color, spacingPx int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	widths := CharWidths(face, text)
	pen := x
	for i, r := range []rune(text) {
		d.Dot = fixed.P(pen, baselineY)
		d.DrawString(string(r))
		pen += widths[i] + spacingPx
	}
}

// GlowLayer renders text as a blurred pass on a transparent canvas sized
// widthPx x heightPx, ready to composite beneath sharper passes.
func GlowLayer(widthPx, heightPx int, face font.Face, text string, x, baselineY int, c color.NRGBA, sigma float64, spacingPx int) *image.NRGBA {
	layer := NewCanvas(widthPx, heightPx)
	DrawSpacedString(layer, face, text, x, baselineY, c, spacingPx)
	return imaging.Blur(layer, sigma)
}
