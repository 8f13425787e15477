package splash

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/glebschkv/phone-pet-paradise/internal/render"
	"github.com/glebschkv/phone-pet-paradise/internal/render/layout"
)

// drawIcon loads the app icon, resizes it to its display size with rounded
// corners, and composites it over a soft drop shadow. It returns the new
// canvas and the icon's rectangle, which anchors the text block below. A
// missing or unreadable icon file is fatal.
func drawIcon(canvas *image.NRGBA, iconPath string) (*image.NRGBA, image.Rectangle, error) {
	src, err := imaging.Open(iconPath)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("load app icon: %w", err)
	}

	icon := imaging.Resize(src, iconSize, iconSize, imaging.Lanczos)
	icon = render.ApplyMask(icon, render.RoundedRectMask(iconSize, iconSize, iconCornerRadius))

	x := layout.CenterSpan(Width, iconSize)
	y := layout.Frac(Height, iconYFrac)
	iconRect := image.Rect(x, y, x+iconSize, y+iconSize)
	shadowRect := layout.Expand(iconRect, iconShadowMargin)

	out := imaging.Overlay(canvas, iconShadow(), shadowRect.Min, 1.0)
	out = imaging.Overlay(out, icon, iconRect.Min, 1.0)
	return out, iconRect, nil
}

// iconShadow renders the blurred rounded-rectangle shadow sprite with
// margin for the blur on every side.
func iconShadow() *image.NRGBA {
	size := iconSize + 2*iconShadowMargin
	dc := gg.NewContext(size, size)
	dc.SetColor(iconShadowColor)
	dc.DrawRoundedRectangle(float64(iconShadowMargin), float64(iconShadowMargin), iconSize, iconSize, iconCornerRadius)
	dc.Fill()
	return imaging.Blur(dc.Image(), iconShadowSigma)
}
