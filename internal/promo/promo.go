// Package promo renders the social share card: a landscape banner with the
// app icon, glowing wordmark, tagline and a QR code pointing at the project
// page.
package promo

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/glebschkv/phone-pet-paradise/internal/log"
	"github.com/glebschkv/phone-pet-paradise/internal/render"
	"github.com/glebschkv/phone-pet-paradise/internal/render/layout"
)

// Card size is the Open Graph standard.
const (
	Width  = 1200
	Height = 630
)

const (
	gradientMidFrac = 0.5
	accentHeight    = 6

	glowRadius   = 260
	glowMaxAlpha = 70
	glowSigma    = 40

	iconSize         = 160
	iconCornerRadius = 36
	iconLeft         = 110

	titleSizePx         = 96
	titleSpacing        = 12
	titleLeft           = 330
	titleTop            = 236
	titleGlowWideSigma  = 14
	titleGlowWideAlpha  = 90
	titleGlowTightSigma = 6
	titleGlowTightAlpha = 130

	taglineSizePx = 30
	taglineGap    = 28
	taglineAlpha  = 170

	qrSize         = 132
	qrMargin       = 46
	qrCornerRadius = 12
)

const (
	titleText   = "NOMO"
	taglineText = "FOCUS  ·  GROW  ·  COLLECT"

	projectURL = "https://github.com/glebschkv/phone-pet-paradise"
)

// Input and output locations relative to the project root, plus the fonts
// shared with the splash wordmark.
const (
	IconRelPath   = "public/app-icon.png"
	OutputRelPath = "marketing/og-image.png"

	boldFontPath    = "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf"
	regularFontPath = "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf"
)

// Generator renders the share card. Paths can be overridden before Generate
// runs.
type Generator struct {
	Root            string
	IconPath        string
	OutPath         string
	BoldFontPath    string
	RegularFontPath string
}

func NewGenerator(root string) *Generator {
	return &Generator{
		Root:            root,
		IconPath:        filepath.Join(root, IconRelPath),
		OutPath:         filepath.Join(root, OutputRelPath),
		BoldFontPath:    boldFontPath,
		RegularFontPath: regularFontPath,
	}
}

func (g *Generator) Name() string { return "promo" }

// Generate renders the card and writes it under marketing/. Rendering
// happens fully in memory; nothing is written on failure.
func (g *Generator) Generate(ctx context.Context) error {
	card, err := g.Render(ctx)
	if err != nil {
		return err
	}
	if err := ensureParentDir(g.OutPath); err != nil {
		return err
	}
	if err := render.SavePNG(g.OutPath, render.Flatten(card)); err != nil {
		return err
	}
	log.Artifact("promo", g.OutPath, Width, Height)
	return nil
}

// Render builds the card back to front: gradient, glow, accents, icon,
// glowing title, tagline, QR code.
func (g *Generator) Render(ctx context.Context) (*image.NRGBA, error) {
	log.Infof("promo: rendering %dx%d card", Width, Height)

	card := render.VerticalGradient(Width, Height, render.BGTop, render.BGMid, render.BGBottom, gradientMidFrac)
	card = drawGlow(card)
	card = drawAccents(card)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	card, iconRect, err := drawIcon(card, g.IconPath)
	if err != nil {
		return nil, err
	}

	titleFace, taglineFace := g.loadFaces()
	card = drawText(card, titleFace, taglineFace)

	card, err = drawQR(card)
	if err != nil {
		return nil, err
	}

	log.Debugf("promo: icon at %v, qr bottom-right", iconRect)
	return card, nil
}

// drawGlow puts the ambient highlight behind the icon side of the card,
// tinted between the two brand purples.
func drawGlow(card *image.NRGBA) *image.NRGBA {
	tint := render.Mix(render.Purple, render.PurpleLt, 0.35)
	sprite := render.RadialGlow(glowRadius, tint, glowMaxAlpha)

	layer := render.NewCanvas(Width, Height)
	cx := iconLeft + iconSize/2
	cy := Height / 2
	layer = imaging.Paste(layer, sprite, image.Pt(cx-glowRadius, cy-glowRadius))
	layer = imaging.Blur(layer, glowSigma)

	return imaging.Overlay(card, layer, image.Point{}, 1.0)
}

// drawAccents runs a thin gradient strip along the top and bottom edges.
func drawAccents(card *image.NRGBA) *image.NRGBA {
	strip := render.HorizontalGradient(Width, accentHeight, render.Purple, render.PurpleLt)
	out := imaging.Overlay(card, strip, image.Pt(0, 0), 1.0)
	return imaging.Overlay(out, strip, image.Pt(0, Height-accentHeight), 1.0)
}

func drawIcon(card *image.NRGBA, iconPath string) (*image.NRGBA, image.Rectangle, error) {
	src, err := imaging.Open(iconPath)
	if err != nil {
		return nil, image.Rectangle{}, fmt.Errorf("load app icon: %w", err)
	}
	icon := imaging.Resize(src, iconSize, iconSize, imaging.Lanczos)
	icon = render.ApplyMask(icon, render.RoundedRectMask(iconSize, iconSize, iconCornerRadius))

	rect := layout.CenterIn(image.Rect(iconLeft, 0, iconLeft+iconSize, Height), iconSize, iconSize)
	return imaging.Overlay(card, icon, rect.Min, 1.0), rect, nil
}

func drawText(card *image.NRGBA, titleFace, taglineFace font.Face) *image.NRGBA {
	baseline := titleTop + titleFace.Metrics().Ascent.Ceil()

	wide := render.GlowLayer(Width, Height, titleFace, titleText, titleLeft, baseline,
		render.WithAlpha(render.Purple, titleGlowWideAlpha), titleGlowWideSigma, titleSpacing)
	out := imaging.Overlay(card, wide, image.Point{}, 1.0)

	tight := render.GlowLayer(Width, Height, titleFace, titleText, titleLeft, baseline,
		render.WithAlpha(render.Purple, titleGlowTightAlpha), titleGlowTightSigma, titleSpacing)
	out = imaging.Overlay(out, tight, image.Point{}, 1.0)

	render.DrawSpacedString(out, titleFace, titleText, titleLeft, baseline, render.TextColor, titleSpacing)

	_, titleInkH := render.InkBounds(titleFace, titleText)
	tagBaseline := titleTop + titleInkH + taglineGap + taglineFace.Metrics().Ascent.Ceil()
	render.DrawString(out, taglineFace, taglineText, titleLeft, tagBaseline,
		render.WithAlpha(render.TaglineColor, taglineAlpha))
	return out
}

// drawQR composites the rounded QR tile in the bottom-right corner.
func drawQR(card *image.NRGBA) (*image.NRGBA, error) {
	qr, err := render.BrandQRCode(projectURL, qrSize)
	if err != nil {
		return nil, err
	}
	tile := render.ApplyMask(qr, render.RoundedRectMask(qrSize, qrSize, qrCornerRadius))
	rect := layout.AnchorBottomRight(image.Rect(0, 0, Width, Height), qrSize, qrSize, qrMargin)
	return imaging.Overlay(card, tile, rect.Min, 1.0), nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	return nil
}

func (g *Generator) loadFaces() (font.Face, font.Face) {
	titleFace := render.FallbackFace()
	taglineFace := render.FallbackFace()
	if fnt, err := render.LoadFont(g.BoldFontPath); err != nil {
		log.Warnf("promo: bold font unavailable, using fallback face: %v", err)
	} else {
		titleFace = fnt.Face(titleSizePx)
	}
	if fnt, err := render.LoadFont(g.RegularFontPath); err != nil {
		log.Warnf("promo: regular font unavailable, using fallback face: %v", err)
	} else {
		taglineFace = fnt.Face(taglineSizePx)
	}
	return titleFace, taglineFace
}
