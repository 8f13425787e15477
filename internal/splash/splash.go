// Package splash renders the branded launch screen and exports it as an
// Xcode imageset at 1x, 2x and 3x.
package splash

import (
	"context"
	"image"
	"path/filepath"

	"golang.org/x/image/font"

	"github.com/glebschkv/phone-pet-paradise/internal/log"
	"github.com/glebschkv/phone-pet-paradise/internal/render"
)

// Generator renders the launch splash. Paths are resolved against Root at
// construction and can be overridden individually before Generate runs,
// which the tests use to point at fixtures.
type Generator struct {
	Root            string
	IconPath        string
	OutDir          string
	BoldFontPath    string
	RegularFontPath string
}

func NewGenerator(root string) *Generator {
	return &Generator{
		Root:            root,
		IconPath:        filepath.Join(root, IconRelPath),
		OutDir:          filepath.Join(root, OutputRelPath),
		BoldFontPath:    boldFontPath,
		RegularFontPath: regularFontPath,
	}
}

func (g *Generator) Name() string { return "splash" }

// Generate renders the full-size canvas and exports the imageset plus its
// manifest. Nothing is written unless rendering succeeds.
func (g *Generator) Generate(ctx context.Context) error {
	canvas, err := g.Render(ctx)
	if err != nil {
		return err
	}
	return g.export(canvas)
}

// Render produces the finished 3x canvas: gradient, glow, scanlines, icon
// with shadow, glowing title, tagline, loading bar.
func (g *Generator) Render(ctx context.Context) (*image.NRGBA, error) {
	log.Infof("splash: rendering %dx%d canvas", Width, Height)
	faces := g.loadFaces()

	canvas := drawBackground()
	log.Debugf("splash: background gradient done")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canvas = drawGlow(canvas)
	canvas = drawScanlines(canvas)
	log.Debugf("splash: ambient glow and scanlines done")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canvas, iconRect, err := drawIcon(canvas, g.IconPath)
	if err != nil {
		return nil, err
	}
	log.Debugf("splash: icon composited at %v", iconRect)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	canvas, tagRect := drawTitle(canvas, faces, iconRect)
	canvas = drawLoadingBar(canvas, tagRect)
	log.Debugf("splash: text and loading bar done")

	return canvas, nil
}

type faceSet struct {
	title   font.Face
	tagline font.Face
}

// loadFaces resolves the two text faces. A missing font file is not fatal:
// the splash still renders with the builtin bitmap face, just without the
// intended typography.
func (g *Generator) loadFaces() faceSet {
	faces := faceSet{title: render.FallbackFace(), tagline: render.FallbackFace()}
	if fnt, err := render.LoadFont(g.BoldFontPath); err != nil {
		log.Warnf("splash: bold font unavailable, using fallback face: %v", err)
	} else {
		faces.title = fnt.Face(titleSizePx)
	}
	if fnt, err := render.LoadFont(g.RegularFontPath); err != nil {
		log.Warnf("splash: regular font unavailable, using fallback face: %v", err)
	} else {
		faces.tagline = fnt.Face(taglineSizePx)
	}
	return faces
}
