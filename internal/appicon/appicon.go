// Package appicon derives every icon the app ships from the single source
// icon: the iOS AppIcon.appiconset with its manifest, the PWA icons, and a
// multi-resolution favicon.
package appicon

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/glebschkv/phone-pet-paradise/internal/catalog"
	"github.com/glebschkv/phone-pet-paradise/internal/log"
	"github.com/glebschkv/phone-pet-paradise/internal/render"
)

// Input and output locations relative to the project root.
const (
	IconRelPath   = "public/app-icon.png"
	IconSetRelDir = "ios/App/App/Assets.xcassets/AppIcon.appiconset"
	WebRelDir     = "public"
)

// iosIcons is the iPhone-only size matrix plus the App Store marketing
// entry. Pixel sizes are point size times scale.
var iosIcons = []struct {
	points   string
	scale    string
	sizePx   int
	filename string
}{
	{"20x20", "2x", 40, "icon-20@2x.png"},
	{"20x20", "3x", 60, "icon-20@3x.png"},
	{"29x29", "2x", 58, "icon-29@2x.png"},
	{"29x29", "3x", 87, "icon-29@3x.png"},
	{"40x40", "2x", 80, "icon-40@2x.png"},
	{"40x40", "3x", 120, "icon-40@3x.png"},
	{"60x60", "2x", 120, "icon-60@2x.png"},
	{"60x60", "3x", 180, "icon-60@3x.png"},
}

const (
	marketingFile   = "icon-1024.png"
	marketingSizePx = 1024
)

// webIcons covers the PWA manifest and the apple-touch-icon.
var webIcons = []struct {
	filename string
	sizePx   int
}{
	{"apple-touch-icon.png", 180},
	{"icon-192.png", 192},
	{"icon-512.png", 512},
}

// faviconSizes are the embedded resolutions of favicon.ico.
var faviconSizes = []int{16, 32, 48}

// Generator produces the icon families. Paths can be overridden before
// Generate runs.
type Generator struct {
	Root       string
	IconPath   string
	IconSetDir string
	WebDir     string
}

func NewGenerator(root string) *Generator {
	return &Generator{
		Root:       root,
		IconPath:   filepath.Join(root, IconRelPath),
		IconSetDir: filepath.Join(root, IconSetRelDir),
		WebDir:     filepath.Join(root, WebRelDir),
	}
}

func (g *Generator) Name() string { return "appicon" }

// Generate resizes the source icon into every target. The source is loaded
// once; each output is an independent Lanczos resample of it.
func (g *Generator) Generate(ctx context.Context) error {
	src, err := imaging.Open(g.IconPath)
	if err != nil {
		return fmt.Errorf("load app icon: %w", err)
	}

	if err := g.writeIconSet(ctx, src); err != nil {
		return err
	}
	return g.writeWebIcons(ctx, src)
}

func (g *Generator) writeIconSet(ctx context.Context, src image.Image) error {
	if err := os.MkdirAll(g.IconSetDir, 0o755); err != nil {
		return fmt.Errorf("create icon set dir: %w", err)
	}

	entries := make([]catalog.Image, 0, len(iosIcons)+1)
	for _, ic := range iosIcons {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(g.IconSetDir, ic.filename)
		if err := render.SavePNG(path, resize(src, ic.sizePx)); err != nil {
			return err
		}
		log.Artifact("appicon", path, ic.sizePx, ic.sizePx)
		entries = append(entries, catalog.IPhone(ic.points, ic.filename, ic.scale))
	}

	marketingPath := filepath.Join(g.IconSetDir, marketingFile)
	if err := render.SavePNG(marketingPath, resize(src, marketingSizePx)); err != nil {
		return err
	}
	log.Artifact("appicon", marketingPath, marketingSizePx, marketingSizePx)
	entries = append(entries, catalog.Marketing(marketingFile))

	if err := catalog.Write(g.IconSetDir, catalog.Contents{Images: entries, Info: catalog.XcodeInfo()}); err != nil {
		return fmt.Errorf("icon set manifest: %w", err)
	}
	return nil
}

func (g *Generator) writeWebIcons(ctx context.Context, src image.Image) error {
	if err := os.MkdirAll(g.WebDir, 0o755); err != nil {
		return fmt.Errorf("create web dir: %w", err)
	}

	for _, ic := range webIcons {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(g.WebDir, ic.filename)
		if err := render.SavePNG(path, resize(src, ic.sizePx)); err != nil {
			return err
		}
		log.Artifact("appicon", path, ic.sizePx, ic.sizePx)
	}

	return g.writeFavicon(src)
}

// writeFavicon bundles the small sizes into a single favicon.ico.
func (g *Generator) writeFavicon(src image.Image) error {
	images := make([]image.Image, 0, len(faviconSizes))
	for _, size := range faviconSizes {
		images = append(images, resize(src, size))
	}

	path := filepath.Join(g.WebDir, "favicon.ico")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ico.EncodeAll(f, images); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	log.Artifact("appicon", path, faviconSizes[len(faviconSizes)-1], faviconSizes[len(faviconSizes)-1])
	return nil
}

func resize(src image.Image, sizePx int) *image.NRGBA {
	return imaging.Resize(src, sizePx, sizePx, imaging.Lanczos)
}
