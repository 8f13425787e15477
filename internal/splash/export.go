package splash

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/glebschkv/phone-pet-paradise/internal/catalog"
	"github.com/glebschkv/phone-pet-paradise/internal/log"
	"github.com/glebschkv/phone-pet-paradise/internal/render"
)

// exportScales lists the imageset outputs in manifest order. The 3x canvas
// is authoritative; the smaller scales only ever downsample it.
var exportScales = []struct {
	filename string
	scale    string
	width    int
	height   int
}{
	{"splash-1x.png", "1x", Width / 3, Height / 3},
	{"splash-2x.png", "2x", Width * 2 / 3, Height * 2 / 3},
	{"splash-3x.png", "3x", Width, Height},
}

// export flattens the canvas and writes the three PNGs plus the manifest
// into the imageset directory.
func (g *Generator) export(canvas *image.NRGBA) error {
	flat := render.Flatten(canvas)

	if err := os.MkdirAll(g.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	entries := make([]catalog.Image, 0, len(exportScales))
	for _, s := range exportScales {
		img := flat
		if s.width != Width || s.height != Height {
			img = imaging.Resize(flat, s.width, s.height, imaging.Lanczos)
		}
		path := filepath.Join(g.OutDir, s.filename)
		if err := render.SavePNG(path, img); err != nil {
			return err
		}
		log.Artifact("splash", path, s.width, s.height)
		entries = append(entries, catalog.Universal(s.filename, s.scale))
	}

	if err := catalog.Write(g.OutDir, catalog.Contents{Images: entries, Info: catalog.XcodeInfo()}); err != nil {
		return fmt.Errorf("imageset manifest: %w", err)
	}
	return nil
}
