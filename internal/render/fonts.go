package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font is a parsed TrueType font that hands out faces at pixel sizes.
type Font struct {
	tt *truetype.Font
}

// LoadFont reads and parses a TrueType font file.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return &Font{tt: tt}, nil
}

// Face returns a face rendering at the given pixel size. At 72 DPI one point
// equals one pixel, so sizes map directly.
func (f *Font) Face(sizePx float64) font.Face {
	return truetype.NewFace(f.tt, &truetype.Options{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// FallbackFace is the face used when a font file is missing or unparseable.
// Output still renders, just without the intended typography.
func FallbackFace() font.Face {
	return basicfont.Face7x13
}
