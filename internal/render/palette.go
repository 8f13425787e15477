package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Brand palette shared by every generated asset. Hex values mirror the
// neon theme of the app UI.
var (
	BGTop    = mustHex("#0a0014") // near-black purple
	BGMid    = mustHex("#1a0530") // deep purple
	BGBottom = mustHex("#0d0020") // dark blue-purple

	Purple   = mustHex("#a855f7")
	PurpleLt = mustHex("#c084fc")
	Violet   = mustHex("#9333ea") // drop shadows

	TextColor    = mustHex("#e2d4f0") // soft lavender white
	TaglineColor = mustHex("#a882dc") // muted purple

	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func mustHex(s string) color.NRGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("render: bad palette hex " + s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, alpha uint8) color.NRGBA {
	c.A = alpha
	return c
}

// Mix blends two palette colors in Lab space, which keeps intermediate
// purples from washing out to gray.
func Mix(a, b color.NRGBA, t float64) color.NRGBA {
	ca, _ := colorful.MakeColor(color.NRGBA{R: a.R, G: a.G, B: a.B, A: 0xff})
	cb, _ := colorful.MakeColor(color.NRGBA{R: b.R, G: b.G, B: b.B, A: 0xff})
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 0xff}
}
