package render

import (
	"image/color"
	"testing"
)

func TestRadialGlowFalloff(t *testing.T) {
	radius := 50
	c := color.NRGBA{R: 168, G: 85, B: 247, A: 255}
	img := RadialGlow(radius, c, 80)

	size := radius*2 + 1
	if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
		t.Fatalf("sprite size = %dx%d, want %dx%d", img.Bounds().Dx(), img.Bounds().Dy(), size, size)
	}

	center := img.NRGBAAt(radius, radius)
	if center.A == 0 {
		t.Fatal("center alpha is zero, want near max")
	}
	if center.A > 80 {
		t.Fatalf("center alpha %d exceeds max 80", center.A)
	}
	if center.R != c.R || center.G != c.G || center.B != c.B {
		t.Errorf("center color = %v, want tint %v", center, c)
	}

	// Alpha never increases moving outward along the horizontal axis.
	prev := center.A
	for x := radius + 1; x < size; x++ {
		a := img.NRGBAAt(x, radius).A
		if a > prev {
			t.Fatalf("alpha increased outward at x=%d: %d -> %d", x, prev, a)
		}
		prev = a
	}

	if got := img.NRGBAAt(size-1, radius).A; got != 0 {
		t.Errorf("rim alpha = %d, want 0", got)
	}
	if got := img.NRGBAAt(0, 0).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
}

func TestRadialGlowQuadratic(t *testing.T) {
	radius := 100
	img := RadialGlow(radius, color.NRGBA{R: 255, A: 255}, 80)

	// Halfway out the quadratic ramp reads a quarter of max, give or take
	// the ring quantization.
	half := img.NRGBAAt(radius+radius/2, radius).A
	want := uint8(0.25 * 80)
	if diff(half, want) > 2 {
		t.Errorf("half-radius alpha = %d, want about %d", half, want)
	}
}

func TestRadialGlowDegenerate(t *testing.T) {
	img := RadialGlow(0, color.NRGBA{R: 255, A: 255}, 80)
	if img.Bounds().Dx() != 1 {
		t.Fatalf("zero-radius sprite width = %d, want 1", img.Bounds().Dx())
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("zero-radius sprite should stay transparent")
	}
}
