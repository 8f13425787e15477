package layout

import (
	"image"
	"testing"
)

func TestCenterSpan(t *testing.T) {
	tests := []struct {
		name  string
		total int
		span  int
		want  int
	}{
		{"even in even", 100, 40, 30},
		{"odd leftover", 101, 40, 30},
		{"span equals total", 64, 64, 0},
		{"span larger than total", 40, 100, -30},
		{"zero span", 10, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterSpan(tt.total, tt.span); got != tt.want {
				t.Errorf("CenterSpan(%d, %d) = %d, want %d", tt.total, tt.span, got, tt.want)
			}
		})
	}
}

func TestFrac(t *testing.T) {
	tests := []struct {
		name  string
		total int
		frac  float64
		want  int
	}{
		{"truncates", 2796, 0.30, 838},
		{"truncates large remainder", 2796, 0.34, 950},
		{"lands on pixel", 540, 0.3, 162},
		{"partway", 2796, 0.4, 1118},
		{"zero frac", 640, 0, 0},
		{"whole run", 640, 1, 640},
		{"empty run", 0, 0.75, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Frac(tt.total, tt.frac); got != tt.want {
				t.Errorf("Frac(%d, %g) = %d, want %d", tt.total, tt.frac, got, tt.want)
			}
		})
	}
}

func TestCenterIn(t *testing.T) {
	outer := image.Rect(10, 20, 110, 220)
	got := CenterIn(outer, 40, 100)
	want := image.Rect(40, 70, 80, 170)
	if got != want {
		t.Errorf("CenterIn = %v, want %v", got, want)
	}
	if got.Dx() != 40 || got.Dy() != 100 {
		t.Errorf("CenterIn size = %dx%d, want 40x100", got.Dx(), got.Dy())
	}
}

func TestCenterInNegativeSize(t *testing.T) {
	got := CenterIn(image.Rect(0, 0, 10, 10), -4, -4)
	if got.Dx() != 0 || got.Dy() != 0 {
		t.Errorf("negative sizes should clamp to empty, got %v", got)
	}
}

func TestBelow(t *testing.T) {
	r := image.Rect(0, 100, 50, 200)
	if got := Below(r, 36); got != 236 {
		t.Errorf("Below = %d, want 236", got)
	}
	inverted := image.Rect(0, 200, 50, 100)
	if got := Below(inverted, 0); got != 200 {
		t.Errorf("Below on inverted rect = %d, want 200", got)
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name   string
		rect   image.Rectangle
		margin int
		want   image.Rectangle
	}{
		{"grow", image.Rect(10, 10, 20, 20), 5, image.Rect(5, 5, 25, 25)},
		{"shrink", image.Rect(10, 10, 20, 20), -2, image.Rect(12, 12, 18, 18)},
		{"shrink past empty", image.Rect(10, 10, 20, 20), -8, image.Rect(12, 12, 18, 18)},
		{"zero", image.Rect(1, 2, 3, 4), 0, image.Rect(1, 2, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Expand(tt.rect, tt.margin)
			got = Normalize(got)
			want := Normalize(tt.want)
			if got != want {
				t.Errorf("Expand(%v, %d) = %v, want %v", tt.rect, tt.margin, got, want)
			}
		})
	}
}

func TestAnchorBottomRight(t *testing.T) {
	outer := image.Rect(0, 0, 1200, 630)
	got := AnchorBottomRight(outer, 132, 132, 46)
	want := image.Rect(1200-46-132, 630-46-132, 1200-46, 630-46)
	if got != want {
		t.Errorf("AnchorBottomRight = %v, want %v", got, want)
	}
	if !got.In(outer) {
		t.Errorf("anchored rect %v should sit inside %v", got, outer)
	}
}

func TestNormalize(t *testing.T) {
	r := Normalize(image.Rect(5, 8, 1, 2))
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		t.Errorf("Normalize left rect inverted: %v", r)
	}
}
