package layout

import "image"

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterSpan returns the offset that centers a span of length spanPx inside a
// run of length totalPx. An odd leftover pixel lands on the trailing side.
func CenterSpan(totalPx, spanPx int) int {
	return (totalPx - spanPx) / 2
}

// Frac returns frac of a run of length totalPx, truncated to a pixel offset.
func Frac(totalPx int, frac float64) int {
	return int(float64(totalPx) * frac)
}

// CenterIn returns a rectangle of size (widthPx,heightPx) centered inside rect.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	x := rect.Min.X + CenterSpan(rect.Dx(), widthPx)
	y := rect.Min.Y + CenterSpan(rect.Dy(), heightPx)
	return image.Rect(x, y, x+widthPx, y+heightPx)
}

// Below returns the y coordinate gapPx below the bottom edge of rect.
func Below(rect image.Rectangle, gapPx int) int {
	return Normalize(rect).Max.Y + gapPx
}

// Expand grows rect by marginPx on all sides. A negative margin shrinks
// instead; the result never inverts.
func Expand(rect image.Rectangle, marginPx int) image.Rectangle {
	rect = Normalize(rect)
	out := image.Rect(rect.Min.X-marginPx, rect.Min.Y-marginPx, rect.Max.X+marginPx, rect.Max.Y+marginPx)
	return Normalize(out)
}

// AnchorBottomRight returns a rectangle of size (widthPx,heightPx) placed in
// the bottom-right of rect, inset by marginPx on both axes.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx, marginPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxX := rect.Max.X - marginPx
	maxY := rect.Max.Y - marginPx
	return Normalize(image.Rect(maxX-widthPx, maxY-heightPx, maxX, maxY))
}
