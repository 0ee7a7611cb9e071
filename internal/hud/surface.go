package hud

import (
	"image"
	"image/color"
)

// TextStyle selects the face for a single text draw.
type TextStyle struct {
	Size float64 // pixels
	Bold bool
}

// Surface is the capability set the renderer draws against: filled shapes,
// anchored text, and image blits with opacity. Implementations own the actual
// pixels; the renderer never creates or retains a surface.
type Surface interface {
	// FillRoundedRect paints r with the given corner radius. A border is drawn
	// when borderWidth > 0.
	FillRoundedRect(r image.Rectangle, radius int, fill color.RGBA, border color.RGBA, borderWidth int)

	// FillCircle paints a filled circle of radius rad centered at c.
	FillCircle(c image.Point, rad int, fill color.RGBA)

	// DrawText renders s centered horizontally and vertically on (x, y).
	// The color's alpha applies to the whole run.
	DrawText(x, y int, s string, style TextStyle, col color.RGBA)

	// DrawImage composites img centered at c, scaled to size×size pixels, at
	// the given opacity in [0, 1].
	DrawImage(img image.Image, c image.Point, size int, opacity float64)
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
