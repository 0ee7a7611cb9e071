package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"road-hud/internal/hud"
)

// Icon glyph palette. The two variants differ only in color so the enabled
// state reads at a glance.
var (
	heaterOnColor  = color.NRGBA{R: 0xff, G: 0x8a, B: 0x3d, A: 0xff}
	heaterOffColor = color.NRGBA{R: 0x9a, G: 0x9a, B: 0xa2, A: 0xff}
)

// HeaterAssets draws the battery-heater icon pair once at startup. This is the
// asset source the renderer treats as external; the renderer itself only
// receives the finished images.
func HeaterAssets(size int) hud.Assets {
	return hud.Assets{
		HeaterOn:  heaterIcon(size, heaterOnColor),
		HeaterOff: heaterIcon(size, heaterOffColor),
	}
}

// heaterIcon renders a battery outline with heat waves rising above it.
func heaterIcon(size int, col color.NRGBA) image.Image {
	ctx := gg.NewContext(size, size)
	s := float64(size)
	stroke := s / 16

	// Battery body in the lower half.
	bx, by := s*0.15, s*0.5
	bw, bh := s*0.7, s*0.34
	ctx.SetColor(col)
	ctx.SetLineWidth(stroke)
	ctx.DrawRoundedRectangle(bx, by, bw, bh, s*0.05)
	_ = ctx.Stroke()

	// Terminal nub on top of the body.
	ctx.DrawRectangle(s*0.42, by-stroke*1.5, s*0.16, stroke*1.5)
	_ = ctx.Fill()

	// Three heat waves above the battery.
	for i := 0; i < 3; i++ {
		x := s * (0.3 + 0.2*float64(i))
		top := s * 0.12
		bottom := s * 0.36
		mid := (top + bottom) / 2
		ctx.MoveTo(x, bottom)
		ctx.CubicTo(x-s*0.06, mid+s*0.04, x+s*0.06, mid-s*0.04, x, top)
		ctx.SetLineWidth(stroke)
		_ = ctx.Stroke()
	}

	return ctx.Image()
}
