package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"road-hud/internal/hud"
)

type faceKey struct {
	size float64
	bold bool
}

// Canvas implements hud.Surface on a software gg context. It owns the frame
// pixels; callers blit Image() to a window or encode it to a file.
type Canvas struct {
	ctx     *gg.Context
	regular *ggtext.FontSource
	bold    *ggtext.FontSource
	faces   map[faceKey]ggtext.Face
	bufs    map[image.Image]*gg.ImageBuf
}

var _ hud.Surface = (*Canvas)(nil)

// NewCanvas allocates a width×height software canvas with the embedded Go
// fonts prepared for text drawing.
func NewCanvas(width, height int) (*Canvas, error) {
	regular, err := ggtext.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := ggtext.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &Canvas{
		ctx:     gg.NewContext(width, height),
		regular: regular,
		bold:    bold,
		faces:   map[faceKey]ggtext.Face{},
		bufs:    map[image.Image]*gg.ImageBuf{},
	}, nil
}

// Image returns the current frame contents.
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.ctx.Width(), c.ctx.Height()
}

// Rect returns the full canvas rectangle, the surface rect handed to Draw.
func (c *Canvas) Rect() image.Rectangle {
	return image.Rect(0, 0, c.ctx.Width(), c.ctx.Height())
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.RGBA) {
	c.ctx.ClearWithColor(gg.FromColor(nrgba(col)))
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

func (c *Canvas) FillRoundedRect(r image.Rectangle, radius int, fill color.RGBA, border color.RGBA, borderWidth int) {
	c.ctx.SetColor(nrgba(fill))
	c.ctx.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), float64(radius))
	_ = c.ctx.Fill()
	if borderWidth > 0 {
		c.ctx.SetColor(nrgba(border))
		c.ctx.SetLineWidth(float64(borderWidth))
		c.ctx.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), float64(radius))
		_ = c.ctx.Stroke()
	}
}

func (c *Canvas) FillCircle(center image.Point, rad int, fill color.RGBA) {
	c.ctx.SetColor(nrgba(fill))
	c.ctx.DrawCircle(float64(center.X), float64(center.Y), float64(rad))
	_ = c.ctx.Fill()
}

func (c *Canvas) DrawText(x, y int, s string, style hud.TextStyle, col color.RGBA) {
	c.ctx.SetFont(c.face(style))
	c.ctx.SetColor(nrgba(col))
	c.ctx.DrawStringAnchored(s, float64(x), float64(y), 0.5, 0.5)
}

func (c *Canvas) DrawImage(img image.Image, center image.Point, size int, opacity float64) {
	buf, ok := c.bufs[img]
	if !ok {
		buf = gg.ImageBufFromImage(img)
		c.bufs[img] = buf
	}
	half := float64(size) / 2
	c.ctx.DrawImageEx(buf, gg.DrawImageOptions{
		X:             float64(center.X) - half,
		Y:             float64(center.Y) - half,
		DstWidth:      float64(size),
		DstHeight:     float64(size),
		Interpolation: gg.InterpBilinear,
		Opacity:       opacity,
		BlendMode:     gg.BlendNormal,
	})
}

// face returns a cached font face for the style.
func (c *Canvas) face(style hud.TextStyle) ggtext.Face {
	key := faceKey{size: style.Size, bold: style.Bold}
	if f, ok := c.faces[key]; ok {
		return f
	}
	src := c.regular
	if style.Bold {
		src = c.bold
	}
	f := src.Face(style.Size)
	c.faces[key] = f
	return f
}

// Theme colors are straight alpha, not premultiplied.
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
