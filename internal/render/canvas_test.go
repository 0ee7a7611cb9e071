package render

import (
	"image"
	"image/color"
	"testing"

	"road-hud/internal/hud"
)

func TestCanvasShapesTouchPixels(t *testing.T) {
	c, err := NewCanvas(200, 200)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.Clear(color.RGBA{0, 0, 0, 255})

	c.FillCircle(image.Pt(100, 100), 40, color.RGBA{255, 255, 255, 255})

	img := c.Image()
	r, g, b, _ := img.At(100, 100).RGBA()
	if r == 0 && g == 0 && b == 0 {
		t.Fatal("circle center still black")
	}
	r, g, b, _ = img.At(5, 5).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatal("corner outside circle was painted")
	}
}

func TestCanvasRoundedRectBorder(t *testing.T) {
	c, err := NewCanvas(200, 200)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.Clear(color.RGBA{0, 0, 0, 255})

	c.FillRoundedRect(image.Rect(40, 40, 160, 160), 16,
		color.RGBA{40, 40, 40, 255}, color.RGBA{255, 255, 255, 255}, 4)

	img := c.Image()
	r, _, _, _ := img.At(100, 40).RGBA()
	if r == 0 {
		t.Fatal("top border edge not stroked")
	}
	r, _, _, _ = img.At(100, 100).RGBA()
	if r == 0 {
		t.Fatal("interior not filled")
	}
}

func TestCanvasTextRenders(t *testing.T) {
	c, err := NewCanvas(200, 100)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.Clear(color.RGBA{0, 0, 0, 255})

	c.DrawText(100, 50, "88", hud.TextStyle{Size: 48, Bold: true}, color.RGBA{255, 255, 255, 255})

	painted := 0
	img := c.Image()
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("text drew no pixels")
	}
}

func TestHeaterAssets(t *testing.T) {
	assets := HeaterAssets(144)
	if assets.HeaterOn == nil || assets.HeaterOff == nil {
		t.Fatal("both heater icons must be produced")
	}
	if got := assets.HeaterOn.Bounds().Dx(); got != 144 {
		t.Fatalf("icon width = %d, want 144", got)
	}

	opaque := func(img image.Image) int {
		n := 0
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
					n++
				}
			}
		}
		return n
	}
	if opaque(assets.HeaterOn) == 0 || opaque(assets.HeaterOff) == 0 {
		t.Fatal("icons must carry visible glyphs")
	}
}

func TestCanvasDrawImageOpacity(t *testing.T) {
	c, err := NewCanvas(160, 160)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	c.Clear(color.RGBA{0, 0, 0, 255})

	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	c.DrawImage(src, image.Pt(80, 80), 64, 0.5)

	r, _, _, _ := c.Image().At(80, 80).RGBA()
	if r == 0 {
		t.Fatal("blit drew nothing")
	}
	if r >= 0xffff {
		t.Fatal("half-opacity blit rendered fully opaque")
	}
}
