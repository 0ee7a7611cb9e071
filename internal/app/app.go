//go:build ebiten

package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"road-hud/internal/hud"
	"road-hud/internal/render"
	"road-hud/internal/telemetry"
)

// Game adapts the HUD renderer and the telemetry feed to the ebiten.Game
// interface. Telemetry updates run on the bus clock, drawing on the display
// clock; both happen sequentially on the game goroutine.
type Game struct {
	sim      *telemetry.DriveSim
	bus      *telemetry.BusClock
	renderer *hud.Renderer
	canvas   *render.Canvas
	frame    *ebiten.Image
	log      *zap.Logger

	width  int
	height int
}

// New constructs the game shell around a drive simulator feed.
func New(width, height int, theme hud.Theme, sim *telemetry.DriveSim, busHz int, log *zap.Logger) (*Game, error) {
	canvas, err := render.NewCanvas(width, height)
	if err != nil {
		return nil, err
	}
	g := &Game{
		sim:    sim,
		bus:    telemetry.NewBusClock(busHz),
		canvas: canvas,
		frame:  ebiten.NewImage(width, height),
		log:    log,
		width:  width,
		height: height,
	}
	g.renderer = hud.NewRenderer(theme, render.HeaterAssets(hud.IconSize), g.onLayoutChange)
	return g, nil
}

// onLayoutChange is the parent-notification hook: the overlay's shape changed,
// so re-query the panel geometry before the next frame.
func (g *Game) onLayoutChange() {
	rect, visible := g.renderer.BatteryPanelRect(g.canvas.Rect())
	g.log.Debug("hud layout changed",
		zap.Bool("battery_panel", visible),
		zap.String("panel_rect", rect.String()))
}

// Update handles input and advances the telemetry feed at the bus rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		var err error
		if g.sim.Status() == hud.StatusDisengaged {
			err = g.sim.Engage()
		} else {
			err = g.sim.Disengage()
		}
		if err != nil {
			g.log.Warn("engagement change rejected", zap.Error(err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		var err error
		if g.sim.Status() == hud.StatusOverride {
			err = g.sim.Release()
		} else {
			err = g.sim.Override()
		}
		if err != nil {
			g.log.Warn("override change rejected", zap.Error(err))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.sim.ToggleMetric()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.sim.ToggleHeater()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.sim.AdjustCruise(5.0 / 3.6)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.sim.AdjustCruise(-5.0 / 3.6)
	}

	if g.bus.Tick() {
		g.renderer.UpdateState(g.sim.Next())
	}
	return nil
}

// Draw paints the road backdrop and the HUD overlay into the canvas, then
// uploads the frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackdrop()
	g.renderer.Draw(g.canvas, g.canvas.Rect())

	if rgba, ok := g.canvas.Image().(*image.RGBA); ok {
		g.frame.WritePixels(rgba.Pix)
	}
	screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
}

// drawBackdrop fills the canvas with a stand-in road view: sky, asphalt and a
// dashed center line. The real product composites the HUD over a camera feed.
func (g *Game) drawBackdrop() {
	sky := color.RGBA{0x1c, 0x24, 0x33, 0xff}
	asphalt := color.RGBA{0x2a, 0x2a, 0x2e, 0xff}
	lane := color.RGBA{0xd8, 0xd8, 0xd0, 0xff}

	g.canvas.Clear(sky)
	horizon := g.height * 2 / 5
	g.canvas.FillRoundedRect(image.Rect(0, horizon, g.width, g.height), 0, asphalt, color.RGBA{}, 0)

	dashW := 10
	for y := horizon + 40; y < g.height; y += 80 {
		g.canvas.FillRoundedRect(image.Rect(g.width/2-dashW/2, y, g.width/2+dashW/2, y+40), 4, lane, color.RGBA{}, 0)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
