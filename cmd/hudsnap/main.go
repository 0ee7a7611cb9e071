// Command hudsnap renders a single HUD frame from flag-specified telemetry to
// a PNG file. It runs headless, so it is handy for theme tweaking and for
// eyeballing layout changes without a display.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"

	"road-hud/internal/hud"
	"road-hud/internal/render"
)

func main() {
	var (
		out      = flag.String("o", "hud.png", "output PNG path")
		width    = flag.Int("width", 1280, "frame width in pixels")
		height   = flag.Int("height", 720, "frame height in pixels")
		themeOpt = flag.String("theme", "", "path to a TOML theme override")

		speed   = flag.Float64("speed", 27.78, "current speed in m/s")
		cluster = flag.Float64("cluster", 0, "cluster-reported speed in m/s (0 = never seen)")
		cruise  = flag.Float64("cruise", 27.78, "cruise target in m/s")
		set     = flag.Bool("set", true, "cruise target active")
		metric  = flag.Bool("metric", true, "display km/h instead of mph")
		status  = flag.String("status", "engaged", "engagement status: disengaged, engaged, override")

		heater = flag.Bool("heater", false, "battery heater enabled")
		soc    = flag.Float64("soc", 0, "battery state of charge in percent (0 hides the panel)")
		temp   = flag.Float64("temp", 0, "battery temperature in °C")
	)
	flag.Parse()

	theme := hud.DefaultTheme()
	if *themeOpt != "" {
		var err error
		if theme, err = hud.LoadTheme(*themeOpt); err != nil {
			log.Printf("using default theme: %v", err)
		}
	}

	canvas, err := render.NewCanvas(*width, *height)
	if err != nil {
		log.Fatalf("canvas: %v", err)
	}
	canvas.Clear(color.RGBA{0x1c, 0x24, 0x33, 0xff})

	renderer := hud.NewRenderer(theme, render.HeaterAssets(hud.IconSize), nil)
	renderer.UpdateState(buildSnapshot(*speed, *cluster, *cruise, *set, *metric, *status, *heater, *soc, *temp))
	renderer.Draw(canvas, image.Rect(0, 0, *width, *height))

	if err := canvas.SavePNG(*out); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("wrote %s", *out)
}

func buildSnapshot(speed, cluster, cruise float64, set, metric bool, status string, heater bool, soc, temp float64) hud.Snapshot {
	s := hud.Snapshot{
		VEgo:                 speed,
		VEgoCluster:          cluster,
		VEgoClusterSeen:      cluster != 0,
		VCruise:              cruise,
		CruiseSet:            set,
		Metric:               metric,
		Status:               parseStatus(status),
		BatteryHeaterEnabled: heater,
	}
	if soc != 0 {
		voltage := 44 + 8*soc/100
		s.Battery = hud.BatteryDetails{
			HeaterActive: heater,
			Capacity:     4800,
			Charge:       4800 * soc / 100,
			SOC:          soc,
			Temperature:  temp,
			CellVoltage:  voltage / 14,
			Voltage:      voltage,
			Current:      12.5,
			CurrentMax:   40,
			Power:        voltage * 12.5,
			PowerMax:     2100,
		}
	}
	return s
}

func parseStatus(s string) hud.Status {
	switch s {
	case "engaged":
		return hud.StatusEngaged
	case "override":
		return hud.StatusOverride
	default:
		return hud.StatusDisengaged
	}
}
