package hud

import "math"

// Telemetry speeds arrive in m/s; only the display layer converts.
const (
	msToKph = 3.6
	msToMph = 2.2369362921
)

// displaySpeed converts a speed in m/s to the display unit.
func displaySpeed(ms float64, metric bool) float64 {
	if metric {
		return ms * msToKph
	}
	return ms * msToMph
}

// roundSpeed converts and rounds to the nearest whole display unit.
func roundSpeed(ms float64, metric bool) int {
	return int(math.Round(displaySpeed(ms, metric)))
}

// speedUnitLabel returns the label drawn under the current-speed readout.
func speedUnitLabel(metric bool) string {
	if metric {
		return "km/h"
	}
	return "mph"
}
