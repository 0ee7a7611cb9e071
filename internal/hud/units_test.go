package hud

import "testing"

func TestRoundSpeed(t *testing.T) {
	cases := []struct {
		ms     float64
		metric bool
		want   int
	}{
		{0, true, 0},
		{0, false, 0},
		{27.78, true, 100},
		{27.78, false, 62},
		{10, true, 36},
		{10, false, 22},
		{0.13, true, 0},   // 0.468 km/h rounds down
		{0.14, true, 1},   // 0.504 km/h rounds up
		{33.333, true, 120},
	}
	for _, c := range cases {
		if got := roundSpeed(c.ms, c.metric); got != c.want {
			t.Fatalf("roundSpeed(%v, metric=%v) = %d, want %d", c.ms, c.metric, got, c.want)
		}
	}
}

func TestSpeedUnitLabel(t *testing.T) {
	if speedUnitLabel(true) != "km/h" {
		t.Fatal("metric label wrong")
	}
	if speedUnitLabel(false) != "mph" {
		t.Fatal("imperial label wrong")
	}
}
