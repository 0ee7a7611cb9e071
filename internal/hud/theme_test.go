package hud

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultThemeSane(t *testing.T) {
	th := DefaultTheme()
	if th.SpeedDimAlpha >= 255 {
		t.Fatal("dim alpha must be below full opacity")
	}
	if th.HeaterOpacityHot >= th.HeaterOpacityIdle {
		t.Fatal("active heater must draw more transparently than idle")
	}
	if th.BadgeRadius <= 0 || th.SpeedFontSize <= 0 {
		t.Fatal("layout constants must be positive")
	}
}

func TestLoadThemeOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	src := `
speed_dim_alpha = 90
heater_opacity_hot = 0.5

[badge_fill]
r = 10
g = 20
b = 30
a = 200
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if th.SpeedDimAlpha != 90 {
		t.Fatalf("override not applied, dim alpha = %d", th.SpeedDimAlpha)
	}
	if th.HeaterOpacityHot != 0.5 {
		t.Fatalf("override not applied, hot opacity = %v", th.HeaterOpacityHot)
	}
	if th.BadgeFill != (color.RGBA{10, 20, 30, 200}) {
		t.Fatalf("color override not applied: %v", th.BadgeFill)
	}
	// Untouched fields keep their defaults.
	if th.SpeedFontSize != DefaultTheme().SpeedFontSize {
		t.Fatal("unrelated default clobbered")
	}
}

func TestLoadThemeMissingFile(t *testing.T) {
	th, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("missing file must surface an error")
	}
	if th != DefaultTheme() {
		t.Fatal("missing file must fall back to defaults")
	}
}
