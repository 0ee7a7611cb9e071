package hud

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
)

// Theme holds the tunable colors, opacities and font sizes of the overlay.
// Values are display constants, never computed from telemetry magnitude.
type Theme struct {
	BadgeFill        color.RGBA `toml:"badge_fill"`
	BadgeBorder      color.RGBA `toml:"badge_border"`
	BadgeBorderWidth int        `toml:"badge_border_width"`
	BadgeRadius      int        `toml:"badge_radius"`

	MaxLabelIdle     color.RGBA `toml:"max_label_idle"`
	MaxLabelSet      color.RGBA `toml:"max_label_set"`
	MaxLabelEngaged  color.RGBA `toml:"max_label_engaged"`
	SetSpeedIdle     color.RGBA `toml:"set_speed_idle"`
	SetSpeedActive   color.RGBA `toml:"set_speed_active"`
	MaxLabelFontSize float64    `toml:"max_label_font_size"`
	SetSpeedFontSize float64    `toml:"set_speed_font_size"`

	SpeedColor     color.RGBA `toml:"speed_color"`
	SpeedDimAlpha  uint8      `toml:"speed_dim_alpha"`
	SpeedFontSize  float64    `toml:"speed_font_size"`
	UnitLabelAlpha uint8      `toml:"unit_label_alpha"`
	UnitFontSize   float64    `toml:"unit_font_size"`

	IconBackground    color.RGBA `toml:"icon_background"`
	HeaterOpacityHot  float64    `toml:"heater_opacity_hot"`
	HeaterOpacityIdle float64    `toml:"heater_opacity_idle"`

	PanelFill        color.RGBA `toml:"panel_fill"`
	PanelBorder      color.RGBA `toml:"panel_border"`
	PanelLabelColor  color.RGBA `toml:"panel_label_color"`
	PanelValueColor  color.RGBA `toml:"panel_value_color"`
	PanelHeaderColor color.RGBA `toml:"panel_header_color"`
	PanelFontSize    float64    `toml:"panel_font_size"`
	PanelHeaderSize  float64    `toml:"panel_header_size"`
}

// DefaultTheme returns the stock overlay look.
func DefaultTheme() Theme {
	return Theme{
		BadgeFill:        color.RGBA{0, 0, 0, 166},
		BadgeBorder:      color.RGBA{255, 255, 255, 75},
		BadgeBorderWidth: 6,
		BadgeRadius:      32,

		MaxLabelIdle:     color.RGBA{0xa6, 0xa6, 0xa6, 255},
		MaxLabelSet:      color.RGBA{255, 255, 255, 255},
		MaxLabelEngaged:  color.RGBA{0x80, 0xd8, 0xa6, 255},
		SetSpeedIdle:     color.RGBA{0x72, 0x72, 0x72, 255},
		SetSpeedActive:   color.RGBA{255, 255, 255, 255},
		MaxLabelFontSize: 40,
		SetSpeedFontSize: 90,

		SpeedColor:     color.RGBA{255, 255, 255, 255},
		SpeedDimAlpha:  130,
		SpeedFontSize:  176,
		UnitLabelAlpha: 200,
		UnitFontSize:   66,

		IconBackground:    color.RGBA{0, 0, 0, 70},
		HeaterOpacityHot:  0.65,
		HeaterOpacityIdle: 1.0,

		PanelFill:        color.RGBA{0, 0, 0, 166},
		PanelBorder:      color.RGBA{255, 255, 255, 75},
		PanelLabelColor:  color.RGBA{0xa6, 0xa6, 0xa6, 255},
		PanelValueColor:  color.RGBA{255, 255, 255, 255},
		PanelHeaderColor: color.RGBA{255, 255, 255, 255},
		PanelFontSize:    34,
		PanelHeaderSize:  40,
	}
}

// LoadTheme reads a TOML override file on top of the defaults. Fields absent
// from the file keep their default values.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return DefaultTheme(), fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}
