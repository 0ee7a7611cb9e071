package hud

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
)

// Fixed layout geometry, anchored to the surface rect handed to Draw.
// IconSize is the pixel size asset producers should render the heater icons
// at: three quarters of the icon button diameter.
const IconSize = btnSize / 4 * 3

const (
	btnSize = 192
	imgSize = IconSize

	badgeX       = 60
	badgeY       = 45
	badgeW       = 172
	badgeWMetric = 200
	badgeH       = 204

	maxLabelOffset = 52
	setSpeedOffset = 122

	speedBaselineY = 210
	unitBaselineY  = 290

	iconMargin = 30

	panelGap     = 24
	panelWidth   = 330
	panelPadding = 24
	panelHeaderH = 48
	panelRowH    = 42
)

// Assets are the preloaded battery-heater icon images. Either may be nil, in
// which case the icon blit is skipped and only its background is drawn.
type Assets struct {
	HeaterOn  image.Image
	HeaterOff image.Image
}

// Renderer converts the latest vehicle telemetry into HUD drawing primitives.
// UpdateState is driven by the telemetry feed, Draw by the frame clock; the
// two run sequentially on the same goroutine and never block.
type Renderer struct {
	theme  Theme
	assets Assets

	// Invoked synchronously when layout-relevant state changes, so the
	// owning view can re-query size before the next frame.
	onLayoutChange func()
	notifying      bool

	state        overlayState
	panelVisible bool
}

// NewRenderer constructs a renderer with all-zero state. onLayoutChange may be
// nil when no parent cares about layout changes.
func NewRenderer(theme Theme, assets Assets, onLayoutChange func()) *Renderer {
	return &Renderer{theme: theme, assets: assets, onLayoutChange: onLayoutChange}
}

// UpdateState copies the snapshot into the overlay state and notifies the
// parent when the overlay's shape changed. It performs no I/O and accepts
// out-of-range values verbatim.
func (r *Renderer) UpdateState(s Snapshot) {
	prevPanel := r.panelVisible
	prevHeater := r.state.heaterEnabled

	st := &r.state
	// Cluster preference is monotonic: once the dashboard cluster has
	// reported a speed it stays the displayed source.
	st.clusterSeen = st.clusterSeen || s.VEgoClusterSeen
	v := s.VEgo
	if st.clusterSeen {
		v = s.VEgoCluster
	}
	st.speed = math.Max(0, v)
	st.setSpeed = s.VCruise
	st.cruiseSet = s.CruiseSet
	st.metric = s.Metric
	st.status = s.Status
	st.heaterEnabled = s.BatteryHeaterEnabled
	st.battery = s.Battery

	r.panelVisible = st.heaterEnabled || st.battery.present()
	if r.panelVisible != prevPanel || st.heaterEnabled != prevHeater {
		r.triggerParentUpdate()
	}
}

// triggerParentUpdate fires the layout-changed callback. The guard keeps a
// callback that calls back into the renderer from re-triggering itself.
func (r *Renderer) triggerParentUpdate() {
	if r.onLayoutChange == nil || r.notifying {
		return
	}
	r.notifying = true
	r.onLayoutChange()
	r.notifying = false
}

// Draw issues one frame of drawing primitives against sfc, back to front.
// It never mutates the overlay state and is safe at any frame rate.
func (r *Renderer) Draw(sfc Surface, rect image.Rectangle) {
	r.drawSetSpeed(sfc, rect)
	r.drawCurrentSpeed(sfc, rect)
	r.drawBatteryHeaterIcon(sfc, rect)
	if r.panelVisible {
		r.drawBatteryDetailsPanel(sfc, rect)
	}
}

// BatteryPanelVisible reports whether the battery details panel is part of the
// current layout.
func (r *Renderer) BatteryPanelVisible() bool {
	return r.panelVisible
}

// BatteryPanelRect returns the panel's rectangle within rect, for parents that
// resize around the overlay after a layout notification.
func (r *Renderer) BatteryPanelRect(rect image.Rectangle) (image.Rectangle, bool) {
	if !r.panelVisible {
		return image.Rectangle{}, false
	}
	return r.panelRect(rect), true
}

// drawSetSpeed renders the cruise-target badge. The badge stays put when no
// target is set; only its palette and placeholder change, so the layout never
// jitters between frames.
func (r *Renderer) drawSetSpeed(sfc Surface, rect image.Rectangle) {
	w := badgeW
	if r.state.metric {
		w = badgeWMetric
	}
	x := rect.Min.X + badgeX + (badgeW-w)/2
	badge := image.Rect(x, rect.Min.Y+badgeY, x+w, rect.Min.Y+badgeY+badgeH)
	sfc.FillRoundedRect(badge, r.theme.BadgeRadius, r.theme.BadgeFill, r.theme.BadgeBorder, r.theme.BadgeBorderWidth)

	maxColor := r.theme.MaxLabelIdle
	valColor := r.theme.SetSpeedIdle
	value := "–"
	if r.state.cruiseSet {
		valColor = r.theme.SetSpeedActive
		if r.state.status.Engaged() {
			maxColor = r.theme.MaxLabelEngaged
		} else {
			maxColor = r.theme.MaxLabelSet
		}
		value = strconv.Itoa(roundSpeed(r.state.setSpeed, r.state.metric))
	}

	cx := badge.Min.X + badge.Dx()/2
	sfc.DrawText(cx, badge.Min.Y+maxLabelOffset, "MAX", TextStyle{Size: r.theme.MaxLabelFontSize, Bold: true}, maxColor)
	sfc.DrawText(cx, badge.Min.Y+setSpeedOffset, value, TextStyle{Size: r.theme.SetSpeedFontSize, Bold: true}, valColor)
}

// drawCurrentSpeed renders the live speed readout, dimmed while disengaged.
func (r *Renderer) drawCurrentSpeed(sfc Surface, rect image.Rectangle) {
	alpha := uint8(255)
	if !r.state.status.Engaged() {
		alpha = r.theme.SpeedDimAlpha
	}
	unitAlpha := r.theme.UnitLabelAlpha
	if alpha < unitAlpha {
		unitAlpha = alpha
	}

	cx := rect.Min.X + rect.Dx()/2
	value := strconv.Itoa(roundSpeed(r.state.speed, r.state.metric))
	r.drawText(sfc, cx, rect.Min.Y+speedBaselineY, value, TextStyle{Size: r.theme.SpeedFontSize, Bold: true}, alpha)
	r.drawText(sfc, cx, rect.Min.Y+unitBaselineY, speedUnitLabel(r.state.metric), TextStyle{Size: r.theme.UnitFontSize}, unitAlpha)
}

// drawBatteryHeaterIcon draws the heater badge in the top-right corner. Asset
// choice follows the enabled flag alone; opacity drops while the heater is
// actually drawing power so it does not compete with the speed readouts.
func (r *Renderer) drawBatteryHeaterIcon(sfc Surface, rect image.Rectangle) {
	center := image.Pt(rect.Max.X-iconMargin-btnSize/2, rect.Min.Y+iconMargin+btnSize/2)
	img := r.assets.HeaterOff
	if r.state.heaterEnabled {
		img = r.assets.HeaterOn
	}
	opacity := r.theme.HeaterOpacityIdle
	if r.state.battery.HeaterActive {
		opacity = r.theme.HeaterOpacityHot
	}
	r.drawIcon(sfc, center, img, r.theme.IconBackground, opacity)
}

type batteryRow struct {
	label string
	value string
}

// batteryRows formats one labeled row per BatteryDetails field, in declared
// field order, with fixed precision per quantity.
func batteryRows(b BatteryDetails) []batteryRow {
	heater := "off"
	if b.HeaterActive {
		heater = "on"
	}
	return []batteryRow{
		{"Heater", heater},
		{"Capacity", fmt.Sprintf("%.0f Wh", b.Capacity)},
		{"Charge", fmt.Sprintf("%.0f Wh", b.Charge)},
		{"SOC", fmt.Sprintf("%.0f%%", b.SOC)},
		{"Temp", fmt.Sprintf("%.1f °C", b.Temperature)},
		{"Cell", fmt.Sprintf("%.2f V", b.CellVoltage)},
		{"Voltage", fmt.Sprintf("%.1f V", b.Voltage)},
		{"Current", fmt.Sprintf("%.1f A", b.Current)},
		{"Current max", fmt.Sprintf("%.1f A", b.CurrentMax)},
		{"Power", fmt.Sprintf("%.0f W", b.Power)},
		{"Power max", fmt.Sprintf("%.0f W", b.PowerMax)},
	}
}

func (r *Renderer) panelRect(rect image.Rectangle) image.Rectangle {
	rows := 11 // one per BatteryDetails field
	h := 2*panelPadding + panelHeaderH + rows*panelRowH
	x := rect.Min.X + badgeX
	y := rect.Min.Y + badgeY + badgeH + panelGap
	return image.Rect(x, y, x+panelWidth, y+h)
}

// drawBatteryDetailsPanel renders the labeled battery telemetry rows below the
// set-speed badge.
func (r *Renderer) drawBatteryDetailsPanel(sfc Surface, rect image.Rectangle) {
	panel := r.panelRect(rect)
	sfc.FillRoundedRect(panel, r.theme.BadgeRadius, r.theme.PanelFill, r.theme.PanelBorder, r.theme.BadgeBorderWidth)

	cx := panel.Min.X + panel.Dx()/2
	y := panel.Min.Y + panelPadding + panelHeaderH/2
	sfc.DrawText(cx, y, "BATTERY", TextStyle{Size: r.theme.PanelHeaderSize, Bold: true}, r.theme.PanelHeaderColor)

	labelCx := panel.Min.X + panel.Dx()/4
	valueCx := panel.Min.X + panel.Dx()*3/4
	y = panel.Min.Y + panelPadding + panelHeaderH
	style := TextStyle{Size: r.theme.PanelFontSize}
	for _, row := range batteryRows(r.state.battery) {
		rowCy := y + panelRowH/2
		sfc.DrawText(labelCx, rowCy, row.label, style, r.theme.PanelLabelColor)
		sfc.DrawText(valueCx, rowCy, row.value, style, r.theme.PanelValueColor)
		y += panelRowH
	}
}

// drawText is the shared text primitive: white with a per-call alpha, centered
// on the anchor point.
func (r *Renderer) drawText(sfc Surface, x, y int, s string, style TextStyle, alpha uint8) {
	sfc.DrawText(x, y, s, style, withAlpha(r.theme.SpeedColor, alpha))
}

// drawIcon composites a square icon over a circular background. A nil image
// degrades to the background alone rather than aborting the frame.
func (r *Renderer) drawIcon(sfc Surface, center image.Point, img image.Image, bg color.RGBA, opacity float64) {
	sfc.FillCircle(center, btnSize/2, bg)
	if img == nil {
		return
	}
	sfc.DrawImage(img, center, imgSize, opacity)
}
