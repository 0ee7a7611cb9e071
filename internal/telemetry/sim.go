package telemetry

import (
	"context"
	"math"
	"math/rand"

	"github.com/looplab/fsm"

	"road-hud/internal/hud"
)

// Source yields the latest vehicle telemetry snapshot once per bus tick.
// The HUD renderer consumes snapshots and never reaches back into the source.
type Source interface {
	Next() hud.Snapshot
}

// Engagement states and the events that move between them. Transitions are
// owned here, on the feed side; the renderer only observes the result.
const (
	stateDisengaged = "disengaged"
	stateEngaged    = "engaged"
	stateOverride   = "override"

	eventEngage    = "engage"
	eventDisengage = "disengage"
	eventOverride  = "override"
	eventRelease   = "release"
)

const (
	busStep = 0.05 // seconds per bus tick at 20 Hz

	heaterOnBelow  = 5.0  // °C
	heaterOffAbove = 12.0 // °C

	packCapacityWh = 4800.0
	packCellCount  = 14
)

// DriveSim synthesizes a plausible drive: speed chasing a cruise target while
// engaged, rolling to a stop otherwise, with a small battery and heater model.
// Deterministic for a given seed.
type DriveSim struct {
	engagement *fsm.FSM
	rng        *rand.Rand

	metric      bool
	speed       float64 // m/s
	cruise      float64 // m/s
	cruiseSet   bool
	clusterSeen bool
	ticks       int

	soc       float64
	temp      float64
	heaterOn  bool
	heaterHot bool
}

// NewDriveSim constructs a simulator starting disengaged at a standstill.
func NewDriveSim(seed int64, metric bool) *DriveSim {
	rng := rand.New(rand.NewSource(seed))
	d := &DriveSim{
		rng:    rng,
		metric: metric,
		cruise: 27.78, // 100 km/h target once engaged
		soc:    60 + rng.Float64()*35,
		temp:   -10 + rng.Float64()*30,
	}
	d.engagement = fsm.NewFSM(stateDisengaged, fsm.Events{
		{Name: eventEngage, Src: []string{stateDisengaged, stateOverride}, Dst: stateEngaged},
		{Name: eventDisengage, Src: []string{stateEngaged, stateOverride}, Dst: stateDisengaged},
		{Name: eventOverride, Src: []string{stateEngaged}, Dst: stateOverride},
		{Name: eventRelease, Src: []string{stateOverride}, Dst: stateEngaged},
	}, fsm.Callbacks{})
	return d
}

// Engage requests cruise engagement.
func (d *DriveSim) Engage() error {
	if err := d.engagement.Event(context.Background(), eventEngage); err != nil {
		return err
	}
	d.cruiseSet = true
	return nil
}

// Disengage drops cruise control.
func (d *DriveSim) Disengage() error {
	if err := d.engagement.Event(context.Background(), eventDisengage); err != nil {
		return err
	}
	d.cruiseSet = false
	return nil
}

// Override marks a driver accelerator override while engaged.
func (d *DriveSim) Override() error {
	return d.engagement.Event(context.Background(), eventOverride)
}

// Release returns from override to normal engagement.
func (d *DriveSim) Release() error {
	return d.engagement.Event(context.Background(), eventRelease)
}

// AdjustCruise nudges the cruise target by delta m/s, floored at zero.
func (d *DriveSim) AdjustCruise(delta float64) {
	d.cruise = math.Max(0, d.cruise+delta)
}

// ToggleMetric flips the display unit preference.
func (d *DriveSim) ToggleMetric() {
	d.metric = !d.metric
}

// ToggleHeater forces the battery heater on or off, overriding the thermostat.
func (d *DriveSim) ToggleHeater() {
	d.heaterOn = !d.heaterOn
	if !d.heaterOn {
		d.heaterHot = false
	}
}

// Status maps the engagement FSM state to the renderer's display status.
func (d *DriveSim) Status() hud.Status {
	switch d.engagement.Current() {
	case stateEngaged:
		return hud.StatusEngaged
	case stateOverride:
		return hud.StatusOverride
	default:
		return hud.StatusDisengaged
	}
}

// Next advances one bus tick and returns the resulting snapshot.
func (d *DriveSim) Next() hud.Snapshot {
	d.ticks++
	engaged := d.Status() != hud.StatusDisengaged

	// Speed chases the cruise target while engaged, otherwise coasts down.
	target := 0.0
	if engaged && d.cruiseSet {
		target = d.cruise
	}
	accel := 2.0
	if target < d.speed {
		accel = 1.2
	}
	delta := target - d.speed
	step := math.Min(math.Abs(delta), accel*busStep)
	d.speed += math.Copysign(step, delta)
	d.speed += (d.rng.Float64() - 0.5) * 0.05
	d.speed = math.Max(0, d.speed)

	// Dashboard cluster comes up a moment after the bus does.
	d.clusterSeen = d.clusterSeen || d.ticks > 20

	d.stepBattery()

	return hud.Snapshot{
		VEgo:                 d.speed,
		VEgoCluster:          d.speed * 1.004,
		VEgoClusterSeen:      d.clusterSeen,
		VCruise:              d.cruise,
		CruiseSet:            d.cruiseSet,
		Metric:               d.metric,
		Status:               d.Status(),
		BatteryHeaterEnabled: d.heaterOn,
		Battery:              d.battery(),
	}
}

// stepBattery runs the thermostat and drains charge with speed and heating.
func (d *DriveSim) stepBattery() {
	if d.temp < heaterOnBelow {
		d.heaterOn = true
	}
	if d.temp > heaterOffAbove {
		d.heaterOn = false
	}
	d.heaterHot = d.heaterOn && d.soc > 2

	drain := 0.0004 * d.speed
	if d.heaterHot {
		drain += 0.004
		d.temp += 0.02
	} else {
		d.temp -= 0.001
	}
	d.soc = math.Max(0, d.soc-drain*busStep)
}

func (d *DriveSim) battery() hud.BatteryDetails {
	charge := packCapacityWh * d.soc / 100
	voltage := 44 + 8*d.soc/100
	current := 1 + 0.4*d.speed
	power := voltage * current
	if d.heaterHot {
		current += 8
		power = voltage * current
	}
	return hud.BatteryDetails{
		HeaterActive: d.heaterHot,
		Capacity:     packCapacityWh,
		Charge:       charge,
		SOC:          d.soc,
		Temperature:  d.temp,
		CellVoltage:  voltage / packCellCount,
		Voltage:      voltage,
		Current:      current,
		CurrentMax:   40,
		Power:        power,
		PowerMax:     2100,
	}
}
