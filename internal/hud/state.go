package hud

// Status is the driver-assistance engagement state observed via telemetry.
// The renderer consumes it purely as a display-style selector; transitions
// happen upstream.
type Status int

const (
	StatusDisengaged Status = iota
	StatusEngaged
	StatusOverride
)

// Engaged reports whether the status renders at full emphasis.
func (s Status) Engaged() bool {
	return s != StatusDisengaged
}

// BatteryDetails is a snapshot of the auxiliary battery telemetry. Field order
// is the row order of the battery panel.
type BatteryDetails struct {
	HeaterActive bool
	Capacity     float64 // Wh
	Charge       float64 // Wh
	SOC          float64 // %
	Temperature  float64 // °C
	CellVoltage  float64 // V
	Voltage      float64 // V
	Current      float64 // A
	CurrentMax   float64 // A
	Power        float64 // W
	PowerMax     float64 // W
}

// present reports whether any battery metric carries a value. The heater flag
// counts: a heater that is on implies live battery telemetry.
func (b BatteryDetails) present() bool {
	return b.HeaterActive ||
		b.Capacity != 0 || b.Charge != 0 || b.SOC != 0 ||
		b.Temperature != 0 || b.CellVoltage != 0 || b.Voltage != 0 ||
		b.Current != 0 || b.CurrentMax != 0 ||
		b.Power != 0 || b.PowerMax != 0
}

// Snapshot is one read of the latest vehicle telemetry, passed explicitly to
// UpdateState. Speeds are in m/s, the internal unit; the renderer converts for
// display only. Values are taken as-is — validation is the feed's job.
type Snapshot struct {
	VEgo            float64 // estimator speed
	VEgoCluster     float64 // dashboard cluster speed
	VEgoClusterSeen bool    // cluster speed has been observed this drive
	VCruise         float64 // cruise-control target speed
	CruiseSet       bool
	Metric          bool
	Status          Status

	BatteryHeaterEnabled bool
	Battery              BatteryDetails
}

// overlayState holds the most recent telemetry values the draw passes read.
// One instance per renderer, overwritten on every UpdateState call.
type overlayState struct {
	speed         float64 // m/s, non-negative
	setSpeed      float64 // m/s
	cruiseSet     bool
	metric        bool
	clusterSeen   bool // monotonic: never reverts to false
	status        Status
	heaterEnabled bool
	battery       BatteryDetails
}
