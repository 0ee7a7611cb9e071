package app

import "flag"

// Config represents the command-line parameters for the HUD demo.
type Config struct {
	Width  int
	Height int
	TPS    int
	BusHz  int
	Seed   int64
	Metric bool
	Theme  string
	Debug  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1280, Height: 720, TPS: 60, BusHz: 20, Seed: 42, Metric: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.BusHz, "bus-hz", c.BusHz, "telemetry bus rate in Hz")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "drive simulator seed")
	fs.BoolVar(&c.Metric, "metric", c.Metric, "display km/h instead of mph")
	fs.StringVar(&c.Theme, "theme", c.Theme, "path to a TOML theme override")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "verbose logging")
}
