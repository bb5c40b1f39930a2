package app

import (
	"flag"

	"pengine/internal/core"
	"pengine/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width     int
	Height    int
	TPS       int
	Workers   int
	Seed      int64
	Intensity float64
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{Width: 800, Height: 600, TPS: 60, Workers: 0, Seed: 42, Intensity: 500}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "world width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "world height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.IntVar(&c.Workers, "workers", c.Workers, "update workers (0 = number of CPUs)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for burst velocity sampling")
	fs.Float64Var(&c.Intensity, "intensity", c.Intensity, "central field intensity (negative repels)")
}

// SimConfig translates the flags into a simulation configuration with the
// default field centered in the window.
func (c *Config) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.Bounds = core.Rect{W: float64(c.Width), H: float64(c.Height)}
	cfg.TickRate = c.TPS
	cfg.Workers = c.Workers
	cfg.Seed = c.Seed
	cfg.FieldOrigin = core.Vec2{X: float64(c.Width) / 2, Y: float64(c.Height) / 2}
	cfg.FieldIntensity = c.Intensity
	return cfg
}
