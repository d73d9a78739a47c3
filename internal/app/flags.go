package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Size    int
	Scale   int
	TPS     int
	Seed    int64
	DelayMS int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Size: 35, Scale: 20, TPS: 60, Seed: 42, DelayMS: 25}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "maze side length in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the maze generators")
	fs.Int64Var(&c.DelayMS, "delay", c.DelayMS, "delay between algorithm steps in milliseconds")
}
