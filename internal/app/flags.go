package app

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"life-canvas/internal/core"
	"life-canvas/internal/session"
	"life-canvas/pkg/layout"
)

// ErrInvalidConfig is returned by Validate for unusable flag values.
var ErrInvalidConfig = errors.New("invalid configuration")

// Row policies accepted by -rows.
const (
	RowsKeep = "keep"
	RowsFit  = "fit"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width    int
	Height   int
	HUDWidth int
	Columns  int
	Speed    int
	Seed     int64
	Density  float64
	Random   bool
	Border   float64
	TPS      int
	Rows     string
	Verbose  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    1000,
		Height:   600,
		HUDWidth: 200,
		Columns:  40,
		Speed:    50,
		Seed:     42,
		Density:  0.3,
		Random:   true,
		Border:   1,
		TPS:      60,
		Rows:     RowsKeep,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels, HUD included")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Columns, "cols", c.Columns, "initial grid columns")
	fs.IntVar(&c.Speed, "speed", c.Speed, fmt.Sprintf("simulation speed %d-%d", core.MinSpeed, core.MaxSpeed))
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random soup")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random soup instead of a blank grid")
	fs.Float64Var(&c.Border, "border", c.Border, "cell border width in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.StringVar(&c.Rows, "rows", c.Rows, "row policy on resize: keep or fit")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log session events to stderr")
}

// Validate reports the first unusable value.
func (c *Config) Validate() error {
	switch {
	case c.Width <= c.HUDWidth || c.Height <= 0:
		return fmt.Errorf("%w: window %dx%d leaves no room for a %dpx HUD", ErrInvalidConfig, c.Width, c.Height, c.HUDWidth)
	case c.HUDWidth < 0:
		return fmt.Errorf("%w: hud width %d", ErrInvalidConfig, c.HUDWidth)
	case c.Columns <= 0:
		return fmt.Errorf("%w: %d columns", ErrInvalidConfig, c.Columns)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v outside [0, 1]", ErrInvalidConfig, c.Density)
	case c.Border < 0:
		return fmt.Errorf("%w: border %v", ErrInvalidConfig, c.Border)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.Rows != RowsKeep && c.Rows != RowsFit:
		return fmt.Errorf("%w: rows policy %q", ErrInvalidConfig, c.Rows)
	}
	return nil
}

// GridSurface is the drawable area left of the HUD.
func (c *Config) GridSurface() layout.Surface {
	return layout.Surface{W: float64(c.Width - c.HUDWidth), H: float64(c.Height)}
}

// SessionConfig translates the flags into a session configuration.
func (c *Config) SessionConfig(logger *log.Logger) session.Config {
	return session.Config{
		Surface: c.GridSurface(),
		Columns: c.Columns,
		Speed:   c.Speed,
		Seed:    c.Seed,
		Density: c.Density,
		Random:  c.Random,
		FitRows: c.Rows == RowsFit,
		Logger:  logger,
	}
}
