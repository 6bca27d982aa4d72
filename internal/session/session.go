// Package session holds the state of one running simulation: the current
// grid, its layout on the surface, the pause flag and the step cadence.
//
// A Session is driven from a single game loop and is not safe for concurrent
// use. The engine packages it calls are pure; the session only swaps its grid
// reference.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"life-canvas/internal/core"
	pcore "life-canvas/pkg/core"
	"life-canvas/pkg/layout"
	"life-canvas/pkg/sims/life"
)

// Parameter keys exposed to the HUD.
const (
	ParamSpeed   = "speed"
	ParamColumns = "columns"
)

// MinColumns is the narrowest grid the HUD will request.
const MinColumns = 3

// Config describes the initial session state.
type Config struct {
	Surface layout.Surface
	Columns int
	Speed   int
	Seed    int64
	Density float64
	// Random seeds the first grid with a random soup instead of a blank one.
	Random bool
	// FitRows re-derives the row count from the surface on resize; otherwise
	// resizing keeps the current rows.
	FitRows bool
	Logger  *log.Logger
}

// Session is the mutable driver state around an immutable grid.
type Session struct {
	grid    *pcore.Grid
	surface layout.Surface
	geom    layout.Geometry

	paused     bool
	gate       *core.FrameGate
	speed      int
	generation int

	seed    int64
	density float64
	fitRows bool

	log *log.Logger
}

// New builds a session whose grid fills the surface with cfg.Columns columns.
func New(cfg Config) (*Session, error) {
	if !cfg.Surface.Valid() {
		return nil, fmt.Errorf("session: surface %vx%v: %w", cfg.Surface.W, cfg.Surface.H, pcore.ErrInvalidDimension)
	}
	if cfg.Columns <= 0 {
		return nil, fmt.Errorf("session: %d columns: %w", cfg.Columns, pcore.ErrInvalidDimension)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		surface: cfg.Surface,
		seed:    cfg.Seed,
		density: cfg.Density,
		fitRows: cfg.FitRows,
		log:     logger,
	}
	s.speed = core.ClampSpeed(cfg.Speed)
	s.gate = core.NewFrameGate(core.SpeedToWait(s.speed))
	s.geom = layout.Compute(cfg.Columns, cfg.Surface.W)

	rows := s.geom.RowsFor(cfg.Surface.H)
	if rows < 1 {
		rows = 1
	}
	var err error
	if cfg.Random {
		s.grid, err = pcore.RandomGrid(rows, cfg.Columns, cfg.Density, cfg.Seed)
	} else {
		s.grid, err = pcore.NewGrid(rows, cfg.Columns)
	}
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.log.Printf("new %dx%d grid, cell %.2fpx, speed %d", rows, cfg.Columns, s.geom.CellLength, s.speed)
	return s, nil
}

// Grid returns the current grid. Callers must not modify it.
func (s *Session) Grid() *pcore.Grid { return s.grid }

// Geometry returns the current layout.
func (s *Session) Geometry() layout.Geometry { return s.geom }

// Surface returns the drawable area the layout is computed for.
func (s *Session) Surface() layout.Surface { return s.surface }

// Generation counts steps since the grid was last seeded or cleared.
func (s *Session) Generation() int { return s.generation }

// Seed returns the seed used by the last Randomize.
func (s *Session) Seed() int64 { return s.seed }

// Paused reports whether ticks are ignored.
func (s *Session) Paused() bool { return s.paused }

// SetPaused sets the pause flag.
func (s *Session) SetPaused(paused bool) { s.paused = paused }

// TogglePause flips the pause flag and returns the new value.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Tick is called once per animation frame. While running it advances the
// frame gate and steps when the gate fires; it reports whether a step ran.
func (s *Session) Tick() bool {
	if s.paused {
		return false
	}
	if !s.gate.Tick() {
		return false
	}
	s.StepOnce()
	return true
}

// StepOnce advances the grid by one generation regardless of the gate.
func (s *Session) StepOnce() {
	s.grid = life.Step(s.grid)
	s.generation++
}

// ToggleAt flips the cell under pixel (x, y). Edits are only accepted while
// paused and inside the grid; it reports whether a cell changed.
func (s *Session) ToggleAt(x, y float64) bool {
	if !s.paused {
		return false
	}
	c := layout.PixelToCell(x, y, s.geom)
	if !s.grid.InBounds(c) {
		return false
	}
	s.grid = s.grid.WithToggled(c)
	return true
}

// CellAt returns the cell under pixel (x, y) and whether it is in the grid.
func (s *Session) CellAt(x, y float64) (pcore.Coordinate, bool) {
	c := layout.PixelToCell(x, y, s.geom)
	return c, s.grid.InBounds(c)
}

func (s *Session) rowPolicy() life.RowPolicy {
	if s.fitRows {
		return layout.FitRows{Surface: s.surface}
	}
	return life.KeepRows{}
}

// Expand adds a column on each side of the grid.
func (s *Session) Expand() error {
	next, err := life.Expand(s.grid, s.rowPolicy())
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.replaceResized(next)
	return nil
}

// Shrink removes a column from each side of the grid. At the minimum size it
// returns an error wrapping life.ErrCannotShrink and leaves the grid as is.
func (s *Session) Shrink() error {
	next, err := life.Shrink(s.grid, s.rowPolicy())
	if err != nil {
		if errors.Is(err, life.ErrCannotShrink) {
			s.log.Printf("shrink refused at %dx%d", s.grid.H, s.grid.W)
		}
		return fmt.Errorf("session: %w", err)
	}
	s.replaceResized(next)
	return nil
}

func (s *Session) replaceResized(next *pcore.Grid) {
	s.grid = next
	s.geom = layout.Compute(next.W, s.surface.W)
	s.log.Printf("resized to %dx%d, cell %.2fpx", next.H, next.W, s.geom.CellLength)
}

// SetSurface recomputes the layout for a new drawable area. The grid keeps
// its dimensions; invalid surfaces are ignored.
func (s *Session) SetSurface(surface layout.Surface) {
	if !surface.Valid() || surface == s.surface {
		return
	}
	s.surface = surface
	s.geom = layout.Compute(s.grid.W, surface.W)
}

// Randomize replaces the grid with a random soup of the same size.
func (s *Session) Randomize(seed int64) {
	g, err := pcore.RandomGrid(s.grid.H, s.grid.W, s.density, seed)
	if err != nil {
		// Current dimensions are always valid.
		panic(err)
	}
	s.seed = seed
	s.grid = g
	s.generation = 0
	s.gate.Reset()
	s.log.Printf("seeded %dx%d grid with %d (density %.2f)", g.H, g.W, seed, s.density)
}

// Clear replaces the grid with a blank one of the same size.
func (s *Session) Clear() {
	g, err := pcore.NewGrid(s.grid.H, s.grid.W)
	if err != nil {
		panic(err)
	}
	s.grid = g
	s.generation = 0
	s.gate.Reset()
	s.log.Printf("cleared %dx%d grid", g.H, g.W)
}

// Speed returns the slider value.
func (s *Session) Speed() int { return s.speed }

// SetSpeed updates the slider value and the frame wait derived from it.
func (s *Session) SetSpeed(speed int) {
	s.speed = core.ClampSpeed(speed)
	s.gate.SetWait(core.SpeedToWait(s.speed))
}

// WaitFrames returns the frames counted between steps at the current speed.
func (s *Session) WaitFrames() int { return s.gate.Wait() }

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				intParam(ParamSpeed, "Speed", s.speed),
				intParam(ParamColumns, "Columns", s.grid.W),
				intParam("rows", "Rows", s.grid.H),
				boolParam("paused", "Paused", s.paused),
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.generation),
				intParam("population", "Population", s.grid.Population()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamSpeed, Label: "Speed", Type: core.ParamTypeInt, Step: 5, Min: core.MinSpeed, Max: core.MaxSpeed, HasMin: true, HasMax: true},
		{Key: ParamColumns, Label: "Columns", Type: core.ParamTypeInt, Step: 2, Min: MinColumns, HasMin: true, WholeSteps: true},
	}
}

// SetIntParameter applies a HUD adjustment. Column changes step through
// Expand and Shrink one band at a time toward the requested width.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case ParamSpeed:
		s.SetSpeed(value)
		return true
	case ParamColumns:
		if value < MinColumns {
			value = MinColumns
		}
		changed := false
		for s.grid.W+2 <= value {
			if err := s.Expand(); err != nil {
				return changed
			}
			changed = true
		}
		for s.grid.W-2 >= value {
			if err := s.Shrink(); err != nil {
				return changed
			}
			changed = true
		}
		return changed
	default:
		return false
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
