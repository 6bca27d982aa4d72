package session

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"life-canvas/internal/core"
	pcore "life-canvas/pkg/core"
	"life-canvas/pkg/layout"
	"life-canvas/pkg/sims/life"
)

func newSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	if cfg.Surface == (layout.Surface{}) {
		cfg.Surface = layout.Surface{W: 200, H: 100}
	}
	if cfg.Columns == 0 {
		cfg.Columns = 10
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewDerivesRowsFromSurface(t *testing.T) {
	s := newSession(t, Config{})
	g := s.Grid()
	if g.W != 10 || g.H != 5 {
		t.Fatalf("grid %dx%d, want 5x10", g.H, g.W)
	}
	if s.Geometry().CellLength != 20 {
		t.Fatalf("cell length %f, want 20", s.Geometry().CellLength)
	}
	if g.Population() != 0 {
		t.Fatal("default grid should be blank")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []Config{
		{Surface: layout.Surface{W: 0, H: 100}, Columns: 10},
		{Surface: layout.Surface{W: 100, H: 100}, Columns: 0},
	}
	for _, cfg := range cases {
		if _, err := New(cfg); !errors.Is(err, pcore.ErrInvalidDimension) {
			t.Fatalf("New(%+v) err=%v, want ErrInvalidDimension", cfg, err)
		}
	}
}

func TestNewRandomIsDeterministic(t *testing.T) {
	a := newSession(t, Config{Random: true, Seed: 3, Density: 0.5})
	b := newSession(t, Config{Random: true, Seed: 3, Density: 0.5})
	if !a.Grid().Equal(b.Grid()) {
		t.Fatal("same seed should produce the same starting grid")
	}
	if a.Grid().Population() == 0 {
		t.Fatal("random grid at density 0.5 should not be empty")
	}
}

func TestTickFollowsSpeed(t *testing.T) {
	s := newSession(t, Config{Speed: core.MaxSpeed})
	if s.WaitFrames() != core.FastestWait {
		t.Fatalf("wait %d at max speed, want %d", s.WaitFrames(), core.FastestWait)
	}
	steps := 0
	for i := 0; i < 10; i++ {
		if s.Tick() {
			steps++
		}
	}
	if steps != 5 || s.Generation() != 5 {
		t.Fatalf("10 frames at wait 1 stepped %d times (generation %d), want 5", steps, s.Generation())
	}

	s.SetSpeed(core.MinSpeed)
	if s.WaitFrames() != core.SlowestWait {
		t.Fatalf("wait %d at min speed, want %d", s.WaitFrames(), core.SlowestWait)
	}
}

func TestPausedTickDoesNothing(t *testing.T) {
	s := newSession(t, Config{Speed: core.MaxSpeed})
	s.SetPaused(true)
	for i := 0; i < 10; i++ {
		if s.Tick() {
			t.Fatal("paused session stepped")
		}
	}
	if s.Generation() != 0 {
		t.Fatalf("generation %d, want 0", s.Generation())
	}
}

func TestStepOnceReplacesGrid(t *testing.T) {
	s := newSession(t, Config{})
	s.SetPaused(true)
	for _, c := range []pcore.Coordinate{{2, 3}, {2, 4}, {2, 5}} {
		s.ToggleAt(float64(c.Col)*20+1, float64(c.Row)*20+1)
	}
	before := s.Grid()
	s.StepOnce()
	if s.Grid() == before {
		t.Fatal("StepOnce should swap in a new grid")
	}
	want := life.Step(before)
	if !s.Grid().Equal(want) {
		t.Fatalf("StepOnce produced %v, want %v", s.Grid().LiveCells(), want.LiveCells())
	}
	if before.Population() != 3 {
		t.Fatal("previous grid was mutated")
	}
}

func TestToggleOnlyWhilePaused(t *testing.T) {
	s := newSession(t, Config{})
	if s.ToggleAt(25, 25) {
		t.Fatal("toggle accepted while running")
	}
	s.SetPaused(true)
	if !s.ToggleAt(25, 25) {
		t.Fatal("toggle rejected while paused")
	}
	if !s.Grid().Alive(pcore.Coordinate{Row: 1, Col: 1}) {
		t.Fatal("cell (1,1) should be alive after toggle")
	}
	if s.ToggleAt(-5, 10) || s.ToggleAt(10, 150) || s.ToggleAt(250, 10) {
		t.Fatal("out-of-grid toggles should be ignored")
	}
	if s.Grid().Population() != 1 {
		t.Fatalf("population %d, want 1", s.Grid().Population())
	}
}

func TestExpandAndShrinkKeepRows(t *testing.T) {
	s := newSession(t, Config{})
	s.SetPaused(true)
	s.ToggleAt(5, 5)

	if err := s.Expand(); err != nil {
		t.Fatalf("Expand: %v", err)
	}
	g := s.Grid()
	if g.W != 12 || g.H != 5 {
		t.Fatalf("expanded to %dx%d, want 5x12", g.H, g.W)
	}
	if !g.Alive(pcore.Coordinate{Row: 0, Col: 1}) {
		t.Fatal("live cell should shift one column right")
	}
	if got := s.Geometry().CellLength; got != 200.0/12 {
		t.Fatalf("cell length %f, want %f", got, 200.0/12)
	}

	if err := s.Shrink(); err != nil {
		t.Fatalf("Shrink: %v", err)
	}
	if !s.Grid().Alive(pcore.Coordinate{Row: 0, Col: 0}) || s.Grid().W != 10 {
		t.Fatal("shrink should restore the original layout")
	}
}

func TestExpandFitRowsRederivesHeight(t *testing.T) {
	s := newSession(t, Config{FitRows: true})
	if err := s.Expand(); err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if g := s.Grid(); g.W != 12 || g.H != 6 {
		t.Fatalf("expanded to %dx%d, want 6x12", g.H, g.W)
	}
}

func TestShrinkAtFloorLogsAndKeepsGrid(t *testing.T) {
	var buf bytes.Buffer
	s := newSession(t, Config{Surface: layout.Surface{W: 40, H: 40}, Columns: 2, Logger: log.New(&buf, "", 0)})
	before := s.Grid()
	err := s.Shrink()
	if !errors.Is(err, life.ErrCannotShrink) {
		t.Fatalf("err=%v, want ErrCannotShrink", err)
	}
	if s.Grid() != before {
		t.Fatal("refused shrink should keep the current grid")
	}
	if !strings.Contains(buf.String(), "shrink refused") {
		t.Fatalf("expected a log line for the refused shrink, got %q", buf.String())
	}
}

func TestSetSurfaceRecomputesGeometry(t *testing.T) {
	s := newSession(t, Config{})
	s.SetSurface(layout.Surface{W: 400, H: 300})
	if s.Geometry().CellLength != 40 {
		t.Fatalf("cell length %f, want 40", s.Geometry().CellLength)
	}
	s.SetSurface(layout.Surface{})
	if s.Geometry().CellLength != 40 {
		t.Fatal("invalid surface should be ignored")
	}
	if s.Grid().W != 10 || s.Grid().H != 5 {
		t.Fatal("surface change should not resize the grid")
	}
}

func TestRandomizeAndClear(t *testing.T) {
	s := newSession(t, Config{Density: 0.5})
	s.StepOnce()
	s.Randomize(11)
	if s.Generation() != 0 || s.Seed() != 11 {
		t.Fatalf("generation %d seed %d after Randomize", s.Generation(), s.Seed())
	}
	first := s.Grid()
	s.Randomize(11)
	if !first.Equal(s.Grid()) {
		t.Fatal("Randomize should be deterministic per seed")
	}
	s.Clear()
	if s.Grid().Population() != 0 {
		t.Fatal("Clear should empty the grid")
	}
	if s.Grid().W != 10 || s.Grid().H != 5 {
		t.Fatal("Clear should keep dimensions")
	}
}

func TestParameterControls(t *testing.T) {
	s := newSession(t, Config{Speed: 10})
	if !s.SetIntParameter(ParamSpeed, 200) {
		t.Fatal("speed should be adjustable")
	}
	if s.Speed() != core.MaxSpeed {
		t.Fatalf("speed %d, want clamp to %d", s.Speed(), core.MaxSpeed)
	}

	if !s.SetIntParameter(ParamColumns, 14) {
		t.Fatal("columns should be adjustable")
	}
	if s.Grid().W != 14 {
		t.Fatalf("columns %d, want 14", s.Grid().W)
	}
	if !s.SetIntParameter(ParamColumns, 12) || s.Grid().W != 12 {
		t.Fatalf("columns %d, want 12", s.Grid().W)
	}
	if s.SetIntParameter(ParamColumns, 13) {
		t.Fatal("a change smaller than one band should be ignored")
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys should be rejected")
	}

	snap := s.Parameters()
	p, ok := snap.Lookup(ParamColumns)
	if !ok || p.Value != "12" {
		t.Fatalf("columns parameter = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("paused"); !ok || p.Value != "false" {
		t.Fatalf("paused parameter = %+v, %v", p, ok)
	}

	controls := s.ParameterControls()
	if len(controls) != 2 || controls[0].Key != ParamSpeed || controls[1].Key != ParamColumns {
		t.Fatalf("unexpected controls %+v", controls)
	}
}

func TestColumnsStopAtMinimum(t *testing.T) {
	s := newSession(t, Config{Columns: 6})
	if !s.SetIntParameter(ParamColumns, s.Grid().W-2) || s.Grid().W != 4 {
		t.Fatalf("columns %d, want 4", s.Grid().W)
	}
	if s.SetIntParameter(ParamColumns, s.Grid().W-2) {
		t.Fatal("shrinking below the minimum width should be refused")
	}
	if s.Grid().W != 4 {
		t.Fatalf("columns %d, want 4", s.Grid().W)
	}

	var ctrl core.ParameterControl
	for _, c := range s.ParameterControls() {
		if c.Key == ParamColumns {
			ctrl = c
		}
	}
	if _, ok := ctrl.Adjust(s.Grid().W, -1); ok {
		t.Fatal("the columns control should not offer a shrink the session refuses")
	}
	if next, ok := ctrl.Adjust(s.Grid().W, 1); !ok || !s.SetIntParameter(ParamColumns, next) || s.Grid().W != 6 {
		t.Fatalf("columns %d, want 6", s.Grid().W)
	}
}
