//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"life-canvas/internal/render"
	"life-canvas/internal/session"
	"life-canvas/internal/ui"
	"life-canvas/pkg/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *session.Session
	hud     *ui.HUD
	overlay *ui.Overlay
	style   render.Style

	background color.Color
	hudWidth   int
	log        *log.Logger
}

// New constructs a Game for the provided session.
func New(s *session.Session, cfg *Config, logger *log.Logger) *Game {
	style := render.DefaultStyle()
	style.BorderWidth = cfg.Border
	return &Game{
		session:    s,
		hud:        ui.NewHUD(s, "Life Controls", cfg.HUDWidth),
		overlay:    ui.NewOverlay(s),
		style:      style,
		background: color.Black,
		hudWidth:   cfg.HUDWidth,
		log:        logger,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.session.Paused() {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Randomize(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.resize(2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.resize(-2)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		gw, gh := g.session.Geometry().GridSize(g.session.Grid())
		if float64(x) < gw && float64(y) < gh {
			g.session.ToggleAt(float64(x), float64(y))
		}
	}

	g.hud.Update(g.gridWidth())
	g.overlay.Update()
	g.session.Tick()
	return nil
}

// Draw renders the grid, the cursor overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	render.DrawGrid(render.NewEbitenSurface(screen), g.session.Grid(), g.session.Geometry(), g.style)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), screen.Bounds().Dy())
}

// Layout keeps the logical screen at the window size and refits the grid
// area whenever the window changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.session.SetSurface(layout.Surface{W: float64(outsideWidth - g.hudWidth), H: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}

// resize moves the column count by delta through the same path as the HUD,
// so the keyboard stops at the minimum width too.
func (g *Game) resize(delta int) {
	cols := g.session.Grid().W
	if !g.session.SetIntParameter(session.ParamColumns, cols+delta) {
		g.log.Printf("columns stay at %d", cols)
	}
}

func (g *Game) gridWidth() int { return int(g.session.Surface().W) }
