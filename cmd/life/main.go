//go:build ebiten

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"life-canvas/internal/app"
	"life-canvas/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "life: ", log.LstdFlags)
	}

	s, err := session.New(cfg.SessionConfig(logger))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(s, cfg, logger)

	ebiten.SetWindowTitle("life-canvas")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
