//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/Paralands/maze-searcher/internal/app"
	_ "github.com/Paralands/maze-searcher/internal/gen"
	"github.com/Paralands/maze-searcher/internal/maze"
	_ "github.com/Paralands/maze-searcher/internal/solve"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	input := app.NewKeyInput()
	m, err := maze.New(maze.Config{Size: cfg.Size, Seed: cfg.Seed, Input: input})
	if err != nil {
		log.Fatalf("maze: %v", err)
	}

	game := app.New(m, input, cfg.Scale, cfg.DelayMS)

	ebiten.SetWindowTitle("maze-searcher")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
