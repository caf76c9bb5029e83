package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/liquid-button/internal/config"
	"github.com/iburimskiy/liquid-button/internal/game"
	"github.com/iburimskiy/liquid-button/internal/prefs"
	"github.com/iburimskiy/liquid-button/internal/sound"
)

var (
	configPath = flag.String("config", "", "path to a YAML button config")
	cellCount  = flag.Int("cells", -1, "number of cells, overrides the config")
	style      = flag.String("style", "", "animate style: up, right, left or down")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *cellCount >= 0 {
		cfg.CellCount = *cellCount
	}
	if *style != "" {
		cfg.Style = *style
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	store, err := prefs.Open("liquid-button")
	if err != nil {
		log.Printf("[Main] Warning: %v (preferences will not persist)", err)
		store = prefs.NewStore(nil)
	}

	chime := sound.NewChime(config.SampleRate, config.ChimeRingSize)
	if cfg.Sound {
		if err := chime.Init(); err != nil {
			log.Printf("[Main] Warning: audio unavailable: %v", err)
		}
	}

	g, err := game.New(cfg, store, chime)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Liquid Floating Action Button - Space/click: toggle, 1-4: style, C: color, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
