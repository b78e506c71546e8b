//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/lifestyle/controller"
	"github.com/sheikhrachel/lifestyle/model"
	"github.com/sheikhrachel/lifestyle/utils"
	"github.com/sheikhrachel/lifestyle/view"
)

func main() {
	cfg := utils.DefaultConfig()
	if path := os.Getenv("LIFESTYLE_CONFIG"); path != "" {
		loaded, err := utils.LoadConfig(path)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		cfg = loaded
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%+v", err)
	}

	settings, err := view.SettingsFromConfig(cfg.View)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ctrl, seed, err := controller.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	log.Printf("seed %d, rule %s, %dx%d", seed, cfg.ParsedRule(), cfg.Width, cfg.Height)

	reseed := func() *model.Board {
		rng, _ := utils.NewRand(0)
		board, err := model.Seed(cfg.Pattern, cfg.Width, cfg.Height, rng)
		if err != nil {
			log.Fatalf("%+v", err)
		}
		return board
	}

	game := view.New(ctrl, settings, reseed)
	w, h := settings.ScreenSize(cfg.Width, cfg.Height)

	ebiten.SetWindowTitle("Lifestyle")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
