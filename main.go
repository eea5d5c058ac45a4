package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"

	"github.com/alexanderi96/snake/ai"
	"github.com/alexanderi96/snake/config"
	"github.com/alexanderi96/snake/game"
	"github.com/alexanderi96/snake/ui"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		config.Usage(os.Stderr)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	if cfg.Debug {
		rl.SetTraceLogLevel(rl.LogInfo)
	} else {
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	seed := cfg.RandomSeed()
	g, err := game.NewGame(cfg.CellCount, seed, log.Default())
	if err != nil {
		return err
	}
	log.Printf("snake on a %dx%d board, tick %s, seed %d", cfg.CellCount, cfg.CellCount, cfg.Tick, seed)

	size := int32(cfg.WindowSize())
	rl.InitWindow(size, size, cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FPS))

	// The texture belongs to the window and must go before it does.
	sprite, err := ui.LoadFoodSprite(cfg.FoodTexture)
	if err != nil {
		return err
	}
	defer sprite.Unload()

	renderer := ui.NewRenderer(cfg, sprite)
	ticker := game.NewTicker(cfg.Tick)

	var pilot *ai.Autopilot
	if cfg.Autopilot {
		pilot = ai.NewAutopilot()
	}

	for !rl.WindowShouldClose() {
		// Update game state at fixed interval
		if ticker.Due(rl.GetTime()) {
			if pilot != nil {
				pilot.Drive(g)
			}
			g.Update()
		}

		for _, d := range ui.PressedDirections() {
			g.Steer(d)
		}

		renderer.Draw(g, pilot != nil)
	}

	log.Printf("closing after %d rounds, best score %d", g.Round()-1, g.BestScore())
	return nil
}
