// Command snake-term plays snake in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/alexanderi96/snake/ai"
	"github.com/alexanderi96/snake/config"
	"github.com/alexanderi96/snake/game"
	"github.com/alexanderi96/snake/ui/term"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so its deferred calls run before the
// process exits.
func realMain() int {
	cfg, err := config.Load(os.Args[1:], os.LookupEnv)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		config.Usage(os.Stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		return 1
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	seed := cfg.RandomSeed()
	g, err := game.NewGame(cfg.CellCount, seed, log.Default())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "initializing terminal")
	}
	defer screen.Fini()
	screen.HideCursor()

	canvas := term.NewCanvas(screen, cfg.CellCount, cfg.Title)
	w, h := screen.Size()
	if cw, ch := canvas.Size(); w < cw || h < ch {
		log.Printf("terminal is %dx%d, board needs %dx%d", w, h, cw, ch)
	}
	log.Printf("snake-term on a %dx%d board, tick %s, seed %d", cfg.CellCount, cfg.CellCount, cfg.Tick, seed)

	var pilot *ai.Autopilot
	if cfg.Autopilot {
		pilot = ai.NewAutopilot()
	}

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Fini was called.
				return
			}
			eventChan <- ev
		}
	}()

	frames := time.NewTicker(time.Second / time.Duration(cfg.FPS))
	defer frames.Stop()
	ticker := game.NewTicker(cfg.Tick)
	start := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if term.IsQuit(ev) {
					log.Printf("quit after %d rounds, best score %d", g.Round()-1, g.BestScore())
					return nil
				}
				if d, ok := term.Direction(ev); ok {
					g.Steer(d)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-frames.C:
			if ticker.Due(time.Since(start).Seconds()) {
				if pilot != nil {
					pilot.Drive(g)
				}
				g.Update()
			}
			canvas.Draw(g, pilot != nil)
		}
	}
}
