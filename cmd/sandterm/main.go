// Command sandterm runs the sand sandbox in a terminal.
package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/app"
	"sandfall/internal/term"
	"sandfall/internal/tools"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	// The world always fills the terminal, whatever size a scenario asks for.
	cols, rows := screen.Size()
	cfg.Width, cfg.Height = term.GridSize(cols, rows)
	world, err := cfg.NewWorld()
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	term.New(screen, tools.NewSession(world, cfg.TPS, cfg.Seed)).Run()
}
