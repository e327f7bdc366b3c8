// Command preview displays the states of a machine definition and lets you
// force transitions from a small UI, for checking sheets and timings without
// running a game.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animkit/logger"
)

func main() {
	specPath := flag.String("spec", "cmd/demo/defs/machine.yaml", "machine spec to preview")
	sheetDir := flag.String("sheets", "", "directory sheet paths are resolved against")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	logger.Init(*logLevel, "")
	defer logger.Sync()

	game, err := NewGame(*specPath, *sheetDir)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("animkit preview")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
