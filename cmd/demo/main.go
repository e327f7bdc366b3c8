package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animkit/logger"
)

func main() {
	defsDir := flag.String("defs", "", "load definitions from this directory instead of the embedded ones")
	watch := flag.Bool("watch", false, "hot-reload definitions on change (requires -defs)")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "also log to this file")
	flag.Parse()

	logger.Init(*logLevel, *logFile)
	defer logger.Sync()

	game, err := NewGame(*defsDir, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("animkit demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
