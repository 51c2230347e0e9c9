package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	scriptPath := flag.String("script", "", "tengo script with animation event handlers")
	flag.Parse()

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("frameplay demo")

	game, err := NewGame(*scriptPath)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
